package vocab

import (
	"strings"
	"unicode"
)

// punctuation allowed in headwords and translations besides letters and
// whitespace.
const allowedPunct = ";./'|-"

// Record is one headword plus its raw translation string, both trimmed,
// exactly as read from a source file. Two records are the same entity only
// if both fields match, so the struct doubles as the identity key.
type Record struct {
	Head         string
	Translations string
}

// Alternatives returns the individual translation variants, split on ';'
// and trimmed. Empty variants are dropped.
func (r Record) Alternatives() []string {
	parts := strings.Split(r.Translations, ";")
	alts := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			alts = append(alts, p)
		}
	}
	return alts
}

// Valid reports whether both fields consist only of letters, whitespace and
// the allowed punctuation set.
func (r Record) Valid() bool {
	return validText(r.Head) && validText(r.Translations)
}

func validText(s string) bool {
	for _, c := range s {
		if unicode.IsLetter(c) || unicode.IsSpace(c) || strings.ContainsRune(allowedPunct, c) {
			continue
		}
		return false
	}
	return true
}
