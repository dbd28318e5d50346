package search

import (
	"testing"

	"langlearn/internal/vocab"
)

func TestFindMatchesHeadword(t *testing.T) {
	records := []vocab.Record{
		{Head: "fox", Translations: "lis"},
		{Head: "dog", Translations: "pies; kundel"},
	}

	got := Find(records, "dog")
	if len(got) != 1 || got[0].Head != "dog" {
		t.Fatalf("Find(dog) = %v, want the dog record", got)
	}
}

func TestFindIsCaseInsensitive(t *testing.T) {
	records := []vocab.Record{{Head: "Fox", Translations: "lis"}}

	if got := Find(records, "fox"); len(got) != 1 {
		t.Fatalf("Find(fox) = %v, want one record", got)
	}
	if got := Find(records, "FOX"); len(got) != 1 {
		t.Fatalf("Find(FOX) = %v, want one record", got)
	}
}

func TestFindMatchesHeadwordAlternative(t *testing.T) {
	records := []vocab.Record{{Head: "car; automobile", Translations: "auto"}}

	for _, query := range []string{"car", "automobile"} {
		if got := Find(records, query); len(got) != 1 {
			t.Fatalf("Find(%s) = %v, want one record", query, got)
		}
	}
}

func TestFindTrimsQuery(t *testing.T) {
	records := []vocab.Record{{Head: "fox", Translations: "lis"}}

	if got := Find(records, "  fox  "); len(got) != 1 {
		t.Fatalf("Find with padding = %v, want one record", got)
	}
}

func TestFindNoMatch(t *testing.T) {
	records := []vocab.Record{{Head: "fox", Translations: "lis"}}

	if got := Find(records, "cat"); got != nil {
		t.Fatalf("Find(cat) = %v, want nil", got)
	}
}

func TestFindReturnsAllMatches(t *testing.T) {
	records := []vocab.Record{
		{Head: "bank", Translations: "brzeg"},
		{Head: "bank", Translations: "bank"},
	}

	if got := Find(records, "bank"); len(got) != 2 {
		t.Fatalf("Find(bank) = %v, want both records", got)
	}
}
