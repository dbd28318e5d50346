package quiz

import (
	"reflect"
	"testing"

	"langlearn/internal/vocab"
)

func TestEvaluateCaseAndWhitespaceInsensitive(t *testing.T) {
	rec := vocab.Record{Head: "fox", Translations: "lis"}

	for _, answer := range []string{"lis", "LIS", " Lis ", "\tlis\n"} {
		ev := Evaluate(rec, answer)
		if !ev.Correct {
			t.Errorf("Evaluate(%q) not correct", answer)
		}
		if ev.Matched != "lis" {
			t.Errorf("Evaluate(%q).Matched = %q, want %q", answer, ev.Matched, "lis")
		}
	}
}

func TestEvaluateAlternatives(t *testing.T) {
	rec := vocab.Record{Head: "dog", Translations: "pies; kundel; psina"}

	ev := Evaluate(rec, "kundel")
	if !ev.Correct {
		t.Fatal("expected correct")
	}
	wantOthers := []string{"pies", "psina"}
	if !reflect.DeepEqual(ev.Others, wantOthers) {
		t.Errorf("Others = %v, want %v", ev.Others, wantOthers)
	}
}

func TestEvaluateIncorrect(t *testing.T) {
	rec := vocab.Record{Head: "dog", Translations: "pies; kundel"}

	ev := Evaluate(rec, "kot")
	if ev.Correct {
		t.Fatal("expected incorrect")
	}
	if ev.Others != nil {
		t.Errorf("Others = %v, want nil on wrong answer", ev.Others)
	}
	wantAll := []string{"pies", "kundel"}
	if !reflect.DeepEqual(ev.All, wantAll) {
		t.Errorf("All = %v, want %v", ev.All, wantAll)
	}
}

func TestEvaluateEmptyAnswer(t *testing.T) {
	rec := vocab.Record{Head: "fox", Translations: "lis"}
	if ev := Evaluate(rec, ""); ev.Correct {
		t.Error("empty answer must not be correct")
	}
}
