package transform

import (
	"math/rand/v2"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
)

func writeInput(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func readOutput(t *testing.T, path string) string {
	t.Helper()
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(raw)
}

func TestOutputPath(t *testing.T) {
	got, err := OutputPath("/tmp/words.txt", "sorted")
	if err != nil {
		t.Fatal(err)
	}
	if want := "/tmp/words_sorted.txt"; got != want {
		t.Errorf("OutputPath = %q, want %q", got, want)
	}

	if _, err := OutputPath("/tmp/words", "sorted"); err == nil {
		t.Error("expected error for path without extension")
	}
	if _, err := OutputPath("/tmp/words.json", "sorted"); err == nil {
		t.Error("expected error for unsupported extension")
	}
}

func TestShufflePreservesLines(t *testing.T) {
	path := writeInput(t, "words.txt", "fox: lis\ndog: pies\ncat: kot\n")

	out, err := Shuffle(path, rand.New(rand.NewPCG(9, 9)))
	if err != nil {
		t.Fatal(err)
	}

	got := strings.Split(strings.TrimRight(readOutput(t, out), "\n"), "\n")
	want := []string{"fox: lis", "dog: pies", "cat: kot"}
	sort.Strings(got)
	sort.Strings(want)
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("shuffled content %v is not a permutation of %v", got, want)
	}
}

func TestSwapColumnsTxt(t *testing.T) {
	path := writeInput(t, "words.txt", "fox: lis\ndog: pies\n")

	out, err := SwapColumns(path)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := readOutput(t, out), "lis: fox\npies: dog\n"; got != want {
		t.Errorf("SwapColumns output = %q, want %q", got, want)
	}
}

func TestSwapColumnsRejectsBadLine(t *testing.T) {
	path := writeInput(t, "words.txt", "fox: lis\nbare line\n")

	if _, err := SwapColumns(path); err == nil {
		t.Error("expected error for line without 2 columns")
	}
}

func TestSwapColumnsCSV(t *testing.T) {
	path := writeInput(t, "words.csv", "fox: lis\n")

	out, err := SwapColumns(path)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := readOutput(t, out), "lis:fox\n"; got != want {
		t.Errorf("SwapColumns output = %q, want %q", got, want)
	}
}

func TestFormatNormalizesAndDedupes(t *testing.T) {
	path := writeInput(t, "words.txt", "fox:lis\nfox: lis\n\ndog:pies;kundel\n")

	out, err := Format(path)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := readOutput(t, out), "fox: lis\ndog: pies; kundel\n"; got != want {
		t.Errorf("Format output = %q, want %q", got, want)
	}
}

func TestAddDelimiter(t *testing.T) {
	path := writeInput(t, "words.txt", "fox\ndog\n\n")

	out, err := AddDelimiter(path)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := readOutput(t, out), "fox: \ndog: \n"; got != want {
		t.Errorf("AddDelimiter output = %q, want %q", got, want)
	}
}

func TestSortCaseInsensitive(t *testing.T) {
	path := writeInput(t, "words.txt", "Zebra: zebra\napple: jabłko\nBanana: banan\n")

	out, err := Sort(path)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := readOutput(t, out), "apple: jabłko\nBanana: banan\nZebra: zebra\n"; got != want {
		t.Errorf("Sort output = %q, want %q", got, want)
	}
}

func TestTransformEmptyFile(t *testing.T) {
	path := writeInput(t, "words.txt", "")

	if _, err := Sort(path); err == nil {
		t.Error("expected error for empty file")
	}
}
