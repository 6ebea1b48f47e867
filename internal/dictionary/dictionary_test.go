package dictionary

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"
)

func TestLoad(t *testing.T) {
	d, err := Load(strings.NewReader("cat,0.19\n\nQuiz,0.40\ndog,0.17\ncat,0.50\n"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if d.Len() != 3 {
		t.Errorf("Len() = %d, expected 3 (duplicates dropped)", d.Len())
	}
	for _, w := range []string{"cat", "CAT", "quiz", "QUIZ", "Dog"} {
		if !d.Contains(w) {
			t.Errorf("Contains(%q) = false", w)
		}
	}
	if d.Contains("bird") {
		t.Error("Contains(bird) should be false")
	}
	if r, _ := d.Rarity("cat"); r != 0.19 {
		t.Errorf("Rarity(cat) = %f, first entry should win", r)
	}
}

func TestLoadRejectsMalformedLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		line  string
	}{
		{"missing rarity", "cat,0.19\ndog\n", "line 2"},
		{"bad rarity", "cat,abc\n", "line 1"},
		{"negative rarity", "cat,-1\n", "line 1"},
		{"empty word", ",0.3\n", "line 1"},
		{"digits in word", "c4t,0.3\n", "line 1"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tc.input))
			if err == nil {
				t.Fatal("Load should fail")
			}
			if !strings.Contains(err.Error(), tc.line) {
				t.Errorf("error %q should name %s", err, tc.line)
			}
		})
	}
}

func TestLoadEmpty(t *testing.T) {
	if _, err := Load(strings.NewReader("\n\n")); !errors.Is(err, ErrEmpty) {
		t.Errorf("Load(empty) = %v, expected ErrEmpty", err)
	}
}

func TestCandidates(t *testing.T) {
	d, err := Load(strings.NewReader("cat,0.19\ndog,0.16\nfox,0.30\nhorse,0.25\n"))
	if err != nil {
		t.Fatal(err)
	}

	got := d.Candidates(3, 0.16)
	if len(got) != 2 || got[0] != "cat" || got[1] != "fox" {
		t.Errorf("Candidates(3, 0.16) = %v, expected [cat fox] (threshold is exclusive)", got)
	}
	if got := d.Candidates(4, 0); len(got) != 0 {
		t.Errorf("Candidates(4) = %v, expected none", got)
	}
	if n := len(d.WordsOfLength(5)); n != 1 {
		t.Errorf("WordsOfLength(5) = %d words, expected 1", n)
	}
	if d.Longest() != 5 {
		t.Errorf("Longest() = %d, expected 5", d.Longest())
	}
}

func TestCheckCoverage(t *testing.T) {
	d, err := Load(strings.NewReader("cat,0.19\nhorse,0.25\n"))
	if err != nil {
		t.Fatal(err)
	}
	thresholds := []float64{0, 0, 0, 0.16, 0.22, 0.28}

	err = d.CheckCoverage(3, thresholds)
	if err == nil {
		t.Fatal("CheckCoverage should report gaps")
	}
	if !strings.Contains(err.Error(), "length 4") || !strings.Contains(err.Error(), "length 5") {
		t.Errorf("error %q should name lengths 4 and 5", err)
	}
	if strings.Contains(err.Error(), "length 3") {
		t.Errorf("error %q should not name length 3", err)
	}
	if err := d.CheckCoverage(3, thresholds[:4]); err != nil {
		t.Errorf("CheckCoverage up to 3 = %v, expected nil", err)
	}
}

func TestDefaultDictionaryCoversBonusLengths(t *testing.T) {
	d, err := Default()
	if err != nil {
		t.Fatalf("Default() failed: %v", err)
	}
	thresholds := []float64{0, 0, 0, 0.16, 0.22, 0.28, 0.36, 0.42, 0.48, 0.55, 0.61, 0.68, 0.74}
	if err := d.CheckCoverage(3, thresholds); err != nil {
		t.Errorf("embedded dictionary coverage: %v", err)
	}
	if !d.Contains("crystal") || !d.Contains("quiz") {
		t.Error("embedded dictionary is missing common words")
	}

	stats := d.Stats()
	for i := 1; i < len(stats); i++ {
		if stats[i].Length <= stats[i-1].Length {
			t.Fatalf("Stats not sorted: %v", stats)
		}
	}
}

func TestRarity(t *testing.T) {
	tests := []struct {
		word string
		want float64
	}{
		{"e", 0},
		{"cat", 0.10 + 0.03 + 0.06},
		{"CAT", 0.19},
		{"quiz", 0.11 + 0.03 + 0.11},
		{"", 0},
	}

	for _, tc := range tests {
		t.Run(tc.word, func(t *testing.T) {
			if got := Rarity(tc.word); math.Abs(got-tc.want) > 1e-9 {
				t.Errorf("Rarity(%q) = %f, expected %f", tc.word, got, tc.want)
			}
		})
	}
}

func TestAnnotate(t *testing.T) {
	var out bytes.Buffer
	n, err := Annotate(strings.NewReader("Cat dog\nit\ndon't\ncat\nquiz\n"), &out, 3)
	if err != nil {
		t.Fatalf("Annotate failed: %v", err)
	}
	if n != 3 {
		t.Errorf("Annotate wrote %d lines, expected 3", n)
	}
	want := "cat,0.19\ndog,0.21\nquiz,0.25\n"
	if out.String() != want {
		t.Errorf("Annotate output = %q, expected %q", out.String(), want)
	}

	d, err := Load(&out)
	if err != nil {
		t.Fatalf("annotated output should load: %v", err)
	}
	if !d.Contains("quiz") {
		t.Error("annotated dictionary should contain quiz")
	}
}
