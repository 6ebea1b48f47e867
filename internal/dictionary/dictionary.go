// Package dictionary loads the word list used to validate submissions and
// pick bonus words. Each line of a dictionary file is "word,rarity".
package dictionary

import (
	"bufio"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
)

//go:embed default_dictionary.txt
var embeddedDictionary string

// ErrEmpty is returned when a dictionary source contains no words.
var ErrEmpty = errors.New("dictionary: no words")

// Entry is a dictionary word with its precomputed rarity.
type Entry struct {
	Word   string
	Rarity float64
}

// Dictionary is an immutable, lowercase word list.
type Dictionary struct {
	entries  []Entry
	index    map[string]float64
	byLength map[int][]Entry
}

// Default returns the embedded dictionary.
func Default() (*Dictionary, error) {
	return Load(strings.NewReader(embeddedDictionary))
}

// LoadFile reads a dictionary from disk.
func LoadFile(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dictionary: failed to open %s: %w", path, err)
	}
	defer f.Close()
	return Load(f)
}

// Load parses "word,rarity" lines. Blank lines are skipped; any other
// malformed line fails the whole load.
func Load(r io.Reader) (*Dictionary, error) {
	d := &Dictionary{
		index:    make(map[string]float64),
		byLength: make(map[int][]Entry),
	}

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		entry, err := parseLine(text)
		if err != nil {
			return nil, fmt.Errorf("dictionary: line %d: %w", line, err)
		}
		if _, dup := d.index[entry.Word]; dup {
			continue
		}
		d.index[entry.Word] = entry.Rarity
		d.entries = append(d.entries, entry)
		n := len(entry.Word)
		d.byLength[n] = append(d.byLength[n], entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("dictionary: read failed: %w", err)
	}
	if len(d.entries) == 0 {
		return nil, ErrEmpty
	}
	return d, nil
}

func parseLine(text string) (Entry, error) {
	word, rarityText, found := strings.Cut(text, ",")
	if !found {
		return Entry{}, fmt.Errorf("missing rarity in %q", text)
	}
	word = strings.ToLower(strings.TrimSpace(word))
	if !isWord(word) {
		return Entry{}, fmt.Errorf("invalid word %q", word)
	}
	rarity, err := strconv.ParseFloat(strings.TrimSpace(rarityText), 64)
	if err != nil {
		return Entry{}, fmt.Errorf("invalid rarity for %q: %w", word, err)
	}
	if rarity < 0 {
		return Entry{}, fmt.Errorf("negative rarity for %q", word)
	}
	return Entry{Word: word, Rarity: rarity}, nil
}

// isWord reports whether s is a non-empty run of lowercase ASCII letters.
func isWord(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}

// Len returns the number of distinct words.
func (d *Dictionary) Len() int {
	return len(d.entries)
}

// Contains reports whether the word is in the dictionary, ignoring case.
func (d *Dictionary) Contains(word string) bool {
	_, ok := d.index[strings.ToLower(word)]
	return ok
}

// Rarity returns the stored rarity of a word.
func (d *Dictionary) Rarity(word string) (float64, bool) {
	r, ok := d.index[strings.ToLower(word)]
	return r, ok
}

// WordsOfLength returns every entry with exactly n letters, in file order.
func (d *Dictionary) WordsOfLength(n int) []Entry {
	return append([]Entry(nil), d.byLength[n]...)
}

// Candidates returns the words of exactly n letters whose rarity is
// strictly greater than minRarity.
func (d *Dictionary) Candidates(n int, minRarity float64) []string {
	var out []string
	for _, e := range d.byLength[n] {
		if e.Rarity > minRarity {
			out = append(out, e.Word)
		}
	}
	return out
}

// Longest returns the length of the longest word.
func (d *Dictionary) Longest() int {
	longest := 0
	for n := range d.byLength {
		longest = max(longest, n)
	}
	return longest
}

// CoverageGap describes a word length with no eligible bonus words.
type CoverageGap struct {
	Length    int
	Threshold float64
}

// CheckCoverage verifies that every length from `from` to the last index of
// thresholds has at least one word above its threshold.
func (d *Dictionary) CheckCoverage(from int, thresholds []float64) error {
	var gaps []CoverageGap
	for n := from; n < len(thresholds); n++ {
		if len(d.Candidates(n, thresholds[n])) == 0 {
			gaps = append(gaps, CoverageGap{Length: n, Threshold: thresholds[n]})
		}
	}
	if len(gaps) == 0 {
		return nil
	}
	parts := make([]string, len(gaps))
	for i, g := range gaps {
		parts[i] = fmt.Sprintf("length %d above %.2f", g.Length, g.Threshold)
	}
	return fmt.Errorf("dictionary: no bonus candidates for %s", strings.Join(parts, ", "))
}

// Stats returns the number of words per length, sorted by length.
func (d *Dictionary) Stats() []LengthCount {
	out := make([]LengthCount, 0, len(d.byLength))
	for n, entries := range d.byLength {
		out = append(out, LengthCount{Length: n, Words: len(entries)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Length < out[j].Length })
	return out
}

// LengthCount is one row of Stats.
type LengthCount struct {
	Length int
	Words  int
}
