package dictionary

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/shadowFAQs/textagons/internal/game/tile"
)

// Rarity scores how uncommon a word's letters are: the sum over its tile
// letters of (most common letter weight - letter weight). "qu" counts as one
// tile. Letters outside the tile table score as weight zero.
func Rarity(word string) float64 {
	highest := tile.MaxLetterWeight()
	total := 0.0
	for _, letter := range tile.SplitWord(word) {
		total += highest - tile.LetterWeight(letter)
	}
	return total
}

// Annotate reads one word per line (or whitespace separated) and writes the
// "word,rarity" lines Load expects. Words with non-letter characters or
// shorter than minLength are skipped. Returns the number of lines written.
func Annotate(r io.Reader, w io.Writer, minLength int) (int, error) {
	seen := make(map[string]bool)
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	bw := bufio.NewWriter(w)

	written := 0
	for scanner.Scan() {
		word := strings.ToLower(scanner.Text())
		if !isWord(word) || len(word) < minLength || seen[word] {
			continue
		}
		seen[word] = true
		if _, err := fmt.Fprintf(bw, "%s,%.2f\n", word, Rarity(word)); err != nil {
			return written, fmt.Errorf("dictionary: write failed: %w", err)
		}
		written++
	}
	if err := scanner.Err(); err != nil {
		return written, fmt.Errorf("dictionary: read failed: %w", err)
	}
	if err := bw.Flush(); err != nil {
		return written, fmt.Errorf("dictionary: write failed: %w", err)
	}
	return written, nil
}
