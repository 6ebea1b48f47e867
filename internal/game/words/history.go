package words

import (
	"github.com/shadowFAQs/textagons/internal/core"
	"github.com/shadowFAQs/textagons/internal/game/tile"
)

// Letter is one displayed letter of a recorded word.
type Letter struct {
	Text  string
	Color core.Color
}

// Record is a frozen snapshot of a submitted word.
type Record struct {
	Word    string
	Score   int
	Letters []Letter
}

// Empty reports whether nothing has been recorded.
func (r Record) Empty() bool {
	return r.Word == ""
}

// History keeps the longest and the highest scoring words of a game.
type History struct {
	Longest Record
	Best    Record
	Words   int // Accepted submissions
}

// Snapshot copies the tiles' letters and colors at submission time.
// Bonus words are shown in yellow; otherwise each letter takes its tile type color.
func Snapshot(tiles []*tile.Tile, isBonus bool) []Letter {
	out := make([]Letter, len(tiles))
	for i, t := range tiles {
		color := TypeColor(t.Type)
		if isBonus {
			color = core.ColorYellow
		}
		out[i] = Letter{Text: t.Display(), Color: color}
	}
	return out
}

// TypeColor returns the resting letter color for a tile type.
func TypeColor(t tile.Type) core.Color {
	switch t {
	case tile.Fire:
		return core.ColorRed
	case tile.Crystal:
		return core.ColorTeal
	default:
		return core.ColorLightGray
	}
}

// Add records an accepted word. A strictly longer word replaces the longest
// record and a strictly higher score replaces the best record; ties keep the
// earlier word.
func (h *History) Add(word string, score int, letters []Letter) (longest, best bool) {
	h.Words++
	rec := Record{Word: word, Score: score, Letters: append([]Letter(nil), letters...)}

	if len(word) > len(h.Longest.Word) {
		h.Longest = rec
		longest = true
	}
	if h.Best.Empty() || score > h.Best.Score {
		rec.Letters = append([]Letter(nil), letters...)
		h.Best = rec
		best = true
	}
	return longest, best
}

// Reset forgets every record.
func (h *History) Reset() {
	*h = History{}
}
