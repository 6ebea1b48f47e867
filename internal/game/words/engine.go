// Package words validates and scores submitted words and runs the bonus
// word ratchet.
package words

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/shadowFAQs/textagons/internal/config"
	"github.com/shadowFAQs/textagons/internal/game/tile"
)

// ErrNoBonusWord is returned when no dictionary word qualifies as the next
// bonus word. The game cannot continue past it.
var ErrNoBonusWord = errors.New("words: no bonus word available")

// Dictionary is the word source the engine needs.
type Dictionary interface {
	Contains(word string) bool
	Candidates(length int, minRarity float64) []string
	CheckCoverage(from int, thresholds []float64) error
}

// Engine validates words, scores them and tracks the current bonus word.
type Engine struct {
	dict        Dictionary
	cfg         config.WordsConfig
	rng         *rand.Rand
	bonus       string
	bonusLength int
}

// NewEngine builds an engine and checks up front that the dictionary has a
// bonus candidate for every length the ratchet can reach.
func NewEngine(dict Dictionary, cfg config.WordsConfig, rng *rand.Rand) (*Engine, error) {
	if err := dict.CheckCoverage(cfg.BaseBonusLength, cfg.RarityThresholds); err != nil {
		return nil, fmt.Errorf("words: dictionary cannot supply bonus words: %w", err)
	}
	e := &Engine{dict: dict, cfg: cfg, rng: rng}
	e.ResetBonus()
	return e, nil
}

// Validate reports whether the word is in the dictionary, ignoring case.
func (e *Engine) Validate(word string) bool {
	return e.dict.Contains(word)
}

// Score returns sum(values) * tile count * mult.
func Score(tiles []*tile.Tile, mult int) int {
	sum := 0
	for _, t := range tiles {
		sum += t.Value
	}
	return sum * len(tiles) * mult
}

// Bonus returns the current bonus word, uppercase. Empty until the first
// ChooseNewBonusWord.
func (e *Engine) Bonus() string {
	return e.bonus
}

// BonusLength returns the length of the current bonus word.
func (e *Engine) BonusLength() int {
	return e.bonusLength
}

// IsBonus reports whether word is the current bonus word.
func (e *Engine) IsBonus(word string) bool {
	return e.bonus != "" && strings.EqualFold(word, e.bonus)
}

// Multiplier returns the score multiplier earned by submitting word.
func (e *Engine) Multiplier(word string) int {
	if e.IsBonus(word) {
		return e.cfg.BonusMultiplier
	}
	return 1
}

// ResetBonus rewinds the ratchet so the next bonus word has the base length.
func (e *Engine) ResetBonus() {
	e.bonus = ""
	e.bonusLength = e.cfg.BaseBonusLength - 1
}

// ChooseNewBonusWord advances the ratchet by one letter and picks a random
// word of that length whose rarity is above the length's threshold.
func (e *Engine) ChooseNewBonusWord() (string, error) {
	length := e.bonusLength + 1
	if length >= len(e.cfg.RarityThresholds) {
		return "", fmt.Errorf("%w: no rarity threshold for length %d", ErrNoBonusWord, length)
	}
	pool := e.dict.Candidates(length, e.cfg.RarityThresholds[length])
	if len(pool) == 0 {
		return "", fmt.Errorf("%w: no candidates of length %d", ErrNoBonusWord, length)
	}

	e.bonusLength = length
	e.bonus = strings.ToUpper(pool[e.rng.Intn(len(pool))])
	return e.bonus, nil
}
