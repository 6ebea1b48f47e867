package tile

import (
	"math/rand"
	"strings"
)

// Digraph is the two-letter tile that is played as a single unit.
const Digraph = "QU"

// letterWeights is the draw frequency of every tile letter.
// Vowels and common consonants dominate; rare letters sit at 0.01.
var letterWeights = []struct {
	Letter string
	Weight float64
}{
	{"A", 0.09}, {"B", 0.02}, {"C", 0.02}, {"D", 0.04}, {"E", 0.12},
	{"F", 0.02}, {"G", 0.03}, {"H", 0.02}, {"I", 0.09}, {"J", 0.01},
	{"K", 0.01}, {"L", 0.04}, {"M", 0.03}, {"N", 0.06}, {"O", 0.08},
	{"P", 0.02}, {Digraph, 0.01}, {"R", 0.06}, {"S", 0.05}, {"T", 0.06},
	{"U", 0.04}, {"V", 0.02}, {"W", 0.02}, {"X", 0.01}, {"Y", 0.02},
	{"Z", 0.01},
}

// cumulativeWeights holds the running sums of letterWeights.
var cumulativeWeights = func() []float64 {
	weights := make([]float64, len(letterWeights))
	for i, lw := range letterWeights {
		weights[i] = lw.Weight
	}
	return cumulate(weights)
}()

func init() {
	if cumulativeWeights[len(cumulativeWeights)-1] <= 0 {
		panic("tile: letter weights must have a positive sum")
	}
}

// Letters returns every tile letter in table order.
func Letters() []string {
	out := make([]string, len(letterWeights))
	for i, lw := range letterWeights {
		out[i] = lw.Letter
	}
	return out
}

// LetterWeight returns the draw weight of a letter, or 0 if it is not a tile letter.
func LetterWeight(letter string) float64 {
	letter = strings.ToUpper(letter)
	for _, lw := range letterWeights {
		if lw.Letter == letter {
			return lw.Weight
		}
	}
	return 0
}

// MaxLetterWeight returns the weight of the most common letter.
func MaxLetterWeight() float64 {
	highest := 0.0
	for _, lw := range letterWeights {
		highest = max(highest, lw.Weight)
	}
	return highest
}

// ChooseLetter draws a random letter using the frequency table.
func ChooseLetter(rng *rand.Rand) string {
	return letterWeights[pickCumulative(rng, cumulativeWeights)].Letter
}

// cumulate returns running sums of weights. Negative weights count as zero.
func cumulate(weights []float64) []float64 {
	out := make([]float64, len(weights))
	total := 0.0
	for i, w := range weights {
		if w > 0 {
			total += w
		}
		out[i] = total
	}
	return out
}

// pickCumulative samples an index from cumulative weights.
// An entry whose weight is zero spans an empty interval and is never chosen.
func pickCumulative(rng *rand.Rand, cumulative []float64) int {
	total := cumulative[len(cumulative)-1]
	r := rng.Float64() * total
	for i, c := range cumulative {
		if r < c {
			return i
		}
	}
	// r == total only through rounding; fall back to the last non-empty entry
	for i := len(cumulative) - 1; i > 0; i-- {
		if cumulative[i] > cumulative[i-1] {
			return i
		}
	}
	return 0
}

// ValueForLetter returns the point value of a letter for a tile type.
// Crystal tiles are worth double; fire tiles are always worth nothing.
func ValueForLetter(letter string, t Type) int {
	var base int
	switch strings.ToUpper(letter) {
	case "A", "E", "I", "L", "N", "O", "R", "S", "T", "U":
		base = 1
	case "D", "G":
		base = 2
	case "B", "C", "M", "P":
		base = 3
	case "F", "H", "V", "W", "Y":
		base = 4
	case "K":
		base = 5
	case "J", "X":
		base = 8
	default:
		base = 10
	}
	return base * t.Multiplier()
}

// SplitWord breaks a word into tile letters, reading "QU" as one unit.
func SplitWord(word string) []string {
	word = strings.ToUpper(word)
	var out []string
	for i := 0; i < len(word); i++ {
		if strings.HasPrefix(word[i:], Digraph) {
			out = append(out, Digraph)
			i++
			continue
		}
		out = append(out, word[i:i+1])
	}
	return out
}
