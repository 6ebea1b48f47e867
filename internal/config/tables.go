package config

import "fmt"

// RollTable maps submitted word lengths to the minimum die roll that creates
// a special tile. Lengths below MinLength never roll; lengths at or above
// CertainLength always succeed; lengths missing from Targets never succeed.
type RollTable struct {
	MinLength     int         `yaml:"min_length"`
	CertainLength int         `yaml:"certain_length"` // 0 disables the certainty band
	Targets       map[int]int `yaml:"targets"`
}

// Target returns the roll needed for a word of the given length.
// ok is false when the length can never produce a special tile;
// certain is true when no roll is needed.
func (t RollTable) Target(length int) (target int, ok, certain bool) {
	if length < t.MinLength {
		return 0, false, false
	}
	if t.CertainLength > 0 && length >= t.CertainLength {
		return 0, true, true
	}
	target, ok = t.Targets[length]
	return target, ok, false
}

// Chance returns the probability that a word of the given length
// produces a special tile when rolling a die with the given number of sides.
func (t RollTable) Chance(length, sides int) float64 {
	target, ok, certain := t.Target(length)
	switch {
	case !ok:
		return 0
	case certain:
		return 1
	case target > sides:
		return 0
	case target < 1:
		return 1
	default:
		return float64(sides-target+1) / float64(sides)
	}
}

func (t RollTable) validate(name string, sides int) error {
	if t.MinLength < 0 {
		return fmt.Errorf("%s.min_length must not be negative, got %d", name, t.MinLength)
	}
	if t.CertainLength > 0 && t.CertainLength < t.MinLength {
		return fmt.Errorf("%s.certain_length %d is below min_length %d", name, t.CertainLength, t.MinLength)
	}
	for length, target := range t.Targets {
		if target < 1 || target > sides {
			return fmt.Errorf("%s.targets[%d] = %d is outside 1..%d", name, length, target, sides)
		}
	}
	return nil
}
