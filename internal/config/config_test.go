package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("embedded defaults differ from Default():\n%+v\nvs\n%+v", cfg, Default())
	}
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
}

func TestParsePartialOverride(t *testing.T) {
	cfg, err := Parse([]byte("board:\n  columns: 9\nspecials:\n  fire:\n    targets:\n      3: 10\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if cfg.Board.Columns != 9 {
		t.Errorf("Columns = %d, expected 9", cfg.Board.Columns)
	}
	if cfg.Board.Rows != 7 {
		t.Errorf("Rows = %d, expected default 7", cfg.Board.Rows)
	}
	if len(cfg.Specials.Fire.Targets) != 1 || cfg.Specials.Fire.Targets[3] != 10 {
		t.Errorf("Fire targets = %v, expected only {3: 10}", cfg.Specials.Fire.Targets)
	}
	if cfg.Specials.Crystal.Targets[5] != 13 {
		t.Errorf("Crystal targets should keep defaults, got %v", cfg.Specials.Crystal.Targets)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"no columns", func(c *Config) { c.Board.Columns = 0 }, "board.columns"},
		{"overlap too big", func(c *Config) { c.Board.RowOverlap = 64 }, "overlaps"},
		{"zero acceleration", func(c *Config) { c.Physics.FallAcceleration = 0 }, "fall_acceleration"},
		{"roll target above die", func(c *Config) { c.Specials.Fire.Targets[3] = 21 }, "specials.fire.targets[3]"},
		{"scramble chance above one", func(c *Config) { c.Specials.ScrambleFireChance = 1.5 }, "scramble_fire_chance"},
		{"thresholds too short", func(c *Config) { c.Words.RarityThresholds = []float64{0, 0} }, "rarity_thresholds"},
		{"narrow current word", func(c *Config) { c.UI.CurrentWordWidth = 3 }, "current_word_width"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() should fail")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("Validate() = %q, expected mention of %q", err, tc.want)
			}
		})
	}
}

func TestRollTableChance(t *testing.T) {
	cfg := Default()
	crystal := cfg.Specials.Crystal
	fire := cfg.Specials.Fire

	tests := []struct {
		name   string
		table  RollTable
		length int
		want   float64
	}{
		{"crystal below floor", crystal, 4, 0},
		{"crystal five letters", crystal, 5, 0.4},
		{"crystal six letters", crystal, 6, 0.7},
		{"crystal seven letters", crystal, 7, 1},
		{"crystal nine letters", crystal, 9, 1},
		{"fire three letters", fire, 3, 0.85},
		{"fire four letters", fire, 4, 0.2},
		{"fire five letters", fire, 5, 0.05},
		{"fire six letters", fire, 6, 0},
		{"fire two letters", fire, 2, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.table.Chance(tc.length, cfg.Specials.RollSides)
			if diff := got - tc.want; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("Chance(%d) = %f, expected %f", tc.length, got, tc.want)
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("words:\n  bonus_multiplier: 5\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s) failed: %v", path, err)
	}
	if cfg.Words.BonusMultiplier != 5 {
		t.Errorf("BonusMultiplier = %d, expected 5", cfg.Words.BonusMultiplier)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load should fail for a missing custom config")
	}
}

func TestLoadInvalidCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("board:\n  columns: -1\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load should reject an invalid config")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(Default())
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse(Marshal(Default())) failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Error("marshalled defaults should parse back to Default()")
	}
}
