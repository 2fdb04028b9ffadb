package strongid

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	t.Run("defaults are valid", func(t *testing.T) {
		if err := DefaultConfig().Validate(); err != nil {
			t.Errorf("DefaultConfig().Validate(): unexpected error: %v", err)
		}
	})

	t.Run("rejects bad widths", func(t *testing.T) {
		tests := []struct {
			name   string
			mutate func(*Config)
		}{
			{"zero team digits", func(c *Config) { c.TeamDigits = 0 }},
			{"negative stronghold digits", func(c *Config) { c.StrongholdDigits = -1 }},
			{"zero researcher digits", func(c *Config) { c.ResearcherDigits = 0 }},
			{"codename budget below 2", func(c *Config) { c.CodenameMaxLen = 1 }},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				config := DefaultConfig()
				tt.mutate(&config)
				if err := config.Validate(); !errors.Is(err, ErrInvalidConfig) {
					t.Errorf("Validate(): got %v, want ErrInvalidConfig", err)
				}
			})
		}
	})
}

func TestSegmentDigits(t *testing.T) {
	config := DefaultConfig()
	tests := []struct {
		level    Level
		expected []int
	}{
		{LevelTop, nil},
		{LevelTeam, []int{4}},
		{LevelStronghold, []int{4, 3}},
		{LevelResearcher, []int{4, 3, 5}},
	}

	for _, tt := range tests {
		got := config.segmentDigits(tt.level)
		if len(got) != len(tt.expected) {
			t.Errorf("segmentDigits(%v): got %v, want %v", tt.level, got, tt.expected)
			continue
		}
		for i := range got {
			if got[i] != tt.expected[i] {
				t.Errorf("segmentDigits(%v): got %v, want %v", tt.level, got, tt.expected)
			}
		}
	}
}

func TestLoadConfig(t *testing.T) {
	writeConfig := func(t *testing.T, content string) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), "strongid.yaml")
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("writing config: %v", err)
		}
		return path
	}

	t.Run("full file", func(t *testing.T) {
		path := writeConfig(t, "team_digits: 6\nstronghold_digits: 2\nresearcher_digits: 8\ncodename_max_len: 5\n")
		config, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := Config{TeamDigits: 6, StrongholdDigits: 2, ResearcherDigits: 8, CodenameMaxLen: 5}
		if config != want {
			t.Errorf("got %+v, want %+v", config, want)
		}
	})

	t.Run("missing keys keep defaults", func(t *testing.T) {
		path := writeConfig(t, "team_digits: 6\n")
		config, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := DefaultConfig()
		want.TeamDigits = 6
		if config != want {
			t.Errorf("got %+v, want %+v", config, want)
		}
	})

	t.Run("invalid values are rejected", func(t *testing.T) {
		path := writeConfig(t, "codename_max_len: 1\n")
		if _, err := LoadConfig(path); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("got %v, want ErrInvalidConfig", err)
		}
	})

	t.Run("unreadable file", func(t *testing.T) {
		if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
			t.Error("expected an error for a missing file")
		}
	})

	t.Run("bad yaml", func(t *testing.T) {
		path := writeConfig(t, "team_digits: [nope\n")
		if _, err := LoadConfig(path); err == nil {
			t.Error("expected an error for malformed yaml")
		}
	})
}
