package strongid

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config defines the segment widths of the identifier scheme.
//
// The three digit widths fix the exact length of each decimal segment.
// CodenameMaxLen bounds codename length for storage sizing only; parsing
// accepts codenames of any length regardless of this value.
//
// A Config is copied into every Identifier it constructs and takes part in
// identifier equality: the same text parsed under different widths yields
// different identifiers.
type Config struct {
	// TeamDigits is the decimal-digit width of the team segment
	TeamDigits int `yaml:"team_digits"`

	// StrongholdDigits is the decimal-digit width of the stronghold segment
	StrongholdDigits int `yaml:"stronghold_digits"`

	// ResearcherDigits is the decimal-digit width of the researcher segment
	ResearcherDigits int `yaml:"researcher_digits"`

	// CodenameMaxLen is the longest codename the storage estimator sizes
	// for. It is not enforced by parsing.
	CodenameMaxLen int `yaml:"codename_max_len"`
}

// DefaultConfig returns the widths used by the original scheme
func DefaultConfig() Config {
	return Config{
		TeamDigits:       4,
		StrongholdDigits: 3,
		ResearcherDigits: 5,
		CodenameMaxLen:   3,
	}
}

// Validate checks the configuration for consistency.
// Every factory validates eagerly, so a constructed Identifier always
// carries a valid Config.
func (c Config) Validate() error {
	if c.TeamDigits < 1 {
		return fmt.Errorf("team_digits must be positive, got %d: %w", c.TeamDigits, ErrInvalidConfig)
	}
	if c.StrongholdDigits < 1 {
		return fmt.Errorf("stronghold_digits must be positive, got %d: %w", c.StrongholdDigits, ErrInvalidConfig)
	}
	if c.ResearcherDigits < 1 {
		return fmt.Errorf("researcher_digits must be positive, got %d: %w", c.ResearcherDigits, ErrInvalidConfig)
	}
	if c.CodenameMaxLen < 2 {
		return fmt.Errorf("codename_max_len must be at least 2, got %d: %w", c.CodenameMaxLen, ErrInvalidConfig)
	}
	return nil
}

// segmentDigits returns the digit width of each segment at or above level,
// shallowest first. LevelTop has no segments.
func (c Config) segmentDigits(level Level) []int {
	widths := []int{c.TeamDigits, c.StrongholdDigits, c.ResearcherDigits}
	return widths[:int(level)]
}

// LoadConfig reads a YAML config file. Keys missing from the file keep
// their default values; the merged result is validated before returning.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	config := DefaultConfig()
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}
