package strongid

import "fmt"

// Level identifies which of the four nested tiers an identifier addresses.
// The deepest present segment determines the level.
type Level int

const (
	// LevelTop is a bare codename with no decimal segments.
	LevelTop Level = iota
	// LevelTeam adds the team segment.
	LevelTeam
	// LevelStronghold adds the stronghold segment.
	LevelStronghold
	// LevelResearcher adds the researcher segment.
	LevelResearcher
)

// String returns the string tag of the Level
func (l Level) String() string {
	switch l {
	case LevelTop:
		return "top"
	case LevelTeam:
		return "team"
	case LevelStronghold:
		return "stronghold"
	case LevelResearcher:
		return "researcher"
	default:
		return "unknown"
	}
}

// ParseLevel parses a level tag like "team" into a Level
func ParseLevel(tag string) (Level, error) {
	switch tag {
	case "top":
		return LevelTop, nil
	case "team":
		return LevelTeam, nil
	case "stronghold":
		return LevelStronghold, nil
	case "researcher":
		return LevelResearcher, nil
	default:
		return 0, fmt.Errorf("unknown level tag %q: %w", tag, ErrInvalidLevel)
	}
}

// Levels returns all levels in nesting order, shallowest first
func Levels() []Level {
	return []Level{LevelTop, LevelTeam, LevelStronghold, LevelResearcher}
}

// valid reports whether l is one of the four defined levels
func (l Level) valid() bool {
	return l >= LevelTop && l <= LevelResearcher
}
