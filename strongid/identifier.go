package strongid

import (
	"fmt"
	"math/big"
)

// Identifier is an immutable hierarchical identifier value: an uppercase
// codename plus zero or more fixed-width decimal segments, together with
// the Config the widths came from.
//
// Identifiers are obtained from Parse, FromInteger or FromBytes and never
// mutated afterwards; derivation methods like Parent and Child return new
// values. The canonical integer is computed once at construction, so every
// accessor on a constructed Identifier is infallible (FixedBytes excepted,
// which can be asked for a length that is too short).
//
// Two Identifiers are equal iff their canonical strings and configurations
// are equal.
type Identifier struct {
	config     Config
	codename   string
	team       string
	stronghold string
	researcher string
	num        *big.Int
}

// newIdentifier assembles a value from already-validated parts. Segments
// are in nesting order and strictly nested: a present segment implies all
// shallower ones.
func newIdentifier(codename string, segments []string, config Config) (Identifier, error) {
	if len(segments) > len(Levels())-1 {
		return Identifier{}, fmt.Errorf("too many segments (%d): %w", len(segments), ErrInvalidLevel)
	}
	num, err := composeInteger(codename, segments, config.segmentDigits(Level(len(segments))))
	if err != nil {
		return Identifier{}, err
	}
	id := Identifier{config: config, codename: codename, num: num}
	if len(segments) > 0 {
		id.team = segments[0]
	}
	if len(segments) > 1 {
		id.stronghold = segments[1]
	}
	if len(segments) > 2 {
		id.researcher = segments[2]
	}
	return id, nil
}

// Parse builds an Identifier from its canonical text form.
// It returns ErrMalformedIdentifier when the text fails the grammar and
// ErrInvalidConfig when the configuration is unusable.
func Parse(text string, config Config) (Identifier, error) {
	if err := config.Validate(); err != nil {
		return Identifier{}, err
	}
	codename, segments, err := parseText(text, config)
	if err != nil {
		return Identifier{}, err
	}
	return newIdentifier(codename, segments, config)
}

// FromInteger builds the Identifier whose canonical integer is n at the
// given level. It returns ErrInvalidInteger for negative n and
// ErrInvalidLevel for an unrecognized level.
func FromInteger(n *big.Int, level Level, config Config) (Identifier, error) {
	if err := config.Validate(); err != nil {
		return Identifier{}, err
	}
	codename, segments, err := decomposeInteger(n, level, config)
	if err != nil {
		return Identifier{}, err
	}
	return newIdentifier(codename, segments, config)
}

// FromBytes builds an Identifier from a big-endian byte rendering of its
// canonical integer. Leading zero padding is ignored; empty input decodes
// as integer zero.
func FromBytes(data []byte, level Level, config Config) (Identifier, error) {
	return FromInteger(bigEndianInt(data), level, config)
}

// String returns the canonical text form
func (id Identifier) String() string {
	return printText(id.codename, id.segments())
}

// Integer returns a fresh copy of the canonical integer
func (id Identifier) Integer() *big.Int {
	return new(big.Int).Set(id.num)
}

// Bytes returns the canonical integer as big-endian bytes at its minimum
// length: the smallest byte count that holds the value, at least one byte.
func (id Identifier) Bytes() []byte {
	buf, _ := bigEndianBytes(id.num, minByteLen(id.num))
	return buf
}

// FixedBytes returns the canonical integer as exactly length big-endian
// bytes, left-zero-padded. It returns ErrInsufficientLength when length is
// smaller than the minimum Bytes would use.
func (id Identifier) FixedBytes(length int) ([]byte, error) {
	return bigEndianBytes(id.num, length)
}

// Level returns the tier the identifier addresses, derived from the
// deepest present segment.
func (id Identifier) Level() Level {
	switch {
	case id.researcher != "":
		return LevelResearcher
	case id.stronghold != "":
		return LevelStronghold
	case id.team != "":
		return LevelTeam
	default:
		return LevelTop
	}
}

// Codename returns the uppercase codename
func (id Identifier) Codename() string {
	return id.codename
}

// Team returns the team segment and whether it is present
func (id Identifier) Team() (string, bool) {
	return id.team, id.team != ""
}

// Stronghold returns the stronghold segment and whether it is present
func (id Identifier) Stronghold() (string, bool) {
	return id.stronghold, id.stronghold != ""
}

// Researcher returns the researcher segment and whether it is present
func (id Identifier) Researcher() (string, bool) {
	return id.researcher, id.researcher != ""
}

// Config returns the configuration the identifier was constructed under
func (id Identifier) Config() Config {
	return id.config
}

// Equal reports whether two identifiers have the same canonical string and
// the same configuration. The same text under different segment widths is
// a different identifier.
func (id Identifier) Equal(other Identifier) bool {
	return id.config == other.config && id.String() == other.String()
}

// MarshalText renders the canonical text form. It never fails; the
// signature satisfies encoding.TextMarshaler.
func (id Identifier) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// Parent returns the identifier one level up, dropping the deepest
// segment. It returns ErrInvalidLevel for a top-level identifier.
func (id Identifier) Parent() (Identifier, error) {
	segments := id.segments()
	if len(segments) == 0 {
		return Identifier{}, fmt.Errorf("top-level identifier %q has no parent: %w", id.String(), ErrInvalidLevel)
	}
	return newIdentifier(id.codename, segments[:len(segments)-1], id.config)
}

// Child returns the identifier one level down, with segment appended as
// the next tier. The segment must be a digit run of exactly the next
// tier's configured width; a researcher-level identifier has no children.
func (id Identifier) Child(segment string) (Identifier, error) {
	segments := id.segments()
	if len(segments) == len(Levels())-1 {
		return Identifier{}, fmt.Errorf("researcher-level identifier %q has no children: %w", id.String(), ErrInvalidLevel)
	}
	next := Level(len(segments) + 1)
	width := id.config.segmentDigits(next)[len(segments)]
	run, rest, err := takeDigitRun(segment, width, next.String())
	if err != nil {
		return Identifier{}, err
	}
	if rest != "" {
		return Identifier{}, fmt.Errorf("%s segment %q longer than %d digits: %w", next.String(), segment, width, ErrMalformedIdentifier)
	}
	return newIdentifier(id.codename, append(segments, run), id.config)
}

// IsAncestorOf reports whether other sits strictly below id in the same
// hierarchy: same configuration, same codename, and every segment of id
// matching the corresponding segment of other.
func (id Identifier) IsAncestorOf(other Identifier) bool {
	if id.config != other.config || id.codename != other.codename {
		return false
	}
	if id.Level() >= other.Level() {
		return false
	}
	mine, theirs := id.segments(), other.segments()
	for i, segment := range mine {
		if theirs[i] != segment {
			return false
		}
	}
	return true
}

// Compare orders identifiers by level depth, then by canonical integer.
// It is only meaningful between identifiers sharing a configuration.
func (id Identifier) Compare(other Identifier) int {
	if id.Level() != other.Level() {
		if id.Level() < other.Level() {
			return -1
		}
		return 1
	}
	return id.num.Cmp(other.num)
}

// segments returns the present segments in nesting order
func (id Identifier) segments() []string {
	var segments []string
	for _, segment := range []string{id.team, id.stronghold, id.researcher} {
		if segment == "" {
			break
		}
		segments = append(segments, segment)
	}
	return segments
}
