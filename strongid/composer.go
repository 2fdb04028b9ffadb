package strongid

import (
	"fmt"
	"math/big"
)

var base10 = big.NewInt(10)

// segmentRadix returns 10^digits, the radix a segment of the given width
// occupies in the mixed-radix composition.
func segmentRadix(digits int) *big.Int {
	return new(big.Int).Exp(base10, big.NewInt(int64(digits)), nil)
}

// composeInteger packs a codename and its decimal segments into the single
// canonical integer. The codename integer is the outermost field; each
// present segment in nesting order multiplies the accumulator by its
// power-of-10 radix and adds its own value. Segments must already be
// digit runs of exactly their configured widths.
func composeInteger(codename string, segments []string, widths []int) (*big.Int, error) {
	acc, err := encodeCodename(codename)
	if err != nil {
		return nil, err
	}
	for i, segment := range segments {
		value, ok := new(big.Int).SetString(segment, 10)
		if !ok || value.Sign() < 0 {
			return nil, fmt.Errorf("segment %q is not an unsigned decimal: %w", segment, ErrMalformedIdentifier)
		}
		acc.Mul(acc, segmentRadix(widths[i]))
		acc.Add(acc, value)
	}
	return acc, nil
}

// decomposeInteger splits a canonical integer back into a codename and the
// segments the level requires, deepest segment first: each pass takes the
// value modulo the segment's radix and renders it zero-left-padded to the
// configured width; whatever remains after the last segment is the
// codename integer.
func decomposeInteger(n *big.Int, level Level, config Config) (string, []string, error) {
	if !level.valid() {
		return "", nil, fmt.Errorf("unknown level %d: %w", int(level), ErrInvalidLevel)
	}
	if n == nil || n.Sign() < 0 {
		return "", nil, fmt.Errorf("canonical integer must be non-negative, got %v: %w", n, ErrInvalidInteger)
	}
	widths := config.segmentDigits(level)
	segments := make([]string, len(widths))
	rest := new(big.Int).Set(n)
	mod := new(big.Int)
	for i := len(widths) - 1; i >= 0; i-- {
		rest.DivMod(rest, segmentRadix(widths[i]), mod)
		segments[i] = fmt.Sprintf("%0*d", widths[i], mod)
	}
	codename, err := decodeCodename(rest)
	if err != nil {
		return "", nil, err
	}
	return codename, segments, nil
}
