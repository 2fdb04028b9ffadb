package strongid

import (
	"fmt"
	"math"
)

// MinStorageSize returns the minimum number of bits and bytes sufficient
// to hold the canonical integer of any identifier at the given level under
// the given configuration. It bounds the possible magnitude for codenames
// up to CodenameMaxLen; it is not the size of one particular identifier.
func MinStorageSize(level Level, config Config) (bits, bytes int, err error) {
	if err := config.Validate(); err != nil {
		return 0, 0, err
	}
	if !level.valid() {
		return 0, 0, fmt.Errorf("unknown level %d: %w", int(level), ErrInvalidLevel)
	}
	fbits := codenameBits(config.CodenameMaxLen)
	for _, digits := range config.segmentDigits(level) {
		fbits += float64(digits) * math.Log2(10)
	}
	bits = int(math.Ceil(fbits))
	bytes = (bits + 7) / 8
	return bits, bytes, nil
}

// codenameBits estimates log2 of the number of codenames no longer than
// maxLen. Small widths take the log of the exact enumeration count; from
// width 10 up the closed form (maxLen+1)*log2(26) - log2(25) keeps the
// count out of float range. The branches agree asymptotically but are not
// bit-identical at the crossover, so the estimate is documented as a
// sizing bound rather than an exact tight count.
func codenameBits(maxLen int) float64 {
	if maxLen < 10 {
		return math.Log2(float64(lengthOffset(maxLen + 1).Int64()))
	}
	return float64(maxLen+1)*math.Log2(26) - math.Log2(25)
}
