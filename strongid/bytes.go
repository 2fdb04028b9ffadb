package strongid

import (
	"fmt"
	"math/big"
)

// minByteLen returns the smallest number of bytes that holds n, at least
// one byte even for zero.
func minByteLen(n *big.Int) int {
	if n.Sign() == 0 {
		return 1
	}
	return (n.BitLen() + 7) / 8
}

// bigEndianBytes renders n as exactly length big-endian bytes,
// left-zero-padded.
func bigEndianBytes(n *big.Int, length int) ([]byte, error) {
	if min := minByteLen(n); length < min {
		return nil, fmt.Errorf("%d bytes cannot hold a %d-byte value: %w", length, min, ErrInsufficientLength)
	}
	buf := make([]byte, length)
	n.FillBytes(buf)
	return buf, nil
}

// bigEndianInt interprets data as a big-endian non-negative integer.
// Leading zero bytes and empty input are fine; empty decodes as zero.
func bigEndianInt(data []byte) *big.Int {
	return new(big.Int).SetBytes(data)
}
