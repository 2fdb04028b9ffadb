package strongid

import (
	"fmt"
	"math/big"
)

// codenameMinLen is the shortest codename the scheme admits. The
// enumeration starts at length 2; single letters are not identifiers.
const codenameMinLen = 2

var (
	base26     = big.NewInt(26)
	pairCount  = big.NewInt(676) // 26^2, the number of length-2 codenames
	twentyFive = big.NewInt(25)
)

// lengthOffset returns how many codenames are strictly shorter than length:
// (26^length - 676) / 25. The closed form is exact for every length >= 2,
// including lengthOffset(2) == 0, so no branch is needed for the base case.
func lengthOffset(length int) *big.Int {
	offset := new(big.Int).Exp(base26, big.NewInt(int64(length)), nil)
	offset.Sub(offset, pairCount)
	return offset.Div(offset, twentyFive)
}

// encodeCodename maps a codename to its position in the bijective
// enumeration: all length-2 codenames in lexicographic order (AA=0 ...
// ZZ=675), then all length-3 (AAA=676), and so on with no gaps. Input is
// case-insensitive; the canonical form is uppercase.
func encodeCodename(codename string) (*big.Int, error) {
	if len(codename) < codenameMinLen {
		return nil, fmt.Errorf("codename %q shorter than %d letters: %w", codename, codenameMinLen, ErrInvalidCodename)
	}
	residual := new(big.Int)
	digit := new(big.Int)
	for i := 0; i < len(codename); i++ {
		c := codename[i]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		if c < 'A' || c > 'Z' {
			return nil, fmt.Errorf("codename %q contains non-alphabetic character %q: %w", codename, codename[i], ErrInvalidCodename)
		}
		digit.SetInt64(int64(c - 'A'))
		residual.Mul(residual, base26)
		residual.Add(residual, digit)
	}
	return residual.Add(residual, lengthOffset(len(codename))), nil
}

// decodeCodename recovers the codename at position n in the enumeration.
// The length bucket is found by searching upward from 2; the residual
// within the bucket is read out as exactly that many base-26 digits,
// left-padded with A (digit zero) when the residual is small.
func decodeCodename(n *big.Int) (string, error) {
	if n == nil || n.Sign() < 0 {
		return "", fmt.Errorf("codename integer must be non-negative, got %v: %w", n, ErrInvalidCodename)
	}
	length := codenameMinLen
	for lengthOffset(length+1).Cmp(n) <= 0 {
		length++
	}
	residual := new(big.Int).Sub(n, lengthOffset(length))
	mod := new(big.Int)
	buf := make([]byte, length)
	for i := length - 1; i >= 0; i-- {
		residual.DivMod(residual, base26, mod)
		buf[i] = byte('A' + mod.Int64())
	}
	return string(buf), nil
}
