package strongid

import (
	"math/big"
	"testing"
)

func TestComposerBijectivePerLevel(t *testing.T) {
	config := DefaultConfig()

	// Encode(Decode(n, level)) == n for any non-negative n, at every level
	// independently: the power-of-10 radices keep segment ranges disjoint.
	samples := []*big.Int{
		big.NewInt(0),
		big.NewInt(1),
		big.NewInt(675),
		big.NewInt(676),
		big.NewInt(8255),
		big.NewInt(82552018),
		big.NewInt(8255201800121376),
	}
	huge, _ := new(big.Int).SetString("123456789012345678901234567890123456789012345678901234567890", 10)
	samples = append(samples, huge)

	for _, level := range Levels() {
		for _, n := range samples {
			codename, segments, err := decomposeInteger(n, level, config)
			if err != nil {
				t.Fatalf("decomposeInteger(%v, %v): unexpected error: %v", n, level, err)
			}
			back, err := composeInteger(codename, segments, config.segmentDigits(level))
			if err != nil {
				t.Fatalf("composeInteger(%q, %v): unexpected error: %v", codename, segments, err)
			}
			if back.Cmp(n) != 0 {
				t.Errorf("level %v: %v decomposed to (%q, %v), recomposed to %v", level, n, codename, segments, back)
			}
		}
	}
}

func TestDecomposePadsSegments(t *testing.T) {
	config := DefaultConfig()

	// 8255 * 10^4 + 7: a team value of 7 must render as "0007".
	n := new(big.Int).SetInt64(82550007)
	codename, segments, err := decomposeInteger(n, LevelTeam, config)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if codename != "LFN" {
		t.Errorf("codename: got %q, want %q", codename, "LFN")
	}
	if len(segments) != 1 || segments[0] != "0007" {
		t.Errorf("segments: got %v, want [0007]", segments)
	}
}

func TestSegmentRadix(t *testing.T) {
	tests := []struct {
		digits   int
		expected int64
	}{
		{1, 10},
		{3, 1000},
		{5, 100000},
	}

	for _, tt := range tests {
		if got := segmentRadix(tt.digits); got.Cmp(big.NewInt(tt.expected)) != 0 {
			t.Errorf("segmentRadix(%d): got %v, want %d", tt.digits, got, tt.expected)
		}
	}
}
