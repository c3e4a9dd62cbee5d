package operand

import (
	"errors"
	"math/big"
	"testing"
)

func TestInt_StaysWithinInclusiveBound(t *testing.T) {
	g := NewSeeded(1729)
	hi := UpperBound(1020)
	for i := 0; i < 200; i++ {
		n, err := g.Int(1020)
		if err != nil {
			t.Fatalf("Int error: %v", err)
		}
		if n.Sign() < 0 || n.Cmp(hi) > 0 {
			t.Fatalf("value %s outside [0, 2^1020+1]", n.Text(16))
		}
	}
}

func TestInt_SmallRangeCoversEveryValue(t *testing.T) {
	// bits=1 gives [0, 3], wider than a plain 1-bit draw.
	g := NewSeeded(7)
	seen := map[int64]bool{}
	for i := 0; i < 1000 && len(seen) < 4; i++ {
		n, err := g.Int(1)
		if err != nil {
			t.Fatalf("Int error: %v", err)
		}
		if !n.IsInt64() || n.Int64() < 0 || n.Int64() > 3 {
			t.Fatalf("value %s outside [0, 3]", n)
		}
		seen[n.Int64()] = true
	}
	for v := int64(0); v <= 3; v++ {
		if !seen[v] {
			t.Fatalf("value %d never drawn; seen %v", v, seen)
		}
	}
}

func TestNewSeeded_IsDeterministic(t *testing.T) {
	a, b := NewSeeded(99), NewSeeded(99)
	for i := 0; i < 10; i++ {
		x, _ := a.Int(512)
		y, _ := b.Int(512)
		if x.Cmp(y) != 0 {
			t.Fatalf("draw %d differs: %s vs %s", i, x.Text(16), y.Text(16))
		}
	}
}

func TestInt_RejectsNonPositiveBits(t *testing.T) {
	g := NewSeeded(1)
	for _, bits := range []int{0, -1, -1020} {
		if _, err := g.Int(bits); !errors.Is(err, ErrInvalidBits) {
			t.Fatalf("Int(%d) = %v, want ErrInvalidBits", bits, err)
		}
	}
}

func TestUpperBound(t *testing.T) {
	if got := UpperBound(4); got.Cmp(big.NewInt(17)) != 0 {
		t.Fatalf("UpperBound(4) = %s, want 17", got)
	}
}

func TestNewRandom_ReturnsReplayableSeed(t *testing.T) {
	g, seed, err := NewRandom()
	if err != nil {
		t.Fatalf("NewRandom error: %v", err)
	}
	if seed == 0 {
		t.Fatalf("seed is zero")
	}
	x, _ := g.Int(256)
	y, _ := NewSeeded(seed).Int(256)
	if x.Cmp(y) != 0 {
		t.Fatalf("replay with seed %d gave %s, want %s", seed, y.Text(16), x.Text(16))
	}
}
