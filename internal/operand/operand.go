// Package operand draws random non-negative big integers for test vectors.
// Values are not suitable for cryptographic use.
package operand

import (
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"math/big"
	"math/rand"
)

var ErrInvalidBits = errors.New("bits must be at least 1")

// Generator draws integers from an injected source so runs can be replayed.
type Generator struct {
	r *rand.Rand
}

func NewGenerator(r *rand.Rand) *Generator { return &Generator{r: r} }

func NewSeeded(seed int64) *Generator {
	return NewGenerator(rand.New(rand.NewSource(seed)))
}

// NewRandom seeds a generator from the OS entropy pool and returns the seed
// so that the run can be reproduced with NewSeeded.
func NewRandom() (*Generator, int64, error) {
	seed, err := RandomSeed()
	if err != nil {
		return nil, 0, err
	}
	return NewSeeded(seed), seed, nil
}

// RandomSeed returns a non-zero seed read from crypto/rand.
func RandomSeed() (int64, error) {
	var b [8]byte
	for {
		if _, err := crand.Read(b[:]); err != nil {
			return 0, fmt.Errorf("read seed: %w", err)
		}
		// zero means "pick one for me" to callers
		if s := int64(binary.LittleEndian.Uint64(b[:]) >> 1); s != 0 {
			return s, nil
		}
	}
}

// UpperBound is the inclusive maximum Int can return for bits: 2^bits + 1.
func UpperBound(bits int) *big.Int {
	b := new(big.Int).Lsh(big.NewInt(1), uint(bits))
	return b.Add(b, big.NewInt(1))
}

// Int returns a uniformly distributed integer in [0, 2^bits + 1].
//
// The range holds 2^bits + 2 values, two more than a bits-wide unsigned
// integer can represent.
func (g *Generator) Int(bits int) (*big.Int, error) {
	if bits < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidBits, bits)
	}
	n := UpperBound(bits)
	n.Add(n, big.NewInt(1))
	return new(big.Int).Rand(g.r, n), nil
}
