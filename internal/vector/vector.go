package vector

import (
	"errors"
	"fmt"
	"io"
	"math/big"
	"strings"

	"github.com/TwigBush/hexvec/internal/hexblock"
	"github.com/TwigBush/hexvec/internal/operand"
)

var ErrProductMismatch = errors.New("product does not match operands")

// Vector is one multiplication test case.
type Vector struct {
	A       *big.Int
	B       *big.Int
	Product *big.Int
}

// New draws A then B from g and multiplies them.
func New(g *operand.Generator, bits int) (Vector, error) {
	a, err := g.Int(bits)
	if err != nil {
		return Vector{}, fmt.Errorf("operand a: %w", err)
	}
	b, err := g.Int(bits)
	if err != nil {
		return Vector{}, fmt.Errorf("operand b: %w", err)
	}
	return Vector{A: a, B: b, Product: new(big.Int).Mul(a, b)}, nil
}

// Values returns the vector in print order.
func (v Vector) Values() []*big.Int { return []*big.Int{v.A, v.B, v.Product} }

func (v Vector) Check() error {
	if v.A == nil || v.B == nil || v.Product == nil {
		return fmt.Errorf("%w: incomplete vector", ErrProductMismatch)
	}
	if want := new(big.Int).Mul(v.A, v.B); want.Cmp(v.Product) != 0 {
		return fmt.Errorf("%w: got %s, want %s", ErrProductMismatch, hexblock.Hex(v.Product), hexblock.Hex(want))
	}
	return nil
}

// Write prints A, B and the product as blocks, one per line group.
func Write(w io.Writer, v Vector, l hexblock.Layout) error {
	for _, n := range v.Values() {
		if err := l.Fprint(w, n); err != nil {
			return err
		}
	}
	return nil
}

// Read decodes three consecutive blocks as printed by Write.
func Read(text string) (Vector, error) {
	blocks := splitBlocks(text)
	if len(blocks) != 3 {
		return Vector{}, fmt.Errorf("%w: want 3 blocks, found %d", hexblock.ErrMalformedBlock, len(blocks))
	}
	var vals [3]*big.Int
	for i, b := range blocks {
		n, err := hexblock.Parse(b)
		if err != nil {
			return Vector{}, fmt.Errorf("block %d: %w", i, err)
		}
		vals[i] = n
	}
	return Vector{A: vals[0], B: vals[1], Product: vals[2]}, nil
}

// splitBlocks groups lines into blocks; a line ending in a backslash
// continues the current block.
func splitBlocks(text string) []string {
	var blocks []string
	var cur strings.Builder
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, " \t\r")
		if line == "" && cur.Len() == 0 {
			continue
		}
		cur.WriteString(line)
		cur.WriteByte('\n')
		if !strings.HasSuffix(line, "\\") {
			blocks = append(blocks, cur.String())
			cur.Reset()
		}
	}
	if cur.Len() > 0 {
		blocks = append(blocks, cur.String())
	}
	return blocks
}
