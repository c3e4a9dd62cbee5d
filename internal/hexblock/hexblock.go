// Package hexblock renders big integers as quoted, backslash-continued blocks of
// fixed-width hex lines, suitable for pasting into source as a big-integer literal.
package hexblock

import (
	"errors"
	"fmt"
	"io"
	"math/big"
	"strings"
	"unicode/utf8"
)

var (
	ErrInvalidLayout  = errors.New("invalid layout")
	ErrNegative       = errors.New("negative number")
	ErrMalformedBlock = errors.New("malformed hex block")
)

// Layout controls how many bits of the number go on each line and how far
// the block is indented.
type Layout struct {
	LineBits int `json:"lineBits" mapstructure:"line_bits"`
	Indent   int `json:"indent"   mapstructure:"indent"`
}

var DefaultLayout = Layout{LineBits: 256, Indent: 12}

func (l Layout) Validate() error {
	if l.LineBits <= 0 || l.LineBits%4 != 0 {
		return fmt.Errorf("%w: line bits %d must be a positive multiple of 4", ErrInvalidLayout, l.LineBits)
	}
	if l.Indent < 0 {
		return fmt.Errorf("%w: indent %d is negative", ErrInvalidLayout, l.Indent)
	}
	return nil
}

// CharsPerLine is the number of hex digits on every line but the first.
func (l Layout) CharsPerLine() int { return l.LineBits / 4 }

// Hex returns the uppercase base-16 digits of n with no prefix or padding.
func Hex(n *big.Int) string {
	return strings.ToUpper(n.Text(16))
}

// Chunks splits s so that the first chunk takes the remainder and every
// following chunk is exactly charsPerLine long.
func Chunks(s string, charsPerLine int) []string {
	if s == "" || charsPerLine <= 0 {
		return nil
	}
	first := (len(s)-1)%charsPerLine + 1
	out := make([]string, 0, 1+(len(s)-first)/charsPerLine)
	out = append(out, s[:first])
	for i := first; i < len(s); i += charsPerLine {
		out = append(out, s[i:i+charsPerLine])
	}
	return out
}

// Format renders n as a block without a trailing newline.
//
// The first chunk is right-aligned against a column of CharsPerLine digits with
// the opening quote placed immediately before it. Continuation lines are
// indented one space deeper than the first.
func (l Layout) Format(n *big.Int) (string, error) {
	if err := l.Validate(); err != nil {
		return "", err
	}
	if n == nil {
		return "", fmt.Errorf("format: nil number")
	}
	if n.Sign() < 0 {
		return "", fmt.Errorf("format %s: %w", n.String(), ErrNegative)
	}

	width := l.CharsPerLine()
	chunks := Chunks(Hex(n), width)
	sep := "\\\n" + strings.Repeat(" ", l.Indent+1)

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", l.Indent))
	b.WriteString(strings.Repeat(" ", width-len(chunks[0])))
	b.WriteByte('"')
	b.WriteString(strings.Join(chunks, sep))
	b.WriteByte('"')
	return b.String(), nil
}

// Fprint writes the formatted block for n followed by a newline.
func (l Layout) Fprint(w io.Writer, n *big.Int) error {
	s, err := l.Format(n)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, s+"\n")
	return err
}

// Parse decodes a block produced by Format, or any continued string literal of
// hex digits, back into an integer. Whitespace, quotes and continuation
// backslashes are ignored.
func Parse(block string) (*big.Int, error) {
	digits := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\r', '\n', '"', '\\':
			return -1
		}
		return r
	}, block)
	if digits == "" {
		return nil, fmt.Errorf("%w: no digits", ErrMalformedBlock)
	}
	// SetString would also accept a sign.
	if i := strings.IndexFunc(digits, func(r rune) bool { return !isHexDigit(r) }); i >= 0 {
		r, _ := utf8.DecodeRuneInString(digits[i:])
		return nil, fmt.Errorf("%w: unexpected %q at offset %d", ErrMalformedBlock, r, i)
	}
	n, ok := new(big.Int).SetString(digits, 16)
	if !ok {
		return nil, fmt.Errorf("%w: %q is not hexadecimal", ErrMalformedBlock, digits)
	}
	return n, nil
}

func isHexDigit(r rune) bool {
	return '0' <= r && r <= '9' || 'a' <= r && r <= 'f' || 'A' <= r && r <= 'F'
}
