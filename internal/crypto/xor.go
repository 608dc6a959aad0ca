package crypto

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"
)

// XORBytes returns a XOR b. Both slices must have the same length.
func XORBytes(a, b []byte) ([]byte, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("%w: xor operands are %d and %d bytes", ErrInvalidLength, len(a), len(b))
	}
	out := make([]byte, len(a))
	for i := range a {
		out[i] = a[i] ^ b[i]
	}
	return out, nil
}

// Operand is a hex input decoded both as bytes and as a big-endian integer.
type Operand struct {
	Bytes []byte
	Int   *big.Int
}

// ParseHex decodes even-length hex text, with an optional 0x prefix.
func ParseHex(field, s string) (*Operand, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if s == "" {
		return nil, fmt.Errorf("%w: %s is empty", ErrParse, field)
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrParse, field, err)
	}
	return &Operand{Bytes: b, Int: new(big.Int).SetBytes(b)}, nil
}

// Recovery holds the derived XOR key and the value it uncovers.
type Recovery struct {
	Key       *big.Int
	Recovered *big.Int
	// Widths are the decoded byte lengths of the three operands, in
	// argument order.
	Widths [3]int
}

// RecoverXOR computes key = a ^ b and recovered = c ^ key over big-endian
// integers. c is the filler text read directly as hex digits.
func RecoverXOR(hexA, hexB, hexC string) (*Recovery, error) {
	a, err := ParseHex("flag key", hexA)
	if err != nil { return nil, err }
	b, err := ParseHex("flag", hexB)
	if err != nil { return nil, err }
	c, err := ParseHex("filler", hexC)
	if err != nil { return nil, err }

	key := new(big.Int).Xor(a.Int, b.Int)
	return &Recovery{
		Key:       key,
		Recovered: new(big.Int).Xor(c.Int, key),
		Widths:    [3]int{len(a.Bytes), len(b.Bytes), len(c.Bytes)},
	}, nil
}

// KeyHex renders the key as 0x-prefixed lowercase hex without leading zeros.
func (r *Recovery) KeyHex() string { return fmt.Sprintf("%#x", r.Key) }

// RecoveredHex renders the recovered value like KeyHex.
func (r *Recovery) RecoveredHex() string { return fmt.Sprintf("%#x", r.Recovered) }

// SameWidth reports whether all operands decoded to the same byte length.
func (r *Recovery) SameWidth() bool {
	return r.Widths[0] == r.Widths[1] && r.Widths[1] == r.Widths[2]
}

// RecoveredBytes returns the recovered value left-padded with zeros to the
// widest operand.
func (r *Recovery) RecoveredBytes() []byte {
	w := 0
	for _, n := range r.Widths {
		if n > w { w = n }
	}
	return r.Recovered.FillBytes(make([]byte, w))
}
