// Package checksum implements the 8-bit Fletcher-16 accumulator used to
// validate and generate UBX frame checksums, in both a streaming form (for
// accumulating across the parser's dual-buffer views) and a one-shot form
// (for validating a fully materialized frame).
package checksum

import "github.com/kstaniek/go-ubx/internal/ubxerr"

// Calc accumulates a running Fletcher-16 checksum over successive byte
// spans. The zero value is a valid, empty accumulator.
type Calc struct {
	ckA byte
	ckB byte
}

// New returns a fresh accumulator.
func New() Calc { return Calc{} }

// Update folds bytes into the running checksum.
func (c *Calc) Update(bytes []byte) {
	for _, b := range bytes {
		c.UpdateByte(b)
	}
}

// UpdateByte folds a single byte into the running checksum.
func (c *Calc) UpdateByte(b byte) {
	c.ckA += b
	c.ckB += c.ckA
}

// Result returns the accumulated (CK_A, CK_B) pair.
func (c *Calc) Result() (ckA, ckB byte) {
	return c.ckA, c.ckB
}

// Validate compares the accumulated result against the two checksum bytes
// received on the wire, returning an *ubxerr.InvalidChecksumError on
// mismatch.
func (c *Calc) Validate(receivedA, receivedB byte) error {
	if c.ckA == receivedA && c.ckB == receivedB {
		return nil
	}
	return &ubxerr.InvalidChecksumError{
		Expect: uint16(receivedA) | uint16(receivedB)<<8,
		Got:    uint16(c.ckA) | uint16(c.ckB)<<8,
	}
}

// ValidateBuffer is the one-shot convenience form: it computes the
// checksum over body and compares it to the trailing (receivedA, receivedB)
// pair, for callers holding a single contiguous frame rather than streaming
// spans through Update.
func ValidateBuffer(body []byte, receivedA, receivedB byte) error {
	c := New()
	c.Update(body)
	return c.Validate(receivedA, receivedB)
}
