// Package bigend implements streaming big-endian integer accumulation.
//
// The attestation blob encodes every multi-byte scalar (sizes, offsets,
// TLV type and length words) in network byte order. A value is almost never
// available as a contiguous slice: the driving state machine receives one
// byte at a time and must be able to suspend between any two bytes. Accum is
// the fold used to rebuild such a scalar from single bytes.
package bigend

// Accum folds big-endian bytes into an unsigned integer one byte at a time.
// The zero value is ready to use and represents the value 0.
type Accum struct {
	v uint32
}

// Shift moves the accumulated bytes up by one byte, folds b in as the new
// least-significant byte, and returns the updated value.
func (a *Accum) Shift(b byte) uint32 {
	a.v = a.v<<8 | uint32(b)
	return a.v
}

// Value returns the current accumulated value without resetting it.
func (a *Accum) Value() uint32 {
	return a.v
}

// Reset sets the accumulator back to 0.
func (a *Accum) Reset() {
	a.v = 0
}

// Uint32 folds all of raw as a single big-endian value. Only the low 4 bytes
// influence the result; additional leading bytes are folded in but overflow
// silently, matching the wraparound behavior of the streaming accumulator.
func Uint32(raw []byte) uint32 {
	var v uint32
	for _, b := range raw {
		v = v<<8 | uint32(b)
	}
	return v
}
