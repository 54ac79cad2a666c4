// Package vlq implements [Variable-length quantity] encoding: a base-128
// big-endian representation of an unsigned integer where the eighth bit of
// each byte marks the continuation of the quantity. DER uses VLQs for tag
// numbers of 31 and above and for the arcs of object identifiers.
//
// [Variable-length quantity]: https://en.wikipedia.org/wiki/Variable-length_quantity
package vlq

import (
	"errors"
	"io"
)

// ErrOverflow is returned by [Decode] when an encoded quantity does not fit
// into a uint64.
var ErrOverflow = errors.New("vlq too large for uint64")

// Len returns the number of bytes needed to encode v.
func Len(v uint64) int {
	l := 1
	for v >>= 7; v > 0; v >>= 7 {
		l++
	}
	return l
}

// Append appends the VLQ encoding of v to dst and returns the extended slice.
// The continuation bit is set on every byte except the last.
func Append(dst []byte, v uint64) []byte {
	for i := Len(v) - 1; i >= 0; i-- {
		b := byte(v>>(i*7)) & 0x7f
		if i > 0 {
			b |= 0x80
		}
		dst = append(dst, b)
	}
	return dst
}

// Decode parses a single VLQ from the start of b. It returns the decoded
// value and the number of bytes consumed. If b is empty or ends in the middle
// of the quantity, [io.ErrUnexpectedEOF] is returned. If the quantity exceeds
// 64 bits, [ErrOverflow] is returned.
//
// Decode accepts non-minimal encodings (leading 0x80 bytes); minimality is a
// concern of the caller.
func Decode(b []byte) (v uint64, n int, err error) {
	for n < len(b) {
		if v >= 1<<57 {
			// another 7 bits would not fit
			return 0, 0, ErrOverflow
		}
		c := b[n]
		n++
		v = v<<7 | uint64(c&0x7f)
		if c&0x80 == 0 {
			return v, n, nil
		}
	}
	return 0, 0, io.ErrUnexpectedEOF
}
