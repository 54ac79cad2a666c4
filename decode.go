// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package der

import (
	"bytes"
	"errors"
	"io"
	"math"

	"codello.dev/der/internal/vlq"
)

// maxNestingDepth bounds the recursion depth of [Decode]. DER itself places no
// limit on the nesting of constructed data values; the bound keeps
// pathologically nested untrusted input from exhausting the stack. X.509 and
// CMS structures stay well below this depth.
const maxNestingDepth = 128

// Decode parses a single top-level TLV from the start of data and returns it
// as a [Node]. Trailing bytes after the first TLV are ignored; use [DecodeAll]
// to parse a buffer of consecutive TLVs.
//
// Decode fails closed: any truncated or invalid encoding (including the
// BER indefinite-length form) yields a [*SyntaxError] and no Node. The
// returned tree does not alias data.
func Decode(data []byte) (Node, error) {
	n, _, err := decodeValue(data, 0, len(data), 0)
	return n, err
}

// DecodeAll parses consecutive top-level TLVs from data until the buffer is
// exhausted. If any TLV is malformed, DecodeAll returns no nodes and a
// [*SyntaxError].
func DecodeAll(data []byte) ([]Node, error) {
	var nodes []Node
	for off := 0; off < len(data); {
		n, next, err := decodeValue(data, off, len(data), 0)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
		off = next
	}
	return nodes, nil
}

// decodeValue parses one TLV from data beginning at off and returns the Node
// together with the offset immediately following its value region. Reads must
// stay below limit, the end of the enclosing value region; limit equals
// len(data) at the top level. Running out of bytes below a tighter limit
// means a child overruns its parent rather than a truncated input.
func decodeValue(data []byte, off, limit, depth int) (Node, int, error) {
	start := off
	fail := func(err error) (Node, int, error) {
		return Node{}, 0, &SyntaxError{Err: err, ByteOffset: int64(start)}
	}
	outOfBounds := func() error {
		if limit == len(data) {
			return errTruncated
		}
		return errExceedsParent
	}
	if depth > maxNestingDepth {
		return fail(errNestingTooDeep)
	}

	// identifier octets
	if off >= limit {
		return fail(outOfBounds())
	}
	b := data[off]
	off++
	class := Class(b >> 6)
	isConstructed := b&0x20 != 0
	tag := uint(b & 0x1f)
	if tag == longFormTag {
		v, n, err := vlq.Decode(data[off:limit])
		switch {
		case errors.Is(err, io.ErrUnexpectedEOF):
			return fail(outOfBounds())
		case err != nil, v > uint64(^uint(0)):
			return fail(errTagTooLarge)
		}
		off += n
		tag = uint(v)
	}

	// length octets
	if off >= limit {
		return fail(outOfBounds())
	}
	b = data[off]
	off++
	length := 0
	switch {
	case b < 0x80:
		length = int(b)
	case b == 0x80:
		return fail(errIndefiniteLength)
	default:
		for numBytes := int(b & 0x7f); numBytes > 0; numBytes-- {
			if off >= limit {
				return fail(outOfBounds())
			}
			if length > math.MaxInt>>8 {
				return fail(errLengthTooLarge)
			}
			length = length<<8 | int(data[off])
			off++
		}
	}

	// content octets
	if length > limit-off {
		if length > len(data)-off {
			return fail(errTruncated)
		}
		return fail(errExceedsParent)
	}
	end := off + length
	if !isConstructed {
		return Node{class, tag, primitive(bytes.Clone(data[off:end]))}, end, nil
	}
	children := constructed{}
	for off < end {
		child, next, err := decodeValue(data, off, end, depth+1)
		if err != nil {
			return Node{}, 0, err
		}
		children = append(children, child)
		off = next
	}
	return Node{class, tag, children}, end, nil
}
