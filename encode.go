// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package der

import (
	"bytes"
	"math/bits"
	"slices"

	"codello.dev/der/internal/vlq"
)

// Encode returns the canonical DER encoding of n. Encode is total: every Node
// has an encoding.
//
// Children of a universal SET are written in ascending lexicographic order of
// their own encoded bytes, as DER requires for SET and SET OF values. All
// other constructed Nodes keep their children in order. Primitive payloads
// are written verbatim; the constructors in this package produce payloads
// that are already in canonical form.
func Encode(n Node) []byte {
	return appendValue(make([]byte, 0, EncodedLen(n)), n)
}

// EncodedLen returns the number of bytes [Encode] produces for n, without
// encoding it.
func EncodedLen(n Node) int {
	l := contentLen(n)
	return headerLen(n.tag, l) + l
}

// contentLen returns the number of content octets of the encoding of n.
func contentLen(n Node) int {
	switch v := n.value.(type) {
	case constructed:
		sum := 0
		for _, c := range v {
			sum += EncodedLen(c)
		}
		return sum
	case primitive:
		return len(v)
	}
	return 0
}

// headerLen returns the number of identifier and length octets for a data
// value with the given tag number and content length.
func headerLen(tag uint, length int) int {
	l := 1 // identifier octet
	if tag >= longFormTag {
		l += vlq.Len(uint64(tag))
	}
	l++ // initial length octet
	if length >= 0x80 {
		l += (bits.Len(uint(length)) + 7) / 8
	}
	return l
}

// appendValue appends the encoding of n to dst.
func appendValue(dst []byte, n Node) []byte {
	switch v := n.value.(type) {
	case constructed:
		if n.class == ClassUniversal && n.tag == TagSet {
			return appendSet(dst, n, v)
		}
		dst = appendHeader(dst, n.class, true, n.tag, contentLen(n))
		for _, c := range v {
			dst = appendValue(dst, c)
		}
		return dst
	case primitive:
		dst = appendHeader(dst, n.class, false, n.tag, len(v))
		return append(dst, v...)
	}
	return appendHeader(dst, n.class, false, n.tag, 0)
}

// appendSet appends the encoding of a universal SET. Each child is encoded on
// its own and the encodings are concatenated in ascending lexicographic byte
// order. The reordering applies only to the immediate children; nested SETs
// are handled by their own appendValue call.
func appendSet(dst []byte, n Node, children constructed) []byte {
	encs := make([][]byte, len(children))
	total := 0
	for i, c := range children {
		encs[i] = Encode(c)
		total += len(encs[i])
	}
	slices.SortFunc(encs, bytes.Compare)
	dst = appendHeader(dst, n.class, true, n.tag, total)
	for _, e := range encs {
		dst = append(dst, e...)
	}
	return dst
}

// appendHeader appends the identifier and length octets of a data value. Tag
// numbers of 31 and above use the base-128 long form; lengths of 128 and
// above use the minimal long form.
func appendHeader(dst []byte, class Class, isConstructed bool, tag uint, length int) []byte {
	b := byte(class) << 6
	if isConstructed {
		b |= 0x20
	}
	if tag < longFormTag {
		dst = append(dst, b|byte(tag))
	} else {
		dst = append(dst, b|longFormTag)
		dst = vlq.Append(dst, uint64(tag))
	}

	if length < 0x80 {
		return append(dst, byte(length))
	}
	numBytes := (bits.Len(uint(length)) + 7) / 8
	dst = append(dst, 0x80|byte(numBytes))
	for i := numBytes - 1; i >= 0; i-- {
		dst = append(dst, byte(length>>(8*i)))
	}
	return dst
}
