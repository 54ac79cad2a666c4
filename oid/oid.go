// Package oid implements the encoding of ASN.1 object identifiers between
// their dot notation (e.g. "1.2.840.113549.1.1.11") and the content octets of
// a DER OBJECT IDENTIFIER as specified in Section 8.19 of [Rec. ITU-T X.690].
//
// The first two arcs of an object identifier are combined into a single
// subidentifier 40*X+Y. Because Y never exceeds 39 when X is 0 or 1, the
// value range of 80 and above is unambiguously reserved for identifiers with
// first arc 2. Every subidentifier is encoded as a base-128 VLQ.
//
// The package also carries a registry of well-known identifiers, see
// [Describe].
//
// [Rec. ITU-T X.690]: https://www.itu.int/rec/T-REC-X.690
package oid

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"codello.dev/der/internal/vlq"
)

var errEmpty = errors.New("oid: empty encoding")

// Encode converts an object identifier in dot notation into DER content
// octets. The identifier must consist of at least two non-negative integer
// arcs, the first arc must be 0, 1 or 2 and the second arc must not exceed 39
// unless the first arc is 2.
func Encode(s string) ([]byte, error) {
	parts := strings.Split(s, ".")
	if len(parts) < 2 {
		return nil, fmt.Errorf("oid: %q: an object identifier needs at least two arcs", s)
	}
	arcs := make([]uint64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseUint(p, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("oid: %q: invalid arc %q", s, p)
		}
		arcs[i] = v
	}
	if arcs[0] > 2 {
		return nil, fmt.Errorf("oid: %q: first arc must be 0, 1 or 2", s)
	}
	if arcs[0] < 2 && arcs[1] > 39 {
		return nil, fmt.Errorf("oid: %q: second arc must not exceed 39", s)
	}
	if arcs[1] > math.MaxUint64-40*arcs[0] {
		return nil, fmt.Errorf("oid: %q: second arc too large", s)
	}

	b := make([]byte, 0, len(arcs)+1)
	b = vlq.Append(b, 40*arcs[0]+arcs[1])
	for _, arc := range arcs[2:] {
		b = vlq.Append(b, arc)
	}
	return b, nil
}

// Decode converts the content octets of a DER OBJECT IDENTIFIER into dot
// notation. It rejects empty input and input that ends in the middle of a
// subidentifier.
func Decode(b []byte) (string, error) {
	if len(b) == 0 {
		return "", errEmpty
	}
	var s strings.Builder
	s.Grow(32)

	v, n, err := vlq.Decode(b)
	if err != nil {
		return "", fmt.Errorf("oid: invalid encoding: %w", err)
	}
	b = b[n:]
	if v < 80 {
		s.WriteString(strconv.FormatUint(v/40, 10))
		s.WriteByte('.')
		s.WriteString(strconv.FormatUint(v%40, 10))
	} else {
		// 40*0+Y and 40*1+Y are at most 79, so this range belongs to
		// identifiers with first arc 2.
		s.WriteString("2.")
		s.WriteString(strconv.FormatUint(v-80, 10))
	}

	for len(b) > 0 {
		if v, n, err = vlq.Decode(b); err != nil {
			return "", fmt.Errorf("oid: invalid encoding: %w", err)
		}
		b = b[n:]
		s.WriteByte('.')
		s.WriteString(strconv.FormatUint(v, 10))
	}
	return s.String(), nil
}
