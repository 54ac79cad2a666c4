// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package der

import (
	"bytes"
	"math/big"
	"slices"
	"strconv"
	"time"

	"codello.dev/der/oid"
)

//region content

// content is the payload of a [Node]. Exactly one of the two implementations
// applies to any given Node: primitive holds raw content octets, constructed
// holds the ordered child nodes. The constructed flag of the encoding is
// derived from which variant is present, so a Node that is both primitive and
// constructed cannot be expressed.
type content interface {
	isContent()
}

// primitive holds the content octets of a primitive data value.
type primitive []byte

func (primitive) isContent() {}

// constructed holds the child data values of a constructed data value.
type constructed []Node

func (constructed) isContent() {}

//endregion

//region Node

// Node represents a single DER data value: a tag number, a tag class and
// either a primitive byte payload or a list of child Nodes. The zero Node is
// a primitive [ClassUniversal] value with tag 0 and an empty payload.
//
// Nodes are immutable. They are created by the constructor functions in this
// package or by [Decode] and cannot be modified afterwards; transformations
// build new trees. There are no parent references, so a Node tree is always
// acyclic and owned exclusively by its root.
type Node struct {
	class Class
	tag   uint
	value content
}

// Class returns the tag class of n.
func (n Node) Class() Class { return n.class }

// Tag returns the tag number of n, without class and constructed bits.
func (n Node) Tag() uint { return n.tag }

// Constructed reports whether n uses the constructed encoding, i.e. whether
// its content consists of child data values.
func (n Node) Constructed() bool {
	_, ok := n.value.(constructed)
	return ok
}

// Bytes returns a copy of the content octets of a primitive n. For
// constructed Nodes, Bytes returns nil.
func (n Node) Bytes() []byte {
	if p, ok := n.value.(primitive); ok {
		return bytes.Clone(p)
	}
	return nil
}

// Children returns a copy of the child list of a constructed n. For primitive
// Nodes, Children returns nil.
func (n Node) Children() []Node {
	if c, ok := n.value.(constructed); ok {
		return slices.Clone(c)
	}
	return nil
}

// Len returns the number of children of a constructed n, or the number of
// content octets of a primitive n.
func (n Node) Len() int {
	switch v := n.value.(type) {
	case constructed:
		return len(v)
	case primitive:
		return len(v)
	}
	return 0
}

// Equal reports whether n and other represent the same data value. Equality
// is structural: tag, class, constructed flag and the payload (or all
// children, recursively) must match.
func (n Node) Equal(other Node) bool {
	if n.class != other.class || n.tag != other.tag {
		return false
	}
	switch v := n.value.(type) {
	case constructed:
		w, ok := other.value.(constructed)
		return ok && slices.EqualFunc(v, w, Node.Equal)
	default:
		if other.Constructed() {
			return false
		}
		p, _ := n.value.(primitive)
		q, _ := other.value.(primitive)
		return bytes.Equal(p, q)
	}
}

// String returns a short, readable representation of n consisting of its tag,
// its encoding form and its content length.
func (n Node) String() string {
	var s string
	if n.class == ClassContextSpecific {
		s = "[" + strconv.FormatUint(uint64(n.tag), 10) + "]"
	} else {
		s = "[" + n.class.String() + " " + strconv.FormatUint(uint64(n.tag), 10) + "]"
	}
	if n.Constructed() {
		s += "/c"
	} else {
		s += "/p"
	}
	return s + ":" + strconv.Itoa(n.Len())
}

//endregion

//region Constructors

// Sequence returns a SEQUENCE Node containing the given children in order.
func Sequence(children ...Node) Node {
	return Node{ClassUniversal, TagSequence, constructed(slices.Clone(children))}
}

// Set returns a SET Node containing the given children. The children may be
// supplied in any order; [Encode] writes them in the canonical DER order.
func Set(children ...Node) Node {
	return Node{ClassUniversal, TagSet, constructed(slices.Clone(children))}
}

// Integer returns an INTEGER Node holding v in minimal two's-complement form.
func Integer(v int64) Node {
	return BigInteger(big.NewInt(v))
}

// BigInteger returns an INTEGER Node holding v in minimal two's-complement
// form. Certificate serial numbers and similar values routinely exceed 64
// bits, hence the arbitrary-precision variant.
//
// The payload is the shortest byte sequence whose two's-complement
// interpretation equals v: a leading 0x00 appears exactly when a non-negative
// value would otherwise read as negative, and zero encodes as a single 0x00.
func BigInteger(v *big.Int) Node {
	var b []byte
	switch v.Sign() {
	case 0:
		b = []byte{0x00}
	case 1:
		b = v.Bytes()
		if b[0]&0x80 != 0 {
			b = append([]byte{0x00}, b...)
		}
	default:
		// The minimal two's complement of a negative v is the complement of
		// |v|-1, sign-extended by one 0xFF byte iff the top bit is clear.
		t := new(big.Int).Neg(v)
		t.Sub(t, big.NewInt(1))
		b = t.Bytes()
		for i := range b {
			b[i] ^= 0xff
		}
		if len(b) == 0 || b[0]&0x80 == 0 {
			b = append([]byte{0xff}, b...)
		}
	}
	return Node{ClassUniversal, TagInteger, primitive(b)}
}

// OID returns an OBJECT IDENTIFIER Node for the given dot-notation string. If
// s is not a valid object identifier, an error is returned. See [oid.Encode]
// for the accepted syntax.
func OID(s string) (Node, error) {
	b, err := oid.Encode(s)
	if err != nil {
		return Node{}, err
	}
	return Node{ClassUniversal, TagOID, primitive(b)}, nil
}

// OctetString returns an OCTET STRING Node whose payload is a copy of b.
func OctetString(b []byte) Node {
	return Node{ClassUniversal, TagOctetString, primitive(bytes.Clone(b))}
}

// BitString returns a BIT STRING Node. unusedBits is the number of unused
// trailing bits in the final byte of b and must be between 0 and 7; BitString
// panics otherwise.
func BitString(b []byte, unusedBits int) Node {
	if unusedBits < 0 || unusedBits > 7 {
		panic("der: unused bit count out of range")
	}
	p := make([]byte, len(b)+1)
	p[0] = byte(unusedBits)
	copy(p[1:], b)
	return Node{ClassUniversal, TagBitString, primitive(p)}
}

// UTF8String returns a UTF8String Node holding the bytes of s.
func UTF8String(s string) Node {
	return Node{ClassUniversal, TagUTF8String, primitive(s)}
}

// IA5String returns an IA5String Node holding the bytes of s. The caller is
// responsible for restricting s to ASCII characters; no validation is done.
func IA5String(s string) Node {
	return Node{ClassUniversal, TagIA5String, primitive(s)}
}

// PrintableString returns a PrintableString Node holding the bytes of s. The
// caller is responsible for restricting s to the PrintableString character
// set; no validation is done.
func PrintableString(s string) Node {
	return Node{ClassUniversal, TagPrintableString, primitive(s)}
}

// Boolean returns a BOOLEAN Node. DER mandates the exact payload bytes 0xFF
// for true and 0x00 for false.
func Boolean(v bool) Node {
	b := byte(0x00)
	if v {
		b = 0xff
	}
	return Node{ClassUniversal, TagBoolean, primitive{b}}
}

// Null returns a NULL Node with an empty payload.
func Null() Node {
	return Node{ClassUniversal, TagNull, primitive{}}
}

// UTCTime returns a UTCTime Node holding t in the format YYMMDDHHMMSSZ. The
// time is always converted to UTC; the explicit-offset form is not produced.
func UTCTime(t time.Time) Node {
	return Node{ClassUniversal, TagUTCTime, primitive(t.UTC().Format("060102150405") + "Z")}
}

// GeneralizedTime returns a GeneralizedTime Node holding t in the format
// YYYYMMDDHHMMSSZ. The time is always converted to UTC; the explicit-offset
// form is not produced.
func GeneralizedTime(t time.Time) Node {
	return Node{ClassUniversal, TagGeneralizedTime, primitive(t.UTC().Format("20060102150405") + "Z")}
}

// ContextTag returns a constructed context-specific Node with the given tag
// number, wrapping the given children. This corresponds to EXPLICIT tagging:
// the children keep their own identifiers and become the content of the new
// data value.
func ContextTag(tag uint, children ...Node) Node {
	return Node{ClassContextSpecific, tag, constructed(slices.Clone(children))}
}

// ContextTagImplicit re-tags child as a context-specific Node with the given
// tag number. This corresponds to IMPLICIT tagging: the child's own identifier
// is replaced. A constructed child keeps its children, a primitive child keeps
// its payload.
func ContextTagImplicit(tag uint, child Node) Node {
	if c, ok := child.value.(constructed); ok {
		return Node{ClassContextSpecific, tag, constructed(slices.Clone(c))}
	}
	p, _ := child.value.(primitive)
	return Node{ClassContextSpecific, tag, primitive(bytes.Clone(p))}
}

//endregion
