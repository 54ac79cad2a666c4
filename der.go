// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package der implements encoding and decoding of the Distinguished Encoding
// Rules (DER) as specified in [Rec. ITU-T X.690]. DER is the canonical subset
// of BER used by X.509 certificates, PKCS containers and CMS messages: every
// abstract value has exactly one valid encoding.
//
// # Data Model
//
// A DER data value is represented by the [Node] type. A Node carries a tag
// number, a tag [Class] and either a primitive byte payload or an ordered list
// of child Nodes. Which of the two it carries is determined by the constructed
// flag of the encoding; a Node never holds both. Nodes are immutable: the
// constructors and [Decode] copy their inputs and the accessors return copies,
// so a decoded tree never aliases the input buffer.
//
// Trees are built bottom-up using the constructor functions ([Sequence],
// [Integer], [OctetString], ...) and serialized with [Encode]. [Decode] parses
// a single top-level tag-length-value (TLV) from a byte buffer; [DecodeAll]
// parses a whole buffer of consecutive TLVs.
//
// # Canonicalization
//
// [Encode] produces the unique canonical encoding mandated by DER: lengths use
// the minimal form, tag numbers of 31 and above use the base-128 long form,
// and the children of a universal SET are sorted by their encoded bytes. The
// primitive payload of a Node is written verbatim; producing minimal INTEGER
// payloads is the job of the [Integer] and [BigInteger] constructors.
//
// The permissive parts of BER are rejected during decoding: the
// indefinite-length form and truncated or overrunning TLVs all fail with a
// [*SyntaxError]. A failed decode never yields a partial tree.
//
// [Rec. ITU-T X.690]: https://www.itu.int/rec/T-REC-X.690
package der

import "strconv"

// Class holds the class part of an ASN.1 tag. The class acts as a namespace
// for the tag number. A Class value is an unsigned 2-bit integer. Class values
// whose value exceeds 2 bits are invalid.
type Class uint8

// Predefined [Class] constants. These are all the possible values that can be
// encoded in the [Class] type.
const (
	ClassUniversal Class = iota
	ClassApplication
	ClassContextSpecific
	ClassPrivate
)

// IsValid reports whether c is a valid Class value.
func (c Class) IsValid() bool {
	return c <= 3
}

// String returns the name of c as used in ASN.1 notation.
func (c Class) String() string {
	switch c {
	case ClassUniversal:
		return "Universal"
	case ClassApplication:
		return "Application"
	case ClassContextSpecific:
		return "ContextSpecific"
	case ClassPrivate:
		return "Private"
	default:
		return "Class(" + strconv.FormatUint(uint64(c), 10) + ")"
	}
}

// These are the ASN.1 tag numbers defined in the [ClassUniversal] namespace
// that this package produces or interprets. The assignments are defined in
// Rec. ITU-T X.680, Section 8, Table 1.
const (
	TagBoolean         uint = 1
	TagInteger         uint = 2
	TagBitString       uint = 3
	TagOctetString     uint = 4
	TagNull            uint = 5
	TagOID             uint = 6
	TagEnumerated      uint = 10
	TagUTF8String      uint = 12
	TagSequence        uint = 16
	TagSet             uint = 17
	TagNumericString   uint = 18
	TagPrintableString uint = 19
	TagT61String       uint = 20
	TagIA5String       uint = 22
	TagUTCTime         uint = 23
	TagGeneralizedTime uint = 24
	TagGeneralString   uint = 27
	TagBMPString       uint = 30
)

// longFormTag is the value of the bottom five identifier bits signalling that
// the tag number is encoded in the base-128 long form.
const longFormTag = 0x1f
