package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"math/big"
	"strings"

	"codello.dev/der"
	"codello.dev/der/oid"
)

// tagName returns the display name of the tag of n. Universal tags use their
// ASN.1 type name, other classes use the bracket notation.
func tagName(n der.Node) string {
	switch n.Class() {
	case der.ClassContextSpecific:
		return fmt.Sprintf("[%d]", n.Tag())
	case der.ClassApplication:
		return fmt.Sprintf("[APPLICATION %d]", n.Tag())
	case der.ClassPrivate:
		return fmt.Sprintf("[PRIVATE %d]", n.Tag())
	}
	switch n.Tag() {
	case der.TagBoolean:
		return "BOOLEAN"
	case der.TagInteger:
		return "INTEGER"
	case der.TagBitString:
		return "BIT STRING"
	case der.TagOctetString:
		return "OCTET STRING"
	case der.TagNull:
		return "NULL"
	case der.TagOID:
		return "OBJECT IDENTIFIER"
	case der.TagEnumerated:
		return "ENUMERATED"
	case der.TagUTF8String:
		return "UTF8String"
	case der.TagSequence:
		return "SEQUENCE"
	case der.TagSet:
		return "SET"
	case der.TagNumericString:
		return "NumericString"
	case der.TagPrintableString:
		return "PrintableString"
	case der.TagT61String:
		return "T61String"
	case der.TagIA5String:
		return "IA5String"
	case der.TagUTCTime:
		return "UTCTime"
	case der.TagGeneralizedTime:
		return "GeneralizedTime"
	case der.TagGeneralString:
		return "GeneralString"
	case der.TagBMPString:
		return "BMPString"
	default:
		return fmt.Sprintf("[UNIVERSAL %d]", n.Tag())
	}
}

// formatContent renders the payload of n for display. Constructed values show
// their element count, well-known universal types are interpreted, everything
// else is hex.
func formatContent(n der.Node) string {
	if n.Constructed() {
		return fmt.Sprintf("(%d elem)", n.Len())
	}
	b := n.Bytes()
	if n.Class() != der.ClassUniversal {
		return hexPreview(b, 16)
	}

	switch n.Tag() {
	case der.TagBoolean:
		if len(b) == 1 && b[0] != 0x00 {
			return "true"
		}
		return "false"

	case der.TagInteger, der.TagEnumerated:
		return formatInteger(b)

	case der.TagBitString:
		if len(b) == 0 {
			return "(invalid bit string)"
		}
		bits := (len(b)-1)*8 - int(b[0])
		return fmt.Sprintf("(%d bit) %s", bits, hexPreview(b[1:], 8))

	case der.TagOctetString:
		return fmt.Sprintf("(%d byte) %s", len(b), strings.ToUpper(hexPreview(b, 16)))

	case der.TagNull:
		return ""

	case der.TagOID:
		s, err := oid.Decode(b)
		if err != nil {
			return "(invalid object identifier)"
		}
		if desc := oid.Describe(s); desc != "" {
			return s + " " + desc
		}
		return s

	case der.TagUTF8String, der.TagIA5String, der.TagPrintableString,
		der.TagNumericString, der.TagT61String, der.TagGeneralString:
		s := string(b)
		if len(s) > 64 {
			s = s[:64] + "…"
		}
		return s

	case der.TagUTCTime, der.TagGeneralizedTime:
		return string(b)

	default:
		return hexPreview(b, 16)
	}
}

// formatInteger renders a two's-complement INTEGER payload in decimal. Very
// large values are abbreviated to a bit count and a hex prefix.
func formatInteger(b []byte) string {
	if len(b) == 0 {
		return "0"
	}
	if len(b) > 8 {
		return fmt.Sprintf("(%d bit) %s…", len(b)*8, hex.EncodeToString(b[:8]))
	}
	v := new(big.Int).SetBytes(b)
	if b[0]&0x80 != 0 {
		v.Sub(v, new(big.Int).Lsh(big.NewInt(1), uint(len(b)*8)))
	}
	return v.String()
}

// hexPreview returns up to max bytes of b in hex, with an ellipsis when b is
// longer.
func hexPreview(b []byte, max int) string {
	if len(b) <= max {
		return hex.EncodeToString(b)
	}
	return hex.EncodeToString(b[:max]) + "…"
}

// printTree writes n and its children to w as an indented tree.
func printTree(w io.Writer, n der.Node, indent string, last bool) {
	prefix := "* "
	if indent != "" {
		if last {
			prefix = indent + "└─ "
		} else {
			prefix = indent + "├─ "
		}
	}

	if content := formatContent(n); content != "" {
		fmt.Fprintf(w, "%s%s %s\n", prefix, tagName(n), content)
	} else {
		fmt.Fprintf(w, "%s%s\n", prefix, tagName(n))
	}

	children := n.Children()
	next := indent + "│  "
	if last {
		next = indent + "   "
	}
	if indent == "" {
		next = " "
	}
	for i, c := range children {
		printTree(w, c, next, i == len(children)-1)
	}
}
