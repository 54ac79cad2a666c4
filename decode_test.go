// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package der

import (
	"bytes"
	"errors"
	"testing"
	"time"
)

func TestDecode(t *testing.T) {
	tests := map[string]struct {
		input   []byte
		want    Node
		wantErr error
	}{
		"Integer":  {[]byte{0x02, 0x01, 0x15}, Integer(0x15), nil},
		"Null":     {[]byte{0x05, 0x00}, Null(), nil},
		"Trailing": {[]byte{0x02, 0x01, 0x15, 0xff, 0xff}, Integer(0x15), nil},
		"Sequence": {[]byte{0x30, 0x06, 0x02, 0x01, 0x15, 0x02, 0x01, 0x03},
			Sequence(Integer(0x15), Integer(3)), nil},
		"EmptyConstructed": {[]byte{0x30, 0x00}, Sequence(), nil},
		"LargeTag": {[]byte{0x1f, 0x81, 0x57, 0x01, 0x2a},
			Node{ClassUniversal, 215, primitive{0x2a}}, nil},
		"LargePaddedLength": {[]byte{0x04, 0x84, 0x00, 0x00, 0x00, 0x03, 0x01, 0x02, 0x03},
			OctetString([]byte{0x01, 0x02, 0x03}), nil},
		"ContextConstructed": {[]byte{0xa0, 0x03, 0x02, 0x01, 0x2a},
			ContextTag(0, Integer(42)), nil},

		"Empty":              {nil, Node{}, errTruncated},
		"MissingLength":      {[]byte{0x02}, Node{}, errTruncated},
		"TruncatedValue":     {[]byte{0x02, 0x05, 0x01}, Node{}, errTruncated},
		"TruncatedTag":       {[]byte{0x1f, 0x81}, Node{}, errTruncated},
		"TruncatedLength":    {[]byte{0x04, 0x82, 0x01}, Node{}, errTruncated},
		"IndefiniteLength":   {[]byte{0x30, 0x80, 0x02, 0x01, 0x15, 0x00, 0x00}, Node{}, errIndefiniteLength},
		"ChildExceedsParent": {[]byte{0x30, 0x03, 0x02, 0x02, 0x15, 0x15}, Node{}, errExceedsParent},
		"ChildHeaderOverrun": {[]byte{0x30, 0x01, 0x02, 0x01, 0x15}, Node{}, errExceedsParent},
		"HugeLength": {[]byte{0x04, 0x89, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff},
			Node{}, errLengthTooLarge},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := Decode(tc.input)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("Decode(%# x) error = %v, want %v", tc.input, err, tc.wantErr)
			}
			if err != nil {
				var sErr *SyntaxError
				if !errors.As(err, &sErr) {
					t.Errorf("Decode(%# x) error type = %T, want *SyntaxError", tc.input, err)
				}
				return
			}
			if !got.Equal(tc.want) {
				t.Errorf("Decode(%# x) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestDecode_NestingDepth(t *testing.T) {
	var b []byte
	for i := 0; i < maxNestingDepth+2; i++ {
		n := appendHeader(nil, ClassUniversal, true, TagSequence, len(b))
		b = append(n, b...)
	}
	_, err := Decode(b)
	if !errors.Is(err, errNestingTooDeep) {
		t.Errorf("Decode() error = %v, want %v", err, errNestingTooDeep)
	}
}

func TestDecode_NoAliasing(t *testing.T) {
	input := []byte{0x04, 0x03, 0x01, 0x02, 0x03}
	n, err := Decode(input)
	if err != nil {
		t.Fatalf("Decode() error = %v, want nil", err)
	}
	input[2] = 0xff
	if got := n.Bytes(); !bytes.Equal(got, []byte{0x01, 0x02, 0x03}) {
		t.Errorf("payload = %# x, node aliases the input buffer", got)
	}
}

func TestDecodeAll(t *testing.T) {
	input := []byte{0x02, 0x01, 0x15, 0x01, 0x01, 0xff}
	nodes, err := DecodeAll(input)
	if err != nil {
		t.Fatalf("DecodeAll() error = %v, want nil", err)
	}
	if len(nodes) != 2 || !nodes[0].Equal(Integer(0x15)) || !nodes[1].Equal(Boolean(true)) {
		t.Errorf("DecodeAll() = %v, want [INTEGER 21, BOOLEAN true]", nodes)
	}

	if nodes, err = DecodeAll(nil); err != nil || len(nodes) != 0 {
		t.Errorf("DecodeAll(nil) = %v, %v, want no nodes and no error", nodes, err)
	}

	if _, err = DecodeAll([]byte{0x02, 0x01, 0x15, 0x02}); err == nil {
		t.Errorf("DecodeAll() error = nil, want non-nil")
	}
}

// TestRoundTrip checks that decoding an encoded tree and encoding it again is
// the identity on bytes, even when SET children are supplied out of order.
func TestRoundTrip(t *testing.T) {
	date := time.Date(2026, time.August, 23, 12, 30, 45, 0, time.UTC)
	commonName, err := OID("2.5.4.3")
	if err != nil {
		t.Fatalf("OID() error = %v, want nil", err)
	}
	trees := map[string]Node{
		"Primitive": Integer(-129),
		"Certificate-ish": Sequence(
			Integer(1),
			Sequence(commonName, PrintableString("Test CA")),
			Set(UTF8String("zz"), UTF8String("aa")), // out of canonical order
			BitString([]byte{0x6e, 0x5d, 0xc0}, 6),
			ContextTag(3, OctetString([]byte{0xde, 0xad})),
			UTCTime(date),
			GeneralizedTime(date),
			Boolean(false),
			Null(),
		),
		"DeepTag": Node{ClassPrivate, 12345, primitive{0x01}},
	}
	for name, tree := range trees {
		t.Run(name, func(t *testing.T) {
			first := Encode(tree)
			decoded, err := Decode(first)
			if err != nil {
				t.Fatalf("Decode() error = %v, want nil", err)
			}
			second := Encode(decoded)
			if !bytes.Equal(first, second) {
				t.Errorf("re-encoding changed bytes:\n first = %# x\nsecond = %# x", first, second)
			}
		})
	}
}
