// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package der

import (
	"errors"
	"strconv"
)

var (
	errTruncated        = errors.New("truncated data value")
	errIndefiniteLength = errors.New("indefinite length")
	errLengthTooLarge   = errors.New("length too large")
	errTagTooLarge      = errors.New("tag number too large")
	errExceedsParent    = errors.New("data value exceeds parent")
	errNestingTooDeep   = errors.New("nesting depth exceeds limit")
)

// SyntaxError represents an error in the DER encoding of the input. The error
// value contains the location of the error within the input.
type SyntaxError struct {
	Err error // underlying error

	// ByteOffset is the location of the error. The location is usually the
	// start of the TLV header containing the error.
	ByteOffset int64
}

func (e *SyntaxError) Unwrap() error { return e.Err }

func (e *SyntaxError) Error() string {
	b := []byte("der: syntax error")
	if e.ByteOffset > 0 {
		b = strconv.AppendInt(append(b, " at offset "...), e.ByteOffset, 10)
	}
	if e.Err != nil {
		b = append(b, ": "...)
		b = append(b, e.Err.Error()...)
	}
	return string(b)
}
