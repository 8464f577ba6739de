// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package framer

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument reports an invalid configuration or nil reader/writer.
	ErrInvalidArgument = errors.New("framer: invalid argument")

	// ErrBufferTooSmall reports that the read buffer is full and the codec
	// has not framed anything: there is no room left to read into and no
	// complete frame either.
	ErrBufferTooSmall = errors.New("framer: buffer too small")

	// ErrBytesRemainingOnStream reports that end-of-stream was reached with
	// residual unconsumed bytes the codec could not turn into a final frame.
	ErrBytesRemainingOnStream = errors.New("framer: bytes remaining on stream")

	// ErrBorrowExpired is returned by a Borrowed value's Get method once the
	// driver has taken another Step after handing the value out.
	// See borrow.go.
	ErrBorrowExpired = errors.New("framer: borrowed item used past its step")
)

// ReadError is returned by the read driver. Exactly one of its fields is
// meaningful at a time; use the Is* helpers or errors.Is/errors.As rather
// than comparing kinds directly.
type ReadError struct {
	// Err is the underlying cause: an I/O error from the transport, a
	// decode error from the codec, or one of ErrBufferTooSmall /
	// ErrBytesRemainingOnStream.
	Err error
	// Decode is true when Err originated from the codec rather than the
	// transport or the driver itself.
	Decode bool
}

func (e *ReadError) Error() string {
	if e.Decode {
		return fmt.Sprintf("framer: decode: %s", e.Err)
	}
	return fmt.Sprintf("framer: read: %s", e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

func ioReadError(err error) error     { return &ReadError{Err: err} }
func decodeReadError(err error) error { return &ReadError{Err: err, Decode: true} }

// WriteError is returned by the write driver.
type WriteError struct {
	// Err is the underlying cause: an I/O error from the transport or a
	// codec encode error.
	Err error
	// Encode is true when Err originated from the codec rather than the
	// transport.
	Encode bool
}

func (e *WriteError) Error() string {
	if e.Encode {
		return fmt.Sprintf("framer: encode: %s", e.Err)
	}
	return fmt.Sprintf("framer: write: %s", e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

func ioWriteError(err error) error     { return &WriteError{Err: err} }
func encodeWriteError(err error) error { return &WriteError{Err: err, Encode: true} }
