// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package codec provides ready-made Decoder/Encoder implementations for
// common framing disciplines: raw passthrough, line-delimited text, and
// arbitrary-delimiter framing, each with a borrowed and a bounded-capacity
// owned variant.
package codec

import "errors"

var (
	// ErrBufferTooSmall is returned by Encode when dst cannot fit the
	// encoded form of item.
	ErrBufferTooSmall = errors.New("codec: buffer too small")

	// ErrCapacityExceeded is returned by an owned decoder's DecodeOwned
	// when a borrowed frame does not fit the codec's fixed capacity.
	ErrCapacityExceeded = errors.New("codec: frame exceeds owned capacity")

	// ErrInvalidUTF8 is returned by string-producing decoders when a frame
	// is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("codec: invalid utf-8")
)
