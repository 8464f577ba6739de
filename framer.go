// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package framer turns a byte stream into a sequence of discrete items and
// back, given a codec that knows how to recognize item boundaries.
//
// Semantics and design:
//   - Codec-driven, not protocol-driven: framer carries no wire format of its
//     own. A Decoder/Encoder (see decode.go, encode.go, and the codec
//     subpackage) decides what a "frame" looks like; framer drives the read
//     loop, buffer management, and retry policy around it.
//   - Borrowed vs owned: a borrowed decode hands back an item aliasing the
//     read buffer, valid only until the next Step (see Borrowed, borrow.go);
//     an owned decode copies into a self-contained value safe to keep.
//   - Non-blocking first: iox.ErrWouldBlock and iox.ErrMore are surfaced as
//     control-flow signals (re-exported as framer.ErrWouldBlock/ErrMore) and
//     the hot path allocates nothing beyond what the codec itself requires.
package framer

import "io"

// NewFramedRead returns a read-only engine driving codec over r. buf is the
// read buffer; its size is the hard ceiling on a single frame's encoded size
// (see ErrBufferTooSmall).
func NewFramedRead[Item any](codec Decoder[Item], r io.Reader, buf []byte, opts ...Option) *FramedRead[Item] {
	o := resolveOptions(opts)
	return &FramedRead[Item]{
		codec: codec,
		r:     r,
		state: NewReadState(buf),
		opts:  o,
	}
}

// NewFramedReadOwned is NewFramedRead's owned-decoder counterpart: items
// returned by Step/Next are self-contained and remain valid past later
// Step calls.
func NewFramedReadOwned[Item any](codec OwnedDecoder[Item], r io.Reader, buf []byte, opts ...Option) *FramedReadOwned[Item] {
	o := resolveOptions(opts)
	return &FramedReadOwned[Item]{
		codec: codec,
		r:     r,
		state: NewReadState(buf),
		opts:  o,
	}
}

// NewFramedWrite returns a write-only engine driving codec's Encoder over w.
func NewFramedWrite[Item any](codec Encoder[Item], w io.Writer, buf []byte, opts ...Option) *FramedWrite[Item] {
	o := resolveOptions(opts)
	return &FramedWrite[Item]{
		codec: codec,
		w:     w,
		state: NewWriteState(buf),
		opts:  o,
	}
}

// symmetricCodec is satisfied by a codec that both decodes and encodes the
// same Item, the shape NewFramed requires.
type symmetricCodec[Item any] interface {
	Decoder[Item]
	Encoder[Item]
}

// NewFramed combines a borrowed read half and a write half over one
// io.ReadWriter, driven by a single codec value that implements both
// Decoder[Item] and Encoder[Item].
func NewFramed[Item any](codec symmetricCodec[Item], rw io.ReadWriter, readBuf, writeBuf []byte, opts ...Option) *Framed[Item] {
	o := resolveOptions(opts)
	return &Framed[Item]{
		FramedRead:  &FramedRead[Item]{codec: codec, r: rw, state: NewReadState(readBuf), opts: o},
		FramedWrite: &FramedWrite[Item]{codec: codec, w: rw, state: NewWriteState(writeBuf), opts: o},
		rw:          rw,
	}
}
