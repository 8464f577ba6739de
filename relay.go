// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package framer

import "io"

// Relay forwards items from a source to a destination, decoding with one
// codec and re-encoding with another compatible Encoder[Item].
//
// Two-phase state machine per item, mirroring a two-stage pipe stage:
//  1. Read: pull one item from src (may return early with a retry signal
//     and no progress reported to the caller).
//  2. Write: Send that same item to dst (ditto).
//
// RelayOnce does at most one item's worth of work. On ErrWouldBlock or
// ErrMore, callers must call RelayOnce again on the same Relay to resume:
// the in-flight item is held internally between phases.
type Relay[Item any] struct {
	src *FramedReadOwned[Item]
	dst *FramedWrite[Item]

	pending    Item
	hasPending bool
}

// NewRelay constructs a Relay reading Items from src via decode and writing
// them to dst via encode. readBuf sizes the internal read buffer; Options
// apply to both the read and write side.
func NewRelay[Item any](decode OwnedDecoder[Item], src io.Reader, encode Encoder[Item], dst io.Writer, readBuf, writeBuf []byte, opts ...Option) *Relay[Item] {
	return &Relay[Item]{
		src: NewFramedReadOwned[Item](decode, src, readBuf, opts...),
		dst: NewFramedWrite[Item](encode, dst, writeBuf, opts...),
	}
}

// RelayOnce forwards at most one item. It returns (true, nil) once an item
// has been fully written to dst, (false, nil) when src reached a clean end
// of stream, or (false, err) on a retry signal or terminal error.
func (f *Relay[Item]) RelayOnce() (ok bool, err error) {
	if !f.hasPending {
		item, got, rerr := f.src.Next()
		if rerr != nil {
			return false, rerr
		}
		if !got {
			return false, nil
		}
		f.pending = item
		f.hasPending = true
	}

	if werr := f.dst.Send(f.pending); werr != nil {
		return false, werr
	}

	f.hasPending = false
	var zero Item
	f.pending = zero
	return true, nil
}

// RelayAll calls RelayOnce until src reaches end of stream or an error
// (including a retry signal) occurs, returning the number of items
// forwarded.
func (f *Relay[Item]) RelayAll() (n int, err error) {
	for {
		ok, rerr := f.RelayOnce()
		if rerr != nil {
			return n, rerr
		}
		if !ok {
			return n, nil
		}
		n++
	}
}
