// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package codec

import "bytes"

// Delimiter decodes bytes ending with an arbitrary delimiter and encodes by
// appending that same delimiter.
//
// Delimiter carries scan progress (seen) relative to the buffer it is
// currently decoding; a single Delimiter value must not be shared across
// two independent framing sessions.
type Delimiter struct {
	delimiter []byte
	seen      int
}

// NewDelimiter creates a Delimiter codec searching for delim.
func NewDelimiter(delim []byte) *Delimiter {
	return &Delimiter{delimiter: delim}
}

// DelimiterBytes returns the delimiter this codec searches for.
func (d *Delimiter) DelimiterBytes() []byte { return d.delimiter }

func (d *Delimiter) Decode(src []byte) (item []byte, n int, ok bool, err error) {
	if len(src) < len(d.delimiter) {
		return nil, 0, false, nil
	}
	if len(d.delimiter) == 0 {
		frame := src[:d.seen+1]
		consumed := d.seen + 1
		d.seen = 0
		return frame, consumed, true, nil
	}

	last := d.delimiter[len(d.delimiter)-1]
	for d.seen < len(src) {
		if src[d.seen] == last {
			start := d.seen + 1 - len(d.delimiter)
			if start >= 0 && bytes.Equal(src[start:d.seen+1], d.delimiter) {
				frame := src[:start]
				consumed := d.seen + 1
				d.seen = 0
				return frame, consumed, true, nil
			}
		}
		d.seen++
	}
	return nil, 0, false, nil
}

func (d *Delimiter) Encode(item []byte, dst []byte) (n int, err error) {
	size := len(item) + len(d.delimiter)
	if len(dst) < size {
		return 0, ErrBufferTooSmall
	}
	copy(dst, item)
	copy(dst[len(item):size], d.delimiter)
	return size, nil
}

// OwnedDelimiter is Delimiter's owned counterpart, bounded by capacity.
type OwnedDelimiter struct {
	inner    Delimiter
	capacity int
}

// NewOwnedDelimiter creates an OwnedDelimiter codec searching for delim,
// rejecting frames larger than capacity with ErrCapacityExceeded.
func NewOwnedDelimiter(delim []byte, capacity int) *OwnedDelimiter {
	return &OwnedDelimiter{inner: Delimiter{delimiter: delim}, capacity: capacity}
}

func (d *OwnedDelimiter) DecodeOwned(src []byte) (item []byte, n int, ok bool, err error) {
	frame, n, ok, err := d.inner.Decode(src)
	if !ok || err != nil {
		return nil, n, ok, err
	}
	out, err := copyBounded(frame, d.capacity)
	if err != nil {
		return nil, 0, false, err
	}
	return out, n, true, nil
}

func (d *OwnedDelimiter) Encode(item []byte, dst []byte) (n int, err error) {
	return d.inner.Encode(item, dst)
}
