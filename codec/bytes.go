// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package codec

// Bytes is a passthrough codec: every Decode call frames the entirety of
// the bytes currently available, and Encode copies item verbatim. It is
// useful for packet-preserving transports where the transport already
// delivers one message per read.
type Bytes struct{}

// NewBytes creates a new Bytes codec.
func NewBytes() Bytes { return Bytes{} }

// Decode always succeeds when src is non-empty, consuming all of it.
func (Bytes) Decode(src []byte) (item []byte, n int, ok bool, err error) {
	if len(src) == 0 {
		return nil, 0, false, nil
	}
	return src, len(src), true, nil
}

// Encode copies item into dst.
func (Bytes) Encode(item []byte, dst []byte) (n int, err error) {
	if len(dst) < len(item) {
		return 0, ErrBufferTooSmall
	}
	return copy(dst, item), nil
}

// OwnedBytes is Bytes' owned counterpart: DecodeOwned copies into a
// freshly-allocated []byte, capped at capacity, rather than aliasing the
// read buffer.
type OwnedBytes struct {
	inner    Bytes
	capacity int
}

// NewOwnedBytes creates an OwnedBytes codec that rejects frames larger than
// capacity with ErrCapacityExceeded.
func NewOwnedBytes(capacity int) OwnedBytes { return OwnedBytes{capacity: capacity} }

func (c OwnedBytes) DecodeOwned(src []byte) (item []byte, n int, ok bool, err error) {
	frame, n, ok, err := c.inner.Decode(src)
	if !ok || err != nil {
		return nil, n, ok, err
	}
	out, err := copyBounded(frame, c.capacity)
	if err != nil {
		return nil, 0, false, err
	}
	return out, n, true, nil
}

func (c OwnedBytes) Encode(item []byte, dst []byte) (n int, err error) {
	return c.inner.Encode(item, dst)
}
