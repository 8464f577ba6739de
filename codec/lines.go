// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package codec

import "unicode/utf8"

// Lines decodes bytes into newline-terminated lines (accepting both "\n"
// and "\r\n") and encodes a line by appending "\r\n".
//
// Lines carries scan progress (seen) relative to the buffer it is currently
// decoding; a single Lines value must not be shared across two independent
// framing sessions.
type Lines struct {
	seen int
}

// NewLines creates a new Lines codec.
func NewLines() *Lines { return &Lines{} }

func (l *Lines) Decode(src []byte) (item []byte, n int, ok bool, err error) {
	for l.seen < len(src) {
		if src[l.seen] != '\n' {
			l.seen++
			continue
		}

		end := l.seen
		if end > 0 && src[end-1] == '\r' {
			end--
		}
		line := src[:end]
		consumed := l.seen + 1
		l.seen = 0
		return line, consumed, true, nil
	}
	return nil, 0, false, nil
}

func (l *Lines) Encode(item []byte, dst []byte) (n int, err error) {
	size := len(item) + 2
	if len(dst) < size {
		return 0, ErrBufferTooSmall
	}
	copy(dst, item)
	dst[len(item)] = '\r'
	dst[len(item)+1] = '\n'
	return size, nil
}

// StrLines is Lines restricted to valid-UTF-8 lines, decoding into string
// rather than []byte.
type StrLines struct {
	inner Lines
}

// NewStrLines creates a new StrLines codec.
func NewStrLines() *StrLines { return &StrLines{} }

func (l *StrLines) Decode(src []byte) (item string, n int, ok bool, err error) {
	bytes, n, ok, err := l.inner.Decode(src)
	if !ok || err != nil {
		return "", n, ok, err
	}
	if !utf8.Valid(bytes) {
		return "", 0, false, ErrInvalidUTF8
	}
	return string(bytes), n, true, nil
}

func (l *StrLines) Encode(item string, dst []byte) (n int, err error) {
	return l.inner.Encode([]byte(item), dst)
}

// OwnedLines decodes into a freshly-copied []byte capped at capacity, safe
// to retain past the next Step.
type OwnedLines struct {
	inner    Lines
	capacity int
}

// NewOwnedLines creates an OwnedLines codec that rejects lines longer than
// capacity with ErrCapacityExceeded.
func NewOwnedLines(capacity int) *OwnedLines { return &OwnedLines{capacity: capacity} }

func (l *OwnedLines) DecodeOwned(src []byte) (item []byte, n int, ok bool, err error) {
	line, n, ok, err := l.inner.Decode(src)
	if !ok || err != nil {
		return nil, n, ok, err
	}
	out, err := copyBounded(line, l.capacity)
	if err != nil {
		return nil, 0, false, err
	}
	return out, n, true, nil
}

func (l *OwnedLines) Encode(item []byte, dst []byte) (n int, err error) {
	return l.inner.Encode(item, dst)
}

// StringLines is OwnedLines restricted to valid-UTF-8 lines, decoding into
// string and capped at capacity bytes.
type StringLines struct {
	inner    StrLines
	capacity int
}

// NewStringLines creates a StringLines codec that rejects lines longer than
// capacity with ErrCapacityExceeded.
func NewStringLines(capacity int) *StringLines { return &StringLines{capacity: capacity} }

func (l *StringLines) DecodeOwned(src []byte) (item string, n int, ok bool, err error) {
	line, n, ok, err := l.inner.Decode(src)
	if !ok || err != nil {
		return "", n, ok, err
	}
	if len(line) > l.capacity {
		return "", 0, false, ErrCapacityExceeded
	}
	return line, n, true, nil
}

func (l *StringLines) Encode(item string, dst []byte) (n int, err error) {
	return l.inner.Encode(item, dst)
}
