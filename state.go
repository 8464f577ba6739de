// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package framer

// ReadState holds the bookkeeping a framing session needs between Step
// calls: how much of buffer is valid, how much of that has already been
// handed out as frames, and whether the source has reached end of stream.
//
// Invariants, enforced by Step and never otherwise:
//
//	I1: totalConsumed <= index <= len(buffer)
//	I2: after a decoded frame, totalConsumed grows by exactly the size the
//	    decoder reported; index is unchanged.
//	I3: after a shift, index -= totalConsumed, totalConsumed = 0, and
//	    buffer[:newIndex] equals the pre-shift buffer[oldTotalConsumed:oldIndex].
//	I4: eof is monotone.
//	I5: while isFramable is true, Step never reads from the source.
type ReadState struct {
	buffer []byte

	index         int
	totalConsumed int
	eof           bool
	isFramable    bool
	shift         bool

	// gen increments on every FramedRead.Step call (and again whenever
	// buffer contents or the consumed/index bookkeeping change), so a
	// Borrowed value handed out by a prior Step no longer matches it.
	// See borrow.go.
	gen uint64
}

// NewReadState creates a ReadState over buffer. buffer is owned by the
// caller for the lifetime of the framing session; the session must not be
// reused over a different buffer (codec progress, e.g. Lines.seen, indexes
// positions within this exact region).
func NewReadState(buffer []byte) *ReadState {
	return &ReadState{buffer: buffer}
}

// framable returns the number of bytes available for a decode attempt.
func (s *ReadState) framable() int {
	return s.index - s.totalConsumed
}

// WriteState is scratch space for one Send call; it carries no persistent
// state between calls.
type WriteState struct {
	buffer []byte
}

// NewWriteState creates a WriteState over buffer.
func NewWriteState(buffer []byte) *WriteState {
	return &WriteState{buffer: buffer}
}
