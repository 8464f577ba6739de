// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package framer

import "io"

// FramedRead drives a borrowed Decoder over an io.Reader.
type FramedRead[Item any] struct {
	codec Decoder[Item]
	r     io.Reader
	state *ReadState
	opts  Options
}

// Step advances the state machine by one unit of work: a buffer shift, a
// transport read, or a decode attempt. See StepOutcome for how to interpret
// the result.
//
// On StepFrame, the returned Borrowed[Item] is only valid until the next
// Step call on this FramedRead.
func (f *FramedRead[Item]) Step() (Borrowed[Item], StepOutcome, error) {
	// Every Step ends the validity of Borrowed values handed out earlier,
	// whether or not this particular step touches the buffer.
	f.state.gen++
	item, outcome, err := stepRead[Item](f.state, f.r, &f.opts, f.codec.Decode, func(src []byte) (Item, int, bool, error) {
		return decodeEOF[Item](f.codec, src)
	})
	if outcome != StepFrame {
		var zero Item
		return newBorrowed(zero, f.state), outcome, err
	}
	return newBorrowed(item, f.state), outcome, err
}

// Next calls Step in a loop until a frame is produced, the stream ends, or
// an error (including a retry signal) occurs.
func (f *FramedRead[Item]) Next() (Borrowed[Item], bool, error) {
	for {
		item, outcome, err := f.Step()
		switch outcome {
		case StepFrame:
			return item, true, nil
		case StepDone:
			return item, false, nil
		case StepError:
			return item, false, err
		default:
			if err != nil {
				return item, false, err
			}
		}
	}
}

// Sequence adapts Next into an iter.Seq2 suitable for range-over-func.
// Iteration stops after the first error (including end of stream, which
// yields no final element) or when the consumer breaks out of the loop.
func (f *FramedRead[Item]) Sequence() func(yield func(Item, error) bool) {
	return func(yield func(Item, error) bool) {
		for {
			b, ok, err := f.Next()
			if err != nil {
				var zero Item
				yield(zero, err)
				return
			}
			if !ok {
				return
			}
			item, gerr := b.Get()
			if !yield(item, gerr) {
				return
			}
		}
	}
}

// IntoParts disassembles the engine, returning the buffer it was
// constructed with. The FramedRead must not be used afterward.
func (f *FramedRead[Item]) IntoParts() (r io.Reader, buf []byte) {
	return f.r, f.state.buffer
}

// FramedReadOwned drives an OwnedDecoder over an io.Reader. Unlike
// FramedRead, items it returns are self-contained and remain valid past
// later Step calls.
type FramedReadOwned[Item any] struct {
	codec OwnedDecoder[Item]
	r     io.Reader
	state *ReadState
	opts  Options
}

func (f *FramedReadOwned[Item]) Step() (Item, StepOutcome, error) {
	return stepReadOwned[Item](f.state, f.r, &f.opts, f.codec.DecodeOwned, func(src []byte) (Item, int, bool, error) {
		return decodeEOFOwned[Item](f.codec, src)
	})
}

func (f *FramedReadOwned[Item]) Next() (Item, bool, error) {
	for {
		item, outcome, err := f.Step()
		switch outcome {
		case StepFrame:
			return item, true, nil
		case StepDone:
			return item, false, nil
		case StepError:
			return item, false, err
		default:
			if err != nil {
				return item, false, err
			}
		}
	}
}

// Sequence adapts Next into an iter.Seq2 suitable for range-over-func.
func (f *FramedReadOwned[Item]) Sequence() func(yield func(Item, error) bool) {
	return func(yield func(Item, error) bool) {
		for {
			item, ok, err := f.Next()
			if err != nil {
				yield(item, err)
				return
			}
			if !ok {
				return
			}
			if !yield(item, nil) {
				return
			}
		}
	}
}

func (f *FramedReadOwned[Item]) IntoParts() (r io.Reader, buf []byte) {
	return f.r, f.state.buffer
}

// FramedWrite drives an Encoder over an io.Writer.
type FramedWrite[Item any] struct {
	codec Encoder[Item]
	w     io.Writer
	state *WriteState
	opts  Options
}

// Send encodes item and writes it in full, retrying short writes and
// flushing when w implements an optional Flush() error method.
func (f *FramedWrite[Item]) Send(item Item) error {
	return send[Item](f.state, f.w, &f.opts, f.codec.Encode, item)
}

// Sink returns a Sink view of this engine: repeated Send calls, one item at
// a time, with no batching.
func (f *FramedWrite[Item]) Sink() Sink[Item] {
	return Sink[Item]{send: f.Send}
}

func (f *FramedWrite[Item]) IntoParts() (w io.Writer, buf []byte) {
	return f.w, f.state.buffer
}

// Framed combines a FramedRead and a FramedWrite over the same
// io.ReadWriter, for a codec that both decodes and encodes the same Item.
type Framed[Item any] struct {
	*FramedRead[Item]
	*FramedWrite[Item]
	rw io.ReadWriter
}

// IntoParts disassembles both halves, returning the shared io.ReadWriter
// and each half's buffer.
func (f *Framed[Item]) IntoParts() (rw io.ReadWriter, readBuf, writeBuf []byte) {
	_, readBuf = f.FramedRead.IntoParts()
	_, writeBuf = f.FramedWrite.IntoParts()
	return f.rw, readBuf, writeBuf
}
