// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package framer

import (
	"io"
	"time"
)

// readOnce performs one transport read, applying the configured retry
// policy across iox.ErrWouldBlock/ErrMore occurrences. It never retries on
// any other error.
func readOnce(r io.Reader, p []byte, retryDelay time.Duration) (int, error) {
	for {
		n, err := r.Read(p)
		if n > 0 || err == nil || err == io.EOF {
			return n, err
		}
		if !isRetrySignal(err) {
			return n, err
		}
		if !waitOnce(retryDelay) {
			return n, err
		}
	}
}

// stepRead drives one state-machine step shared by FramedRead and Framed's
// read half. decode/decodeEOFFn are the codec's borrowed decode calls; the
// returned item, when ok, is wrapped by the caller into a Borrowed[Item].
//
// The branch order below is the contract, not an implementation detail:
// shift, then framable/EOF, then framable/non-EOF, then buffer-full, then
// read. See ReadState's doc comment for the invariants this maintains.
func stepRead[Item any](
	state *ReadState,
	r io.Reader,
	opts *Options,
	decode func(src []byte) (Item, int, bool, error),
	decodeEOFFn func(src []byte) (Item, int, bool, error),
) (item Item, outcome StepOutcome, err error) {
	if r == nil {
		return item, StepError, ErrInvalidArgument
	}

	log := opts.Logger

	if state.shift {
		copy(state.buffer, state.buffer[state.totalConsumed:state.index])
		state.index -= state.totalConsumed
		state.totalConsumed = 0
		state.shift = false
		state.gen++
		log.Tracef("framer: shifted")
		return item, StepProgress, nil
	}

	if state.isFramable {
		if state.eof {
			log.Tracef("framer: decoding at eof")

			it, n, ok, derr := decodeEOFFn(state.buffer[state.totalConsumed:state.index])
			if derr != nil {
				log.Errorf("framer: decode at eof failed: %v", derr)
				return item, StepError, decodeReadError(derr)
			}
			if ok {
				state.totalConsumed += n
				state.gen++
				log.Debugf("framer: frame decoded at eof")
				return it, StepFrame, nil
			}

			state.isFramable = false
			if state.index != state.totalConsumed {
				log.Errorf("framer: bytes remaining on stream")
				return item, StepError, &ReadError{Err: ErrBytesRemainingOnStream}
			}
			return item, StepDone, nil
		}

		log.Tracef("framer: decoding")

		bufLen := len(state.buffer)
		it, n, ok, derr := decode(state.buffer[state.totalConsumed:state.index])
		if derr != nil {
			log.Errorf("framer: decode failed: %v", derr)
			return item, StepError, decodeReadError(derr)
		}
		if ok {
			state.totalConsumed += n
			state.gen++
			log.Debugf("framer: frame decoded")
			return it, StepFrame, nil
		}

		if opts.EarlyShift {
			state.shift = state.totalConsumed > 0
		} else {
			state.shift = state.index >= bufLen
		}
		state.isFramable = false
		return item, StepProgress, nil
	}

	if state.index >= len(state.buffer) {
		log.Errorf("framer: buffer too small")
		return item, StepError, &ReadError{Err: ErrBufferTooSmall}
	}

	log.Tracef("framer: reading")

	n, rerr := readOnce(r, state.buffer[state.index:], opts.RetryDelay)

	// Bytes the transport already handed back must be folded into the
	// buffer before the control-flow switch below decides what to return:
	// a retry signal (ErrWouldBlock/ErrMore) can accompany n>0, and those
	// bytes must not be dropped while the caller retries.
	if n > 0 {
		state.index += n
		state.isFramable = true
		if rerr == io.EOF {
			state.eof = true
		}
		state.gen++
		log.Debugf("framer: read bytes")
	}

	switch {
	case rerr != nil && rerr != io.EOF && !isRetrySignal(rerr):
		log.Errorf("framer: read failed: %v", rerr)
		return item, StepError, ioReadError(rerr)
	case isRetrySignal(rerr):
		return item, StepProgress, rerr
	case n == 0:
		log.Warnf("framer: got eof")
		state.eof = true
		state.isFramable = true
		state.gen++
		return item, StepProgress, nil
	default:
		return item, StepProgress, nil
	}
}
