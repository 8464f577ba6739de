// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package framer

import "io"

// stepReadOwned is stepRead's owned-decoder counterpart. It is kept as a
// separate function, duplicating the state machine, rather than sharing one
// generic implementation: the owned path hands back a plain Item (safe to
// keep past the next Step) instead of a Borrowed[Item], so the two driving
// loops diverge at exactly the point where the decoded item is returned.
func stepReadOwned[Item any](
	state *ReadState,
	r io.Reader,
	opts *Options,
	decodeOwned func(src []byte) (Item, int, bool, error),
	decodeEOFOwnedFn func(src []byte) (Item, int, bool, error),
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
			log.Tracef("framer: decoding owned at eof")

			it, n, ok, derr := decodeEOFOwnedFn(state.buffer[state.totalConsumed:state.index])
			if derr != nil {
				log.Errorf("framer: decode owned at eof failed: %v", derr)
				return item, StepError, decodeReadError(derr)
			}
			if ok {
				state.totalConsumed += n
				state.gen++
				log.Debugf("framer: frame decoded owned at eof")
				return it, StepFrame, nil
			}

			state.isFramable = false
			if state.index != state.totalConsumed {
				log.Errorf("framer: bytes remaining on stream")
				return item, StepError, &ReadError{Err: ErrBytesRemainingOnStream}
			}
			return item, StepDone, nil
		}

		log.Tracef("framer: decoding owned")

		bufLen := len(state.buffer)
		it, n, ok, derr := decodeOwned(state.buffer[state.totalConsumed:state.index])
		if derr != nil {
			log.Errorf("framer: decode owned failed: %v", derr)
			return item, StepError, decodeReadError(derr)
		}
		if ok {
			state.totalConsumed += n
			state.gen++
			log.Debugf("framer: frame decoded owned")
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
