// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package framer

import (
	"io"
	"time"
)

// writeAll writes all of p to w, retrying on short writes and on
// iox.ErrWouldBlock/ErrMore per the configured retry policy.
func writeAll(w io.Writer, p []byte, retryDelay time.Duration) error {
	for len(p) > 0 {
		n, err := w.Write(p)
		if n > 0 {
			p = p[n:]
		}
		if err != nil {
			if isRetrySignal(err) {
				if n > 0 {
					continue
				}
				if waitOnce(retryDelay) {
					continue
				}
			}
			return err
		}
		if n == 0 {
			return io.ErrShortWrite
		}
	}
	return nil
}

// send implements encode -> write-all -> flush. state.buffer is scratch
// space reused across calls; it carries no state between them.
func send[Item any](
	state *WriteState,
	w io.Writer,
	opts *Options,
	encode func(item Item, dst []byte) (int, error),
	item Item,
) error {
	if w == nil {
		return ErrInvalidArgument
	}

	log := opts.Logger

	n, eerr := encode(item, state.buffer)
	if eerr != nil {
		log.Errorf("framer: encode failed: %v", eerr)
		return encodeWriteError(eerr)
	}

	if err := writeAll(w, state.buffer[:n], opts.RetryDelay); err != nil {
		if isRetrySignal(err) {
			return err
		}
		log.Errorf("framer: write failed: %v", err)
		return ioWriteError(err)
	}

	log.Tracef("framer: wrote bytes")

	if flusher, ok := w.(interface{ Flush() error }); ok {
		if err := flusher.Flush(); err != nil {
			if isRetrySignal(err) {
				return err
			}
			log.Errorf("framer: flush failed: %v", err)
			return ioWriteError(err)
		}
	}

	log.Debugf("framer: flushed")
	return nil
}
