// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package framer

import (
	"runtime"
	"time"

	"code.hybscloud.com/iox"
)

// These are provided as package-level aliases so callers can recognize the
// non-blocking control-flow signals without importing iox directly.
var (
	// ErrWouldBlock means "no further progress without waiting". It is an
	// expected, non-failure control-flow signal from a non-blocking
	// transport. Step/Send return it directly (not wrapped in ReadError/
	// WriteError) so callers can type-switch on it and retry.
	ErrWouldBlock = iox.ErrWouldBlock

	// ErrMore means "this completion is usable and more will follow". It
	// is not io.EOF and not "try later".
	ErrMore = iox.ErrMore
)

func isRetrySignal(err error) bool {
	return err == ErrWouldBlock || err == ErrMore
}

// waitOnce applies the configured retry policy for one ErrWouldBlock/ErrMore
// occurrence. It returns whether the caller should retry the operation.
func waitOnce(retryDelay time.Duration) bool {
	if retryDelay < 0 {
		return false
	}
	if retryDelay == 0 {
		runtime.Gosched()
		return true
	}
	time.Sleep(retryDelay)
	return true
}
