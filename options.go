// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package framer

import (
	"time"

	"github.com/streamframe/frameio/internal/obslog"
)

// Options configures framing behavior. Every field is a build-time choice
// in the sense that it is fixed for the lifetime of one Framed/FramedRead/
// FramedWrite session; none of it is meant to change mid-session.
type Options struct {
	// EarlyShift selects the buffer compaction policy (spec: "buffer-early-shift").
	//   - false (default): shift only when the buffer is full ("compact-only-
	//     when-full"): fewer copies, later headroom.
	//   - true: shift whenever total_consumed > 0 ("compact-on-any-consumed"):
	//     more copies, earlier headroom.
	EarlyShift bool

	// Logger receives purely observational trace/debug/warn/error calls.
	// Defaults to obslog.Noop{}, which discards everything and allocates
	// nothing.
	Logger obslog.Logger

	// RetryDelay controls how the driver handles iox.ErrWouldBlock /
	// iox.ErrMore from a non-blocking transport:
	//   - negative: return the signal to the caller immediately.
	//   - zero: yield (runtime.Gosched) and retry.
	//   - positive: sleep for the duration and retry.
	// Ordinary blocking io.Reader/io.Writer transports never produce these
	// signals, so RetryDelay has no effect on them.
	RetryDelay time.Duration
}

var defaultOptions = Options{
	EarlyShift: false,
	Logger:     obslog.Noop{},
	RetryDelay: -1,
}

// Option mutates Options at construction time.
type Option func(*Options)

// WithEarlyShift enables compact-on-any-consumed compaction.
func WithEarlyShift() Option {
	return func(o *Options) { o.EarlyShift = true }
}

// WithLogger selects an observational logging backend. Passing nil resets
// to the no-op default.
func WithLogger(l obslog.Logger) Option {
	return func(o *Options) {
		if l == nil {
			l = obslog.Noop{}
		}
		o.Logger = l
	}
}

// WithRetryDelay sets the retry/wait policy used when the underlying
// transport reports iox.ErrWouldBlock or iox.ErrMore.
func WithRetryDelay(d time.Duration) Option {
	return func(o *Options) { o.RetryDelay = d }
}

// WithBlock enables cooperative blocking (yield-and-retry) on ErrWouldBlock.
func WithBlock() Option {
	return func(o *Options) { o.RetryDelay = 0 }
}

// WithNonblock forces non-blocking behavior: ErrWouldBlock/ErrMore are
// returned to the caller immediately. This is the default.
func WithNonblock() Option {
	return func(o *Options) { o.RetryDelay = -1 }
}

func resolveOptions(opts []Option) Options {
	o := defaultOptions
	for _, fn := range opts {
		fn(&o)
	}
	return o
}
