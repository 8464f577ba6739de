// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package obslog provides a minimal, purely-observational logging backend
// for the framer driver. The default backend is Noop: nothing is logged and
// nothing is allocated. Callers that want visibility into the framing
// session select a concrete backend (e.g. NewLogrus) via framer.WithLogger.
package obslog

// Logger is the narrow surface the driver needs. Implementations must not
// change framing behavior or return errors: logging is observational only.
type Logger interface {
	Tracef(format string, args ...any)
	Debugf(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Noop discards everything. It is the default backend and keeps the
// framing hot path allocation-free.
type Noop struct{}

func (Noop) Tracef(string, ...any) {}
func (Noop) Debugf(string, ...any) {}
func (Noop) Warnf(string, ...any)  {}
func (Noop) Errorf(string, ...any) {}
