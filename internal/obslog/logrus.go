// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package obslog

import "github.com/sirupsen/logrus"

// LogrusLogger adapts a *logrus.Logger (or logrus.Entry-compatible field
// logger) to Logger.
type LogrusLogger struct {
	entry *logrus.Entry
}

// NewLogrus wraps l, tagging every record with target for correlation
// between the read and write drivers.
func NewLogrus(l *logrus.Logger, target string) *LogrusLogger {
	if l == nil {
		l = logrus.StandardLogger()
	}
	return &LogrusLogger{entry: l.WithField("target", target)}
}

func (l *LogrusLogger) Tracef(format string, args ...any) { l.entry.Tracef(format, args...) }
func (l *LogrusLogger) Debugf(format string, args ...any) { l.entry.Debugf(format, args...) }
func (l *LogrusLogger) Warnf(format string, args ...any)  { l.entry.Warnf(format, args...) }
func (l *LogrusLogger) Errorf(format string, args ...any) { l.entry.Errorf(format, args...) }
