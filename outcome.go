// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package framer

// StepOutcome classifies the result of one Step call.
type StepOutcome int

const (
	// StepProgress means no frame was produced by this Step; the buffer
	// was shifted, bytes were read, or the codec asked for more bytes.
	// Call Step again.
	StepProgress StepOutcome = iota
	// StepFrame means a frame was produced. Call Step again for the next
	// one.
	StepFrame
	// StepDone means end of stream was reached cleanly; stop calling Step.
	StepDone
	// StepError means a terminal error occurred; stop calling Step. The
	// error is also returned alongside this outcome.
	StepError
)

func (o StepOutcome) String() string {
	switch o {
	case StepProgress:
		return "progress"
	case StepFrame:
		return "frame"
	case StepDone:
		return "done"
	case StepError:
		return "error"
	default:
		return "unknown"
	}
}
