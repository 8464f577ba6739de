// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package framer_test

import (
	"errors"
	"testing"

	"github.com/streamframe/frameio"
	"github.com/streamframe/frameio/codec"
)

func TestFramedRead_NilReader_InvalidArgument(t *testing.T) {
	fr := framer.NewFramedRead[[]byte](codec.NewLines(), nil, make([]byte, 16))

	_, outcome, err := fr.Step()
	if outcome != framer.StepError || !errors.Is(err, framer.ErrInvalidArgument) {
		t.Fatalf("Step() = outcome=%v err=%v, want StepError/ErrInvalidArgument", outcome, err)
	}
}

func TestFramedWrite_NilWriter_InvalidArgument(t *testing.T) {
	fw := framer.NewFramedWrite[[]byte](codec.NewBytes(), nil, make([]byte, 16))

	if err := fw.Send([]byte("x")); !errors.Is(err, framer.ErrInvalidArgument) {
		t.Fatalf("Send() = %v, want ErrInvalidArgument", err)
	}
}

func TestReadError_ErrorString_DistinguishesDecodeVsIO(t *testing.T) {
	ioErr := &framer.ReadError{Err: errors.New("boom")}
	decodeErr := &framer.ReadError{Err: errors.New("boom"), Decode: true}

	if got := ioErr.Error(); got == decodeErr.Error() {
		t.Fatalf("IO and decode ReadError strings should differ, both = %q", got)
	}
}

func TestWriteError_Unwrap(t *testing.T) {
	sentinel := errors.New("boom")
	werr := &framer.WriteError{Err: sentinel}
	if !errors.Is(werr, sentinel) {
		t.Fatalf("errors.Is(werr, sentinel) = false, want true")
	}
}
