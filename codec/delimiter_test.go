// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package codec_test

import (
	"errors"
	"testing"

	"github.com/streamframe/frameio/codec"
)

func TestDelimiter_Decode_Basic(t *testing.T) {
	d := codec.NewDelimiter([]byte("##"))
	src := []byte("first##second##")

	item1, n1, ok, err := d.Decode(src)
	if err != nil || !ok || string(item1) != "first" {
		t.Fatalf("first frame: %q %v %v %v", item1, n1, ok, err)
	}

	item2, _, ok, err := d.Decode(src[n1:])
	if err != nil || !ok || string(item2) != "second" {
		t.Fatalf("second frame: %q %v %v", item2, ok, err)
	}
}

func TestDelimiter_Decode_NotEnoughBytes(t *testing.T) {
	d := codec.NewDelimiter([]byte("##"))
	_, _, ok, err := d.Decode([]byte("#"))
	if ok || err != nil {
		t.Fatalf("Decode ok=%v err=%v, want false, nil", ok, err)
	}
}

func TestDelimiter_Decode_PartialDelimiterDoesNotMatch(t *testing.T) {
	d := codec.NewDelimiter([]byte("##"))
	// A single '#' followed by non-'#' must not trigger a false match.
	_, _, ok, err := d.Decode([]byte("a#bcd"))
	if ok || err != nil {
		t.Fatalf("Decode ok=%v err=%v, want false, nil", ok, err)
	}
}

func TestDelimiter_Encode(t *testing.T) {
	d := codec.NewDelimiter([]byte("##"))
	dst := make([]byte, 16)
	n, err := d.Encode([]byte("abc"), dst)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if got := string(dst[:n]); got != "abc##" {
		t.Fatalf("encoded = %q", got)
	}
}

func TestDelimiter_Encode_BufferTooSmall(t *testing.T) {
	d := codec.NewDelimiter([]byte("##"))
	dst := make([]byte, 2)
	if _, err := d.Encode([]byte("abc"), dst); !errors.Is(err, codec.ErrBufferTooSmall) {
		t.Fatalf("Encode err = %v want ErrBufferTooSmall", err)
	}
}

func TestOwnedDelimiter_RoundTrip(t *testing.T) {
	d := codec.NewOwnedDelimiter([]byte("||"), 32)
	dst := make([]byte, 32)

	n, err := d.Encode([]byte("payload"), dst)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	item, consumed, ok, err := d.DecodeOwned(dst[:n])
	if err != nil || !ok {
		t.Fatalf("DecodeOwned: %v, %v, %v, %v", item, consumed, ok, err)
	}
	if string(item) != "payload" {
		t.Fatalf("item = %q", item)
	}
}

func TestOwnedDelimiter_CapacityExceeded(t *testing.T) {
	d := codec.NewOwnedDelimiter([]byte("##"), 2)
	_, _, ok, err := d.DecodeOwned([]byte("toolong##"))
	if ok || !errors.Is(err, codec.ErrCapacityExceeded) {
		t.Fatalf("DecodeOwned ok=%v err=%v, want false, ErrCapacityExceeded", ok, err)
	}
}
