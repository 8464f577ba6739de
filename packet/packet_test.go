// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package packet_test

import (
	"errors"
	"testing"

	"github.com/streamframe/frameio/packet"
)

func roundTrip(t *testing.T, content packet.PayloadContent) packet.Packet {
	t.Helper()
	c := packet.NewCodec()
	dst := make([]byte, 256)

	n, err := c.Encode(packet.New(content), dst)
	if err != nil {
		t.Fatalf("Encode(%v): %v", content, err)
	}

	got, consumed, ok, err := c.Decode(dst[:n])
	if err != nil || !ok {
		t.Fatalf("Decode(%v): %v, %v, %v", content, consumed, ok, err)
	}
	if consumed != n {
		t.Fatalf("consumed = %d want %d", consumed, n)
	}
	return got
}

func TestPacket_RoundTrip_AllPayloadTypes(t *testing.T) {
	items := []packet.PayloadContent{
		packet.Init{SequenceNumber: 0, Version: "1.0.0"},
		packet.InitAck{SequenceNumber: 0, Version: "1.0.0"},
		packet.Heartbeat{SequenceNumber: 1},
		packet.HeartbeatAck{SequenceNumber: 1},
		packet.DeviceConfig{SequenceNumber: 2, Config: "very-important-config"},
		packet.DeviceConfigAck{SequenceNumber: 2},
	}

	for _, want := range items {
		got := roundTrip(t, want)
		if got.Payload.Content != want {
			t.Fatalf("round trip = %#v, want %#v", got.Payload.Content, want)
		}
	}
}

func TestPacket_Decode_NeedsMoreBytes(t *testing.T) {
	c := packet.NewCodec()
	dst := make([]byte, 256)

	n, err := c.Encode(packet.New(packet.Heartbeat{SequenceNumber: 7}), dst)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	// Feed everything but the last byte: must report "not yet", not an error.
	_, _, ok, derr := c.Decode(dst[:n-1])
	if ok || derr != nil {
		t.Fatalf("Decode(partial) ok=%v err=%v, want false, nil", ok, derr)
	}
}

func TestPacket_Decode_SingleBitFlip_ChecksumError(t *testing.T) {
	items := []packet.PayloadContent{
		packet.Init{SequenceNumber: 0, Version: "1.0.0"},
		packet.InitAck{SequenceNumber: 0, Version: "1.0.0"},
		packet.Heartbeat{SequenceNumber: 1},
		packet.HeartbeatAck{SequenceNumber: 1},
		packet.DeviceConfig{SequenceNumber: 2, Config: "very-important-config"},
		packet.DeviceConfigAck{SequenceNumber: 2},
	}

	c := packet.NewCodec()

	for _, item := range items {
		dst := make([]byte, 256)
		n, err := c.Encode(packet.New(item), dst)
		if err != nil {
			t.Fatalf("Encode(%v): %v", item, err)
		}
		encoded := dst[:n]

		for bit := 0; bit < n*8; bit++ {
			corrupted := make([]byte, n)
			copy(corrupted, encoded)
			corrupted[bit/8] ^= 1 << uint(bit%8)

			_, _, ok, derr := c.Decode(corrupted)
			if ok {
				// Flipping a bit inside the packet_length field can grow
				// the declared length past the bytes present and be
				// reported as "not enough bytes yet", and flipping a bit in
				// payload_type can be reported as ErrUnknownPayloadType,
				// rather than a checksum mismatch; that is allowed, but an
				// accepted frame must never happen.
				t.Fatalf("Decode accepted a corrupted packet (item=%v, bit=%d)", item, bit)
			}
			if derr != nil && !errors.Is(derr, packet.ErrChecksum) && !errors.Is(derr, packet.ErrUnknownPayloadType) {
				t.Fatalf("Decode(corrupted bit=%d) err = %v, want ErrChecksum, ErrUnknownPayloadType, or nil (need-more-bytes)", bit, derr)
			}
		}
	}
}
