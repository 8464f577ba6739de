// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package packet

// Packet is one wire message: a checksummed header plus a JSON payload.
type Packet struct {
	Payload Payload
}

// New creates a Packet carrying content.
func New(content PayloadContent) Packet {
	return Packet{Payload: NewPayload(content)}
}

// writeTo encodes the packet (header + payload) into dst and returns the
// number of bytes written.
func (p Packet) writeTo(dst []byte) (int, error) {
	if len(dst) < headerSize {
		return 0, ErrBufferTooSmall
	}

	n, err := p.Payload.writeTo(dst[headerSize:])
	if err != nil {
		return 0, err
	}

	h := header{
		packetLength: uint16(headerSize + n),
		payloadType:  uint16(p.Payload.Content.PayloadType()),
	}
	h.marshal(dst[:headerSize])

	packetLen := headerSize + n
	h.checksum = calculateChecksum(dst[:packetLen])
	h.marshal(dst[:headerSize])

	return packetLen, nil
}

// maybeFromPrefix returns a Packet if src begins with a complete, valid
// packet, the number of bytes it occupies, and whether one was found. It
// returns a non-nil error on checksum mismatch, on an unrecognized payload
// type or a packet_length shorter than the header (both ErrUnknownPayloadType),
// or when the payload fails to deserialize (PayloadDecodeError) — each
// signals a malformed frame rather than "need more bytes".
func maybeFromPrefix(src []byte) (pkt Packet, n int, ok bool, err error) {
	if len(src) < headerSize {
		return Packet{}, 0, false, nil
	}

	h := unmarshalHeader(src)
	payloadLen := h.payloadLength()
	if payloadLen < 0 {
		return Packet{}, 0, false, ErrUnknownPayloadType
	}

	packetLen := headerSize + payloadLen
	if len(src) < packetLen {
		return Packet{}, 0, false, nil
	}

	payloadType := PayloadType(h.payloadType)
	if !payloadType.valid() {
		return Packet{}, 0, false, ErrUnknownPayloadType
	}

	receivedChecksum := h.checksum
	h.checksum = 0
	checkBuf := make([]byte, packetLen)
	copy(checkBuf, src[:packetLen])
	h.marshal(checkBuf[:headerSize])
	calculatedChecksum := calculateChecksum(checkBuf)

	if receivedChecksum != calculatedChecksum {
		return Packet{}, 0, false, ErrChecksum
	}

	payload, perr := payloadFromJSON(payloadType, src[headerSize:packetLen])
	if perr != nil {
		return Packet{}, 0, false, perr
	}

	return Packet{Payload: payload}, packetLen, true, nil
}
