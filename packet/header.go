// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package packet

import (
	"encoding/binary"
	"hash/crc32"
)

// headerSize is the fixed wire size of header: packet_length (2 bytes),
// payload_type (2 bytes), checksum (4 bytes), all big-endian.
const headerSize = 8

// header is the fixed-size prefix of every packet on the wire.
type header struct {
	packetLength uint16
	payloadType  uint16
	checksum     uint32
}

// calculateChecksum returns the CRC-32 (IEEE polynomial) of data. There is
// no third-party CRC-32 implementation anywhere in the reference corpus;
// hash/crc32 is the only candidate and matches the original's crc32fast use
// byte for byte (crc32fast defaults to the IEEE polynomial).
func calculateChecksum(data []byte) uint32 {
	return crc32.ChecksumIEEE(data)
}

func (h *header) marshal(dst []byte) {
	binary.BigEndian.PutUint16(dst[0:2], h.packetLength)
	binary.BigEndian.PutUint16(dst[2:4], h.payloadType)
	binary.BigEndian.PutUint32(dst[4:8], h.checksum)
}

func unmarshalHeader(src []byte) header {
	return header{
		packetLength: binary.BigEndian.Uint16(src[0:2]),
		payloadType:  binary.BigEndian.Uint16(src[2:4]),
		checksum:     binary.BigEndian.Uint32(src[4:8]),
	}
}

func (h *header) payloadLength() int {
	return int(h.packetLength) - headerSize
}
