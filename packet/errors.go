// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package packet

import (
	"errors"
	"fmt"
)

var (
	// ErrBufferTooSmall is returned when dst cannot fit an encoded packet.
	ErrBufferTooSmall = errors.New("packet: buffer too small")

	// ErrUnknownPayloadType is returned when a header names a payload type
	// this package does not recognize, or declares a packet_length shorter
	// than the header itself.
	ErrUnknownPayloadType = errors.New("packet: unknown payload type")

	// ErrChecksum is returned when a packet's received checksum does not
	// match the checksum calculated over the packet bytes.
	ErrChecksum = errors.New("packet: checksum mismatch")
)

// PayloadEncodeError wraps a failure to serialize a payload's content.
type PayloadEncodeError struct{ Err error }

func (e *PayloadEncodeError) Error() string { return fmt.Sprintf("packet: encode payload: %s", e.Err) }
func (e *PayloadEncodeError) Unwrap() error  { return e.Err }

// PayloadDecodeError wraps a failure to deserialize a payload's content.
type PayloadDecodeError struct{ Err error }

func (e *PayloadDecodeError) Error() string { return fmt.Sprintf("packet: decode payload: %s", e.Err) }
func (e *PayloadDecodeError) Unwrap() error  { return e.Err }
