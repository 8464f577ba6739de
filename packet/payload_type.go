// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package packet implements a small example wire protocol on top of
// framer: an 8-byte checksummed header followed by a JSON payload, used to
// demonstrate a symmetric Decoder+Encoder codec.
package packet

// PayloadType identifies which PayloadContent variant a packet carries.
type PayloadType uint16

const (
	PayloadTypeInit PayloadType = iota + 1
	PayloadTypeInitAck
	PayloadTypeHeartbeat
	PayloadTypeHeartbeatAck
	PayloadTypeDeviceConfig
	PayloadTypeDeviceConfigAck
)

func (t PayloadType) valid() bool {
	return t >= PayloadTypeInit && t <= PayloadTypeDeviceConfigAck
}

func (t PayloadType) String() string {
	switch t {
	case PayloadTypeInit:
		return "Init"
	case PayloadTypeInitAck:
		return "InitAck"
	case PayloadTypeHeartbeat:
		return "Heartbeat"
	case PayloadTypeHeartbeatAck:
		return "HeartbeatAck"
	case PayloadTypeDeviceConfig:
		return "DeviceConfig"
	case PayloadTypeDeviceConfigAck:
		return "DeviceConfigAck"
	default:
		return "Unknown"
	}
}
