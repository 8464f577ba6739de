// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package packet

import (
	jsoniter "github.com/json-iterator/go"
)

var payloadJSON = jsoniter.ConfigCompatibleWithStandardLibrary

// PayloadContent is implemented by every concrete payload variant.
type PayloadContent interface {
	PayloadType() PayloadType
}

// Init begins a connection handshake.
type Init struct {
	SequenceNumber uint32 `json:"sequence_number"`
	Version        string `json:"version"`
}

func (Init) PayloadType() PayloadType { return PayloadTypeInit }

// InitAck acknowledges Init.
type InitAck struct {
	SequenceNumber uint32 `json:"sequence_number"`
	Version        string `json:"version"`
}

func (InitAck) PayloadType() PayloadType { return PayloadTypeInitAck }

// Heartbeat keeps a connection alive.
type Heartbeat struct {
	SequenceNumber uint32 `json:"sequence_number"`
}

func (Heartbeat) PayloadType() PayloadType { return PayloadTypeHeartbeat }

// HeartbeatAck acknowledges Heartbeat.
type HeartbeatAck struct {
	SequenceNumber uint32 `json:"sequence_number"`
}

func (HeartbeatAck) PayloadType() PayloadType { return PayloadTypeHeartbeatAck }

// DeviceConfig carries device configuration.
type DeviceConfig struct {
	SequenceNumber uint32 `json:"sequence_number"`
	Config         string `json:"config"`
}

func (DeviceConfig) PayloadType() PayloadType { return PayloadTypeDeviceConfig }

// DeviceConfigAck acknowledges DeviceConfig.
type DeviceConfigAck struct {
	SequenceNumber uint32 `json:"sequence_number"`
}

func (DeviceConfigAck) PayloadType() PayloadType { return PayloadTypeDeviceConfigAck }

// Payload pairs a PayloadContent with its JSON encode/decode.
type Payload struct {
	Content PayloadContent
}

// NewPayload wraps content as a Payload.
func NewPayload(content PayloadContent) Payload {
	return Payload{Content: content}
}

// writeTo serializes the payload content as JSON into dst.
func (p Payload) writeTo(dst []byte) (int, error) {
	data, err := payloadJSON.Marshal(p.Content)
	if err != nil {
		return 0, &PayloadEncodeError{Err: err}
	}
	if len(dst) < len(data) {
		return 0, &PayloadEncodeError{Err: ErrBufferTooSmall}
	}
	return copy(dst, data), nil
}

// payloadFromJSON deserializes src as the PayloadContent variant named by
// payloadType.
func payloadFromJSON(payloadType PayloadType, src []byte) (Payload, error) {
	var content PayloadContent
	switch payloadType {
	case PayloadTypeInit:
		var v Init
		if err := payloadJSON.Unmarshal(src, &v); err != nil {
			return Payload{}, &PayloadDecodeError{Err: err}
		}
		content = v
	case PayloadTypeInitAck:
		var v InitAck
		if err := payloadJSON.Unmarshal(src, &v); err != nil {
			return Payload{}, &PayloadDecodeError{Err: err}
		}
		content = v
	case PayloadTypeHeartbeat:
		var v Heartbeat
		if err := payloadJSON.Unmarshal(src, &v); err != nil {
			return Payload{}, &PayloadDecodeError{Err: err}
		}
		content = v
	case PayloadTypeHeartbeatAck:
		var v HeartbeatAck
		if err := payloadJSON.Unmarshal(src, &v); err != nil {
			return Payload{}, &PayloadDecodeError{Err: err}
		}
		content = v
	case PayloadTypeDeviceConfig:
		var v DeviceConfig
		if err := payloadJSON.Unmarshal(src, &v); err != nil {
			return Payload{}, &PayloadDecodeError{Err: err}
		}
		content = v
	case PayloadTypeDeviceConfigAck:
		var v DeviceConfigAck
		if err := payloadJSON.Unmarshal(src, &v); err != nil {
			return Payload{}, &PayloadDecodeError{Err: err}
		}
		content = v
	default:
		return Payload{}, ErrUnknownPayloadType
	}
	return Payload{Content: content}, nil
}
