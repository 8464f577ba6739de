// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package packet

// Codec decodes and encodes Packet values, implementing both
// framer.Decoder[Packet] and framer.Encoder[Packet].
type Codec struct{}

// NewCodec creates a new Codec.
func NewCodec() Codec { return Codec{} }

// Decode implements framer.Decoder[Packet].
func (Codec) Decode(src []byte) (item Packet, n int, ok bool, err error) {
	return maybeFromPrefix(src)
}

// Encode implements framer.Encoder[Packet].
func (Codec) Encode(item Packet, dst []byte) (n int, err error) {
	return item.writeTo(dst)
}
