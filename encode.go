// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package framer

// Encoder writes an item's encoded form into dst and returns the number of
// bytes written. Encoders are stateless or carry only configuration (e.g.
// codec.Delimiter carries the delimiter bytes).
type Encoder[Item any] interface {
	Encode(item Item, dst []byte) (n int, err error)
}
