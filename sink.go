// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package framer

// Sink presents a FramedWrite as a narrow send-only value, for call sites
// that want to depend on "something I can push Items into" rather than the
// full FramedWrite surface. It does not batch: each Send call encodes and
// writes immediately.
type Sink[Item any] struct {
	send func(Item) error
}

// Send encodes and writes item, per FramedWrite.Send.
func (s Sink[Item]) Send(item Item) error {
	return s.send(item)
}

// SendAll calls Send for each item in items, stopping at the first error.
func (s Sink[Item]) SendAll(items []Item) (n int, err error) {
	for _, item := range items {
		if err = s.Send(item); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}
