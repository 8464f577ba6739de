// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package framer

// Borrowed wraps an Item produced by a borrowed Decoder. The item aliases
// the read buffer and is only valid until the next Step call on the same
// FramedRead/Framed, which may shift or overwrite the buffer out from under
// it (spec: "the borrowed item cannot outlive the step's return").
//
// Go has no borrow checker, so the restriction is enforced at run time
// instead of at compile time: Get reports ErrBorrowExpired once the
// generation it captured no longer matches the ReadState's current
// generation. Callers that only ever use the value before calling Step
// again never observe this; it exists to turn the one documented misuse
// (design note, option (a): "require the caller to call a consume method") into
// a caught error instead of silently-corrupted data.
type Borrowed[Item any] struct {
	item  Item
	gen   uint64
	state *ReadState
}

func newBorrowed[Item any](item Item, state *ReadState) Borrowed[Item] {
	return Borrowed[Item]{item: item, gen: state.gen, state: state}
}

// Get returns the wrapped item, or ErrBorrowExpired if a later Step call has
// been made on the engine that produced it.
func (b Borrowed[Item]) Get() (Item, error) {
	if b.state == nil || b.state.gen != b.gen {
		var zero Item
		return zero, ErrBorrowExpired
	}
	return b.item, nil
}

// MustGet returns the wrapped item like Get, but panics if the borrow has
// expired. It is meant for call sites that already guarantee, by control
// flow, that no Step has intervened (e.g. immediately after Step returns).
func (b Borrowed[Item]) MustGet() Item {
	item, err := b.Get()
	if err != nil {
		panic(err)
	}
	return item
}
