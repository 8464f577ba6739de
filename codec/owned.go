// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package codec

// copyBounded copies src into a freshly materialized slice, independent of
// whatever buffer src aliases. capacity is the owned codec's fixed bound
// (set once, at construction); a frame larger than capacity reports
// ErrCapacityExceeded instead of silently growing, mirroring the original's
// heapless::Vec<u8, N> ("a bounded-capacity container parameterized by a
// compile-time capacity" in the distilled spec). Go has no const-generic
// array length, so the bound is carried as a constructor argument rather
// than a type parameter; this is the language-idiom substitution the design
// notes call for, not a behavioral difference.
func copyBounded(src []byte, capacity int) ([]byte, error) {
	if len(src) > capacity {
		return nil, ErrCapacityExceeded
	}
	out := make([]byte, len(src))
	copy(out, src)
	return out, nil
}
