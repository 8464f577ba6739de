// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package framer_test

import "io"

// chunkReader replays a fixed sequence of byte chunks, one per Read call
// (a chunk longer than the caller's slice is split across consecutive
// calls), then reports io.EOF. It mirrors the teacher's scriptedReader but keeps
// each step to a single []byte/error pair, matching the way this package's
// chunked-input scenarios are phrased.
type chunkReader struct {
	chunks [][]byte
	idx    int
	off    int
}

func (r *chunkReader) Read(p []byte) (int, error) {
	if r.idx >= len(r.chunks) {
		return 0, io.EOF
	}
	chunk := r.chunks[r.idx]
	n := copy(p, chunk[r.off:])
	r.off += n
	if r.off >= len(chunk) {
		r.idx++
		r.off = 0
	}
	return n, nil
}
