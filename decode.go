// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package framer

// Decoder decodes frames that borrow from the buffer passed to Decode: the
// returned Item aliases src and is only valid until the driver mutates the
// buffer again (the next Step call). Codecs operating on []byte or string
// items (codec.Bytes, codec.Lines, codec.Delimiter, ...) implement this.
//
// Decode returns:
//   - ok == false, err == nil: no complete frame yet; caller should feed
//     more bytes and call Decode again.
//   - ok == true, err == nil: a frame was produced; the first n bytes of src
//     are consumed (n >= 1 unless the decoder documents empty delimiters).
//   - err != nil: decode failure; item and n are meaningless.
type Decoder[Item any] interface {
	Decode(src []byte) (item Item, n int, ok bool, err error)
}

// EOFDecoder is implemented by decoders that want different behavior at
// end-of-stream (e.g. accepting a trailing unterminated frame). When a
// Decoder does not implement EOFDecoder, the driver calls Decode in its
// place, matching the "DecodeEOF defaults to Decode" rule.
type EOFDecoder[Item any] interface {
	Decoder[Item]
	DecodeEOF(src []byte) (item Item, n int, ok bool, err error)
}

// decodeEOF calls d.DecodeEOF if d implements EOFDecoder, otherwise falls
// back to d.Decode.
func decodeEOF[Item any](d Decoder[Item], src []byte) (Item, int, bool, error) {
	if eofer, ok := d.(EOFDecoder[Item]); ok {
		return eofer.DecodeEOF(src)
	}
	return d.Decode(src)
}

// OwnedDecoder decodes frames into a value independent of the buffer passed
// to DecodeOwned: the driver may reuse or overwrite src immediately after.
// Bounded-capacity codecs (codec.OwnedBytes, codec.OwnedLines, ...)
// implement this by delegating to a borrowed decoder and copying into a
// capacity-checked, freshly allocated value.
type OwnedDecoder[Item any] interface {
	DecodeOwned(src []byte) (item Item, n int, ok bool, err error)
}

// EOFOwnedDecoder is the owned-decoder analogue of EOFDecoder.
type EOFOwnedDecoder[Item any] interface {
	OwnedDecoder[Item]
	DecodeEOFOwned(src []byte) (item Item, n int, ok bool, err error)
}

func decodeEOFOwned[Item any](d OwnedDecoder[Item], src []byte) (Item, int, bool, error) {
	if eofer, ok := d.(EOFOwnedDecoder[Item]); ok {
		return eofer.DecodeEOFOwned(src)
	}
	return d.DecodeOwned(src)
}
