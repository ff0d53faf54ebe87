package array

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

var (
	_ msgpack.CustomEncoder = (*Array[int])(nil)
	_ msgpack.CustomDecoder = (*Array[int])(nil)
)

// EncodeMsgpack presents the array to msgpack as a length-framed sequence
// of independently encoded elements.
func (a *Array[T]) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := enc.EncodeArrayLen(a.size); err != nil {
		return err
	}
	it := a.Iter()
	for i := 0; ; i++ {
		v, ok := it.Next()
		if !ok {
			return nil
		}
		if err := enc.Encode(*v); err != nil {
			return fmt.Errorf("array: encode element %d: %w", i, err)
		}
	}
}

// DecodeMsgpack rebuilds the array element by element. The framework's
// array-length header is used as the size hint for the transient buffer.
// Truncated or malformed input surfaces as an error naming the element.
func (a *Array[T]) DecodeMsgpack(dec *msgpack.Decoder) error {
	n, err := dec.DecodeArrayLen()
	if err != nil {
		return fmt.Errorf("array: decode sequence header: %w", err)
	}
	if n <= 0 {
		*a = Array[T]{}
		return nil
	}
	buf := make([]T, 0, n)
	for i := 0; i < n; i++ {
		var v T
		if err := dec.Decode(&v); err != nil {
			return fmt.Errorf("array: decode element %d: %w", i, err)
		}
		buf = append(buf, v)
	}
	*a = FromSlice(buf)
	return nil
}
