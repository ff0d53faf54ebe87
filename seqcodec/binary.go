package seqcodec

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/mus-format/mus-go/varint"

	"github.com/BranchAndLink/blockarray/array"
	"github.com/BranchAndLink/blockarray/utils"
)

// Binary sequence form: a varint element count followed by fixed-width
// little-endian element images. Unlike the JSON and msgpack codecs it is
// not self-describing, so both sides must agree on the element type; it is
// still portable across processes and architectures.
//
// The generic entry points below replace a Codec implementation because
// Go's any-typed Marshal cannot carry the element type parameter.

var bPool = utils.NewBufferPool()

func elemWidth[T any]() (int, error) {
	var z T
	w := binary.Size(z)
	if w <= 0 {
		return 0, fmt.Errorf("seqcodec: %T is not a fixed-width plain element", z)
	}
	return w, nil
}

// BinarySize returns the encoded size of a's binary sequence form.
func BinarySize[T any](a *array.Array[T]) (int, error) {
	w, err := elemWidth[T]()
	if err != nil {
		return 0, err
	}
	return varint.Int.Size(a.Len()) + a.Len()*w, nil
}

// AppendBinary appends the binary sequence form of a to dst and returns
// the extended buffer.
func AppendBinary[T any](dst []byte, a *array.Array[T]) ([]byte, error) {
	if _, err := elemWidth[T](); err != nil {
		return nil, err
	}
	head := make([]byte, varint.Int.Size(a.Len()))
	varint.Int.Marshal(a.Len(), head)
	dst = append(dst, head...)

	it := a.Iter()
	for i := 0; ; i++ {
		v, ok := it.Next()
		if !ok {
			return dst, nil
		}
		var err error
		dst, err = binary.Append(dst, binary.LittleEndian, *v)
		if err != nil {
			return nil, fmt.Errorf("seqcodec: encode element %d: %w", i, err)
		}
	}
}

// EncodeBinary returns the binary sequence form of a.
func EncodeBinary[T any](a *array.Array[T]) ([]byte, error) {
	size, err := BinarySize(a)
	if err != nil {
		return nil, err
	}
	return AppendBinary(make([]byte, 0, size), a)
}

// EncodeBinaryTo writes the binary sequence form of a to w, staging it in
// a pooled scratch buffer.
func EncodeBinaryTo[T any](w io.Writer, a *array.Array[T]) error {
	size, err := BinarySize(a)
	if err != nil {
		return err
	}
	scratch := bPool.Acquire(size)
	defer bPool.Release(scratch)

	out, err := AppendBinary(scratch[:0], a)
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}

// DecodeBinary rebuilds an array from its binary sequence form. Truncated
// input, a count that disagrees with the payload length, and trailing
// bytes are all decode errors; nothing is tolerated silently.
func DecodeBinary[T any](data []byte) (array.Array[T], error) {
	var none array.Array[T]

	w, err := elemWidth[T]()
	if err != nil {
		return none, err
	}
	n, off, err := varint.Int.Unmarshal(data)
	if err != nil {
		return none, fmt.Errorf("seqcodec: decode sequence header: %w", err)
	}
	if n < 0 {
		return none, fmt.Errorf("seqcodec: negative element count %d", n)
	}
	payload := data[off:]
	if len(payload) != n*w {
		return none, fmt.Errorf("seqcodec: want %d payload bytes for %d elements, have %d", n*w, n, len(payload))
	}
	if n == 0 {
		return none, nil
	}

	buf := make([]T, 0, n)
	r := bytes.NewReader(payload)
	for i := 0; i < n; i++ {
		var v T
		if err := binary.Read(r, binary.LittleEndian, &v); err != nil {
			return none, fmt.Errorf("seqcodec: decode element %d: %w", i, err)
		}
		buf = append(buf, v)
	}
	return array.FromSlice(buf), nil
}
