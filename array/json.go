package array

import (
	"bytes"
	"fmt"

	json "github.com/goccy/go-json"
)

// MarshalJSON encodes the array as a JSON array of its elements. The
// framework consuming the output owns the framing; the array imposes no
// header of its own.
func (a Array[T]) MarshalJSON() ([]byte, error) {
	out := make([]byte, 0, a.size*8+2)
	out = append(out, '[')
	it := a.Iter()
	for i := 0; ; i++ {
		v, ok := it.Next()
		if !ok {
			break
		}
		if i > 0 {
			out = append(out, ',')
		}
		b, err := json.Marshal(*v)
		if err != nil {
			return nil, fmt.Errorf("array: encode element %d: %w", i, err)
		}
		out = append(out, b...)
	}
	return append(out, ']'), nil
}

// UnmarshalJSON decodes a JSON array element by element into a transient
// growable buffer and adopts it. A malformed element fails loudly with its
// index; nothing is swallowed mid-stream. JSON null decodes to an empty
// array.
func (a *Array[T]) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("array: decode: %w", err)
	}
	if tok == nil {
		*a = Array[T]{}
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '[' {
		return fmt.Errorf("array: decode: expected sequence start, got %v", tok)
	}

	var buf []T // no length hint in JSON framing, grown incrementally
	for i := 0; dec.More(); i++ {
		var v T
		if err := dec.Decode(&v); err != nil {
			return fmt.Errorf("array: decode element %d: %w", i, err)
		}
		buf = append(buf, v)
	}
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("array: decode: sequence not terminated: %w", err)
	}
	*a = FromSlice(buf)
	return nil
}
