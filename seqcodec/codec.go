// Package seqcodec centralizes the structured sequence encodings of the
// container: every codec here sees an Array as an ordered sequence of
// independently encoded elements and owns the framing itself. This is the
// portable mode; for the same-process raw-image mode see the snapshot
// package. The two never substitute for each other.
package seqcodec

import (
	"fmt"

	gojson "github.com/goccy/go-json"
	jsoniter "github.com/json-iterator/go"
	"github.com/vmihailenco/msgpack/v5"
)

// Codec encodes/decodes values. Implementations must be safe for
// concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// ByName returns a built-in codec by its stable name, for callers that
// persist the codec name alongside the payload.
func ByName(name string) (Codec, bool) {
	switch name {
	case "go-json":
		return GoJSON{}, true
	case "jsoniter":
		return JSONIter{}, true
	case "msgpack":
		return Msgpack{}, true
	default:
		return nil, false
	}
}

// Default is the codec used when the caller expresses no preference.
var Default Codec = GoJSON{}

// MustMarshal is a helper for tests and benchmarks.
func MustMarshal(c Codec, v any) []byte {
	if c == nil {
		c = Default
	}
	b, err := c.Marshal(v)
	if err != nil {
		panic(fmt.Errorf("seqcodec: %s marshal failed: %w", c.Name(), err))
	}
	return b
}

// GoJSON is a JSON codec backed by github.com/goccy/go-json.
type GoJSON struct{}

func (GoJSON) Marshal(v any) ([]byte, error)      { return gojson.Marshal(v) }
func (GoJSON) Unmarshal(data []byte, v any) error { return gojson.Unmarshal(data, v) }
func (GoJSON) Name() string                       { return "go-json" }

var jsonIter = jsoniter.ConfigCompatibleWithStandardLibrary

// JSONIter is a JSON codec backed by github.com/json-iterator/go with the
// stdlib-compatible config, so the container's element-sequence form is
// honored the same way as under the other JSON codecs.
type JSONIter struct{}

func (JSONIter) Marshal(v any) ([]byte, error)      { return jsonIter.Marshal(v) }
func (JSONIter) Unmarshal(data []byte, v any) error { return jsonIter.Unmarshal(data, v) }
func (JSONIter) Name() string                       { return "jsoniter" }

// Msgpack is a MessagePack codec backed by vmihailenco/msgpack. Arrays
// implement the msgpack custom coder interfaces, so the element-sequence
// form carries an explicit length header the decoder uses as a size hint.
type Msgpack struct{}

func (Msgpack) Marshal(v any) ([]byte, error)      { return msgpack.Marshal(v) }
func (Msgpack) Unmarshal(data []byte, v any) error { return msgpack.Unmarshal(data, v) }
func (Msgpack) Name() string                       { return "msgpack" }
