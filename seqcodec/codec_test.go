package seqcodec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BranchAndLink/blockarray/array"
)

type reading struct {
	Sensor uint32 `json:"sensor" msgpack:"sensor"`
	Temp   int16  `json:"temp" msgpack:"temp"`
}

var builtin = []Codec{GoJSON{}, JSONIter{}, Msgpack{}}

func TestCodec_ByName(t *testing.T) {
	for _, c := range builtin {
		got, ok := ByName(c.Name())
		require.True(t, ok, c.Name())
		assert.Equal(t, c, got)
	}
	_, ok := ByName("cbor")
	assert.False(t, ok)
}

func TestCodec_ArrayRoundTrip(t *testing.T) {
	for _, c := range builtin {
		t.Run(c.Name(), func(t *testing.T) {
			a := array.FromSlice([]int32{-5, 0, 7})
			defer a.Release()

			data, err := c.Marshal(&a)
			require.NoError(t, err)

			var b array.Array[int32]
			require.NoError(t, c.Unmarshal(data, &b))
			defer b.Release()
			assert.True(t, array.Equal(&a, &b))
		})
	}
}

func TestCodec_StructElementRoundTrip(t *testing.T) {
	for _, c := range builtin {
		t.Run(c.Name(), func(t *testing.T) {
			a := array.FromSlice([]reading{
				{Sensor: 1, Temp: -40},
				{Sensor: 2, Temp: 21},
			})
			defer a.Release()

			data, err := c.Marshal(&a)
			require.NoError(t, err)

			var b array.Array[reading]
			require.NoError(t, c.Unmarshal(data, &b))
			defer b.Release()

			require.Equal(t, a.Len(), b.Len())
			for i := 0; i < a.Len(); i++ {
				av, _ := a.Get(i)
				bv, _ := b.Get(i)
				assert.Equal(t, *av, *bv)
			}
		})
	}
}

func TestCodec_EmbeddedArrayField(t *testing.T) {
	type frame struct {
		Name     string               `json:"name" msgpack:"name"`
		Readings array.Array[reading] `json:"readings" msgpack:"readings"`
	}

	for _, c := range builtin {
		t.Run(c.Name(), func(t *testing.T) {
			in := frame{
				Name:     "probe-1",
				Readings: array.FromSlice([]reading{{Sensor: 9, Temp: 3}}),
			}
			defer in.Readings.Release()

			data, err := c.Marshal(&in)
			require.NoError(t, err)

			var out frame
			require.NoError(t, c.Unmarshal(data, &out))
			defer out.Readings.Release()

			assert.Equal(t, "probe-1", out.Name)
			require.Equal(t, 1, out.Readings.Len())
			v, _ := out.Readings.Get(0)
			assert.Equal(t, reading{Sensor: 9, Temp: 3}, *v)
		})
	}
}

func TestCodec_EmptyArray(t *testing.T) {
	for _, c := range builtin {
		t.Run(c.Name(), func(t *testing.T) {
			a := array.New[int16](0)
			data, err := c.Marshal(&a)
			require.NoError(t, err)

			var b array.Array[int16]
			require.NoError(t, c.Unmarshal(data, &b))
			assert.Equal(t, 0, b.Len())
		})
	}
}

func TestCodec_RepeatedRoundTripsStable(t *testing.T) {
	for _, c := range builtin {
		t.Run(c.Name(), func(t *testing.T) {
			a := array.FromSlice([]int64{1, -2, 3})
			defer a.Release()

			first := MustMarshal(c, &a)
			cur := first
			for i := 0; i < 5; i++ {
				var b array.Array[int64]
				require.NoError(t, c.Unmarshal(cur, &b))
				assert.True(t, array.Equal(&a, &b))
				cur = MustMarshal(c, &b)
				b.Release()
			}
			assert.Equal(t, first, cur)
		})
	}
}

func TestCodec_DefaultIsGoJSON(t *testing.T) {
	assert.Equal(t, "go-json", Default.Name())
}
