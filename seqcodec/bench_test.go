package seqcodec

import (
	"testing"

	"github.com/BranchAndLink/blockarray/array"
)

var (
	sinkBytes []byte
	sinkArr   array.Array[reading]
)

func benchReadings() array.Array[reading] {
	buf := make([]reading, 0, 9)
	for i := 0; i < 9; i++ {
		buf = append(buf, reading{Sensor: uint32(i), Temp: int16(i*10 - 40)})
	}
	return array.FromSlice(buf)
}

func BenchmarkEncode_GoJSON(b *testing.B) {
	a := benchReadings()
	defer a.Release()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkBytes = MustMarshal(GoJSON{}, &a)
	}
	b.StopTimer()
	b.Logf("go-json size: %d bytes", len(sinkBytes))
}

func BenchmarkEncode_JSONIter(b *testing.B) {
	a := benchReadings()
	defer a.Release()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkBytes = MustMarshal(JSONIter{}, &a)
	}
	b.StopTimer()
	b.Logf("jsoniter size: %d bytes", len(sinkBytes))
}

func BenchmarkEncode_Msgpack(b *testing.B) {
	a := benchReadings()
	defer a.Release()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkBytes = MustMarshal(Msgpack{}, &a)
	}
	b.StopTimer()
	b.Logf("msgpack size: %d bytes", len(sinkBytes))
}

func BenchmarkEncode_Binary(b *testing.B) {
	a := benchReadings()
	defer a.Release()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var err error
		sinkBytes, err = EncodeBinary(&a)
		if err != nil {
			b.Fatal(err)
		}
	}
	b.StopTimer()
	b.Logf("binary size: %d bytes", len(sinkBytes))
}

func BenchmarkDecode_Binary(b *testing.B) {
	a := benchReadings()
	defer a.Release()
	data, err := EncodeBinary(&a)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		arr, err := DecodeBinary[reading](data)
		if err != nil {
			b.Fatal(err)
		}
		sinkArr = arr
	}
}
