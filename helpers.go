package argdata

import (
	"encoding/binary"
	"math"
)

func putFloat64(buf []byte, v float64) {
	binary.BigEndian.PutUint64(buf, math.Float64bits(v))
}

func getFloat64(buf []byte) float64 {
	return math.Float64frombits(binary.BigEndian.Uint64(buf))
}

func putUint32(buf []byte, v uint32) {
	binary.BigEndian.PutUint32(buf, v)
}

func getUint32(buf []byte) uint32 {
	return binary.BigEndian.Uint32(buf)
}
