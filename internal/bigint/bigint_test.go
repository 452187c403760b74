package bigint

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromBytesMachineWidth(t *testing.T) {
	i := FromUint64(5)
	v, ok := i.Int64()
	require.True(t, ok)
	require.Equal(t, int64(5), v)

	i = FromInt64(-1)
	u, ok := i.Uint64()
	require.False(t, ok)
	_ = u
	v, ok = i.Int64()
	require.True(t, ok)
	require.Equal(t, int64(-1), v)

	i = FromUint64(^uint64(0))
	_, ok = i.Int64()
	require.False(t, ok)
	uv, ok := i.Uint64()
	require.True(t, ok)
	require.Equal(t, ^uint64(0), uv)
}

func TestFromBytesBig(t *testing.T) {
	cases := []struct {
		name string
		data []byte
		u64  uint64
		uOK  bool
	}{
		{"empty", []byte{}, 0, true},
		{"zeros", []byte{0, 0}, 0, true},
		{"256", []byte{1, 0}, 256, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			v, ok := FromBytes(c.data).Uint64()
			require.Equal(t, c.uOK, ok)
			if ok {
				require.Equal(t, c.u64, v)
			}
		})
	}

	i64, ok := FromBytes([]byte{0xFF}).Int64()
	require.True(t, ok)
	require.Equal(t, int64(-1), i64)

	i64, ok = FromBytes([]byte{0xFF, 0xFF}).Int64()
	require.True(t, ok)
	require.Equal(t, int64(-1), i64)

	_, ok = FromBytes([]byte{1, 0, 0, 0, 0, 0, 0, 0, 0}).Uint64()
	require.False(t, ok)

	_, ok = FromBytes([]byte{0xFF, 0, 0, 0, 0, 0, 0, 0}).Uint64()
	require.False(t, ok)

	u64, ok := FromBytes([]byte{0, 0xFF, 0, 0, 0, 0, 0, 0, 0}).Uint64()
	require.True(t, ok)
	require.Equal(t, uint64(0xFF00000000000000), u64)

	i64, ok = FromBytes([]byte{0xFF, 0, 0, 0, 0, 0, 0, 0}).Int64()
	require.True(t, ok)
	require.Equal(t, int64(-0x01000000_00000000), i64)
}

func TestCmp(t *testing.T) {
	require.Equal(t, 0, Cmp(FromUint64(5), FromUint64(5)))
	require.Equal(t, -1, Cmp(FromInt64(-1), FromUint64(0)))
	require.Equal(t, 1, Cmp(FromUint64(0), FromInt64(-1)))
	require.Equal(t, -1, Cmp(FromUint64(5), FromUint64(6)))

	big := FromBytes([]byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10})
	require.Equal(t, 1, Cmp(big, FromUint64(^uint64(0))))
	require.Equal(t, -1, Cmp(FromUint64(^uint64(0)), big))

	bigNeg := FromBytes([]byte{0xFF, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10})
	require.Equal(t, -1, Cmp(bigNeg, FromInt64(-1)))
	require.Equal(t, 1, Cmp(FromInt64(-1), bigNeg))
}

func TestSerializedLengthRoundTrip(t *testing.T) {
	cases := []uint64{0, 1, 0x7F, 0x80, 0xFF, 0xFFFFFFFFFFFFFFFF}
	for _, c := range cases {
		v := FromUint64(c)
		encoded := v.Bytes()
		require.Equal(t, v.SerializedLength(), len(encoded))
		back := FromBytes(encoded)
		u, ok := back.Uint64()
		require.True(t, ok)
		require.Equal(t, c, u)
	}

	for _, c := range []int64{-1, -128, -0x7FFFFFFFFFFFFFFF - 1} {
		v := FromInt64(c)
		encoded := v.Bytes()
		require.Equal(t, v.SerializedLength(), len(encoded))
		back := FromBytes(encoded)
		s, ok := back.Int64()
		require.True(t, ok)
		require.Equal(t, c, s)
	}
}
