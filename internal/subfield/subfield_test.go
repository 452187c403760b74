package subfield

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLength(t *testing.T) {
	cases := []struct {
		length   int
		expected int
	}{
		{0, 1 + 0},
		{1, 1 + 1},
		{0x7F, 1 + 0x7F},
		{0x80, 2 + 0x80},
		{0x3FFF, 2 + 0x3FFF},
		{0x4000, 3 + 0x4000},
	}
	for _, c := range cases {
		require.Equal(t, c.expected, Length(c.length))
	}
}

func TestWriteLength(t *testing.T) {
	cases := []struct {
		length   int
		expected []byte
	}{
		{0, []byte{0x80}},
		{1, []byte{0x81}},
		{0x80, []byte{0x01, 0x80}},
		{0x3FFF, []byte{0x7F, 0xFF}},
		{0x4000, []byte{0x01, 0x00, 0x80}},
	}
	for _, c := range cases {
		var buf []byte
		buf = WriteLength(buf, c.length)
		require.Equal(t, c.expected, buf)
	}
}

func TestNextEmpty(t *testing.T) {
	field, consumed, done, err := Next(nil)
	require.NoError(t, err)
	require.True(t, done)
	require.Nil(t, field)
	require.Equal(t, 0, consumed)
}

func TestNextRoundTrip(t *testing.T) {
	var buf []byte
	buf = WriteLength(buf, 3)
	buf = append(buf, []byte("abc")...)
	buf = WriteLength(buf, 0)
	buf = append(buf, []byte("def")...) // trailing garbage after an empty field

	field, consumed, done, err := Next(buf)
	require.NoError(t, err)
	require.False(t, done)
	require.Equal(t, []byte("abc"), field)
	require.Equal(t, 4, consumed)

	field, consumed, done, err = Next(buf[consumed:])
	require.NoError(t, err)
	require.False(t, done)
	require.Equal(t, []byte{}, field)
	require.Equal(t, 1, consumed)
}

func TestNextTruncated(t *testing.T) {
	_, consumed, done, err := Next([]byte{0x01, 0x80, 'a'})
	require.Error(t, err)
	require.False(t, done)
	require.Equal(t, 3, consumed)
}

func TestNextBadLengthByte(t *testing.T) {
	// Continuation bit never set: the loop runs off the end of data.
	_, consumed, done, err := Next([]byte{0x01, 0x02})
	require.Error(t, err)
	require.False(t, done)
	require.Equal(t, 2, consumed)
}
