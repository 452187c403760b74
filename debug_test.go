package argdata

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDumpMap(t *testing.T) {
	data := []byte{
		0x06,
		0x87, 0x08, 'H', 'e', 'l', 'l', 'o', 0x00,
		0x87, 0x08, 'W', 'o', 'r', 'l', 'd', 0x00,
		0x81, 0x02,
		0x82, 0x02, 0x01,
		0x86, 0x09, 0x70, 0xF1, 0x80, 0x29, 0x15,
		0x84, 0x05, 0x58, 0xE5, 0xD9,
		0x80,
		0x83, 0x06, 0x80, 0x80,
	}
	got := Dump(FromBytes(data))
	require.Equal(t,
		`{"Hello": "World", false: true, timestamp(485, 88045333): 5826009, null: {null: null}}`,
		got,
	)
}

func TestDumpSeq(t *testing.T) {
	data := []byte{
		0x07,
		0x81, 0x02,
		0x82, 0x02, 0x01,
		0x80,
		0x87, 0x08, 'H', 'e', 'l', 'l', 'o', 0x00,
		0x81, 0x06,
		0x81, 0x07,
	}
	got := Dump(FromBytes(data))
	require.Equal(t, `[false, true, null, "Hello", {}, []]`, got)
}

func TestDumpNull(t *testing.T) {
	require.Equal(t, "null", Dump(FromBytes(nil)))
}

func TestDumpBinary(t *testing.T) {
	require.Equal(t, "binary([1, 2, 3])", Dump(NewBinary([]byte{1, 2, 3})))
}

func TestDumpFd(t *testing.T) {
	require.Equal(t, "fd(7)", Dump(FromBytesWithFds([]byte{tagFd, 0, 0, 0, 7}, Identity{})))
}

func TestDumpErrorMidWalk(t *testing.T) {
	got := Dump(FromBytes([]byte{tagStr, 'H', 'i'}))
	require.Equal(t, `error("argdata: string without nul terminator")`, got)
}
