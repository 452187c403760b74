package argdata

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMapFromSlicesTruncatesToShorterSlice(t *testing.T) {
	keys := []Reader{
		NewStr(StrFromString("a")),
		NewStr(StrFromString("b")),
		NewStr(StrFromString("c")),
	}
	values := []Reader{
		NewInt(IntFromInt64(1)),
		NewInt(IntFromInt64(2)),
	}

	m := MapFromSlices(keys, values)

	var buf bytes.Buffer
	require.NoError(t, m.Serialize(&buf, nil))

	got := snapshot(t, FromBytes(buf.Bytes()))
	want := []snapshotPair{
		{"a", "1"},
		{"b", "2"},
	}
	require.Equal(t, want, got)
}
