package packets

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVarintEncodeDecode(t *testing.T) {
	cases := []struct {
		value    int
		encoded  []byte
		consumed int
	}{
		{0, []byte{0x00}, 1},
		{127, []byte{0x7f}, 1},
		{128, []byte{0x80, 0x01}, 2},
		{16383, []byte{0xff, 0x7f}, 2},
		{16384, []byte{0x80, 0x80, 0x01}, 3},
		{2097151, []byte{0xff, 0xff, 0x7f}, 3},
		{2097152, []byte{0x80, 0x80, 0x80, 0x01}, 4},
		{268435455, []byte{0xff, 0xff, 0xff, 0x7f}, 4},
	}

	for _, c := range cases {
		w := &writer{}
		encodeVarint(w, c.value)
		require.Equal(t, c.encoded, w.Bytes(), "value %d", c.value)
		require.Equal(t, c.consumed, len(c.encoded), "value %d", c.value)

		got, consumed, err := decodeVarint(newReader(c.encoded))
		require.NoError(t, err)
		require.Equal(t, c.value, got)
		require.Equal(t, c.consumed, consumed)
	}
}

// TestVarintMalformedFifthByte is the "Malformed VLQ" scenario: four
// continuation bytes with no terminator.
func TestVarintMalformedFifthByte(t *testing.T) {
	raw := []byte{0xff, 0xff, 0xff, 0xff, 0x00}
	_, _, err := decodeVarint(newReader(raw))
	require.ErrorIs(t, err, ErrMalformedVarint)
}

func TestVarintTruncated(t *testing.T) {
	_, _, err := decodeVarint(newReader([]byte{0x80}))
	require.ErrorIs(t, err, ErrTruncated)
}

func BenchmarkEncodeVarint(b *testing.B) {
	w := &writer{}
	for n := 0; n < b.N; n++ {
		w.buf.Reset()
		encodeVarint(w, 978)
	}
}

func BenchmarkDecodeVarint(b *testing.B) {
	raw := []byte{0xd2, 0x07}
	for n := 0; n < b.N; n++ {
		_, _, _ = decodeVarint(newReader(raw))
	}
}
