package packets

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type fixedHeaderCase struct {
	name      string
	rawBytes  []byte
	header    FixedHeader
	decodeErr error
}

var fixedHeaderCases = []fixedHeaderCase{
	{"connect", []byte{byte(TypeConnect) << 4, 0x00}, FixedHeader{Type: TypeConnect}, nil},
	{"connack", []byte{byte(TypeConnAck) << 4, 0x00}, FixedHeader{Type: TypeConnAck}, nil},
	{"publish qos0", []byte{byte(TypePublish) << 4, 0x00}, FixedHeader{Type: TypePublish}, nil},
	{"publish qos1 retain", []byte{byte(TypePublish)<<4 | 1<<1 | 1, 0x00},
		FixedHeader{Type: TypePublish, Qos: QoSAtLeastOnce, Retain: true}, nil},
	{"publish dup qos2", []byte{byte(TypePublish)<<4 | 1<<3 | 2<<1, 0x00},
		FixedHeader{Type: TypePublish, Dup: true, Qos: QoSExactlyOnce}, nil},
	{"pubrel", []byte{byte(TypePubRel)<<4 | 0b0010, 0x00}, FixedHeader{Type: TypePubRel}, nil},
	{"subscribe", []byte{byte(TypeSubscribe)<<4 | 0b0010, 0x00}, FixedHeader{Type: TypeSubscribe}, nil},
	{"unsubscribe", []byte{byte(TypeUnsubscribe)<<4 | 0b0010, 0x00}, FixedHeader{Type: TypeUnsubscribe}, nil},
	{"pingreq", []byte{byte(TypePingReq) << 4, 0x00}, FixedHeader{Type: TypePingReq}, nil},
	{"disconnect", []byte{byte(TypeDisconnect) << 4, 0x00}, FixedHeader{Type: TypeDisconnect}, nil},
	{"remaining length two bytes", []byte{byte(TypePublish) << 4, 0x80, 0x04},
		FixedHeader{Type: TypePublish, Remaining: 512}, nil},
	{"remaining length two bytes 978", []byte{byte(TypePublish) << 4, 0xd2, 0x07},
		FixedHeader{Type: TypePublish, Remaining: 978}, nil},
	{"reserved nibble on connect", []byte{byte(TypeConnect)<<4 | 1<<3, 0x00}, FixedHeader{}, ErrMalformedFixedHeader},
	{"reserved nibble on pubrel", []byte{byte(TypePubRel) << 4, 0x00}, FixedHeader{}, ErrMalformedFixedHeader},
	{"reserved type zero", []byte{0x00 << 4, 0x00}, FixedHeader{}, ErrReservedPacketType},
	{"reserved type fifteen", []byte{0x0f << 4, 0x00}, FixedHeader{}, ErrReservedPacketType},
}

func TestFixedHeaderEncode(t *testing.T) {
	for _, c := range fixedHeaderCases {
		t.Run(c.name, func(t *testing.T) {
			if c.decodeErr != nil {
				return // these cases describe malformed wire bytes, not encodable headers
			}
			w := &writer{}
			require.NoError(t, c.header.encode(w))
			require.Equal(t, c.rawBytes, w.Bytes())
		})
	}
}

func TestFixedHeaderDecode(t *testing.T) {
	for _, c := range fixedHeaderCases {
		t.Run(c.name, func(t *testing.T) {
			fh := &FixedHeader{}
			err := fh.decode(newReader(c.rawBytes))
			if c.decodeErr != nil {
				require.ErrorIs(t, err, c.decodeErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, c.header, *fh)
		})
	}
}

func TestFixedHeaderEncodeRejectsOversizedRemaining(t *testing.T) {
	fh := &FixedHeader{Type: TypePublish, Remaining: maxRemainingLength + 1}
	w := &writer{}
	require.ErrorIs(t, fh.encode(w), ErrPayloadTooLarge)
}

func BenchmarkFixedHeaderEncode(b *testing.B) {
	fh := fixedHeaderCases[0].header
	for n := 0; n < b.N; n++ {
		w := &writer{}
		_ = fh.encode(w)
	}
}

func BenchmarkFixedHeaderDecode(b *testing.B) {
	raw := fixedHeaderCases[0].rawBytes
	for n := 0; n < b.N; n++ {
		fh := &FixedHeader{}
		_ = fh.decode(newReader(raw))
	}
}
