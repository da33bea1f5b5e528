package packets

import "fmt"

// newPacketForType constructs the zero-value concrete packet for t. t is
// assumed to be one of the 14 defined control-packet types:
// FixedHeader.decode already rejects typeReserved1/typeReserved2 before
// this is ever called.
func newPacketForType(t PacketType) Packet {
	switch t {
	case TypeConnect:
		return &Connect{}
	case TypeConnAck:
		return &ConnAck{}
	case TypePublish:
		return &Publish{}
	case TypePubAck:
		return &PubAck{}
	case TypePubRec:
		return &PubRec{}
	case TypePubRel:
		return &PubRel{}
	case TypePubComp:
		return &PubComp{}
	case TypeSubscribe:
		return &Subscribe{}
	case TypeSubAck:
		return &SubAck{}
	case TypeUnsubscribe:
		return &Unsubscribe{}
	case TypeUnsubAck:
		return &UnsubAck{}
	case TypePingReq:
		return &PingReq{}
	case TypePingResp:
		return &PingResp{}
	default: // TypeDisconnect
		return &Disconnect{}
	}
}

// requiresEmptyBody reports whether t's body MUST be zero-length
// [MQTT-3.12.1-1], [MQTT-3.13.1-1], [MQTT-3.14.1-1].
func requiresEmptyBody(t PacketType) bool {
	switch t {
	case TypePingReq, TypePingResp, TypeDisconnect:
		return true
	default:
		return false
	}
}

// Encode serializes pk into its MQTT 3.1.1 wire form. It is pure: pk is
// read, never mutated, and on any error the returned slice is nil.
//
// Encode first asks pk to serialize its variable header and payload,
// then recomputes the fixed header's Remaining Length from the result —
// any Remaining a caller set on pk.Header() beforehand is advisory only.
func Encode(pk Packet) ([]byte, error) {
	if !pk.valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPacket, pk.Header().Type)
	}

	body := &writer{}
	if err := pk.encodeBody(body); err != nil {
		return nil, err
	}

	fh := *pk.header()
	fh.Remaining = body.Len()
	if fh.Remaining > maxRemainingLength {
		return nil, ErrPayloadTooLarge
	}
	if requiresEmptyBody(fh.Type) && fh.Remaining != 0 {
		return nil, fmt.Errorf("%w: %s body must be empty", ErrInvalidPacket, fh.Type)
	}

	out := &writer{}
	if err := fh.encode(out); err != nil {
		return nil, err
	}
	out.writeBytes(body.Bytes())

	return out.Bytes(), nil
}

// Decode parses a single MQTT 3.1.1 control packet from the front of
// data, returning the decoded packet and the number of bytes it
// consumed. On ErrTruncated the caller has not yet received a complete
// packet and should retry once more bytes arrive; on any other error
// the stream is malformed [MQTT-4.8.0-1] and the connection must be
// closed.
func Decode(data []byte) (Packet, int, error) {
	r := newReader(data)

	var fh FixedHeader
	if err := fh.decode(r); err != nil {
		return nil, 0, err
	}

	headerLen := r.pos
	bodyBytes, err := r.readBytes(fh.Remaining)
	if err != nil {
		return nil, 0, ErrTruncated
	}

	pk := newPacketForType(fh.Type)
	*pk.header() = fh

	if requiresEmptyBody(fh.Type) && fh.Remaining != 0 {
		return nil, 0, fmt.Errorf("%w: %s body must be empty", ErrProtocolViolation, fh.Type)
	}

	body := newReader(bodyBytes)
	if err := pk.decodeBody(body); err != nil {
		return nil, 0, err
	}
	if body.remaining() != 0 {
		return nil, 0, ErrTrailingBytes
	}

	if !pk.valid() {
		return nil, 0, fmt.Errorf("%w: %s", ErrProtocolViolation, fh.Type)
	}

	return pk, headerLen + fh.Remaining, nil
}
