package packets

// Packet is the sum type over the 14 MQTT 3.1.1 control-packet shapes.
// It is sealed to this package: the unexported methods mean Connect,
// ConnAck, Publish, PubAck, PubRec, PubRel, PubComp, Subscribe, SubAck,
// Unsubscribe, UnsubAck, PingReq, PingResp, and Disconnect are the only
// possible constructors, the same closed-union guarantee spec.md's
// fourteen-shape tagged union asks for.
type Packet interface {
	// Header returns a copy of the packet's fixed header, including its
	// PacketType, QoS/Dup/Retain flags (meaningful for Publish only), and
	// the Remaining Length: the decoded body length for a packet returned
	// by Decode, otherwise whatever the caller set. Encode recomputes the
	// length for the wire but does not write it back into the packet.
	Header() FixedHeader

	header() *FixedHeader
	encodeBody(w *writer) error
	decodeBody(r *reader) error

	// valid reports whether the packet's fields satisfy the
	// variant-specific invariants from the MQTT 3.1.1 spec beyond what
	// encodeBody/decodeBody already enforce field-by-field. Encode and
	// Decode each pick the sentinel error appropriate to their side
	// (ErrInvalidPacket vs. ErrProtocolViolation) — valid itself only
	// signals pass/fail.
	valid() bool
}

// packetHeader is embedded by every concrete packet type to supply the
// Header/header accessors without repeating them fourteen times.
type packetHeader struct {
	FixedHeader
}

func (h *packetHeader) Header() FixedHeader  { return h.FixedHeader }
func (h *packetHeader) header() *FixedHeader { return &h.FixedHeader }
