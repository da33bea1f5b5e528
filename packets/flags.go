package packets

// ConnectFlags is the one-byte flag field of a CONNECT packet's variable
// header [MQTT-3.1.2-3]. Bit 0 is reserved and MUST be zero on the wire;
// Will/WillQoS/WillRetain and UserName/Password are coupled invariants
// enforced at decode time, not merely independent bits.
type ConnectFlags struct {
	UserName     bool
	Password     bool
	WillRetain   bool
	WillQoS      QoSLevel
	Will         bool
	CleanSession bool
}

func (f ConnectFlags) encode() byte {
	return encodeBool(f.UserName)<<7 | encodeBool(f.Password)<<6 |
		encodeBool(f.WillRetain)<<5 | byte(f.WillQoS)<<3 |
		encodeBool(f.Will)<<2 | encodeBool(f.CleanSession)<<1
}

// decodeConnectFlags unpacks b into a ConnectFlags value and enforces the
// coupling invariants from [MQTT-3.1.2-3]: the reserved bit 0 must be
// zero, Will=0 implies WillQoS=0 and WillRetain=0, and UserName=0 implies
// Password=0.
func decodeConnectFlags(b byte) (ConnectFlags, error) {
	f := ConnectFlags{
		UserName:     b&0x80 > 0,
		Password:     b&0x40 > 0,
		WillRetain:   b&0x20 > 0,
		WillQoS:      QoSLevel((b >> 3) & 0x03),
		Will:         b&0x04 > 0,
		CleanSession: b&0x02 > 0,
	}

	if b&0x01 != 0 {
		return f, ErrProtocolViolation
	}
	if !f.validCoupling() {
		return f, ErrProtocolViolation
	}

	return f, nil
}

// validCoupling checks [MQTT-3.1.2-3]'s flag-to-flag invariants, shared
// between decodeConnectFlags (decode side) and Connect.valid (encode
// side) so the same rule can surface under either sentinel depending on
// which direction caught it.
func (f ConnectFlags) validCoupling() bool {
	if !f.Will && (f.WillQoS != QoSAtMostOnce || f.WillRetain) {
		return false
	}
	if !f.UserName && f.Password {
		return false
	}
	return true
}

// ConnAckFlags is the one-byte flag field of a CONNACK packet. Only bit 0
// is defined; bits 7-1 are reserved but, unlike the fixed header's
// reserved nibble, decoding tolerates any value there and simply masks
// them off rather than rejecting the packet.
type ConnAckFlags struct {
	SessionPresent bool
}

func (f ConnAckFlags) encode() byte {
	return encodeBool(f.SessionPresent)
}

func decodeConnAckFlags(b byte) ConnAckFlags {
	return ConnAckFlags{SessionPresent: b&0x01 > 0}
}
