package packets

// protocolName is the fixed protocol-name string a CONNECT packet must
// carry for MQTT 3.1.1 [MQTT-3.1.2-1].
const protocolName = "MQTT"

// protocolLevel is the fixed protocol-level byte for MQTT 3.1.1
// [MQTT-3.1.2-2].
const protocolLevel = 4

// Connect is the CONNECT control packet, sent once by a client at the
// start of a network connection.
type Connect struct {
	packetHeader

	Flags            ConnectFlags
	KeepAlive        uint16
	ClientIdentifier string

	// WillTopic and WillMessage are present iff Flags.Will is set.
	WillTopic   string
	WillMessage []byte

	// UserName is present iff Flags.UserName is set, Password iff
	// Flags.Password is set.
	UserName string
	Password string
}

func (pk *Connect) encodeBody(w *writer) error {
	if err := encodeStringField(w, protocolName); err != nil {
		return err
	}
	w.writeU8(protocolLevel)
	w.writeU8(pk.Flags.encode())
	w.writeU16BE(pk.KeepAlive)
	if err := encodeStringField(w, pk.ClientIdentifier); err != nil {
		return err
	}

	if pk.Flags.Will {
		if err := encodeStringField(w, pk.WillTopic); err != nil {
			return err
		}
		if err := encodeBinaryField(w, pk.WillMessage); err != nil {
			return err
		}
	}
	if pk.Flags.UserName {
		if err := encodeStringField(w, pk.UserName); err != nil {
			return err
		}
	}
	if pk.Flags.Password {
		if err := encodeStringField(w, pk.Password); err != nil {
			return err
		}
	}

	return nil
}

func (pk *Connect) decodeBody(r *reader) error {
	name, err := decodeStringField(r)
	if err != nil {
		return err
	}
	if name != protocolName {
		return ErrProtocolViolation
	}

	level, err := r.readU8()
	if err != nil {
		return err
	}
	if level != protocolLevel {
		return ErrProtocolViolation
	}

	flagByte, err := r.readU8()
	if err != nil {
		return err
	}
	pk.Flags, err = decodeConnectFlags(flagByte)
	if err != nil {
		return err
	}

	pk.KeepAlive, err = r.readU16BE()
	if err != nil {
		return err
	}

	pk.ClientIdentifier, err = decodeStringField(r)
	if err != nil {
		return err
	}

	if pk.Flags.Will {
		if pk.WillTopic, err = decodeStringField(r); err != nil {
			return err
		}
		if pk.WillMessage, err = decodeBinaryField(r); err != nil {
			return err
		}
	}
	if pk.Flags.UserName {
		if pk.UserName, err = decodeStringField(r); err != nil {
			return err
		}
	}
	if pk.Flags.Password {
		if pk.Password, err = decodeStringField(r); err != nil {
			return err
		}
	}

	return nil
}

// valid enforces [MQTT-3.1.2-3]'s flag-coupling invariants on the encode
// side, the counterpart of what decodeConnectFlags already enforces when
// Connect arrives off the wire instead of from application code.
func (pk *Connect) valid() bool {
	return pk.Flags.validCoupling()
}
