package packets

// ConnAck is the CONNACK control packet, the server's acknowledgement of
// a CONNECT packet.
type ConnAck struct {
	packetHeader

	Flags      ConnAckFlags
	ReturnCode ConnectReturnCode
}

func (pk *ConnAck) encodeBody(w *writer) error {
	w.writeU8(pk.Flags.encode())
	w.writeU8(byte(pk.ReturnCode))
	return nil
}

func (pk *ConnAck) decodeBody(r *reader) error {
	flagByte, err := r.readU8()
	if err != nil {
		return err
	}
	pk.Flags = decodeConnAckFlags(flagByte) // reserved bits masked, never rejected

	rc, err := r.readU8()
	if err != nil {
		return err
	}
	pk.ReturnCode = ConnectReturnCode(rc)

	return nil
}

func (pk *ConnAck) valid() bool {
	return true
}
