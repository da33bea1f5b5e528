package packets

// Publish is the PUBLISH control packet, carrying an application message
// from sender to receiver. Its QoS, Dup, and Retain flags live in the
// embedded FixedHeader rather than here, because they are encoded in the
// fixed header's lower nibble, not the variable header.
type Publish struct {
	packetHeader

	TopicName string

	// PacketID is present on the wire iff Header().Qos > 0
	// [MQTT-2.3.1-5]; it is the zero value otherwise.
	PacketID uint16

	// Payload is the remainder of the packet body after the topic name
	// and optional packet identifier; see spec's Open Question (ii).
	Payload []byte
}

func (pk *Publish) encodeBody(w *writer) error {
	if err := encodeStringField(w, pk.TopicName); err != nil {
		return err
	}
	if pk.Qos > QoSAtMostOnce {
		w.writeU16BE(pk.PacketID)
	}
	w.writeBytes(pk.Payload)
	return nil
}

func (pk *Publish) decodeBody(r *reader) error {
	var err error
	pk.TopicName, err = decodeStringField(r)
	if err != nil {
		return err
	}

	if pk.Qos > QoSAtMostOnce {
		pk.PacketID, err = r.readU16BE()
		if err != nil {
			return err
		}
	}

	pk.Payload = r.readRest()
	return nil
}

// valid enforces [MQTT-2.3.1-5]: QoS Reserved (3) is never legal, and a
// QoS 0 PUBLISH carrying DUP=1 is a protocol violation because DUP only
// has meaning for packets that can be retransmitted.
func (pk *Publish) valid() bool {
	if pk.Qos == qosReserved {
		return false
	}
	if pk.Qos == QoSAtMostOnce && pk.Dup {
		return false
	}
	return true
}
