package packets

// PingReq is the PINGREQ control packet: no variable header, no payload.
type PingReq struct {
	packetHeader
}

func (pk *PingReq) encodeBody(w *writer) error { return nil }
func (pk *PingReq) decodeBody(r *reader) error { return nil }
func (pk *PingReq) valid() bool                { return true }

// PingResp is the PINGRESP control packet: no variable header, no
// payload.
type PingResp struct {
	packetHeader
}

func (pk *PingResp) encodeBody(w *writer) error { return nil }
func (pk *PingResp) decodeBody(r *reader) error { return nil }
func (pk *PingResp) valid() bool                { return true }

// Disconnect is the DISCONNECT control packet: no variable header, no
// payload.
type Disconnect struct {
	packetHeader
}

func (pk *Disconnect) encodeBody(w *writer) error { return nil }
func (pk *Disconnect) decodeBody(r *reader) error { return nil }
func (pk *Disconnect) valid() bool                { return true }
