package protocol

import "encoding/json"

// Handshake is the session metadata a server sends inside the payload
// of an OPEN packet.
//
// Every field is required on the wire; a handshake with one missing is
// rejected rather than default-filled. The wire names are fixed by the
// protocol and not configurable.
type Handshake struct {
	SID          string   `json:"sid"`
	Upgrades     []string `json:"upgrades"`
	PingInterval Duration `json:"pingInterval"`
	PingTimeout  Duration `json:"pingTimeout"`
}

// ParseHandshake decodes the handshake carried by pac. The packet type
// is not checked, only the payload drives the decode; callers that
// need strictness gate on OpenPacket themselves.
func ParseHandshake(pac Packet) (*Handshake, error) {
	var probe struct {
		SID          *string   `json:"sid"`
		Upgrades     *[]string `json:"upgrades"`
		PingInterval *Duration `json:"pingInterval"`
		PingTimeout  *Duration `json:"pingTimeout"`
	}

	if err := json.Unmarshal(pac.D, &probe); err != nil {
		return nil, ErrHandshakeDecode.F(err)
	}

	for _, field := range []struct {
		name string
		ok   bool
	}{
		{"sid", probe.SID != nil},
		{"upgrades", probe.Upgrades != nil},
		{"pingInterval", probe.PingInterval != nil},
		{"pingTimeout", probe.PingTimeout != nil},
	} {
		if !field.ok {
			return nil, ErrHandshakeDecode.F(ErrInvalidHandshake.F(field.name))
		}
	}

	return &Handshake{
		SID:          *probe.SID,
		Upgrades:     *probe.Upgrades,
		PingInterval: *probe.PingInterval,
		PingTimeout:  *probe.PingTimeout,
	}, nil
}

// Marshal renders the handshake as the OPEN packet payload. A nil
// upgrade list goes out as the empty JSON array.
func (h *Handshake) Marshal() ([]byte, error) {
	out := *h
	if out.Upgrades == nil {
		out.Upgrades = []string{}
	}

	data, err := json.Marshal(out)
	if err != nil {
		return nil, ErrHandshakeEncode.F(err)
	}
	return data, nil
}
