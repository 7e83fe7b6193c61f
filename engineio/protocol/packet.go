package protocol

import "io"

const (
	OpenPacket PacketType = iota
	ClosePacket
	PingPacket
	PongPacket
	MessagePacket
	UpgradePacket
	NoopPacket
)

type PacketType byte

// ParsePacketType accepts a raw packet type value 0-6 or its ASCII
// digit '0'-'6'. Both ranges stay valid on purpose: the binary payload
// format carries the raw value while every text format carries the
// digit, and both feed the same packet decoder.
func ParsePacketType(b byte) (PacketType, error) {
	switch b {
	case 0, '0':
		return OpenPacket, nil
	case 1, '1':
		return ClosePacket, nil
	case 2, '2':
		return PingPacket, nil
	case 3, '3':
		return PongPacket, nil
	case 4, '4':
		return MessagePacket, nil
	case 5, '5':
		return UpgradePacket, nil
	case 6, '6':
		return NoopPacket, nil
	}
	return 0, ErrInvalidPacketID.F(b)
}

func (pt PacketType) Bytes() []byte { return []byte{byte(pt) + '0'} }

func (pt PacketType) String() string {
	switch pt {
	case OpenPacket:
		return "open"
	case ClosePacket:
		return "close"
	case PingPacket:
		return "ping"
	case PongPacket:
		return "pong"
	case MessagePacket:
		return "message"
	case UpgradePacket:
		return "upgrade"
	case NoopPacket:
		return "noop"
	}
	return "unknown packet type"
}

// Packet is one engine.io packet. The payload is opaque here: a
// socket.io frame, handshake JSON or raw binary all pass through
// untouched. IsBinary selects the binary sub-frame rendering in the
// payload codecs; the base wire format has no flag for it, so the
// packet carries one explicitly.
type Packet struct {
	T PacketType
	D []byte

	IsBinary bool
}

type (
	PacketWriterTo   interface{ To(io.Writer) PacketWriter }
	PacketReaderFrom interface{ From(io.Reader) PacketReader }

	PacketWriter interface{ WritePacket(Packet) error }
	PacketReader interface{ ReadPacket(*Packet) error }
)
