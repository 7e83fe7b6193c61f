package protocol

import "io"

const (
	ConnectPacket PacketType = iota
	DisconnectPacket
	EventPacket
	AckPacket
	ConnectErrorPacket
	BinaryEventPacket
	BinaryAckPacket
)

type PacketType byte

// ParsePacketType reads the leading type character of a text frame.
// Only the ASCII digits '0'-'6' are valid here; unlike the engine
// packet type there is no raw-byte form, the socket frame is text all
// the way through.
func ParsePacketType(c rune) (PacketType, error) {
	if c < '0' || c > '6' {
		return 0, ErrInvalidPacketID.F(c)
	}
	return PacketType(c - '0'), nil
}

func (pt PacketType) Bytes() []byte { return []byte{byte(pt) + '0'} }

func (pt PacketType) String() string {
	switch pt {
	case ConnectPacket:
		return "connect"
	case DisconnectPacket:
		return "disconnect"
	case EventPacket:
		return "event"
	case AckPacket:
		return "ack"
	case ConnectErrorPacket:
		return "connect error"
	case BinaryEventPacket:
		return "binary event"
	case BinaryAckPacket:
		return "binary ack"
	}
	return "unknown packet type"
}

// Packet is one socket.io packet.
//
// Data is raw JSON text, never a parsed tree; "" means no data
// segment, which is safe because the empty string is not valid JSON
// and so can never appear as real data. AckID is optional, nil when
// the frame carries none. Attachments are the out-of-band binary blobs
// a BinaryEventPacket/BinaryAckPacket frame references by placeholder;
// a decoded packet always has them nil, the caller collects the binary
// frames that follow and fills them in (see Attach).
type Packet struct {
	Type      PacketType
	Namespace string
	Data      string
	AckID     *int64

	AttachmentCount uint64
	Attachments     [][]byte
}

// NewPacket returns a packet with the protocol defaults: an event
// addressed to the root namespace.
func NewPacket() Packet {
	return Packet{Type: EventPacket, Namespace: "/"}
}

// Attach appends one out-of-band binary frame, in arrival order, and
// reports whether the packet now has every attachment it announced.
func (pac *Packet) Attach(blob []byte) bool {
	pac.Attachments = append(pac.Attachments, blob)
	return pac.PendingAttachments() == 0
}

// PendingAttachments is the number of binary frames still owed to this
// packet.
func (pac *Packet) PendingAttachments() uint64 {
	if n := uint64(len(pac.Attachments)); n < pac.AttachmentCount {
		return pac.AttachmentCount - n
	}
	return 0
}

type (
	PacketWriterTo   interface{ To(io.Writer) PacketWriter }
	PacketReaderFrom interface{ From(io.Reader) PacketReader }

	PacketWriter interface{ WritePacket(Packet) error }
	PacketReader interface{ ReadPacket(*Packet) error }
)
