package protocol

import "io"

// Payload is an ordered run of packets multiplexed into one transport
// write. Order is semantic: delivery order is decode order.
type Payload []Packet

type (
	PayloadWriterTo   interface{ To(io.Writer) PayloadWriter }
	PayloadReaderFrom interface{ From(io.Reader) PayloadReader }

	PayloadWriter interface{ WritePayload(Payload) error }
	PayloadReader interface{ ReadPayload(*Payload) error }
)
