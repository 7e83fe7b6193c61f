package protocol

import (
	"bytes"
	"io"

	rw "github.com/sionet/siowire/internal/readwriter"
)

// BinaryPayloadDecoder reads the byte-oriented payload format used
// over transports that can carry raw binary:
//
//	<0x00|0x01><length digit bytes><0xFF><packet bytes>
//
// A 0x00 marker frames a text packet (ASCII type digit plus text), a
// 0x01 marker a binary one (raw type byte plus raw payload). The
// length digits are byte VALUES 0-9, one per decimal digit.
type BinaryPayloadDecoder struct{ read *reader }

var NewBinaryPayloadDecoder _binaryPayloadDecoder = func(r io.Reader) *BinaryPayloadDecoder {
	return &BinaryPayloadDecoder{read: &reader{Reader: rw.NewReader(r)}}
}

// Decode reads frames until the input runs out. The out-param is only
// written on success, an error mid-sequence discards every frame
// already read.
func (dec *BinaryPayloadDecoder) Decode(payload *Payload) error {
	var packets Payload

	for dec.read.IsNotErr() {
		marker, err := dec.read.Bufio().ReadByte()
		if err != nil {
			dec.read.SetErr(err)
			break
		}
		if marker != 0x00 && marker != 0x01 {
			dec.read.SetErr(ErrPayloadDecode.F(ErrInvalidFrameMarker.F(marker)))
			break
		}

		n := dec.read.binaryPacketLen()

		var data bytes.Buffer
		dec.read.CopyN(&data, n).OnErrF(ErrPayloadDecode, ErrIncompletePacket)

		var packet Packet
		packet.IsBinary = marker == 0x01
		if dec.read.IsNotErr() && dec.read.ConditionalErr(NewPacketDecoder(&data).Decode(&packet)).IsNotErr() {
			packets = append(packets, packet)
		}
	}

	if err := dec.read.ConvertErr(io.EOF, nil).Err(); err != nil {
		return err
	}

	if payload != nil {
		*payload = packets
	}
	return nil
}

type BinaryPayloadEncoder struct{ write *writer }

var NewBinaryPayloadEncoder _binaryPayloadEncoder = func(w io.Writer) *BinaryPayloadEncoder {
	return &BinaryPayloadEncoder{write: &writer{Writer: rw.NewWriter(w)}}
}

func (enc *BinaryPayloadEncoder) Encode(payload Payload) error {
	for _, packet := range payload {
		if err := enc.encode(packet); err != nil {
			return err
		}
	}
	return enc.write.Err()
}

func (enc *BinaryPayloadEncoder) encode(packet Packet) error {
	if packet.T > NoopPacket {
		return ErrPayloadEncode.F(ErrInvalidPacketID.F(byte(packet.T)))
	}

	if packet.IsBinary {
		enc.write.Byte(0x01).OnErrF(ErrPayloadEncode, enc.write.Err())
		enc.write.binaryPacketLen(len(packet.D) + 1) // +1 for the raw type byte
		enc.write.Byte(0xFF).OnErrF(ErrPayloadEncode, enc.write.Err())
		enc.write.Byte(byte(packet.T)).OnErrF(ErrPayloadEncode, enc.write.Err())
		enc.write.Bytes(packet.D).OnErrF(ErrPayloadEncode, enc.write.Err())
		return enc.write.Err()
	}

	enc.write.Byte(0x00).OnErrF(ErrPayloadEncode, enc.write.Err())
	enc.write.binaryPacketLen(len(packet.D) + packetTypeLength)
	enc.write.Byte(0xFF).OnErrF(ErrPayloadEncode, enc.write.Err())
	enc.write.Bytes(packet.T.Bytes()).OnErrF(ErrPayloadEncode, enc.write.Err())
	enc.write.Bytes(packet.D).OnErrF(ErrPayloadEncode, enc.write.Err())
	return enc.write.Err()
}

type _binaryPayloadDecoder func(r io.Reader) *BinaryPayloadDecoder
type _binaryPayloadEncoder func(w io.Writer) *BinaryPayloadEncoder
type _binaryPayloadReader func(payload *Payload) (err error)
type _binaryPayloadWriter func(payload Payload) (err error)

func (pay _binaryPayloadDecoder) From(r io.Reader) PayloadReader {
	return _binaryPayloadReader(pay(r).Decode)
}
func (pay _binaryPayloadEncoder) To(w io.Writer) PayloadWriter {
	return _binaryPayloadWriter(pay(w).Encode)
}

func (pay _binaryPayloadReader) ReadPayload(payload *Payload) error { return pay(payload) }
func (pay _binaryPayloadWriter) WritePayload(payload Payload) error { return pay(payload) }
