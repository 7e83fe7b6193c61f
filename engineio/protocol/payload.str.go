package protocol

import (
	"encoding/base64"
	"io"
	"strconv"
	"unicode/utf8"

	rw "github.com/sionet/siowire/internal/readwriter"
)

// the packet type digit ahead of the payload characters
const packetTypeLength = 1

// PayloadDecoder reads the string-safe payload format:
//
//	<length>:<type digit><data>
//	<length>:b<type digit><base64 data>
//
// where length counts characters, not bytes, of everything after the
// colon. The b marker flags a binary sub-frame whose payload travels
// base64-encoded; the decoded packet comes back with IsBinary set.
type PayloadDecoder struct{ read *reader }

var NewPayloadDecoder _payloadDecoder = func(r io.Reader) *PayloadDecoder {
	return &PayloadDecoder{read: &reader{Reader: rw.NewReader(r)}}
}

// Decode reads frames until the input runs out. The out-param is only
// written on success, an error mid-sequence discards every frame
// already read.
func (dec *PayloadDecoder) Decode(payload *Payload) error {
	var packets Payload

	for dec.read.IsNotErr() {
		n := dec.read.packetLen()
		if dec.read.IsErr() {
			break
		}

		r := dec.read.payload(n)

		b := dec.read.Peek(1)
		dec.read.ConvertErr(io.EOF, ErrPayloadDecode.F(ErrIncompletePacket))

		var isBinary bool
		if dec.read.IsNotErr() && b[0] == 'b' {
			isBinary = true
			_, err := io.CopyN(io.Discard, r, 1) // consume the b marker
			dec.read.SetErr(err)
			r = io.MultiReader(io.LimitReader(r, packetTypeLength), base64.NewDecoder(base64.StdEncoding, r))
		}

		var packet Packet
		packet.IsBinary = isBinary
		if dec.read.IsNotErr() && dec.read.ConditionalErr(NewPacketDecoder(r).Decode(&packet)).IsNotErr() {
			packets = append(packets, packet)
		}
	}

	dec.read.ConvertErr(io.ErrUnexpectedEOF, ErrPayloadDecode.F(ErrIncompletePacket))
	if err := dec.read.ConvertErr(io.EOF, nil).Err(); err != nil {
		return err
	}

	if payload != nil {
		*payload = packets
	}
	return nil
}

type PayloadEncoder struct{ write *writer }

var NewPayloadEncoder _payloadEncoder = func(w io.Writer) *PayloadEncoder {
	return &PayloadEncoder{write: &writer{Writer: rw.NewWriter(w)}}
}

func (enc *PayloadEncoder) Encode(payload Payload) error {
	for _, packet := range payload {
		if err := enc.encode(packet); err != nil {
			return err
		}
	}
	return enc.write.Err()
}

func (enc *PayloadEncoder) encode(packet Packet) error {
	if packet.T > NoopPacket {
		return ErrPayloadEncode.F(ErrInvalidPacketID.F(byte(packet.T)))
	}

	if packet.IsBinary {
		n := base64.StdEncoding.EncodedLen(len(packet.D)) + packetTypeLength + 1 // +1 for the b marker
		enc.write.String(strconv.Itoa(n)).OnErrF(ErrPayloadEncode, enc.write.Err())
		enc.write.Byte(':').OnErrF(ErrPayloadEncode, enc.write.Err())
		enc.write.Byte('b').OnErrF(ErrPayloadEncode, enc.write.Err())
		enc.write.Bytes(packet.T.Bytes()).OnErrF(ErrPayloadEncode, enc.write.Err())
		enc.write.base64(packet.D)
		return enc.write.Err()
	}

	n := utf8.RuneCount(packet.D) + packetTypeLength
	enc.write.String(strconv.Itoa(n)).OnErrF(ErrPayloadEncode, enc.write.Err())
	enc.write.Byte(':').OnErrF(ErrPayloadEncode, enc.write.Err())
	if err := NewPacketEncoder(enc.write).Encode(packet); err != nil {
		return ErrPayloadEncode.F(err)
	}
	return enc.write.Err()
}

type _payloadDecoder func(r io.Reader) *PayloadDecoder
type _payloadEncoder func(w io.Writer) *PayloadEncoder
type _payloadReader func(payload *Payload) (err error)
type _payloadWriter func(payload Payload) (err error)

func (pay _payloadDecoder) From(r io.Reader) PayloadReader { return _payloadReader(pay(r).Decode) }
func (pay _payloadEncoder) To(w io.Writer) PayloadWriter   { return _payloadWriter(pay(w).Encode) }

func (pay _payloadReader) ReadPayload(payload *Payload) error { return pay(payload) }
func (pay _payloadWriter) WritePayload(payload Payload) error { return pay(payload) }
