package protocol

import (
	"bytes"
	"errors"
	"io"

	rw "github.com/sionet/siowire/internal/readwriter"
)

type PacketDecoder struct {
	read *rw.Reader
}

var NewPacketDecoder _packetDecoder = func(r io.Reader) *PacketDecoder {
	return &PacketDecoder{read: rw.NewReader(r)}
}

func (dec *PacketDecoder) Decode(packet *Packet) error {
	if packet == nil {
		packet = &Packet{}
	}

	b, err := dec.read.Bufio().ReadByte()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return ErrPacketDecode.F(ErrIncompletePacket)
		}
		return ErrPacketDecode.F(err)
	}

	if packet.T, err = ParsePacketType(b); err != nil {
		return err
	}

	var data bytes.Buffer
	dec.read.Copy(&data).OnErrF(ErrPacketDecode, dec.read.Err())
	if dec.read.IsErr() {
		return dec.read.Err()
	}

	packet.D = data.Bytes()
	return nil
}

type PacketEncoder struct {
	write *rw.Writer
}

var NewPacketEncoder _packetEncoder = func(w io.Writer) *PacketEncoder {
	return &PacketEncoder{write: rw.NewWriter(w)}
}

func (enc *PacketEncoder) Encode(packet Packet) error {
	if packet.T > NoopPacket {
		return ErrPacketEncode.F(ErrInvalidPacketID.F(byte(packet.T)))
	}

	enc.write.Bytes(packet.T.Bytes()).OnErrF(ErrPacketEncode, enc.write.Err())
	enc.write.Bytes(packet.D).OnErrF(ErrPacketEncode, enc.write.Err())

	return enc.write.Err()
}

type _packetDecoder func(r io.Reader) *PacketDecoder
type _packetEncoder func(w io.Writer) *PacketEncoder
type _packetReader func(packet *Packet) (err error)
type _packetWriter func(packet Packet) (err error)

func (pac _packetDecoder) From(r io.Reader) PacketReader { return _packetReader(pac(r).Decode) }
func (pac _packetEncoder) To(w io.Writer) PacketWriter   { return _packetWriter(pac(w).Encode) }

func (pac _packetReader) ReadPacket(packet *Packet) error { return pac(packet) }
func (pac _packetWriter) WritePacket(packet Packet) error { return pac(packet) }
