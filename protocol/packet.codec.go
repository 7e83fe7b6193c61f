package protocol

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	rw "github.com/sionet/siowire/internal/readwriter"
)

// the marker an attachment leaves behind in the JSON payload; decode
// only ever strips the index-0 literal, higher indices stay in the
// data text exactly as they arrived
const placeholder = `{"_placeholder":true,"num":0}`

type PacketDecoder struct {
	read *rw.Reader
}

var NewPacketDecoder _packetDecoder = func(r io.Reader) *PacketDecoder {
	return &PacketDecoder{read: rw.NewReader(r)}
}

// Decode parses one text frame. The frame never contains attachment
// bytes, so Attachments is left nil; the caller feeds the raw binary
// frames that follow to Attach in arrival order.
func (dec *PacketDecoder) Decode(packet *Packet) error {
	if packet == nil {
		packet = &Packet{}
	}

	raw, err := io.ReadAll(dec.read.Bufio())
	if err != nil {
		return ErrPacketDecode.F(err)
	}
	if !utf8.Valid(raw) {
		return ErrPacketDecode.F(ErrInvalidUTF8)
	}

	*packet = NewPacket()
	text := string(raw)

	// packet type
	c, size := utf8.DecodeRuneInString(text)
	if size == 0 {
		return ErrPacketDecode.F(ErrIncompletePacket)
	}
	if packet.Type, err = ParsePacketType(c); err != nil {
		return err
	}
	text = text[size:]

	// attachment count
	if packet.Type == BinaryEventPacket || packet.Type == BinaryAckPacket {
		idx := strings.IndexByte(text, '-')
		if idx < 0 {
			return ErrPacketDecode.F(ErrIncompletePacket)
		}
		if packet.AttachmentCount, err = strconv.ParseUint(text[:idx], 10, 64); err != nil {
			return ErrInvalidPacket.F("attachment count", err)
		}
		text = text[idx+1:]
	}

	// namespace
	if strings.HasPrefix(text, "/") {
		idx := strings.IndexByte(text, ',')
		if idx < 0 {
			return ErrPacketDecode.F(ErrIncompletePacket)
		}
		packet.Namespace = text[:idx]
		text = text[idx+1:]
	}

	// ack id. When only digits remain there is no data segment either
	// and the packet is complete; a JSON payload always opens with a
	// non-digit.
	idx := strings.IndexFunc(text, func(r rune) bool { return r < '0' || r > '9' })
	if idx < 0 {
		return nil
	}
	if idx > 0 {
		id, perr := strconv.ParseInt(text[:idx], 10, 64)
		if perr != nil {
			return ErrInvalidPacket.F("ack id", perr)
		}
		packet.AckID = &id
		text = text[idx:]
	}

	// the data segment must at least be well formed JSON
	var discard json.RawMessage
	if err := json.Unmarshal([]byte(text), &discard); err != nil {
		return ErrInvalidJSON.F(err)
	}

	// binary types strip the placeholder scaffolding back out of the
	// event array, leaving just the caller's data
	if packet.Type == BinaryEventPacket || packet.Type == BinaryAckPacket {
		if strings.HasPrefix(text, "[") && strings.HasSuffix(text, "]") {
			text = text[1 : len(text)-1]
		}
		text = strings.ReplaceAll(text, placeholder, "")
		text = strings.TrimSuffix(text, ",")
		packet.Data = text
		return nil
	}

	packet.Data = text
	return nil
}

type PacketEncoder struct {
	write *rw.Writer
}

var NewPacketEncoder _packetEncoder = func(w io.Writer) *PacketEncoder {
	return &PacketEncoder{write: rw.NewWriter(w)}
}

// Encode writes the text frame. Attachment bytes are not written, they
// travel as separate binary frames; the frame only carries their count
// and placeholder.
func (enc *PacketEncoder) Encode(packet Packet) error {
	if packet.Type > BinaryAckPacket {
		return ErrPacketEncode.F(ErrInvalidPacketID.F(rune(packet.Type)))
	}

	isBinary := packet.Type == BinaryEventPacket || packet.Type == BinaryAckPacket
	if len(packet.Attachments) > 0 {
		if !isBinary || uint64(len(packet.Attachments)) != packet.AttachmentCount {
			return ErrPacketEncode.F(ErrAttachmentMismatch.F(len(packet.Attachments), packet.AttachmentCount))
		}
	}

	enc.write.Bytes(packet.Type.Bytes()).OnErrF(ErrPacketEncode, enc.write.Err())

	if isBinary {
		enc.write.String(strconv.FormatUint(packet.AttachmentCount, 10)).OnErrF(ErrPacketEncode, enc.write.Err())
		enc.write.Byte('-').OnErrF(ErrPacketEncode, enc.write.Err())
	}

	if packet.Namespace != "" && packet.Namespace != "/" {
		enc.write.String(packet.Namespace).OnErrF(ErrPacketEncode, enc.write.Err())
		enc.write.Byte(',').OnErrF(ErrPacketEncode, enc.write.Err())
	}

	if packet.AckID != nil {
		enc.write.String(strconv.FormatInt(*packet.AckID, 10)).OnErrF(ErrPacketEncode, enc.write.Err())
	}

	switch {
	case len(packet.Attachments) > 0:
		num := packet.AttachmentCount - 1
		if packet.Data != "" {
			enc.write.String(fmt.Sprintf(`[%s,{"_placeholder":true,"num":%d}]`, packet.Data, num)).OnErrF(ErrPacketEncode, enc.write.Err())
		} else {
			enc.write.String(fmt.Sprintf(`[{"_placeholder":true,"num":%d}]`, num)).OnErrF(ErrPacketEncode, enc.write.Err())
		}
	case packet.Data != "":
		enc.write.String(packet.Data).OnErrF(ErrPacketEncode, enc.write.Err())
	}

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
