package protocol

import erro "github.com/sionet/siowire/internal/errors"

const (
	ErrIncompletePacket erro.String = "incomplete packet"
	ErrInvalidUTF8      erro.String = "invalid utf-8 data"

	ErrInvalidPacketID    erro.StringF = "invalid packet id: %v"
	ErrInvalidFrameMarker erro.StringF = "invalid payload frame marker: %v"
	ErrInvalidLengthByte  erro.StringF = "invalid payload length byte: %v"

	ErrInvalidHandshake erro.StringF = "invalid handshake data: missing field %q"
	ErrHandshakeDecode  erro.StringF = "handshake decode: %w"
	ErrHandshakeEncode  erro.StringF = "handshake encode: %w"
	ErrPacketDecode     erro.StringF = "packet decode: %w"
	ErrPacketEncode     erro.StringF = "packet encode: %w"
	ErrPayloadDecode    erro.StringF = "payload decode: %w"
	ErrPayloadEncode    erro.StringF = "payload encode: %w"
)
