package protocol

import erro "github.com/sionet/siowire/internal/errors"

const (
	ErrIncompletePacket erro.String = "incomplete packet"
	ErrInvalidUTF8      erro.String = "invalid utf-8 data"

	ErrInvalidPacketID erro.StringF = "invalid packet id: %q"
	ErrInvalidPacket   erro.StringF = "invalid packet: %s int parse: %w"
	ErrInvalidJSON     erro.StringF = "invalid json: %w"

	ErrAttachmentMismatch erro.StringF = "attachment count mismatch: have %d want %d"

	ErrPacketDecode erro.StringF = "packet decode: %w"
	ErrPacketEncode erro.StringF = "packet encode: %w"
)
