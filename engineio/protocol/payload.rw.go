package protocol

import (
	"bytes"
	"encoding/base64"
	"io"
	"strconv"
	"strings"

	rw "github.com/sionet/siowire/internal/readwriter"
)

type reader struct{ *rw.Reader }
type writer struct{ *rw.Writer }

// packetLen reads the `<digits>:` frame header of the string-safe
// format. A clean end of input before any header byte is io.EOF so the
// payload loop can stop; anything else short of a well-formed positive
// length is an incomplete packet.
func (rdr *reader) packetLen() (n int64) {
	if rdr.IsErr() {
		return 0
	}

	data, err := rdr.Bufio().ReadString(':')
	if err != nil {
		if err == io.EOF && len(data) == 0 {
			rdr.SetErr(io.EOF)
			return 0
		}
		rdr.SetErr(ErrPayloadDecode.F(ErrIncompletePacket))
		return 0
	}

	// a bare digit run only; ParseInt alone would let a sign through
	digits := strings.TrimRight(data, ":")
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			rdr.SetErr(ErrPayloadDecode.F(ErrIncompletePacket))
			return 0
		}
	}

	n, err = strconv.ParseInt(digits, 10, 64)
	if err != nil || n <= 0 {
		rdr.SetErr(ErrPayloadDecode.F(ErrIncompletePacket))
		return 0
	}

	return n
}

func (rdr *reader) payload(n int64) io.Reader { return LimitRuneReader(rdr.Bufio(), n) }

// binaryPacketLen reads the length run of the binary format: one byte
// per decimal digit, value 0-9, closed off by the 0xFF sentinel.
func (rdr *reader) binaryPacketLen() (n int64) {
	if rdr.IsErr() {
		return 0
	}

	data, err := rdr.Bufio().ReadBytes(0xFF)
	if err != nil {
		rdr.SetErr(ErrPayloadDecode.F(ErrIncompletePacket))
		return 0
	}

	data = bytes.TrimRight(data, "\xFF")
	for i, v := range data {
		if v > 9 {
			rdr.SetErr(ErrPayloadDecode.F(ErrInvalidLengthByte.F(v)))
			return 0
		}
		data[i] = v + '0'
	}

	n, perr := strconv.ParseInt(string(data), 10, 64)
	if perr != nil || n <= 0 {
		rdr.SetErr(ErrPayloadDecode.F(ErrIncompletePacket))
		return 0
	}

	return n
}

func (wtr *writer) base64(p []byte) {
	if wtr.IsErr() {
		return
	}

	b64 := base64.NewEncoder(base64.StdEncoding, wtr)
	if _, err := b64.Write(p); err != nil {
		wtr.SetErr(err)
		return
	}
	if err := b64.Close(); err != nil {
		wtr.SetErr(err)
	}
}

func (wtr *writer) binaryPacketLen(n int) {
	if wtr.IsErr() {
		return
	}

	for _, c := range []byte(strconv.Itoa(n)) {
		wtr.Byte(c - '0')
	}
}
