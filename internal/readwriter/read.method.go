package readwriter

import (
	"io"

	errs "github.com/sionet/siowire/internal/errors"
)

func (rdr *Reader) ConditionalErr(err error) rdrCondErr {
	if rdr.err != nil {
		return readerCond{rdr}
	}

	rdr.err = err
	return condErr{onRdrErr{rdr}}
}

func (rdr *Reader) Copy(w io.Writer) rdrErr {
	if rdr.err != nil {
		return rdr
	}

	_, rdr.err = io.Copy(w, rdr.r)
	return onRdrErr{rdr}
}

func (rdr *Reader) CopyN(w io.Writer, n int64) rdrErr {
	if rdr.err != nil {
		return rdr
	}

	_, rdr.err = io.CopyN(w, rdr.r, n)
	return onRdrErr{rdr}
}

func (rdr *Reader) Peek(n int) []byte {
	if rdr.err != nil {
		return nil
	}

	var b []byte
	b, rdr.err = rdr.r.Peek(n)
	return b
}

func (rdr *Reader) ReadByte() (b byte) {
	if rdr.err != nil {
		return 0
	}

	b, rdr.err = rdr.r.ReadByte()
	return b
}

func (rdr *Reader) ReadString(delim byte) (str string) {
	if rdr.err != nil {
		return ""
	}

	str, rdr.err = rdr.r.ReadString(delim)
	return str
}

func (rdr *Reader) ReadBytes(delim byte) (p []byte) {
	if rdr.err != nil {
		return nil
	}

	p, rdr.err = rdr.r.ReadBytes(delim)
	return p
}

func (rdr *Reader) ReadFull(p []byte) rdrErr {
	if rdr.err != nil {
		return rdr
	}

	_, rdr.err = io.ReadFull(rdr.r, p)
	return onRdrErr{rdr}
}

type onRdrErr struct{ *Reader }

func (e onRdrErr) OnErr(err error) {
	if e.err != nil {
		e.err = err
	}
}
func (e onRdrErr) OnErrF(err errs.StringF, v ...interface{}) {
	if e.err != nil {
		e.err = err.F(v...)
	}
}

type condErr struct{ onRdrErr }

func (e condErr) OnErr(err error) rdrCondBool {
	e.onRdrErr.OnErr(err)
	return e
}

func (e condErr) OnErrF(err errs.StringF, v ...interface{}) rdrCondBool {
	e.onRdrErr.OnErrF(err, v...)
	return e
}

func (e condErr) IsErr() bool    { return e.err != nil }
func (e condErr) IsNotErr() bool { return e.err == nil }
