package readwriter

import (
	"bufio"
	"io"

	errs "github.com/sionet/siowire/internal/errors"
)

type wtrErr interface {
	OnErr(error)
	OnErrF(errs.StringF, ...interface{})
}

// Writer is the write-side counterpart of Reader. Err flushes the
// underlying bufio writer, so a codec's final Err call both reports
// and completes the write.
type Writer struct {
	w   *bufio.Writer
	err error
}

func (wtr *Writer) Bufio() *bufio.Writer { return wtr.w }
func (wtr *Writer) SetErr(err error)     { wtr.err = err }

func (wtr *Writer) Err() error {
	if wtr.err == nil {
		wtr.err = wtr.w.Flush()
	}
	return wtr.err
}
func (wtr *Writer) OnErr(error)                         {}
func (wtr *Writer) OnErrF(errs.StringF, ...interface{}) {}
func (wtr *Writer) IsErr() bool                         { return wtr.err != nil }
func (wtr *Writer) IsNotErr() bool                      { return wtr.err == nil }
func (wtr *Writer) Write(p []byte) (n int, err error)   { return wtr.w.Write(p) }

func NewWriter(w io.Writer) *Writer { return &Writer{w: bufio.NewWriter(w)} }
