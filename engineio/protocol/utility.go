package protocol

import (
	"bufio"
	"io"
	"unicode/utf8"
)

// limitRuneReader reads up to n runes, not bytes; the string-safe
// payload format counts frame lengths in characters. Hitting the end
// of the source before n runes is io.ErrUnexpectedEOF, and a byte
// sequence that is not UTF-8 is ErrInvalidUTF8.
type limitRuneReader struct {
	r *bufio.Reader
	n int64
}

func LimitRuneReader(r *bufio.Reader, n int64) io.Reader { return &limitRuneReader{r: r, n: n} }

func (lr *limitRuneReader) Read(p []byte) (n int, err error) {
	if lr.n <= 0 {
		return 0, io.EOF
	}

	for lr.n > 0 {
		c, size, rerr := lr.r.ReadRune()
		if rerr != nil {
			if rerr == io.EOF {
				rerr = io.ErrUnexpectedEOF
			}
			return n, rerr
		}
		if c == utf8.RuneError && size == 1 {
			return n, ErrInvalidUTF8
		}
		if size > len(p)-n {
			if uerr := lr.r.UnreadRune(); uerr != nil {
				return n, uerr
			}
			if n == 0 {
				return 0, io.ErrShortBuffer
			}
			return n, nil
		}
		n += utf8.EncodeRune(p[n:], c)
		lr.n--
	}

	return n, nil
}
