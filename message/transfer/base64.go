package transfer

import (
	"encoding/base64"
	"io"

	"github.com/zostay/go-lifo/message/header"
)

const defaultBase64LineLength = 76

// lineWriter breaks the output into lines of a fixed length.
type lineWriter struct {
	every int
	acc   int
	lbr   []byte
	w     io.Writer
}

func (lw *lineWriter) Write(b []byte) (int, error) {
	n := 0
	for len(b) > 0 {
		take := lw.every - lw.acc
		if take > len(b) {
			take = len(b)
		}

		wn, err := lw.w.Write(b[:take])
		n += wn
		if err != nil {
			return n, err
		}

		b = b[take:]
		lw.acc += take
		if lw.acc == lw.every {
			if _, err := lw.w.Write(lw.lbr); err != nil {
				return n, err
			}
			lw.acc = 0
		}
	}

	return n, nil
}

// Close ends any partial line.
func (lw *lineWriter) Close() error {
	if lw.acc == 0 {
		return nil
	}
	lw.acc = 0
	_, err := lw.w.Write(lw.lbr)
	return err
}

// base64Writer closes the encoder and then the line writer beneath it.
type base64Writer struct {
	enc io.WriteCloser
	lw  *lineWriter
}

func (bw *base64Writer) Write(b []byte) (int, error) {
	return bw.enc.Write(b)
}

func (bw *base64Writer) Close() error {
	if err := bw.enc.Close(); err != nil {
		return err
	}
	return bw.lw.Close()
}

// NewBase64Encoder returns a writer that base64 encodes onto w in lines of
// 76 characters ending in LF.
func NewBase64Encoder(w io.Writer) io.WriteCloser {
	return NewBase64EncoderWithBreak(w, header.LF)
}

// NewBase64EncoderWithBreak works like NewBase64Encoder, but ends each line
// with lbr.
func NewBase64EncoderWithBreak(w io.Writer, lbr header.Break) io.WriteCloser {
	if lbr == header.Meh {
		lbr = header.LF
	}

	lw := &lineWriter{
		every: defaultBase64LineLength,
		lbr:   lbr.Bytes(),
		w:     w,
	}
	return &base64Writer{base64.NewEncoder(base64.StdEncoding, lw), lw}
}

// NewBase64Decoder returns a reader that decodes base64 data read from r.
// Line breaks in the input are ignored.
func NewBase64Decoder(r io.Reader) io.Reader {
	return base64.NewDecoder(base64.StdEncoding, r)
}
