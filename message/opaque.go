package message

import (
	"io"

	"github.com/zostay/go-lifo/message/header"
	"github.com/zostay/go-lifo/message/transfer"
)

// Opaque is a message header and body.
type Opaque struct {
	// Header holds the message header.
	header.Header

	// Reader holds the body. It is nil when the body is empty.
	io.Reader

	// encoded is true when the bytes in Reader still carry the
	// Content-transfer-encoding. Parse leaves encoding in place unless told
	// to decode. A Buffer produces decoded bytes unless built with
	// OpaqueAlreadyEncoded.
	encoded bool
}

// countingWriter tracks how many bytes made it to the nested writer.
type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}

// WriteTo writes the header and body to w. A decoded body is encoded on the
// way out according to the Content-transfer-encoding header.
//
// This consumes the Reader, so it can only be called once.
func (m *Opaque) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	if _, err := m.Header.WriteTo(cw); err != nil {
		return cw.n, err
	}

	if m.Reader == nil {
		return cw.n, nil
	}

	body := transfer.NewAsIsEncoder(cw)
	if !m.encoded {
		body = transfer.ApplyTransferEncoding(&m.Header, cw)
	}

	if _, err := io.Copy(body, m.Reader); err != nil {
		_ = body.Close()
		return cw.n, err
	}

	err := body.Close()
	return cw.n, err
}

// IsEncoded returns true if reading the body returns the bytes with the
// Content-transfer-encoding still applied.
func (m *Opaque) IsEncoded() bool {
	return m.encoded
}

// GetHeader returns the message header.
func (m *Opaque) GetHeader() *header.Header {
	return &m.Header
}

// GetReader returns the body reader, which may be nil.
func (m *Opaque) GetReader() io.Reader {
	return m.Reader
}
