package message

import (
	"bytes"

	"github.com/zostay/go-lifo/message/header"
)

// Buffer builds a new message. Set header fields through the embedded Header
// and write the body through Write. Call Opaque when finished.
type Buffer struct {
	header.Header
	buf bytes.Buffer
}

// Write appends to the message body.
func (b *Buffer) Write(p []byte) (int, error) {
	return b.buf.Write(p)
}

// Len returns the number of body bytes written so far.
func (b *Buffer) Len() int {
	return b.buf.Len()
}

// Opaque returns the built message. The body is treated as decoded, so
// WriteTo applies any Content-transfer-encoding set on the header.
//
// The Buffer should not be used after this is called.
func (b *Buffer) Opaque() *Opaque {
	msg := &Opaque{Header: b.Header}
	if b.buf.Len() > 0 {
		msg.Reader = &b.buf
	}
	return msg
}

// OpaqueAlreadyEncoded works like Opaque, but marks the body as already
// carrying its Content-transfer-encoding. It performs no encoding itself.
func (b *Buffer) OpaqueAlreadyEncoded() *Opaque {
	msg := b.Opaque()
	msg.encoded = true
	return msg
}
