// Package message reads and builds email messages.
//
// An Opaque message is a header plus a body held as an io.Reader. The body is
// treated as bytes; this package assigns no meaning to its content beyond the
// Content-transfer-encoding.
//
// Existing messages are read with Parse:
//
//	msg, err := message.Parse(r, message.DecodeTransferEncoding())
//	if err != nil {
//	  panic(err)
//	}
//	subject, _ := msg.GetSubject()
//
// New messages are built with a Buffer, which is an io.Writer for the body
// with the header embedded:
//
//	buf := &message.Buffer{}
//	buf.SetSubject("Hello")
//	_, _ = fmt.Fprintln(buf, "Hello World!")
//	_, _ = buf.Opaque().WriteTo(w)
package message
