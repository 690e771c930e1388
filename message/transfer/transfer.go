package transfer

import (
	"io"

	"github.com/zostay/go-lifo/message/header"
)

// Content-transfer-encoding values.
const (
	None            = ""                 // bytes will be left as-is
	Bit7            = "7bit"             // bytes will be left as-is
	Bit8            = "8bit"             // bytes will be left as-is
	Binary          = "binary"           // bytes will be left as-is
	QuotedPrintable = "quoted-printable" // bytes will be transformed between quoted-printable and binary data
	Base64          = "base64"           // bytes will be transformed between base64 and binary data
)

// Transcoding pairs an encoder with a decoder.
type Transcoding struct {
	// Encoder returns a writer that encodes what is written to it onto the
	// given writer. It must be closed to flush the final bytes.
	Encoder func(io.Writer) io.WriteCloser

	// Decoder returns a reader that decodes what it reads from the given
	// reader.
	Decoder func(io.Reader) io.Reader
}

// AsIsTranscoder leaves bytes unchanged in both directions.
var AsIsTranscoder = Transcoding{NewAsIsEncoder, NewAsIsDecoder}

// Transcodings maps each supported Content-transfer-encoding to its
// Transcoding.
var Transcodings = map[string]Transcoding{
	None:            AsIsTranscoder,
	Bit7:            AsIsTranscoder,
	Bit8:            AsIsTranscoder,
	Binary:          AsIsTranscoder,
	QuotedPrintable: {NewQuotedPrintableEncoder, NewQuotedPrintableDecoder},
	Base64:          {NewBase64Encoder, NewBase64Decoder},
}

// ApplyTransferEncoding returns a writer that encodes according to the
// Content-transfer-encoding of h. Unknown or missing encodings pass bytes
// through. Base64 lines end with the header's line break. The returned writer
// must be closed.
func ApplyTransferEncoding(h *header.Header, w io.Writer) io.WriteCloser {
	cte, err := h.GetTransferEncoding()
	if err != nil {
		return NewAsIsEncoder(w)
	}

	if cte == Base64 {
		return NewBase64EncoderWithBreak(w, h.Break())
	}

	if tc, ok := Transcodings[cte]; ok {
		return tc.Encoder(w)
	}

	return NewAsIsEncoder(w)
}

// ApplyTransferDecoding returns a reader that decodes according to the
// Content-transfer-encoding of h. Multipart bodies are never decoded as the
// encoding applies to their parts.
func ApplyTransferDecoding(h *header.Header, r io.Reader) io.Reader {
	if ct, err := h.GetContentType(); err == nil && ct.Type() == "multipart" {
		return r
	}

	cte, err := h.GetTransferEncoding()
	if err != nil {
		return r
	}

	if tc, ok := Transcodings[cte]; ok {
		return tc.Decoder(r)
	}

	return r
}
