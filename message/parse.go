package message

import (
	"bufio"
	"bytes"
	"errors"
	"io"

	"github.com/zostay/go-lifo/message/header"
	"github.com/zostay/go-lifo/message/header/field"
	"github.com/zostay/go-lifo/message/transfer"
)

// Constants related to Parse options.
const (
	// DefaultChunkSize is the number of bytes read at a time while looking
	// for the end of the header.
	DefaultChunkSize = 16_384

	// DefaultMaxHeaderLength is the number of bytes to scan before giving up
	// on finding the end of the header.
	DefaultMaxHeaderLength = bufio.MaxScanTokenSize
)

// ErrLargeHeader is returned by Parse when the header is longer than the
// maximum header length.
var ErrLargeHeader = errors.New("the header exceeds the maximum parse length")

var splits = [][]byte{
	[]byte("\x0d\x0a\x0d\x0a"), // \r\n\r\n
	[]byte("\x0a\x0d\x0a\x0d"), // \n\r\n\r, extremely unlikely
	[]byte("\x0a\x0a"),         // \n\n
	[]byte("\x0d\x0d"),         // \r\r
}

type parser struct {
	maxHeaderLen int
	chunkSize    int
	decode       bool
}

// ParseOption changes how Parse works.
type ParseOption func(pr *parser)

// WithMaxHeaderLength sets the number of bytes Parse will read while looking
// for the end of the header before failing with ErrLargeHeader. A value of 0
// or less removes the limit. The default is DefaultMaxHeaderLength.
func WithMaxHeaderLength(n int) ParseOption {
	return func(pr *parser) { pr.maxHeaderLen = n }
}

// WithChunkSize sets how many bytes are read at a time. The default is
// DefaultChunkSize.
func WithChunkSize(n int) ParseOption {
	return func(pr *parser) {
		if n > 0 {
			pr.chunkSize = n
		}
	}
}

// DecodeTransferEncoding makes the body reader of the parsed message return
// decoded bytes. By default, the body is left encoded so the message can be
// written back out unchanged.
func DecodeTransferEncoding() ParseOption {
	return func(pr *parser) { pr.decode = true }
}

// searchForSplit looks for the blank line between header and body. It returns
// the position just after it and the line break in use, or -1 if there is no
// blank line yet.
func searchForSplit(buf []byte) (int, []byte) {
	for _, s := range splits {
		if pos := bytes.Index(buf, s); pos > -1 {
			return pos + len(s), s[:len(s)/2]
		}
	}
	return -1, nil
}

// splitHeadFromBody reads chunks from r until the end of the header is found.
// It returns the header bytes, the line break, and a reader for the body.
func (pr *parser) splitHeadFromBody(r io.Reader) ([]byte, []byte, io.Reader, error) {
	p := make([]byte, pr.chunkSize)
	buf := &bytes.Buffer{}
	searched := 0
	for {
		n, err := r.Read(p)
		if pr.maxHeaderLen > 0 && n+buf.Len() > pr.maxHeaderLen {
			return nil, nil, nil, ErrLargeHeader
		}

		isEOF := errors.Is(err, io.EOF)
		if err != nil && !isEOF {
			return nil, nil, nil, err
		}

		buf.Write(p[:n])

		if pos, lbr := searchForSplit(buf.Bytes()[searched:]); pos >= 0 {
			pos += searched
			all := buf.Bytes()

			hdr := make([]byte, pos)
			copy(hdr, all[:pos])

			// the remainder of the chunk starts the body, the rest is left
			// unread in r
			rest := make([]byte, len(all)-pos)
			copy(rest, all[pos:])

			return hdr, lbr, &remainder{rest, r}, nil
		}

		if isEOF {
			break
		}

		// the split may straddle two chunks
		searched = max(buf.Len()-3, 0)
	}

	// No blank line, so it is all header. Pick the break from what is there.
	for _, s := range splits {
		lbr := s[:len(s)/2]
		if bytes.Contains(buf.Bytes(), lbr) {
			return buf.Bytes(), lbr, nil, nil
		}
	}

	return buf.Bytes(), header.LF.Bytes(), nil, nil
}

// Parse reads a message from r. The input is read a chunk at a time until the
// blank line ending the header is found; the line break used there becomes
// the line break of the header. The rest of the last chunk plus whatever is
// left in r becomes the body. If no blank line is found, the whole input is
// treated as header and the body is nil.
//
// If the header starts with junk, the message is still returned along with a
// *field.BadStartError. Any other error means no message is returned.
func Parse(r io.Reader, opts ...ParseOption) (*Opaque, error) {
	pr := &parser{
		maxHeaderLen: DefaultMaxHeaderLength,
		chunkSize:    DefaultChunkSize,
	}
	for _, opt := range opts {
		opt(pr)
	}

	hdr, lbr, body, err := pr.splitHeadFromBody(r)
	if err != nil {
		return nil, err
	}

	head, err := header.Parse(hdr, header.Break(lbr))
	var badStart *field.BadStartError
	if err != nil && !errors.As(err, &badStart) {
		return nil, err
	}

	if pr.decode && body != nil {
		body = transfer.ApplyTransferDecoding(head, body)
	}

	return &Opaque{*head, body, !pr.decode}, err
}
