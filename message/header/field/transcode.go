package field

import (
	"fmt"
	"io"
	"mime"
	"strings"

	_ "golang.org/x/text/encoding/charmap" // register the single byte charsets
	"golang.org/x/text/encoding/ianaindex"
)

// Encode returns the body ready to be written in a header. Bodies that are
// plain ASCII are returned unchanged. Anything else is written as B-encoded
// UTF-8 words.
func Encode(body string) string {
	return mime.BEncoding.Encode("utf-8", body)
}

// Decode turns any MIME encoded words found in body into UTF-8.
func Decode(body string) (string, error) {
	if !strings.Contains(body, "=?") {
		return body, nil
	}

	dec := &mime.WordDecoder{CharsetReader: CharsetReader}
	return dec.DecodeHeader(body)
}

// CharsetReader returns a reader translating input in the named charset into
// UTF-8. It knows every charset in the IANA index, which covers far more than
// the handful built into the mime package.
func CharsetReader(charset string, input io.Reader) (io.Reader, error) {
	e, err := ianaindex.MIME.Encoding(charset)
	if err != nil {
		return nil, err
	}

	if e == nil {
		return nil, fmt.Errorf("no encoding found for charset %q", charset)
	}

	return e.NewDecoder().Reader(input), nil
}
