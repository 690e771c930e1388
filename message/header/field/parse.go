package field

import (
	"bytes"
)

// BadStartError is returned when the header begins with junk text that does
// not appear to be a header. The skipped text is kept in the error.
type BadStartError struct {
	BadStart []byte
}

// Error returns the error message.
func (err *BadStartError) Error() string {
	return "header starts with text that does not appear to be a header"
}

// Line is the unparsed content of one header field, including any folded
// continuation lines.
type Line []byte

// Lines is the unparsed content of zero or more header fields.
type Lines []Line

// ParseLines splits a header into field lines. The input is expected to hold
// only the header.
//
// This is more liberal than RFC 5322. A line that starts with a space or tab,
// or that holds no colon, continues the previous field. If such lines come
// before any field, they are skipped and reported in a BadStartError, which
// is returned alongside the lines that did parse.
func ParseLines(m, lb []byte) (Lines, error) {
	h := make(Lines, 0, len(m)/80)
	var err *BadStartError
	for _, line := range bytes.SplitAfter(m, lb) {
		if len(line) == 0 || bytes.Equal(line, lb) {
			continue
		}

		if line[0] == '\t' || line[0] == ' ' || !bytes.Contains(line, []byte{':'}) {
			if len(h) == 0 {
				if err == nil {
					err = &BadStartError{}
				}
				err.BadStart = append(err.BadStart, line...)
				continue
			}

			h[len(h)-1] = append(h[len(h)-1], line...)
			continue
		}

		h = append(h, line)
	}

	if err != nil {
		return h, err
	}
	return h, nil
}

// Unfold removes the line breaks from a folded field, leaving the whitespace
// that followed each break.
func Unfold(f, lb []byte) []byte {
	if len(lb) == 0 {
		return f
	}
	return bytes.ReplaceAll(f, lb, nil)
}

// Parse builds a Field from a single field line. Encoded words in the body are
// decoded when possible and left as they are otherwise. The original bytes
// are kept so the field can be written back unchanged.
func Parse(f Line, lb []byte) *Field {
	rawField := bytes.TrimRight(f, string(lb))

	off := 1
	ix := bytes.IndexByte(rawField, ':')
	if ix < 0 {
		ix = len(rawField)
		off = 0
	}

	name := string(bytes.TrimSpace(Unfold(rawField[:ix], lb)))
	body := string(bytes.TrimSpace(Unfold(rawField[ix+off:], lb)))
	if dec, err := Decode(body); err == nil {
		body = dec
	}

	raw := make([]byte, len(rawField))
	copy(raw, rawField)

	return &Field{name: name, body: body, raw: raw}
}
