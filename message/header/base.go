package header

import (
	"bytes"
	"errors"
	"io"
	"strings"

	"github.com/zostay/go-lifo/message/header/field"
)

// ErrIndexOutOfRange is returned when a field index is negative or past the
// end of the header.
var ErrIndexOutOfRange = errors.New("header field index is out of range")

// Base is the ordered list of fields making up a header along with the line
// break used to write it. The zero value is an empty header using LF.
type Base struct {
	lbr    Break
	fields []*field.Field
}

// Break returns the line break used to write the header.
func (h *Base) Break() Break {
	if h.lbr == Meh {
		return LF
	}
	return h.lbr
}

// SetBreak changes the line break used to write the header.
func (h *Base) SetBreak(lbr Break) {
	h.lbr = lbr
}

// Len returns the number of fields.
func (h *Base) Len() int {
	return len(h.fields)
}

// GetField returns the nth field or nil if there is no such field.
func (h *Base) GetField(n int) *field.Field {
	if n < 0 || n >= len(h.fields) {
		return nil
	}
	return h.fields[n]
}

// GetIndexesNamed returns the indexes of the fields with the given name,
// compared case-insensitively.
func (h *Base) GetIndexesNamed(name string) []int {
	var is []int
	for i, f := range h.fields {
		if strings.EqualFold(f.Name(), name) {
			is = append(is, i)
		}
	}
	return is
}

// GetAllFieldsNamed returns the fields with the given name.
func (h *Base) GetAllFieldsNamed(name string) []*field.Field {
	var fs []*field.Field
	for _, f := range h.fields {
		if strings.EqualFold(f.Name(), name) {
			fs = append(fs, f)
		}
	}
	return fs
}

// ListFields returns a copy of the list of fields.
func (h *Base) ListFields() []*field.Field {
	fs := make([]*field.Field, len(h.fields))
	copy(fs, h.fields)
	return fs
}

// InsertBeforeField inserts a new field before index n. An n past either end
// of the header is clamped to it.
func (h *Base) InsertBeforeField(n int, name, body string) {
	if n < 0 {
		n = 0
	}
	if n > len(h.fields) {
		n = len(h.fields)
	}

	h.fields = append(h.fields, nil)
	copy(h.fields[n+1:], h.fields[n:])
	h.fields[n] = field.New(name, body)
}

// DeleteField removes the nth field.
func (h *Base) DeleteField(n int) error {
	if n < 0 || n >= len(h.fields) {
		return ErrIndexOutOfRange
	}

	copy(h.fields[n:], h.fields[n+1:])
	h.fields[len(h.fields)-1] = nil
	h.fields = h.fields[:len(h.fields)-1]

	return nil
}

// WriteTo writes every field followed by a line break and then the blank line
// that ends the header.
func (h *Base) WriteTo(w io.Writer) (int64, error) {
	lbr := h.Break().Bytes()

	var total int64
	for _, f := range h.fields {
		n, err := w.Write(f.Bytes())
		total += int64(n)
		if err != nil {
			return total, err
		}

		n, err = w.Write(lbr)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}

	n, err := w.Write(lbr)
	total += int64(n)
	return total, err
}

// Bytes returns the header as it would be written by WriteTo.
func (h *Base) Bytes() []byte {
	var buf bytes.Buffer
	_, _ = h.WriteTo(&buf)
	return buf.Bytes()
}

// String returns the header as it would be written by WriteTo.
func (h *Base) String() string {
	return string(h.Bytes())
}

// clone returns a deep copy.
func (h *Base) clone() Base {
	fs := make([]*field.Field, len(h.fields))
	for i, f := range h.fields {
		c := *f
		fs[i] = &c
	}
	return Base{lbr: h.lbr, fields: fs}
}
