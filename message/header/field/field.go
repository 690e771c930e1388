package field

import (
	"fmt"
)

// Field is a single header field.
type Field struct {
	name string
	body string

	// raw holds the original bytes of a parsed field, without the trailing
	// line break. It is dropped as soon as the name or body changes.
	raw []byte
}

// New returns a field with the given name and body.
func New(name, body string) *Field {
	return &Field{name: name, body: body}
}

// Name returns the name of the field.
func (f *Field) Name() string {
	return f.name
}

// SetName changes the name of the field.
func (f *Field) SetName(name string) {
	f.name = name
	f.raw = nil
}

// Body returns the decoded body of the field.
func (f *Field) Body() string {
	return f.body
}

// SetBody changes the body of the field.
func (f *Field) SetBody(body string) {
	f.body = body
	f.raw = nil
}

// Raw returns the original bytes of the field or nil if the field was created
// or modified since it was parsed.
func (f *Field) Raw() []byte {
	return f.raw
}

// SetRaw replaces the bytes written out for this field without changing the
// name or body.
func (f *Field) SetRaw(raw []byte) {
	f.raw = raw
}

// String returns the field as it will be written, without a line break. A
// parsed field that has not been changed is returned as-is. Otherwise, the
// body is MIME word encoded if it needs to be.
func (f *Field) String() string {
	if f.raw != nil {
		return string(f.raw)
	}
	return fmt.Sprintf("%s: %s", f.name, Encode(f.body))
}

// Bytes works just like String, but returns a slice of bytes.
func (f *Field) Bytes() []byte {
	if f.raw != nil {
		return f.raw
	}
	return []byte(f.String())
}
