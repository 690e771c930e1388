package param

import (
	"fmt"
	"mime"
	"sort"
	"strings"
)

// Parameter names used with Content-type.
const (
	Charset  = "charset"
	Boundary = "boundary"
)

// Value is a parsed parameterized field body. A Value is immutable; use
// Modify to derive a changed copy.
type Value struct {
	v  string
	ps map[string]string
}

// Parse parses a field body such as "text/plain; charset=utf-8".
func Parse(v string) (*Value, error) {
	mt, ps, err := mime.ParseMediaType(v)
	if err != nil {
		return nil, err
	}

	return &Value{mt, ps}, nil
}

// New creates a Value with the given parameters, which may be nil.
func New(v string, ps map[string]string) *Value {
	pv := &Value{v, make(map[string]string, len(ps))}
	for k, val := range ps {
		pv.ps[strings.ToLower(k)] = val
	}
	return pv
}

// Modifier is a change applied by Modify.
type Modifier func(*Value)

// Change replaces the primary value.
func Change(value string) Modifier {
	return func(pv *Value) { pv.v = value }
}

// Set sets the named parameter.
func Set(name, value string) Modifier {
	return func(pv *Value) { pv.ps[strings.ToLower(name)] = value }
}

// Delete removes the named parameter.
func Delete(name string) Modifier {
	return func(pv *Value) { delete(pv.ps, strings.ToLower(name)) }
}

// Modify returns a copy of pv with the changes applied in order.
func Modify(pv *Value, changes ...Modifier) *Value {
	c := pv.Clone()
	for _, change := range changes {
		change(c)
	}
	return c
}

// Value returns the primary value, the part before the first semicolon.
func (pv *Value) Value() string {
	return pv.v
}

// MediaType is a synonym for Value, for use with Content-type.
func (pv *Value) MediaType() string {
	return pv.v
}

// Type returns the part of the media type before the slash, e.g., "text" for
// "text/plain". It is empty if there is no slash.
func (pv *Value) Type() string {
	if ix := strings.IndexByte(pv.v, '/'); ix >= 0 {
		return pv.v[:ix]
	}
	return ""
}

// Subtype returns the part of the media type after the slash, e.g., "plain"
// for "text/plain". It is empty if there is no slash.
func (pv *Value) Subtype() string {
	if ix := strings.IndexByte(pv.v, '/'); ix >= 0 {
		return pv.v[ix+1:]
	}
	return ""
}

// Parameters returns the parameters. The map must not be modified.
func (pv *Value) Parameters() map[string]string {
	return pv.ps
}

// Parameter returns the named parameter or an empty string.
func (pv *Value) Parameter(k string) string {
	return pv.ps[strings.ToLower(k)]
}

// Charset returns the charset parameter.
func (pv *Value) Charset() string {
	return pv.ps[Charset]
}

// Boundary returns the boundary parameter.
func (pv *Value) Boundary() string {
	return pv.ps[Boundary]
}

// String serializes the value with its parameters sorted by name, quoting
// parameter values where needed.
func (pv *Value) String() string {
	if s := mime.FormatMediaType(pv.v, pv.ps); s != "" {
		return s
	}

	// FormatMediaType refuses values that are not tokens, so fall back to the
	// plain form.
	pks := make([]string, 0, len(pv.ps))
	for k := range pv.ps {
		pks = append(pks, k)
	}
	sort.Strings(pks)

	parts := make([]string, 0, len(pks)+1)
	parts = append(parts, pv.v)
	for _, k := range pks {
		parts = append(parts, fmt.Sprintf("%s=%q", k, pv.ps[k]))
	}

	return strings.Join(parts, "; ")
}

// Clone returns a deep copy.
func (pv *Value) Clone() *Value {
	return New(pv.v, pv.ps)
}
