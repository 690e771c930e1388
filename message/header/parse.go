package header

import (
	"errors"

	"github.com/zostay/go-lifo/message/header/field"
)

// Parse parses the given bytes as a complete header using the given line
// break. Fields keep their original bytes, so writing the header back out
// reproduces the input until a field is changed.
//
// Junk before the first field is skipped and reported with a
// *field.BadStartError along with the header that could be parsed.
func Parse(m []byte, lb Break) (*Header, error) {
	lines, err := field.ParseLines(m, lb.Bytes())

	var badStart *field.BadStartError
	if err != nil && !errors.As(err, &badStart) {
		return nil, err
	}

	fields := make([]*field.Field, len(lines))
	for i, line := range lines {
		fields[i] = field.Parse(line, lb.Bytes())
	}

	h := &Header{
		Base: Base{
			lbr:    lb,
			fields: fields,
		},
	}

	return h, err
}
