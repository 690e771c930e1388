package message

import "io"

// remainder returns the bytes already read past the end of the header and
// then continues with whatever is left unread in the original reader.
type remainder struct {
	prefix []byte
	r      io.Reader
}

// Read drains the prefix before reading from the nested reader.
func (r *remainder) Read(p []byte) (int, error) {
	n := copy(p, r.prefix)
	r.prefix = r.prefix[n:]
	if n == len(p) {
		return n, nil
	}

	rn, err := r.r.Read(p[n:])
	n += rn
	if n > 0 && err == io.EOF {
		// report the data now and EOF on the next call
		return n, nil
	}
	return n, err
}

// Close closes the nested reader if it is an io.Closer.
func (r *remainder) Close() error {
	if c, isCloser := r.r.(io.Closer); isCloser {
		return c.Close()
	}
	return nil
}
