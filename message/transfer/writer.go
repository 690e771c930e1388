package transfer

import "io"

// writer pairs a writer with the closer that must be called to flush it.
type writer struct {
	io.Writer
	io.Closer
}

// Close calls the nested closer, if any.
func (w *writer) Close() error {
	if w.Closer != nil {
		return w.Closer.Close()
	}
	return nil
}
