package header

// Break is the line break used to separate header fields.
type Break string

// Line breaks seen in the wild. Use CRLF for anything sent over the network.
const (
	Meh  Break = ""         // no preference
	CRLF Break = "\x0d\x0a" // \r\n
	LF   Break = "\x0a"     // \n
	CR   Break = "\x0d"     // \r
	LFCR Break = "\x0a\x0d" // \n\r
)

// String returns the break as a string.
func (b Break) String() string {
	return string(b)
}

// Bytes returns the break as a slice of bytes.
func (b Break) Bytes() []byte {
	return []byte(b)
}
