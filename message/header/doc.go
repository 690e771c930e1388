// Package header reads and writes email message headers.
//
// Base keeps the fields in order and gives low-level access to them through
// field.Field. Header wraps Base with typed accessors for the fields a mail
// client cares about: Subject, Date, the address fields, Message-id, and the
// MIME fields. Parse reads a header liberally and preserves the original
// bytes of every field it does not change, so a parsed header is written back
// out byte-for-byte.
package header
