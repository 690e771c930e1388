// Package param handles parameterized header fields, such as Content-type,
// which hold a primary value followed by name=value parameters.
package param
