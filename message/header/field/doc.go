// Package field holds the individual fields of a message header. A Field
// keeps the decoded name and body for reading and, when it was parsed from an
// existing message, the original bytes so it can be written back unchanged.
package field
