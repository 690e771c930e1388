// Package lifo collects a few small tools built around a last-in, first-out
// stack.
//
// The stack package provides the generic Stack container. The balance package
// uses it to decide whether the brackets in a string are properly nested, and
// cmd/balance puts that on the command line, printing a localized verdict.
//
// The mail package is a thin client for sending a plain text message over
// SMTP and fetching the newest matching message over IMAP, one connection per
// call. It builds and parses messages with the message package, which keeps a
// message as a header plus an opaque body and round-trips header fields as
// faithfully as it can. cmd/gmail exposes both operations, configured from
// flags and GMAIL_* environment variables.
//
// Nothing in here is safe for concurrent use without outside locking.
package lifo
