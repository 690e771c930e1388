package mail

import (
	"crypto/tls"
	"errors"
	"net"
	"strconv"
)

// Defaults used for any Config field left empty. They point at Gmail.
const (
	DefaultSMTPHost = "smtp.gmail.com"
	DefaultSMTPPort = 587
	DefaultIMAPHost = "imap.gmail.com"
	DefaultIMAPPort = 993
	DefaultMailbox  = "INBOX"
)

// ErrMissingCredentials is returned by Validate when the username or password
// is not set.
var ErrMissingCredentials = errors.New("mail username and password are required")

// Config holds the connection settings for a Client.
type Config struct {
	// Username and Password authenticate to both the SMTP and IMAP servers.
	Username string
	Password string

	// From is the sender address for outgoing mail. Username is used when it
	// is empty.
	From string

	// SMTPHost and SMTPPort locate the submission server. The connection is
	// upgraded with STARTTLS.
	SMTPHost string
	SMTPPort int

	// IMAPHost and IMAPPort locate the IMAP server, which is reached over
	// TLS.
	IMAPHost string
	IMAPPort int

	// Mailbox is searched by FetchLatest.
	Mailbox string

	// TLSConfig is cloned for each connection with ServerName set to the
	// host being dialed. It may be nil.
	TLSConfig *tls.Config
}

// WithDefaults returns a copy of the config with empty fields filled in.
func (c Config) WithDefaults() Config {
	if c.SMTPHost == "" {
		c.SMTPHost = DefaultSMTPHost
	}
	if c.SMTPPort == 0 {
		c.SMTPPort = DefaultSMTPPort
	}
	if c.IMAPHost == "" {
		c.IMAPHost = DefaultIMAPHost
	}
	if c.IMAPPort == 0 {
		c.IMAPPort = DefaultIMAPPort
	}
	if c.Mailbox == "" {
		c.Mailbox = DefaultMailbox
	}
	if c.From == "" {
		c.From = c.Username
	}
	return c
}

// Validate checks that the config can be used to connect.
func (c Config) Validate() error {
	if c.Username == "" || c.Password == "" {
		return ErrMissingCredentials
	}
	return nil
}

// SMTPAddr returns the host:port of the SMTP server.
func (c Config) SMTPAddr() string {
	return net.JoinHostPort(c.SMTPHost, strconv.Itoa(c.SMTPPort))
}

// IMAPAddr returns the host:port of the IMAP server.
func (c Config) IMAPAddr() string {
	return net.JoinHostPort(c.IMAPHost, strconv.Itoa(c.IMAPPort))
}

// tlsConfigFor returns the TLS settings to use with the given host.
func (c Config) tlsConfigFor(host string) *tls.Config {
	var tc *tls.Config
	if c.TLSConfig != nil {
		tc = c.TLSConfig.Clone()
	} else {
		tc = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	tc.ServerName = host
	return tc
}
