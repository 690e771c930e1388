package mail

import (
	"crypto/tls"
	"fmt"
	"io"
	"time"

	"github.com/emersion/go-imap"
	"github.com/emersion/go-imap/client"
	"github.com/emersion/go-sasl"
	"github.com/emersion/go-smtp"
	"github.com/sirupsen/logrus"
)

// SMTPSession is the part of an SMTP client connection used by Send, after
// the connection has been greeted and upgraded to TLS. It is satisfied by
// *smtp.Client.
type SMTPSession interface {
	Auth(a sasl.Client) error
	SendMail(from string, to []string, r io.Reader) error
	Quit() error
	Close() error
}

// IMAPSession is the part of an IMAP client connection used by FetchLatest.
// It is satisfied by *client.Client.
type IMAPSession interface {
	Login(username, password string) error
	Select(name string, readOnly bool) (*imap.MailboxStatus, error)
	UidSearch(criteria *imap.SearchCriteria) ([]uint32, error)
	UidFetch(seqset *imap.SeqSet, items []imap.FetchItem, ch chan *imap.Message) error
	Logout() error
}

// SMTPDialer connects to the SMTP server at addr, says hello, and upgrades
// the connection with STARTTLS using config.
type SMTPDialer func(addr string, config *tls.Config) (SMTPSession, error)

// IMAPDialer opens a TLS connection to an IMAP server at addr.
type IMAPDialer func(addr string, config *tls.Config) (IMAPSession, error)

var (
	_ SMTPSession = (*smtp.Client)(nil)
	_ IMAPSession = (*client.Client)(nil)
)

// DialSMTP is the default SMTPDialer.
func DialSMTP(addr string, config *tls.Config) (SMTPSession, error) {
	c, err := smtp.DialStartTLS(addr, config)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// DialIMAP is the default IMAPDialer.
func DialIMAP(addr string, config *tls.Config) (IMAPSession, error) {
	c, err := client.DialTLS(addr, config)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Client sends and fetches mail for a single account.
type Client struct {
	cfg      Config
	log      logrus.FieldLogger
	dialSMTP SMTPDialer
	dialIMAP IMAPDialer
	now      func() time.Time
}

// Option customizes a Client.
type Option func(c *Client)

// WithLogger sets the logger. By default the standard logrus logger is used.
func WithLogger(log logrus.FieldLogger) Option {
	return func(c *Client) { c.log = log }
}

// WithSMTPDialer replaces the function used to connect to the SMTP server.
func WithSMTPDialer(d SMTPDialer) Option {
	return func(c *Client) { c.dialSMTP = d }
}

// WithIMAPDialer replaces the function used to connect to the IMAP server.
func WithIMAPDialer(d IMAPDialer) Option {
	return func(c *Client) { c.dialIMAP = d }
}

// WithClock replaces the clock used to date outgoing messages.
func WithClock(now func() time.Time) Option {
	return func(c *Client) { c.now = now }
}

// New returns a client for the account described by cfg. Empty fields of
// cfg are filled from the defaults. It fails only when cfg does not
// validate. No connection is made until Send or FetchLatest is called.
func New(cfg Config, opts ...Option) (*Client, error) {
	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid mail configuration: %w", err)
	}

	c := &Client{
		cfg:      cfg,
		log:      logrus.StandardLogger(),
		dialSMTP: DialSMTP,
		dialIMAP: DialIMAP,
		now:      time.Now,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Config returns the effective configuration, defaults included.
func (c *Client) Config() Config {
	return c.cfg
}
