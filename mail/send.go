package mail

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/emersion/go-sasl"
	"github.com/sirupsen/logrus"
	"github.com/zostay/go-addr/pkg/addr"

	"github.com/zostay/go-lifo/message"
	"github.com/zostay/go-lifo/message/header"
	"github.com/zostay/go-lifo/message/transfer"
)

// parseRecipients turns each recipient into an address, failing on the first
// one that does not parse.
func parseRecipients(recipients []string) (addr.AddressList, error) {
	if len(recipients) == 0 {
		return nil, ErrNoRecipients
	}

	al := make(addr.AddressList, 0, len(recipients))
	for _, r := range recipients {
		a, err := addr.ParseEmailAddress(strings.TrimSpace(r))
		if err != nil {
			return nil, fmt.Errorf("invalid recipient %q: %w", r, err)
		}
		al = append(al, a)
	}

	return al, nil
}

// messageID returns a new unique Message-id for mail sent from the given
// address.
func messageID(from addr.Address, now int64) (string, error) {
	domain := "localhost"
	if at := strings.LastIndexByte(from.Address(), '@'); at >= 0 {
		domain = from.Address()[at+1:]
	}

	var nonce [8]byte
	if _, err := rand.Read(nonce[:]); err != nil {
		return "", err
	}

	return fmt.Sprintf("<%d.%s@%s>", now, hex.EncodeToString(nonce[:]), domain), nil
}

// envelope holds the SMTP sender and recipients of a composed message.
type envelope struct {
	from string
	to   []string
}

// Compose builds the message Send would deliver, without sending it. The body
// is plain UTF-8 text sent quoted-printable.
func (c *Client) Compose(subject, body string, recipients []string) (*message.Opaque, error) {
	msg, _, err := c.compose(subject, body, recipients)
	return msg, err
}

func (c *Client) compose(subject, body string, recipients []string) (*message.Opaque, *envelope, error) {
	to, err := parseRecipients(recipients)
	if err != nil {
		return nil, nil, err
	}

	from, err := addr.ParseEmailAddress(c.cfg.From)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid sender %q: %w", c.cfg.From, err)
	}

	now := c.now()
	id, err := messageID(from, now.UnixNano())
	if err != nil {
		return nil, nil, fmt.Errorf("unable to generate message ID: %w", err)
	}

	buf := &message.Buffer{}
	buf.SetBreak(header.CRLF)
	buf.SetAddressList(header.From, addr.AddressList{from})
	buf.SetAddressList(header.To, to)
	buf.SetSubject(subject)
	buf.SetDate(now)
	buf.SetMessageID(id)
	buf.Set(header.MIMEVersion, "1.0")
	buf.SetMediaType("text/plain")
	if err := buf.SetCharset("utf-8"); err != nil {
		return nil, nil, err
	}
	buf.SetTransferEncoding(transfer.QuotedPrintable)

	if _, err := io.WriteString(buf, body); err != nil {
		return nil, nil, err
	}

	env := &envelope{from: from.Address(), to: make([]string, len(to))}
	for i, a := range to {
		env.to[i] = a.Address()
	}

	return buf.Opaque(), env, nil
}

// Send delivers a plain text message to the recipients. Each recipient must
// be a valid address. It connects to the SMTP server with STARTTLS,
// authenticates with PLAIN, and sends. The connection is
// closed before returning.
func (c *Client) Send(subject, body string, recipients []string) error {
	msg, env, err := c.compose(subject, body, recipients)
	if err != nil {
		return err
	}

	var data bytes.Buffer
	if _, err := msg.WriteTo(&data); err != nil {
		return fmt.Errorf("unable to render message: %w", err)
	}

	smtpAddr := c.cfg.SMTPAddr()
	log := c.log.WithFields(logrus.Fields{
		"server":     smtpAddr,
		"recipients": len(env.to),
	})

	log.Debug("connecting to SMTP server")
	sess, err := c.dialSMTP(smtpAddr, c.cfg.tlsConfigFor(c.cfg.SMTPHost))
	if err != nil {
		return fmt.Errorf("unable to connect to SMTP server %s: %w", smtpAddr, err)
	}
	defer func() {
		if err := sess.Close(); err != nil {
			log.WithError(err).Debug("closing SMTP connection")
		}
	}()

	auth := sasl.NewPlainClient("", c.cfg.Username, c.cfg.Password)
	if err := sess.Auth(auth); err != nil {
		return fmt.Errorf("SMTP authentication failed: %w", err)
	}

	if err := sess.SendMail(env.from, env.to, &data); err != nil {
		return fmt.Errorf("unable to send message: %w", err)
	}

	if err := sess.Quit(); err != nil {
		log.WithError(err).Debug("SMTP QUIT failed after message was accepted")
	}

	log.Info("message sent")
	return nil
}
