package mail

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/emersion/go-imap"
	"github.com/sirupsen/logrus"

	"github.com/zostay/go-lifo/message"
	"github.com/zostay/go-lifo/message/header/field"
)

// HeaderFilter restricts a search to messages whose named header field
// contains Value.
type HeaderFilter struct {
	Name  string
	Value string
}

// Fetched is a message retrieved by FetchLatest.
type Fetched struct {
	// UID is the message's unique identifier in the mailbox.
	UID uint32

	// Raw holds the message exactly as the server returned it.
	Raw []byte

	// Message is Raw parsed, with the body transfer decoded.
	Message *message.Opaque
}

// FetchLatestBySubject returns the newest message whose Subject contains
// subject. An empty subject matches every message.
func (c *Client) FetchLatestBySubject(subject string) (*Fetched, error) {
	var filter *HeaderFilter
	if subject != "" {
		filter = &HeaderFilter{Name: "Subject", Value: subject}
	}
	return c.FetchLatest(filter)
}

// FetchLatest returns the message with the highest UID in the configured
// mailbox among those matching filter. A nil filter matches every message.
//
// The mailbox is opened read-only and the body is fetched with BODY.PEEK, so
// no flags change. It returns ErrNoMatchingMessage when nothing matches and
// ErrFetchFailed when the match cannot be retrieved. The session is logged
// out before returning.
func (c *Client) FetchLatest(filter *HeaderFilter) (*Fetched, error) {
	imapAddr := c.cfg.IMAPAddr()
	log := c.log.WithFields(logrus.Fields{
		"server":  imapAddr,
		"mailbox": c.cfg.Mailbox,
	})

	log.Debug("connecting to IMAP server")
	sess, err := c.dialIMAP(imapAddr, c.cfg.tlsConfigFor(c.cfg.IMAPHost))
	if err != nil {
		return nil, fmt.Errorf("unable to connect to IMAP server %s: %w", imapAddr, err)
	}
	defer func() {
		if err := sess.Logout(); err != nil {
			log.WithError(err).Debug("IMAP logout")
		}
	}()

	if err := sess.Login(c.cfg.Username, c.cfg.Password); err != nil {
		return nil, fmt.Errorf("IMAP login failed: %w", err)
	}

	if _, err := sess.Select(c.cfg.Mailbox, true); err != nil {
		return nil, fmt.Errorf("unable to select mailbox %q: %w", c.cfg.Mailbox, err)
	}

	criteria := imap.NewSearchCriteria()
	if filter != nil && filter.Value != "" {
		criteria.Header.Add(filter.Name, filter.Value)
		log = log.WithField(filter.Name, filter.Value)
	}

	uids, err := sess.UidSearch(criteria)
	if err != nil {
		return nil, fmt.Errorf("IMAP search failed: %w", err)
	}

	if len(uids) == 0 {
		log.Debug("search found no messages")
		return nil, ErrNoMatchingMessage
	}

	uid := slices.Max(uids)
	log = log.WithField("uid", uid)
	log.Debug("fetching latest match")

	raw, err := fetchBody(sess, uid)
	if err != nil {
		return nil, err
	}

	msg, err := message.Parse(bytes.NewReader(raw), message.DecodeTransferEncoding())
	var badStart *field.BadStartError
	if err != nil && !errors.As(err, &badStart) {
		return nil, fmt.Errorf("unable to parse message %d: %w", uid, err)
	}

	return &Fetched{UID: uid, Raw: raw, Message: msg}, nil
}

// fetchBody retrieves the full content of the message with the given UID.
func fetchBody(sess IMAPSession, uid uint32) ([]byte, error) {
	seqset := new(imap.SeqSet)
	seqset.AddNum(uid)

	section := &imap.BodySectionName{Peek: true}
	items := []imap.FetchItem{section.FetchItem()}

	msgs := make(chan *imap.Message, 1)
	done := make(chan error, 1)
	go func() {
		done <- sess.UidFetch(seqset, items, msgs)
	}()

	var found *imap.Message
	for m := range msgs {
		if found == nil {
			found = m
		}
	}

	if err := <-done; err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}

	if found == nil {
		return nil, fmt.Errorf("%w: message %d returned nothing", ErrFetchFailed, uid)
	}

	body := found.GetBody(section)
	if body == nil {
		for _, lit := range found.Body {
			body = lit
			break
		}
	}

	if body == nil {
		return nil, fmt.Errorf("%w: message %d has no body", ErrFetchFailed, uid)
	}

	raw, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}

	return raw, nil
}
