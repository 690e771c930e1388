package header

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/zostay/go-addr/pkg/addr"

	"github.com/zostay/go-lifo/message/header/param"
)

// Errors returned by Header methods.
var (
	// ErrNoSuchField is returned when the named field is not in the header.
	ErrNoSuchField = errors.New("no such header field")

	// ErrNoSuchFieldParameter is returned when the field exists, but the
	// requested parameter is not set on it.
	ErrNoSuchFieldParameter = errors.New("no such header field parameter")

	// ErrManyFields is returned along with the first value when a field that
	// should appear once appears more than once.
	ErrManyFields = errors.New("many header fields found")
)

// Standard field names from RFC 5322 and RFC 2045.
const (
	Cc                      = "Cc"
	ContentTransferEncoding = "Content-transfer-encoding"
	ContentType             = "Content-type"
	Date                    = "Date"
	From                    = "From"
	MessageID               = "Message-id"
	MIMEVersion             = "MIME-version"
	Subject                 = "Subject"
	To                      = "To"
)

// UnixDateWithEarlyYear is a date layout seen in the wild that the usual
// parsers choke on.
const UnixDateWithEarlyYear = "Mon Jan 02 15:04:05 2006 MST"

// Header is a Base with typed accessors. Getters return ErrNoSuchField when
// the field is missing.
type Header struct {
	Base
}

// Clone returns a deep copy of the header.
func (h *Header) Clone() *Header {
	return &Header{Base: h.Base.clone()}
}

// Get returns the body of the named field. If the field appears more than
// once, the first body is returned with ErrManyFields.
func (h *Header) Get(name string) (string, error) {
	ixs := h.GetIndexesNamed(name)
	if len(ixs) == 0 {
		return "", ErrNoSuchField
	}

	b := h.GetField(ixs[0]).Body()
	if len(ixs) > 1 {
		return b, ErrManyFields
	}

	return b, nil
}

// GetAll returns the bodies of every field with the given name.
func (h *Header) GetAll(name string) ([]string, error) {
	fs := h.GetAllFieldsNamed(name)
	if len(fs) == 0 {
		return nil, ErrNoSuchField
	}

	bs := make([]string, len(fs))
	for i, f := range fs {
		bs[i] = f.Body()
	}
	return bs, nil
}

// Set replaces every field with the given name by a single field. The first
// existing field is updated in place and the rest are removed. If there is no
// such field, it is appended.
func (h *Header) Set(name, body string) {
	ixs := h.GetIndexesNamed(name)
	if len(ixs) == 0 {
		h.InsertBeforeField(h.Len(), name, body)
		return
	}

	for i := len(ixs) - 1; i > 0; i-- {
		_ = h.DeleteField(ixs[i])
	}

	f := h.GetField(ixs[0])
	f.SetName(name)
	f.SetBody(body)
}

// ParseTime parses a date field body. RFC 5322 format is tried first, then
// the many formats known to dateparse.
func ParseTime(body string) (time.Time, error) {
	t, err := mail.ParseDate(body)
	if err == nil {
		return t, nil
	}

	t, err = dateparse.ParseAny(body)
	if err == nil {
		return t, nil
	}

	t, err = time.Parse(UnixDateWithEarlyYear, body)
	if err == nil {
		return t, nil
	}

	return time.Time{}, fmt.Errorf("time string %q cannot be parsed", body)
}

// GetTime returns the named field parsed as a date.
func (h *Header) GetTime(name string) (time.Time, error) {
	body, err := h.Get(name)
	if err != nil && !errors.Is(err, ErrManyFields) {
		return time.Time{}, err
	}

	t, perr := ParseTime(body)
	if perr != nil {
		return t, perr
	}

	return t, err
}

// SetTime sets the named field to the time formatted per RFC 5322.
func (h *Header) SetTime(name string, t time.Time) {
	h.Set(name, t.Format(time.RFC1123Z))
}

// ParseAddressList parses an address field body. A strict parse is tried
// first. When that fails, a forgiving fallback returns whatever it can make
// of the input.
func ParseAddressList(body string) addr.AddressList {
	al, err := addr.ParseEmailAddressList(body)
	if err != nil {
		al = parseEmailAddressList(body)
	}
	return al
}

// GetAddressList returns the named field as an address list.
func (h *Header) GetAddressList(name string) (addr.AddressList, error) {
	body, err := h.Get(name)
	if err != nil && !errors.Is(err, ErrManyFields) {
		return nil, err
	}
	return ParseAddressList(body), err
}

// SetAddressList sets the named field to the given addresses.
func (h *Header) SetAddressList(name string, al addr.AddressList) {
	h.Set(name, al.String())
}

// setAddress sets an address field from strings, which must parse strictly,
// or addr.Address values.
func (h *Header) setAddress(name string, as []any) error {
	al := make(addr.AddressList, 0, len(as))
	for _, a := range as {
		switch v := a.(type) {
		case string:
			parsed, err := addr.ParseEmailAddress(v)
			if err != nil {
				return fmt.Errorf("unable to parse address %q: %w", v, err)
			}
			al = append(al, parsed)
		case addr.Address:
			al = append(al, v)
		default:
			return fmt.Errorf("cannot set %s to a %T", name, a)
		}
	}

	h.SetAddressList(name, al)
	return nil
}

// GetFrom returns the From field as an address list.
func (h *Header) GetFrom() (addr.AddressList, error) {
	return h.GetAddressList(From)
}

// SetFrom sets the From field from strings or addr.Address values.
func (h *Header) SetFrom(a ...any) error {
	return h.setAddress(From, a)
}

// GetTo returns the To field as an address list.
func (h *Header) GetTo() (addr.AddressList, error) {
	return h.GetAddressList(To)
}

// SetTo sets the To field from strings or addr.Address values.
func (h *Header) SetTo(a ...any) error {
	return h.setAddress(To, a)
}

// GetCc returns the Cc field as an address list.
func (h *Header) GetCc() (addr.AddressList, error) {
	return h.GetAddressList(Cc)
}

// SetCc sets the Cc field from strings or addr.Address values.
func (h *Header) SetCc(a ...any) error {
	return h.setAddress(Cc, a)
}

// GetSubject returns the Subject field.
func (h *Header) GetSubject() (string, error) {
	return h.Get(Subject)
}

// SetSubject sets the Subject field.
func (h *Header) SetSubject(s string) {
	h.Set(Subject, s)
}

// GetDate returns the Date field as a time.
func (h *Header) GetDate() (time.Time, error) {
	return h.GetTime(Date)
}

// SetDate sets the Date field.
func (h *Header) SetDate(d time.Time) {
	h.SetTime(Date, d)
}

// GetMessageID returns the Message-id field.
func (h *Header) GetMessageID() (string, error) {
	return h.Get(MessageID)
}

// SetMessageID sets the Message-id field.
func (h *Header) SetMessageID(id string) {
	h.Set(MessageID, id)
}

// GetContentType returns the Content-type field as a param.Value.
func (h *Header) GetContentType() (*param.Value, error) {
	body, err := h.Get(ContentType)
	if err != nil && !errors.Is(err, ErrManyFields) {
		return nil, err
	}

	pv, perr := param.Parse(body)
	if perr != nil {
		return nil, perr
	}
	return pv, err
}

// SetContentType sets the Content-type field.
func (h *Header) SetContentType(pv *param.Value) {
	h.Set(ContentType, pv.String())
}

// GetMediaType returns the media type of the Content-type field.
func (h *Header) GetMediaType() (string, error) {
	pv, err := h.GetContentType()
	if pv == nil {
		return "", err
	}
	return pv.MediaType(), err
}

// SetMediaType changes the media type of the Content-type field, keeping any
// parameters already set on it.
func (h *Header) SetMediaType(mt string) {
	pv, err := h.GetContentType()
	if pv == nil || err != nil {
		h.SetContentType(param.New(mt, nil))
		return
	}
	h.SetContentType(param.Modify(pv, param.Change(mt)))
}

// GetCharset returns the charset parameter of the Content-type field.
func (h *Header) GetCharset() (string, error) {
	pv, err := h.GetContentType()
	if pv == nil {
		return "", err
	}

	if c := pv.Charset(); c != "" {
		return c, nil
	}
	return "", ErrNoSuchFieldParameter
}

// SetCharset sets the charset parameter of the Content-type field, which must
// already be set.
func (h *Header) SetCharset(c string) error {
	pv, err := h.GetContentType()
	if err != nil {
		return err
	}

	h.SetContentType(param.Modify(pv, param.Set(param.Charset, c)))
	return nil
}

// GetTransferEncoding returns the Content-transfer-encoding field, lower
// cased.
func (h *Header) GetTransferEncoding() (string, error) {
	te, err := h.Get(ContentTransferEncoding)
	return strings.ToLower(strings.TrimSpace(te)), err
}

// SetTransferEncoding sets the Content-transfer-encoding field.
func (h *Header) SetTransferEncoding(te string) {
	h.Set(ContentTransferEncoding, te)
}

// parseEmailAddressList is the fallback used when the strict parser in
// go-addr rejects an address field. Each comma separated entry has its
// comments pulled out, the last word taken as the address, and the words
// before it as the display name. Groups are not recognized.
func parseEmailAddressList(v string) addr.AddressList {
	extractComments := func(s string) (string, string) {
		var clean, comment strings.Builder
		nest := 0
		for _, c := range s {
			switch {
			case c == '(':
				nest++
				if nest > 1 {
					comment.WriteRune(c)
				}
			case c == ')':
				nest--
				switch {
				case nest == 0:
				case nest < 0:
					nest = 0
					clean.WriteRune(c)
				default:
					comment.WriteRune(c)
				}
			case nest > 0:
				comment.WriteRune(c)
			default:
				clean.WriteRune(c)
			}
		}
		return clean.String(), comment.String()
	}

	entries := strings.Split(v, ",")
	as := make(addr.AddressList, 0, len(entries))
	for _, orig := range entries {
		mb, com := extractComments(orig)
		words := strings.Fields(strings.TrimSpace(mb))
		if len(words) == 0 {
			continue
		}

		dn := strings.Join(words[:len(words)-1], " ")
		email := strings.Trim(words[len(words)-1], "<>")

		local, domain := email, ""
		if i := strings.LastIndex(email, "@"); i > -1 {
			local, domain = email[:i], email[i+1:]
		}
		spec := addr.NewAddrSpecParsed(local, domain, email)

		mailbox, err := addr.NewMailboxParsed(dn, spec, strings.TrimSpace(com), orig)
		if err != nil {
			mailbox, _ = addr.NewMailboxParsed(dn, spec, "", orig)
		}

		as = append(as, mailbox)
	}

	return as
}
