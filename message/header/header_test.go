package header_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zostay/go-lifo/message/header"
	"github.com/zostay/go-lifo/message/header/field"
)

func TestHeader_SetGet(t *testing.T) {
	t.Parallel()

	h := &header.Header{}
	_, err := h.GetSubject()
	assert.ErrorIs(t, err, header.ErrNoSuchField)

	h.SetSubject("hello")
	h.Set("X-Test", "one")
	h.InsertBeforeField(h.Len(), "X-Test", "two")

	s, err := h.GetSubject()
	assert.NoError(t, err)
	assert.Equal(t, "hello", s)

	v, err := h.Get("x-test")
	assert.ErrorIs(t, err, header.ErrManyFields)
	assert.Equal(t, "one", v)

	all, err := h.GetAll("X-Test")
	assert.NoError(t, err)
	assert.Equal(t, []string{"one", "two"}, all)

	h.Set("X-Test", "three")
	all, err = h.GetAll("X-Test")
	assert.NoError(t, err)
	assert.Equal(t, []string{"three"}, all)

	assert.Equal(t, "Subject: hello\nX-Test: three\n\n", h.String())
}

func TestHeader_Date(t *testing.T) {
	t.Parallel()

	h := &header.Header{}
	when := time.Date(2024, time.March, 5, 10, 30, 0, 0, time.UTC)
	h.SetDate(when)

	body, err := h.Get(header.Date)
	assert.NoError(t, err)
	assert.Equal(t, "Tue, 05 Mar 2024 10:30:00 +0000", body)

	got, err := h.GetDate()
	assert.NoError(t, err)
	assert.True(t, when.Equal(got))

	h.Set(header.Date, "2024-03-05 10:30:00")
	got, err = h.GetDate()
	assert.NoError(t, err)
	assert.Equal(t, 5, got.Day())

	h.Set(header.Date, "not a date")
	_, err = h.GetDate()
	assert.Error(t, err)
}

func TestHeader_Addresses(t *testing.T) {
	t.Parallel()

	h := &header.Header{}
	require.NoError(t, h.SetFrom("Me <me@example.com>"))
	require.NoError(t, h.SetTo("a@example.com", "B <b@example.com>"))

	from, err := h.GetFrom()
	require.NoError(t, err)
	require.Len(t, from, 1)
	assert.Equal(t, "me@example.com", from[0].Address())

	to, err := h.GetTo()
	require.NoError(t, err)
	require.Len(t, to, 2)
	assert.Equal(t, "a@example.com", to[0].Address())
	assert.Equal(t, "b@example.com", to[1].Address())

	assert.Error(t, h.SetCc("not an address"))
	assert.Error(t, h.SetCc(42))
}

func TestParseAddressList_Lenient(t *testing.T) {
	t.Parallel()

	al := header.ParseAddressList("Some Body (work) some@body, broken")
	require.Len(t, al, 2)
	assert.Equal(t, "some@body", al[0].Address())
	assert.Equal(t, "Some Body", al[0].DisplayName())
}

func TestHeader_ContentType(t *testing.T) {
	t.Parallel()

	h := &header.Header{}
	assert.ErrorIs(t, h.SetCharset("utf-8"), header.ErrNoSuchField)

	h.SetMediaType("text/plain")
	_, err := h.GetCharset()
	assert.ErrorIs(t, err, header.ErrNoSuchFieldParameter)

	require.NoError(t, h.SetCharset("utf-8"))
	h.SetMediaType("text/html")

	mt, err := h.GetMediaType()
	assert.NoError(t, err)
	assert.Equal(t, "text/html", mt)

	cs, err := h.GetCharset()
	assert.NoError(t, err)
	assert.Equal(t, "utf-8", cs)

	body, _ := h.Get(header.ContentType)
	assert.Equal(t, "text/html; charset=utf-8", body)
}

func TestHeader_TransferEncoding(t *testing.T) {
	t.Parallel()

	h := &header.Header{}
	h.SetTransferEncoding("Quoted-Printable ")
	te, err := h.GetTransferEncoding()
	assert.NoError(t, err)
	assert.Equal(t, "quoted-printable", te)
}

func TestParse(t *testing.T) {
	t.Parallel()

	in := "Subject: =?utf-8?q?caf=C3=A9?=\r\nFrom: me@example.com\r\nX-Long: one\r\n two\r\n\r\n"
	h, err := header.Parse([]byte(in), header.CRLF)
	require.NoError(t, err)

	assert.Equal(t, header.CRLF, h.Break())
	assert.Equal(t, 3, h.Len())

	s, err := h.GetSubject()
	assert.NoError(t, err)
	assert.Equal(t, "café", s)

	long, err := h.Get("X-Long")
	assert.NoError(t, err)
	assert.Equal(t, "one two", long)

	// round trip, byte for byte
	assert.Equal(t, in, h.String())

	h.SetSubject("changed")
	assert.Equal(t, "Subject: changed\r\nFrom: me@example.com\r\nX-Long: one\r\n two\r\n\r\n", h.String())
}

func TestParse_BadStart(t *testing.T) {
	t.Parallel()

	h, err := header.Parse([]byte("junk\nSubject: ok\n\n"), header.LF)
	var badStart *field.BadStartError
	assert.ErrorAs(t, err, &badStart)
	require.NotNil(t, h)

	s, err := h.GetSubject()
	assert.NoError(t, err)
	assert.Equal(t, "ok", s)
}

func TestHeader_Clone(t *testing.T) {
	t.Parallel()

	h := &header.Header{}
	h.SetSubject("original")

	c := h.Clone()
	c.SetSubject("copy")

	s, _ := h.GetSubject()
	assert.Equal(t, "original", s)
	s, _ = c.GetSubject()
	assert.Equal(t, "copy", s)
}

func TestBase_DeleteField(t *testing.T) {
	t.Parallel()

	h := &header.Header{}
	h.Set("A", "1")
	h.Set("B", "2")

	assert.ErrorIs(t, h.DeleteField(2), header.ErrIndexOutOfRange)
	assert.ErrorIs(t, h.DeleteField(-1), header.ErrIndexOutOfRange)
	assert.NoError(t, h.DeleteField(0))
	assert.Equal(t, "B: 2\n\n", h.String())
	assert.Nil(t, h.GetField(1))
}
