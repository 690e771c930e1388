package cmd_test

import (
	"bytes"
	"crypto/tls"
	"io"
	"strings"
	"testing"

	"github.com/emersion/go-imap"
	"github.com/emersion/go-sasl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zostay/go-lifo/cmd/gmail/cmd"
	"github.com/zostay/go-lifo/mail"
	"github.com/zostay/go-lifo/message"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("GMAIL_USERNAME", "someone@example.com")
	t.Setenv("GMAIL_PASSWORD", "secret")
	t.Setenv("GMAIL_SMTP_HOST", "smtp.example.com")
	t.Setenv("GMAIL_IMAP_PORT", "1993")

	cfg := cmd.LoadConfig()
	assert.Equal(t, "someone@example.com", cfg.Username)
	assert.Equal(t, "secret", cfg.Password)
	assert.Equal(t, "smtp.example.com", cfg.SMTPHost)
	assert.Equal(t, mail.DefaultSMTPPort, cfg.SMTPPort)
	assert.Equal(t, mail.DefaultIMAPHost, cfg.IMAPHost)
	assert.Equal(t, 1993, cfg.IMAPPort)
	assert.Equal(t, mail.DefaultMailbox, cfg.Mailbox)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_MissingPassword(t *testing.T) {
	t.Setenv("GMAIL_USERNAME", "someone@example.com")
	t.Setenv("GMAIL_PASSWORD", "")

	_, err := mail.New(cmd.LoadConfig())
	assert.ErrorIs(t, err, mail.ErrMissingCredentials)
}

func TestPrintSummary(t *testing.T) {
	t.Parallel()

	raw := "From: Friend <friend@example.com>\r\n" +
		"Subject: =?utf-8?b?0J/RgNC40LLQtdGC?=\r\n" +
		"X-Other: ignored\r\n" +
		"\r\n" +
		"Hello!\r\n"

	msg, err := message.Parse(strings.NewReader(raw), message.DecodeTransferEncoding())
	require.NoError(t, err)

	var out bytes.Buffer
	err = cmd.PrintSummary(&out, &mail.Fetched{UID: 12, Raw: []byte(raw), Message: msg})
	require.NoError(t, err)

	assert.Equal(t, "UID: 12\n"+
		"From: Friend <friend@example.com>\n"+
		"Subject: Привет\n"+
		"\n"+
		"Hello!\r\n", out.String())
}

type fakeSMTP struct {
	user string
	to   []string
	data string
}

func (f *fakeSMTP) Auth(a sasl.Client) error {
	_, ir, err := a.Start()
	f.user = strings.Split(string(ir), "\x00")[1]
	return err
}

func (f *fakeSMTP) SendMail(_ string, to []string, r io.Reader) error {
	f.to = to
	data, err := io.ReadAll(r)
	f.data = string(data)
	return err
}

func (f *fakeSMTP) Quit() error { return nil }
func (f *fakeSMTP) Close() error { return nil }

func (f *fakeSMTP) dial(string, *tls.Config) (mail.SMTPSession, error) {
	return f, nil
}

type fakeIMAP struct {
	subject string
	uids    []uint32
	raw     string
}

func (f *fakeIMAP) Login(string, string) error { return nil }

func (f *fakeIMAP) Select(name string, _ bool) (*imap.MailboxStatus, error) {
	return imap.NewMailboxStatus(name, nil), nil
}

func (f *fakeIMAP) UidSearch(criteria *imap.SearchCriteria) ([]uint32, error) {
	f.subject = criteria.Header.Get("Subject")
	return f.uids, nil
}

func (f *fakeIMAP) UidFetch(_ *imap.SeqSet, items []imap.FetchItem, ch chan *imap.Message) error {
	defer close(ch)
	msg := imap.NewMessage(1, items)
	msg.Uid = f.uids[len(f.uids)-1]
	msg.Body = map[*imap.BodySectionName]imap.Literal{
		{}: bytes.NewBufferString(f.raw),
	}
	ch <- msg
	return nil
}

func (f *fakeIMAP) Logout() error { return nil }

func (f *fakeIMAP) dial(string, *tls.Config) (mail.IMAPSession, error) {
	return f, nil
}

func runGmail(t *testing.T, stdin string, args []string, opts ...mail.Option) (string, error) {
	t.Helper()

	t.Setenv("GMAIL_USERNAME", "someone@example.com")
	t.Setenv("GMAIL_PASSWORD", "secret")

	var out, errOut bytes.Buffer
	root := cmd.NewRootCmd(opts...)
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&errOut)

	err := root.Execute()
	return out.String(), err
}

func TestSend(t *testing.T) {
	fake := &fakeSMTP{}
	_, err := runGmail(t, "",
		[]string{"send", "-s", "Hi", "--to", "a@example.com", "--to", "b@example.com", "Hello!"},
		mail.WithSMTPDialer(fake.dial))
	require.NoError(t, err)

	assert.Equal(t, "someone@example.com", fake.user)
	assert.Equal(t, []string{"a@example.com", "b@example.com"}, fake.to)
	assert.Contains(t, fake.data, "Subject: Hi\r\n")
	assert.True(t, strings.HasSuffix(fake.data, "\r\n\r\nHello!"))
}

func TestSend_BodyFromStdin(t *testing.T) {
	fake := &fakeSMTP{}
	_, err := runGmail(t, "from stdin\n",
		[]string{"send", "--to", "a@example.com"},
		mail.WithSMTPDialer(fake.dial))
	require.NoError(t, err)

	assert.Contains(t, fake.data, "\r\n\r\nfrom stdin\r\n")
}

const fetchedMessage = "From: Friend <friend@example.com>\r\n" +
	"Subject: Report\r\n" +
	"\r\n" +
	"All good.\r\n"

func TestFetch(t *testing.T) {
	fake := &fakeIMAP{uids: []uint32{4, 8}, raw: fetchedMessage}
	out, err := runGmail(t, "", []string{"fetch", "-s", "Report"}, mail.WithIMAPDialer(fake.dial))
	require.NoError(t, err)

	assert.Equal(t, "Report", fake.subject)
	assert.Equal(t, "UID: 8\n"+
		"From: Friend <friend@example.com>\n"+
		"Subject: Report\n"+
		"\n"+
		"All good.\r\n", out)
}

func TestFetch_Raw(t *testing.T) {
	fake := &fakeIMAP{uids: []uint32{8}, raw: fetchedMessage}
	out, err := runGmail(t, "", []string{"fetch", "--raw"}, mail.WithIMAPDialer(fake.dial))
	require.NoError(t, err)

	assert.Empty(t, fake.subject)
	assert.Equal(t, fetchedMessage, out)
}

func TestFetch_NoMatch(t *testing.T) {
	fake := &fakeIMAP{}
	out, err := runGmail(t, "", []string{"fetch", "-s", "Missing"}, mail.WithIMAPDialer(fake.dial))
	assert.ErrorIs(t, err, mail.ErrNoMatchingMessage)
	assert.Empty(t, out)
}
