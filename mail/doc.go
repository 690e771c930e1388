// Package mail is a small client for sending mail over SMTP and reading the
// most recent message over IMAP.
//
// Every call opens its own connection and closes it before returning, on
// success and on failure alike. There is no pooling and no retry. All
// settings, credentials included, come from the Config passed to New.
//
//	c, err := mail.New(mail.Config{Username: user, Password: pass})
//	if err != nil {
//	  return err
//	}
//
//	err = c.Send("Hello", "Hello World!", []string{"friend@example.com"})
//
//	latest, err := c.FetchLatestBySubject("Hello")
//	if errors.Is(err, mail.ErrNoMatchingMessage) {
//	  // nothing matched
//	}
package mail
