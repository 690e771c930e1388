package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/zostay/go-lifo/mail"
	"github.com/zostay/go-lifo/message/header"
)

func newFetchCmd(opts []mail.Option) *cobra.Command {
	fetchCmd := &cobra.Command{
		Use:   "fetch",
		Short: "Show the newest message in the mailbox",
		Long: `Shows the newest message in the mailbox, optionally only among those
whose subject contains --subject. The mailbox is not modified. Fails when no
message matches.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return RunFetch(cmd, args, opts...)
		},
	}

	fetchCmd.Flags().StringP("subject", "s", "", "only consider messages whose subject contains this")
	fetchCmd.Flags().Bool("raw", false, "print the message exactly as the server sent it")

	return fetchCmd
}

// RunFetch prints the newest message matching the command's flags. It
// returns mail.ErrNoMatchingMessage when there is none.
func RunFetch(cmd *cobra.Command, _ []string, opts ...mail.Option) error {
	subject, err := cmd.Flags().GetString("subject")
	if err != nil {
		return err
	}

	raw, err := cmd.Flags().GetBool("raw")
	if err != nil {
		return err
	}

	c, err := newClient(opts)
	if err != nil {
		return err
	}

	latest, err := c.FetchLatestBySubject(subject)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if raw {
		_, err = out.Write(latest.Raw)
		return err
	}

	return PrintSummary(out, latest)
}

// PrintSummary writes the UID and the main header fields of a fetched
// message followed by its decoded body.
func PrintSummary(w io.Writer, f *mail.Fetched) error {
	h := f.Message.GetHeader()
	if _, err := fmt.Fprintf(w, "UID: %d\n", f.UID); err != nil {
		return err
	}

	for _, name := range []string{header.From, header.To, header.Date, header.Subject} {
		body, err := h.Get(name)
		if errors.Is(err, header.ErrNoSuchField) {
			continue
		}
		if _, err := fmt.Fprintf(w, "%s: %s\n", name, body); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}

	if r := f.Message.GetReader(); r != nil {
		if _, err := io.Copy(w, r); err != nil {
			return err
		}
	}

	return nil
}
