package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/zostay/go-lifo/mail"
)

func newSendCmd(opts []mail.Option) *cobra.Command {
	sendCmd := &cobra.Command{
		Use:   "send [body]",
		Short: "Send a plain text message",
		Long: `Sends a plain text message to every --to recipient. The body is the
argument, or stdin when no argument is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return RunSend(cmd, args, opts...)
		},
	}

	sendCmd.Flags().StringP("subject", "s", "", "message subject")
	sendCmd.Flags().StringSliceP("to", "t", nil, "recipient address (repeatable)")
	_ = sendCmd.MarkFlagRequired("to")

	return sendCmd
}

// RunSend sends the message described by the command's flags and arguments.
func RunSend(cmd *cobra.Command, args []string, opts ...mail.Option) error {
	subject, err := cmd.Flags().GetString("subject")
	if err != nil {
		return err
	}

	to, err := cmd.Flags().GetStringSlice("to")
	if err != nil {
		return err
	}

	var body string
	if len(args) > 0 {
		body = args[0]
	} else {
		in, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("unable to read message body: %w", err)
		}
		body = string(in)
	}

	c, err := newClient(opts)
	if err != nil {
		return err
	}

	return c.Send(subject, body, to)
}
