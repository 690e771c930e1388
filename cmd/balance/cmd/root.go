package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/spf13/cobra"

	"github.com/zostay/go-lifo/balance"
)

var rootCmd = &cobra.Command{
	Use:   "balance",
	Short: "Checks that the brackets read from stdin are balanced",
	Long: `Reads all of stdin and reports whether every (, [, and { is closed by
the matching bracket in the right order. The verdict is printed in the
language named by LC_ALL, LC_MESSAGES, or LANG, Russian by default.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         RunBalance,
}

func Execute() error {
	return rootCmd.Execute()
}

// RunBalance reads the command's input and prints the verdict on a single
// line. Both verdicts succeed.
func RunBalance(cmd *cobra.Command, _ []string) error {
	in, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("unable to read input: %w", err)
	}

	input := strings.TrimRightFunc(string(in), unicode.IsSpace)
	tag := balance.Locale(os.Getenv("LC_ALL"), os.Getenv("LC_MESSAGES"), os.Getenv("LANG"))

	_, err = fmt.Fprintln(cmd.OutOrStdout(), balance.Verdict(balance.IsBalanced(input), tag))
	return err
}
