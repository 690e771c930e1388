package cmd

import (
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zostay/go-lifo/mail"
)

// Configuration keys. Each may also be given in the environment with the
// GMAIL_ prefix, dots replaced by underscores, e.g. GMAIL_SMTP_HOST.
const (
	keyUsername = "username"
	keyPassword = "password"
	keyFrom     = "from"
	keySMTPHost = "smtp.host"
	keySMTPPort = "smtp.port"
	keyIMAPHost = "imap.host"
	keyIMAPPort = "imap.port"
	keyMailbox  = "mailbox"
	keyVerbose  = "verbose"
)

var (
	config = viper.New()
	logger = logrus.New()
)

func init() {
	config.SetEnvPrefix("gmail")
	config.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	config.AutomaticEnv()

	config.SetDefault(keySMTPHost, mail.DefaultSMTPHost)
	config.SetDefault(keySMTPPort, mail.DefaultSMTPPort)
	config.SetDefault(keyIMAPHost, mail.DefaultIMAPHost)
	config.SetDefault(keyIMAPPort, mail.DefaultIMAPPort)
	config.SetDefault(keyMailbox, mail.DefaultMailbox)
	cobra.CheckErr(config.BindEnv(keyPassword))
}

// NewRootCmd builds the gmail command tree. Any opts are applied to every
// mail client the commands create, after the defaults.
func NewRootCmd(opts ...mail.Option) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gmail",
		Short: "Send and fetch mail from the command line",
		Long: `Sends mail over SMTP and fetches the newest matching message over IMAP.

The account password is only read from GMAIL_PASSWORD. Every other setting
may be given as a flag or as an environment variable, e.g. GMAIL_USERNAME.`,
		SilenceUsage:      true,
		PersistentPreRunE: setupLogging,
	}

	flags := rootCmd.PersistentFlags()
	flags.String("username", "", "account user name")
	flags.String("from", "", "sender address (defaults to the user name)")
	flags.String("smtp-host", mail.DefaultSMTPHost, "SMTP server host")
	flags.Int("smtp-port", mail.DefaultSMTPPort, "SMTP server port")
	flags.String("imap-host", mail.DefaultIMAPHost, "IMAP server host")
	flags.Int("imap-port", mail.DefaultIMAPPort, "IMAP server port")
	flags.String("mailbox", mail.DefaultMailbox, "mailbox to search")
	flags.BoolP("verbose", "v", false, "log each protocol step")

	cobra.CheckErr(config.BindPFlag(keyUsername, flags.Lookup("username")))
	cobra.CheckErr(config.BindPFlag(keyFrom, flags.Lookup("from")))
	cobra.CheckErr(config.BindPFlag(keySMTPHost, flags.Lookup("smtp-host")))
	cobra.CheckErr(config.BindPFlag(keySMTPPort, flags.Lookup("smtp-port")))
	cobra.CheckErr(config.BindPFlag(keyIMAPHost, flags.Lookup("imap-host")))
	cobra.CheckErr(config.BindPFlag(keyIMAPPort, flags.Lookup("imap-port")))
	cobra.CheckErr(config.BindPFlag(keyMailbox, flags.Lookup("mailbox")))
	cobra.CheckErr(config.BindPFlag(keyVerbose, flags.Lookup("verbose")))

	rootCmd.AddCommand(newSendCmd(opts))
	rootCmd.AddCommand(newFetchCmd(opts))

	return rootCmd
}

func Execute() {
	err := NewRootCmd().Execute()
	cobra.CheckErr(err)
}

func setupLogging(cmd *cobra.Command, _ []string) error {
	logger.SetOutput(cmd.ErrOrStderr())
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	logger.SetLevel(logrus.InfoLevel)
	if config.GetBool(keyVerbose) {
		logger.SetLevel(logrus.DebugLevel)
	}
	return nil
}

// LoadConfig builds the mail configuration from flags and the environment.
func LoadConfig() mail.Config {
	return mail.Config{
		Username: config.GetString(keyUsername),
		Password: config.GetString(keyPassword),
		From:     config.GetString(keyFrom),
		SMTPHost: config.GetString(keySMTPHost),
		SMTPPort: config.GetInt(keySMTPPort),
		IMAPHost: config.GetString(keyIMAPHost),
		IMAPPort: config.GetInt(keyIMAPPort),
		Mailbox:  config.GetString(keyMailbox),
	}
}

func newClient(opts []mail.Option) (*mail.Client, error) {
	opts = append([]mail.Option{mail.WithLogger(logger)}, opts...)
	return mail.New(LoadConfig(), opts...)
}
