package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/notecalc/notecalc/pkg/client"
	"github.com/notecalc/notecalc/pkg/config"
	"github.com/notecalc/notecalc/pkg/daemon"
	"github.com/notecalc/notecalc/pkg/valuation"
)

var (
	logLevel   = "info"
	daemonAddr = config.DefaultListen
	configPath = "/etc/notecalc.json"
)

var (
	gBasic        = "Basic:"
	gAdvanced     = "Advanced:"
	gInstallation = "Installation:"
	commandGroups = []string{
		gBasic,
		gAdvanced,
		gInstallation,
	}
)

func setupLogger() error {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("failed to parse log level: %v", err)
	}
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.TextFormatter{})
	if term.IsTerminal(int(os.Stderr.Fd())) {
		logrus.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.Kitchen,
		})
	}

	return nil
}

// envOr returns the value of the environment variable key, or def if unset.
func envOr(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func handleCmdError(err error) {
	var invalid *valuation.InvalidInputError
	switch {
	case errors.Is(err, client.ErrDaemonNotRunning):
		fmt.Fprintln(os.Stderr, "\nError: notecalc daemon is not running")
		fmt.Fprintln(os.Stderr, "Start it with 'notecalc daemon' or drop the '--remote' flag to calculate locally.")
	case errors.Is(err, daemon.ErrAlreadyRunning):
		fmt.Fprintln(os.Stderr, "\nError: another notecalc daemon is already listening on this socket")
		fmt.Fprintln(os.Stderr, "Stop it first or pass a different '--listen' address.")
	case errors.Is(err, client.ErrPermissionDenied):
		fmt.Fprintln(os.Stderr, "\nError: Permission Denied")
		fmt.Fprintln(os.Stderr, "  - Try running the command again with 'sudo'")
		fmt.Fprintln(os.Stderr, "  - Or run the daemon with '--always-allow-non-root-access'")
	case errors.As(err, &invalid):
		fmt.Fprintln(os.Stderr, "\nInvalid input:")
		for _, f := range invalid.Fields {
			fmt.Fprintf(os.Stderr, "  - %s\n", f)
		}
	}
}

func main() {
	// A missing .env file is fine.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "failed to load .env: %v\n", err)
	}

	cmd := NewCommand()
	if err := cmd.Execute(); err != nil {
		handleCmdError(err)
		os.Exit(1)
	}
}

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notecalc",
		Short: "notecalc is a startup fundraising calculator",
		Long: `notecalc is a startup fundraising calculator.

It computes convertible note accrual, government grant matching, pre- and
post-money valuation and the resulting investor equity ownership from a
handful of inputs describing a note raise and the next funding round.`,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return setupLogger()
		},
	}

	globalFlags := cmd.PersistentFlags()
	globalFlags.StringVarP(&logLevel, "log-level", "l", envOr("NOTECALC_LOG_LEVEL", logLevel), "log level (trace, debug, info, warn, error, fatal, panic)")
	globalFlags.StringVar(&configPath, "config", envOr("NOTECALC_CONFIG", configPath), "config file path (.json, .yaml or .yml)")
	globalFlags.StringVar(&daemonAddr, "daemon-socket", envOr("NOTECALC_SOCKET", daemonAddr), "notecalc daemon address (unix:///path, tcp://host:port or a socket path)")

	for _, i := range commandGroups {
		cmd.AddGroup(&cobra.Group{
			ID:    i,
			Title: i,
		})
	}

	cmd.AddCommand(
		NewCalcCommand(),
		NewExplainCommand(),
		NewDaemonCommand(),
		NewConfigCommand(),
		NewVersionCommand(),
		NewInstallCommand(),
		NewUninstallCommand(),
	)

	return cmd
}
