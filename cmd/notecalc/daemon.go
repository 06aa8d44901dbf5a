package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/notecalc/notecalc/pkg/daemon"
	"github.com/notecalc/notecalc/pkg/version"
)

var (
	// alwaysAllowNonRootAccess indicates whether to always allow non-root users to access the daemon socket.
	alwaysAllowNonRootAccess = false
	// daemonListen overrides the listen address from the config file.
	daemonListen = ""
)

// NewDaemonCommand .
func NewDaemonCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "daemon",
		Short:   "Run notecalc daemon in the foreground",
		GroupID: gAdvanced,
		Long: `Run notecalc daemon in the foreground.

The daemon serves POST /calculate over HTTP on a unix socket or TCP address.
Send SIGHUP to reload the config file.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			logrus.WithFields(logrus.Fields{
				"version": version.Version,
				"commit":  version.GitCommit,
			}).Info("notecalc daemon starting")
			return daemon.Run(configPath, daemonListen, alwaysAllowNonRootAccess)
		},
	}

	f := cmd.Flags()

	f.StringVar(&daemonListen, "listen", "",
		"Address to listen on, overriding the config file (unix:///path or tcp://host:port).")
	f.BoolVar(&alwaysAllowNonRootAccess, "always-allow-non-root-access", false,
		"Always allow non-root users to access the daemon.")

	return cmd
}
