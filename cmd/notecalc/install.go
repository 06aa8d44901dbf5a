package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/notecalc/notecalc/pkg/utils/daemon"
)

var installDaemon = daemon.Install

func NewInstallCommand() *cobra.Command {
	var listen string

	cmd := &cobra.Command{
		Use:     "install",
		Short:   "Install notecalc daemon as a systemd service (requires root)",
		GroupID: gInstallation,
		Long: `Install the notecalc daemon as a systemd service and start it.

The unit runs the current executable with the global --config path.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// --daemon-socket is only parsed by now.
			if !cmd.Flags().Changed("listen") {
				listen = daemonAddr
			}
			if err := installDaemon(configPath, listen); err != nil {
				return err
			}
			logrus.Infof("installation succeeded")
			return nil
		},
	}

	cmd.Flags().StringVar(&listen, "listen", "", "address the installed daemon listens on (default --daemon-socket)")

	return cmd
}

func NewUninstallCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "uninstall",
		Short:   "Stop and remove the notecalc systemd service (requires root)",
		GroupID: gInstallation,
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := daemon.Uninstall(); err != nil {
				return err
			}
			logrus.Infof("uninstallation succeeded")
			return nil
		},
	}
}
