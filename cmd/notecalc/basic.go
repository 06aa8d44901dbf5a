package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/notecalc/notecalc/pkg/client"
	"github.com/notecalc/notecalc/pkg/valuation"
	"github.com/notecalc/notecalc/pkg/version"
)

func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("%s %s\n", version.Version, version.GitCommit)
		},
	}
}

func warnVersionMismatch(daemonVersion string) {
	if daemonVersion != version.Version {
		logrus.WithFields(logrus.Fields{
			"clientVersion": version.Version,
			"daemonVersion": daemonVersion,
		}).Warn("Version mismatch between client and daemon. Results may differ from a local calculation.")
	}
}

func NewExplainCommand() *cobra.Command {
	var (
		html   bool
		remote bool
	)

	cmd := &cobra.Command{
		Use:     "explain",
		Short:   "Describe how the valuation is calculated",
		GroupID: gBasic,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				out string
				err error
			)
			switch {
			case remote:
				out, err = client.NewClient(daemonAddr).GetExplanation()
			case html:
				out, err = valuation.ExplanationHTML()
			default:
				out = valuation.Explanation()
			}
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write([]byte(out))
			return err
		},
	}

	cmd.Flags().BoolVar(&html, "html", false, "render the description as HTML")
	cmd.Flags().BoolVar(&remote, "remote", false, "fetch the HTML description from the daemon")

	return cmd
}
