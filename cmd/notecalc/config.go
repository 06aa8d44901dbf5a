package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/notecalc/notecalc/pkg/client"
	"github.com/notecalc/notecalc/pkg/config"
)

func NewConfigCommand() *cobra.Command {
	var remote bool

	cmd := &cobra.Command{
		Use:     "config",
		Short:   "Print the effective configuration",
		GroupID: gAdvanced,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				raw *config.RawFileConfig
				err error
			)
			if remote {
				raw, err = client.NewClient(daemonAddr).GetConfig()
			} else {
				var conf *config.File
				conf, err = config.NewFile(configPath)
				if err == nil {
					raw, err = config.NewRawFileConfigFromConfig(conf)
				}
			}
			if err != nil {
				return fmt.Errorf("failed to get config: %w", err)
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(raw)
		},
	}

	cmd.Flags().BoolVar(&remote, "remote", false, "print the config the daemon is running with")

	return cmd
}
