package main

import (
	"fmt"

	"eradicate/internal/config"

	"github.com/spf13/cobra"
)

// newConfigCmd prints the effective configuration or writes it to a file
func newConfigCmd(root *rootOptions) *cobra.Command {
	var (
		write  string
		format string
	)

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or save the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.loadConfig(cmd)
			if err != nil {
				return err
			}

			if write != "" {
				if err := config.SaveConfig(cfg, write); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), primaryText("Saved configuration to "+write))
				return nil
			}

			data, err := config.Marshal(cfg, format)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().StringVarP(&write, "write", "w", "", "write the configuration to this file (.yaml or .toml)")
	cmd.Flags().StringVarP(&format, "format", "f", "yaml", "output format: yaml or toml")

	return cmd
}
