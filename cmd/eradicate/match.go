package main

import (
	"encoding/json"
	"fmt"

	"eradicate/internal/search"

	"github.com/spf13/cobra"
)

// newMatchCmd prints what a pattern would match without deleting anything
func newMatchCmd(root *rootOptions) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "match PATTERN",
		Short: "Print the entries a pattern matches",
		Long:  `Expand a glob pattern the same way the interactive view does and print the result. Nothing is deleted.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.loadConfig(cmd)
			if err != nil {
				return err
			}

			entries, err := search.New().Search(args[0], cfg.Search.CaseSensitive)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if jsonOutput {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(entries)
			}

			for _, e := range entries {
				fmt.Fprintln(out, e.String())
			}
			fmt.Fprintln(out, mutedText(fmt.Sprintf("%d matches", len(entries))))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "print entries as JSON")

	return cmd
}
