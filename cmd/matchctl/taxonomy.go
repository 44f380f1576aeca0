package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"career-match/internal/domain/taxonomy"
)

func (c *cli) taxonomyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "taxonomy",
		Short: "Inspect and validate skill taxonomy tables",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "validate <file.yaml>",
			Short: "Check a taxonomy file for unknown keys and dangling references",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				t, err := taxonomy.LoadFile(args[0])
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d families, %d roles)\n",
					args[0], len(t.FamilyIDs()), len(t.Roles()))
				return nil
			},
		},
		&cobra.Command{
			Use:   "export",
			Short: "Print the built-in tables as YAML, a starting point for a custom file",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				enc := yaml.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent(2)
				if err := enc.Encode(taxonomy.DefaultTables()); err != nil {
					return err
				}
				return enc.Close()
			},
		},
	)
	return cmd
}
