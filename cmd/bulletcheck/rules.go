package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/HendryAvila/bulletcheck/internal/analysis"
	"github.com/HendryAvila/bulletcheck/internal/report"
)

func newRulesCmd(opts *globalOptions) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List the readability rules and their point values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}

			rules := analysis.Rules()
			citations := cfg.Validation.EnableResearchCitations
			out := cmd.OutOrStdout()

			if !asJSON {
				report.NewPrinter(out, useColor(cfg, out)).Rules(rules, citations)
				return nil
			}

			if !citations {
				for i := range rules {
					rules[i].ResearchBasis = ""
				}
			}
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			if err := enc.Encode(rules); err != nil {
				return fmt.Errorf("writing JSON: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the catalog as JSON")
	return cmd
}
