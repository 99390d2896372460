package main

import (
	"fmt"

	"github.com/spf13/cobra"

	bcserver "github.com/HendryAvila/bulletcheck/internal/server"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "bulletcheck v%s\n", bcserver.Version)
		},
	}
}
