package main

import (
	"strings"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:     "check <sentence…>",
		Short:   "Check a single sentence",
		Example: `  herogram check Iron Man defeats Thanos`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := newAnalyzer(cmd.OutOrStdout(), *rootFlags.all)
			if !a.analyze(strings.Join(args, " ")) {
				return errRejected
			}
			return nil
		},
	}
	rootCmd.AddCommand(cmd)
}
