package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var validSentences = []string{
	"Iron Man defeats Thanos",
	"The powerful Thor throws the hammer",
	"Spider-Man quickly saves the city",
	"Doctor Strange creates a portal with the stone",
	"Captain America fights with the shield",
	"Thor protects the universe and Iron Man defeats Thanos",
}

var invalidSentences = []string{
	"Fights Iron Man Thanos",
	"The Thor hammer throws",
	"Iron Man quickly",
	"The save universe",
	"Powerful the Thor",
	"Spider-Man and defeat Thanos",
	"Captain America in shield",
}

func init() {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Check predefined valid and invalid sentences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := newAnalyzer(cmd.OutOrStdout(), *rootFlags.all)
			if failed := a.demo(); failed > 0 {
				return fmt.Errorf("%d demo sentence(s) checked with unexpected result", failed)
			}
			return nil
		},
	}
	rootCmd.AddCommand(cmd)
}

// demo checks the predefined sentences. It returns the number of sentences
// for which the result differs from what is expected.
func (a *analyzer) demo() int {
	fmt.Fprintln(a.out, "\n==== PREDEFINED TEST CASES ====")
	failed := 0
	fmt.Fprintln(a.out, "\n--- VALID SENTENCES ---")
	for _, s := range validSentences {
		if !a.analyze(s) {
			tracer().Errorf("expected %q to be valid", s)
			failed++
		}
		fmt.Fprintln(a.out, strings.Repeat("-", 50))
	}
	fmt.Fprintln(a.out, "\n--- INVALID SENTENCES ---")
	for _, s := range invalidSentences {
		if a.analyze(s) {
			tracer().Errorf("expected %q to be invalid", s)
			failed++
		}
		fmt.Fprintln(a.out, strings.Repeat("-", 50))
	}
	return failed
}
