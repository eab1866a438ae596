package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"octcalc/pkg/translator"
)

func newGrammarCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "grammar",
		Short: "Print the grammar of the language (BNF)",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), translator.Grammar)
		},
	}
}
