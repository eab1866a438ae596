package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"octcalc/pkg/translator"
	"octcalc/pkg/utils"
)

func newTokensCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tokens <file|->",
		Short: "Print the token stream of a program",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, _, err := utils.ReadSource(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}

			tokens, errs := translator.Tokenize(src)
			a.log.Debug().Int("tokens", len(tokens)).Int("lexical_errors", len(errs)).Msg("scanned")

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "KIND\tTEXT\tSPAN")
			for _, tok := range tokens {
				fmt.Fprintf(w, "%s\t%s\t%d-%d\n", tok.Type, tok.Lexeme, tok.Start, tok.End)
			}
			if err := w.Flush(); err != nil {
				return err
			}

			for _, d := range errs {
				fmt.Fprintf(cmd.OutOrStdout(), "error: %s\n", d.Error())
			}
			if len(errs) > 0 {
				return ErrTranslationFailed
			}
			return nil
		},
	}
}
