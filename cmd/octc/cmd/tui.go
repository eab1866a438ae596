package cmd

import (
	"github.com/spf13/cobra"

	"octcalc/pkg/session"
	"octcalc/pkg/utils"
	"octcalc/pkg/workbench"
)

func newTUICmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tui [file]",
		Short: "Open the interactive terminal workbench",
		Long: `Open the terminal workbench: edit a program, translate it and see
the result or the program with its errors marked.

Keys:
  F5, Ctrl+T   translate
  Ctrl+G       show or hide the grammar
  PgUp, PgDn   scroll the output
  Esc, Ctrl+C  quit`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var src string
			if len(args) == 1 {
				var err error
				if src, _, err = utils.ReadSource(args[0], cmd.InOrStdin()); err != nil {
					return err
				}
			}

			m := workbench.New(session.New(a.translator()), src, workbench.Options{
				ShowGrammar:  a.cfg.Workbench.ShowGrammar,
				EditorHeight: a.cfg.Workbench.EditorHeight,
			})
			return workbench.Run(m)
		},
	}
}
