package cmd

import (
	"github.com/spf13/cobra"

	"octcalc/pkg/report"
	"octcalc/pkg/utils"
)

func newRunCmd(a *app) *cobra.Command {
	var (
		format  string
		noColor bool
	)

	cmd := &cobra.Command{
		Use:   "run <file|->",
		Short: "Translate a program and print its result",
		Long: `Translate a program and print the computed variable in octal.

On failure every diagnostic is printed with the offending source line and
the command exits with status 1.

Examples:
  octc run prog.oct
  echo 'Start Array 7.0 AB123 = 7.0 + 1.0 End' | octc run -
  octc run --format json prog.oct`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format == "" {
				format = a.cfg.Output.Format
			}
			f, err := report.ParseFormat(format)
			if err != nil {
				return err
			}

			src, name, err := utils.ReadSource(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}

			res := a.translator().Translate(src)
			out := cmd.OutOrStdout()
			color := a.cfg.Output.Color && !noColor && isTerminal(out)
			if err := report.Write(out, f, report.New(name, src, res), color); err != nil {
				return err
			}
			if res.Failed() {
				return ErrTranslationFailed
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: text, json or yaml (default from config)")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable coloured output")
	return cmd
}
