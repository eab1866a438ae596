package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"octcalc/pkg/config"
	"octcalc/pkg/logging"
	"octcalc/pkg/translator"
)

// ErrTranslationFailed is returned by commands whose input did not translate.
// The diagnostics have already been printed when it is returned.
var ErrTranslationFailed = errors.New("translation failed")

// app is the state shared by every subcommand of one invocation.
type app struct {
	cfgFile  string
	logLevel string
	verbose  bool

	cfg *config.Config
	log zerolog.Logger
}

func (a *app) translator() *translator.Translator {
	return translator.New(a.log)
}

// load reads the configuration and builds the logger. Flags win over the file.
func (a *app) load(cmd *cobra.Command) error {
	var err error
	if a.cfgFile != "" {
		a.cfg, err = config.Load(a.cfgFile)
	} else {
		a.cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		a.cfg.Log.Level = a.logLevel
	}
	if a.verbose {
		a.cfg.Log.Level = "debug"
	}
	if err := a.cfg.Validate(); err != nil {
		return err
	}
	a.log = logging.New(cmd.ErrOrStderr(), "octc", a.cfg.Log.Level, a.cfg.Log.Format)
	return nil
}

// NewRootCmd builds the octc command tree.
func NewRootCmd() *cobra.Command {
	a := &app{log: zerolog.Nop()}

	root := &cobra.Command{
		Use:   "octc",
		Short: "Translator for the octal Start/Array/End language",
		Long: `octc translates programs of a small octal arithmetic language.

A program declares octal constants and assigns one expression:

  Start
    Array 7.0 17 1.4,2.0
    AB123 = [7.0 + 1.0] * 2.0 ** 2.0
  End

The result is printed in octal. Errors are reported with their position.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file, .toml or .yaml (default: ./octc.toml or $"+config.EnvConfig+")")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(
		newRunCmd(a),
		newTokensCmd(a),
		newGrammarCmd(),
		newEncodeCmd(),
		newDecodeCmd(),
		newTUICmd(a),
		newVersionCmd(),
	)
	return root
}

// Execute runs octc and reports errors other than a failed translation,
// whose diagnostics are already on screen.
func Execute() error {
	root := NewRootCmd()
	err := root.Execute()
	if err != nil && !errors.Is(err, ErrTranslationFailed) {
		printError(root.ErrOrStderr(), err)
	}
	return err
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}
