package translator

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Stage names the pipeline step a translation stopped at.
type Stage int

const (
	StageLexical Stage = iota // lexical errors were found
	StageSyntax               // the parser reported a diagnostic
	StageDone                 // translation succeeded
)

func (s Stage) String() string {
	switch s {
	case StageLexical:
		return "lexical"
	case StageSyntax:
		return "syntax"
	case StageDone:
		return "done"
	default:
		return fmt.Sprintf("Stage(%d)", int(s))
	}
}

// Result is everything one translation produced.
type Result struct {
	ID          string
	Tokens      []Token
	Symbols     SymbolTable
	Constants   []Value
	Diagnostics Diagnostics
	Stage       Stage
}

// Failed reports whether any stage produced diagnostics.
func (r Result) Failed() bool {
	return r.Stage != StageDone
}

// Lines renders "name = value" per symbol in octal.
func (r Result) Lines() []string {
	lines := make([]string, 0, len(r.Symbols))
	for _, name := range r.Symbols.Names() {
		lines = append(lines, fmt.Sprintf("%s = %s", name, FormatOctal(r.Symbols[name])))
	}
	return lines
}

// Translator runs the Tokenize → Parse pipeline and logs each run.
type Translator struct {
	log zerolog.Logger
}

func New(logger zerolog.Logger) *Translator {
	return &Translator{log: logger}
}

// Translate is a convenience wrapper using a silent logger.
func Translate(src string) Result {
	return New(zerolog.Nop()).Translate(src)
}

// Translate tokenizes src and, when the scan is clean, parses it.
// It stops at the first stage that reports diagnostics.
func (t *Translator) Translate(src string) Result {
	res := Result{ID: uuid.NewString()}
	log := t.log.With().Str("run", res.ID).Logger()

	tokens, lexErrs := Tokenize(src)
	res.Tokens = tokens
	log.Debug().Int("tokens", len(tokens)).Int("lexical_errors", len(lexErrs)).Msg("scanned")
	if len(lexErrs) > 0 {
		res.Diagnostics = lexErrs
		res.Stage = StageLexical
		log.Info().Str("stage", res.Stage.String()).Err(lexErrs.Err()).Msg("translation failed")
		return res
	}

	p := NewParser(tokens)
	symbols, synErrs := p.Parse()
	res.Symbols = symbols
	res.Constants = p.Constants()
	if len(synErrs) > 0 {
		res.Diagnostics = synErrs
		res.Stage = StageSyntax
		log.Info().Str("stage", res.Stage.String()).Err(synErrs.Err()).Msg("translation failed")
		return res
	}

	res.Stage = StageDone
	log.Debug().Int("constants", len(res.Constants)).Strs("results", res.Lines()).Msg("translated")
	return res
}
