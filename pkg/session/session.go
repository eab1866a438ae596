// Package session implements the "translate" action shared by the terminal
// workbench and the desktop window: it turns the editor buffer into output
// lines and the spans to highlight in that buffer.
package session

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"octcalc/pkg/translator"
)

const (
	MsgEmptyInput   = "Enter code to translate."
	MsgLexicalError = "Lexical errors found:"
	MsgSyntaxError  = "Syntax error found:"
	MsgSuccess      = "Translation completed successfully."
	MsgResults      = "Results (octal values):"
	MsgNoVariables  = "No variables were declared."
)

// Highlight is a character span of the editor buffer to mark as erroneous.
type Highlight struct {
	Start int
	End   int
}

// Output is what one press of "translate" shows.
type Output struct {
	Lines      []string
	Highlights []Highlight
	Result     *translator.Result // nil when the buffer was blank
}

func (o Output) Text() string {
	return strings.Join(o.Lines, "\n")
}

// Failed reports whether the output shows errors rather than results.
func (o Output) Failed() bool {
	return o.Result == nil || o.Result.Failed()
}

// Session runs translations for one editor and remembers the latest output.
type Session struct {
	tr   *translator.Translator
	last Output
	runs int
}

func New(tr *translator.Translator) *Session {
	return &Session{tr: tr}
}

// Last returns the output of the most recent Translate call.
func (s *Session) Last() Output {
	return s.last
}

// Runs counts the Translate calls that reached the translator.
func (s *Session) Runs() int {
	return s.runs
}

// Translate trims buffer, translates it and renders the outcome. Highlight
// offsets index the untrimmed buffer.
func (s *Session) Translate(buffer string) Output {
	code := strings.TrimFunc(buffer, unicode.IsSpace)
	if code == "" {
		s.last = Output{Lines: []string{MsgEmptyInput}}
		return s.last
	}
	lead := utf8.RuneCountInString(buffer) - utf8.RuneCountInString(strings.TrimLeftFunc(buffer, unicode.IsSpace))

	s.runs++
	res := s.tr.Translate(code)
	out := Output{Result: &res}

	switch res.Stage {
	case translator.StageLexical:
		out.Lines = append(out.Lines, MsgLexicalError)
		out.addDiagnostics(res.Diagnostics, lead)
	case translator.StageSyntax:
		out.Lines = append(out.Lines, MsgSyntaxError)
		out.addDiagnostics(res.Diagnostics.Sorted(), lead)
	default:
		out.Lines = append(out.Lines, MsgSuccess, "", MsgResults)
		if lines := res.Lines(); len(lines) > 0 {
			out.Lines = append(out.Lines, lines...)
		} else {
			out.Lines = append(out.Lines, MsgNoVariables)
		}
	}

	s.last = out
	return out
}

func (o *Output) addDiagnostics(diags translator.Diagnostics, lead int) {
	for _, d := range diags {
		o.Lines = append(o.Lines, "- "+d.Message)
		o.Highlights = append(o.Highlights, Highlight{Start: d.Start + lead, End: d.End + lead})
	}
}
