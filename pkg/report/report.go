// Package report renders a translation result for the octc command line as
// annotated text, JSON or YAML.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"octcalc/pkg/grid"
	"octcalc/pkg/translator"
)

// Format selects the encoding used by Write.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

var ErrUnknownFormat = errors.New("unknown output format")

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	}
	return "", fmt.Errorf("%w %q (want text, json or yaml)", ErrUnknownFormat, s)
}

// Binding is one computed variable.
type Binding struct {
	Name  string `json:"name" yaml:"name"`
	Kind  string `json:"kind" yaml:"kind"`
	Value string `json:"value" yaml:"value"` // octal text
}

// Problem is a diagnostic with its 1-based line and column.
type Problem struct {
	Message string `json:"message" yaml:"message"`
	Start   int    `json:"start" yaml:"start"`
	End     int    `json:"end" yaml:"end"`
	Line    int    `json:"line" yaml:"line"`
	Column  int    `json:"column" yaml:"column"`
}

// Report is the serialisable summary of one translation.
type Report struct {
	Source      string    `json:"source" yaml:"source"`
	Run         string    `json:"run" yaml:"run"`
	Stage       string    `json:"stage" yaml:"stage"`
	Success     bool      `json:"success" yaml:"success"`
	Results     []Binding `json:"results,omitempty" yaml:"results,omitempty"`
	Constants   []string  `json:"constants,omitempty" yaml:"constants,omitempty"`
	Diagnostics []Problem `json:"diagnostics,omitempty" yaml:"diagnostics,omitempty"`

	text string // program text, used to quote offending lines
}

// New builds a Report for res, which was produced from src.
func New(name, src string, res translator.Result) Report {
	r := Report{
		Source:  name,
		Run:     res.ID,
		Stage:   res.Stage.String(),
		Success: !res.Failed(),
		text:    src,
	}
	for _, c := range res.Constants {
		r.Constants = append(r.Constants, translator.FormatOctal(c))
	}
	if r.Success {
		for _, n := range res.Symbols.Names() {
			v := res.Symbols[n]
			r.Results = append(r.Results, Binding{Name: n, Kind: v.Kind.String(), Value: translator.FormatOctal(v)})
		}
	}
	for _, d := range res.Diagnostics.Sorted() {
		line, col := grid.Locate(src, d.Start)
		r.Diagnostics = append(r.Diagnostics, Problem{
			Message: d.Message,
			Start:   d.Start,
			End:     d.End,
			Line:    line + 1,
			Column:  col + 1,
		})
	}
	return r
}

// Write encodes r to w. color only affects FormatText.
func Write(w io.Writer, f Format, r Report, color bool) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	case FormatText:
		_, err := io.WriteString(w, newPrinter(color).render(r))
		return err
	}
	return fmt.Errorf("%w %q", ErrUnknownFormat, f)
}
