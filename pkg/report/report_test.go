package report

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"octcalc/pkg/translator"
)

const failing = "Start Array 7.0\nAB123 = 1.0 / 0.0\nEnd"

func build(t *testing.T, src string) Report {
	t.Helper()
	return New("prog.oct", src, translator.Translate(src))
}

func TestNewSuccess(t *testing.T) {
	r := build(t, "Start Array 7.0 1.0,2.4 AB123 = 7.0 + 1.0 End")

	assert.True(t, r.Success)
	assert.Equal(t, "done", r.Stage)
	assert.Equal(t, []Binding{{Name: "AB123", Kind: "real", Value: "10"}}, r.Results)
	assert.Equal(t, []string{"7", "1,2.4"}, r.Constants)
	assert.Empty(t, r.Diagnostics)
}

func TestNewFailure(t *testing.T) {
	r := build(t, failing)

	assert.False(t, r.Success)
	assert.Empty(t, r.Results)
	assert.Equal(t, []Problem{{Message: "division by zero", Start: 28, End: 33, Line: 2, Column: 13}}, r.Diagnostics)
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatText, build(t, "Start Array 7.0 AB123 = 7.0 + 1.0 End"), false))
	assert.Equal(t, "AB123 = 10\n", buf.String())

	buf.Reset()
	require.NoError(t, Write(&buf, FormatText, build(t, failing), false))
	assert.Equal(t, "prog.oct:2:13: division by zero\n"+
		"  AB123 = 1.0 / 0.0\n"+
		"              ^^^^^\n"+
		"translation failed at the syntax stage\n", buf.String())
}

func TestWriteTextLexicalErrors(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatText, build(t, "Start ; End"), false))
	assert.Equal(t, "prog.oct:1:7: unknown word or symbol ';'\n"+
		"  Start ; End\n"+
		"        ^\n"+
		"translation failed at the lexical stage\n", buf.String())
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatJSON, build(t, failing), false))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "prog.oct", got["source"])
	assert.Equal(t, "syntax", got["stage"])
	assert.Equal(t, false, got["success"])
	assert.Equal(t, []any{"7"}, got["constants"])
	assert.NotContains(t, got, "results")
	assert.NotContains(t, got, "text")
	require.Len(t, got["diagnostics"], 1)
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatYAML, build(t, "Start Array 7.0 AB123 = 7.0 * 2.0 End"), false))

	var got Report
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.True(t, got.Success)
	assert.Equal(t, []Binding{{Name: "AB123", Kind: "real", Value: "16"}}, got.Results)
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("JSON")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	_, err = ParseFormat("xml")
	assert.ErrorIs(t, err, ErrUnknownFormat)
	assert.ErrorIs(t, Write(&bytes.Buffer{}, Format("xml"), Report{}, false), ErrUnknownFormat)
}

func TestIndentKeepsTabs(t *testing.T) {
	assert.Equal(t, "\t  ", indent("\tAB123", 3))
	assert.Equal(t, "     ", indent("ab", 5))
}
