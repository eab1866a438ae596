package session

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"octcalc/pkg/translator"
)

func newSession() *Session {
	return New(translator.New(zerolog.Nop()))
}

func TestTranslateEmpty(t *testing.T) {
	s := newSession()

	out := s.Translate(" \n\t ")

	assert.Equal(t, []string{MsgEmptyInput}, out.Lines)
	assert.Empty(t, out.Highlights)
	assert.Nil(t, out.Result)
	assert.True(t, out.Failed())
	assert.Equal(t, 0, s.Runs())
}

func TestTranslateSuccess(t *testing.T) {
	s := newSession()

	out := s.Translate("\n  Start Array 7.0 AB123 = 7.0 + 1.0 End\n")

	assert.Equal(t, "Translation completed successfully.\n\nResults (octal values):\nAB123 = 10", out.Text())
	assert.False(t, out.Failed())
	assert.Empty(t, out.Highlights)
	assert.Equal(t, out, s.Last())
	assert.Equal(t, 1, s.Runs())
}

func TestTranslateLexicalErrorsShiftByLeadingWhitespace(t *testing.T) {
	s := newSession()
	buffer := "  Start ; Array 7.0 AB123 = 7.0 # End"

	out := s.Translate(buffer)

	assert.Equal(t, []string{
		MsgLexicalError,
		"- unknown word or symbol ';'",
		"- unknown word or symbol '#'",
	}, out.Lines)
	require.Len(t, out.Highlights, 2)
	for _, h := range out.Highlights {
		assert.Equal(t, 1, h.End-h.Start)
	}
	assert.Equal(t, ";", string([]rune(buffer)[out.Highlights[0].Start]))
	assert.Equal(t, "#", string([]rune(buffer)[out.Highlights[1].Start]))
}

func TestTranslateSyntaxError(t *testing.T) {
	s := newSession()
	buffer := "\tStart Array 7.0 AB123 = 1.0 / 0.0 End"

	out := s.Translate(buffer)

	assert.Equal(t, []string{MsgSyntaxError, "- division by zero"}, out.Lines)
	require.Len(t, out.Highlights, 1)
	h := out.Highlights[0]
	assert.Equal(t, "/ 0.0", string([]rune(buffer)[h.Start:h.End]))
	assert.True(t, out.Failed())
}

func TestTranslateReplacesPreviousOutput(t *testing.T) {
	s := newSession()

	s.Translate("Start ; End")
	out := s.Translate("Start Array 7.0 AB123 = 7.0 End")

	assert.False(t, out.Failed())
	assert.Empty(t, s.Last().Highlights)
	assert.Equal(t, 2, s.Runs())
}
