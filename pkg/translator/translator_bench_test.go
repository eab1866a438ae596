package translator

import (
	"strings"
	"testing"
)

// simpleSource is the smallest program that translates successfully.
const simpleSource = `Start Array 7.0 AB123 = 7.0 + 1.0 End`

// complexSource exercises every operator, nested brackets, signs and
// several Array blocks.
const complexSource = `
Start
  Array 7.0 17 1.4,2.0 0.01
  Array 777 12.34 0.7,0.7
  Array 3.1 4.1 5.6
  XY001 = -[3.0 ** 2.0 - [1.4 * 6.0]] / 4.4 + [+2.0 * [7.7 - 1.1]] ** 1.0 - 0.01 * 10.0
End
`

func BenchmarkTokenizeSimple(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Tokenize(simpleSource)
	}
}

func BenchmarkTokenizeComplex(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Tokenize(complexSource)
	}
}

func BenchmarkParseComplex(b *testing.B) {
	tokens, errs := Tokenize(complexSource)
	if len(errs) > 0 {
		b.Fatalf("lexical errors: %v", errs)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, diags := Parse(tokens); len(diags) > 0 {
			b.Fatalf("unexpected diagnostics: %v", diags)
		}
	}
}

func BenchmarkTranslateComplex(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Translate(complexSource)
	}
}

func BenchmarkFormatOctal(b *testing.B) {
	v := RealValue(1234.5678)
	for i := 0; i < b.N; i++ {
		FormatOctal(v)
	}
}

// BenchmarkTokenizeLarge scales the lexer over a long run of expressions.
func BenchmarkTokenizeLarge(b *testing.B) {
	src := strings.Repeat("[1.0 + 2.0] * 3.0 ** 4.0 / 5.0 - ", 500)
	b.SetBytes(int64(len(src)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Tokenize(src)
	}
}
