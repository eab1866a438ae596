// Package translator provides the lexer, parser and evaluator for a small
// octal arithmetic language, plus the octal text codec used to print results.
//
// Pipeline: source → Tokenize → Parse (evaluates while descending) → FormatOctal
//
//	Start
//	  Array 7.0 17 1.4,2.0
//	  AB123 = [7.0 + 1.0] * 2.0 ** 2.0
//	End
//
// Offsets in tokens and diagnostics are 0-based, end-exclusive character
// offsets into the source text.
package translator
