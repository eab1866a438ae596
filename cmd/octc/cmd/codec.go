package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"octcalc/pkg/translator"
)

func newEncodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encode <decimal>",
		Short: "Convert a decimal number to octal text",
		Long: `Convert a decimal number to the octal text used in results.

Examples:
  octc encode 8        # 10
  octc encode -- -7.5  # -7.4
  octc encode 1,-2.5   # 1,-2.4`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseDecimal(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), translator.FormatOctal(v))
			return nil
		},
	}
}

func newDecodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode <octal>",
		Short: "Convert octal text to a decimal number",
		Long: `Convert octal text (integer, real or "real,real" complex) to decimal.

Examples:
  octc decode 17       # 15
  octc decode 7.4      # 7.5
  octc decode 1.0,2.4  # 1,2.5`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := translator.ParseValue(args[0])
			if err != nil {
				return fmt.Errorf("decode %q: %w", args[0], err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatDecimal(v))
			return nil
		},
	}
}

// parseDecimal reads an integer, a real, or "re,im".
func parseDecimal(text string) (translator.Value, error) {
	text = strings.TrimSpace(text)
	if re, im, ok := strings.Cut(text, ","); ok {
		r, err := strconv.ParseFloat(strings.TrimSpace(re), 64)
		if err != nil {
			return translator.Value{}, fmt.Errorf("encode %q: %w", text, err)
		}
		i, err := strconv.ParseFloat(strings.TrimSpace(im), 64)
		if err != nil {
			return translator.Value{}, fmt.Errorf("encode %q: %w", text, err)
		}
		return translator.ComplexValue(r, i), nil
	}
	if n, err := strconv.ParseInt(text, 10, 64); err == nil {
		return translator.IntegerValue(n), nil
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return translator.Value{}, fmt.Errorf("encode %q: %w", text, err)
	}
	return translator.RealValue(f), nil
}

func formatDecimal(v translator.Value) string {
	f := func(x float64) string { return strconv.FormatFloat(x, 'g', -1, 64) }
	switch v.Kind {
	case translator.Integer:
		return strconv.FormatInt(v.Int, 10)
	case translator.Complex:
		return f(v.Re) + "," + f(v.Im)
	default:
		return f(v.Re)
	}
}
