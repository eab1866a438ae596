package translator

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// maxFractionDigits bounds the octal digits printed after the point.
const maxFractionDigits = 15

var (
	ErrInvalidOctalDigit = errors.New("invalid octal digit")
	ErrEmptyOctal        = errors.New("empty octal number")
	ErrOctalRange        = errors.New("octal number out of range")
)

// parseOctalUint parses an unsigned run of octal digits.
func parseOctalUint(digits string) (uint64, error) {
	if digits == "" {
		return 0, ErrEmptyOctal
	}
	n, err := strconv.ParseUint(digits, 8, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf("%w: %q", ErrOctalRange, digits)
		}
		return 0, fmt.Errorf("%w: %q", ErrInvalidOctalDigit, digits)
	}
	return n, nil
}

// parseOctalInt parses a run of octal digits into an Integer payload.
func parseOctalInt(digits string) (int64, error) {
	n, err := parseOctalUint(digits)
	if err != nil {
		return 0, err
	}
	if n > math.MaxInt64 {
		return 0, fmt.Errorf("%w: %q", ErrOctalRange, digits)
	}
	return int64(n), nil
}

// parseOctalWhole parses the integer part of a real. Its magnitude is only
// limited by float64.
func parseOctalWhole(digits string) (float64, error) {
	if digits == "" {
		return 0, ErrEmptyOctal
	}
	for _, r := range digits {
		if r < '0' || r > '7' {
			return 0, fmt.Errorf("%w: %q", ErrInvalidOctalDigit, digits)
		}
	}
	n, _ := new(big.Int).SetString(digits, 8)
	f, _ := new(big.Float).SetInt(n).Float64()
	if math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: %q", ErrOctalRange, digits)
	}
	return f, nil
}

// ParseOctal converts octal text such as "17.4" into a float.
// The integer part is read base 8 and each fractional digit is weighted by
// 8^-(position+1). A leading '-' negates the whole number.
func ParseOctal(text string) (float64, error) {
	neg := strings.HasPrefix(text, "-")
	body := strings.TrimPrefix(text, "-")

	intPart, fracPart, _ := strings.Cut(body, ".")
	f, err := parseOctalWhole(intPart)
	if err != nil {
		return 0, err
	}

	weight := 1.0 / 8
	for _, r := range fracPart {
		if r < '0' || r > '7' {
			return 0, fmt.Errorf("%w: %q", ErrInvalidOctalDigit, text)
		}
		f += float64(r-'0') * weight
		weight /= 8
	}
	if neg {
		f = -f
	}
	return f, nil
}

// ParseValue reads the text form produced by FormatOctal: "17" is an
// Integer, "17.4" a Real and "1.0,-2.4" a Complex. Digits without a point
// that do not fit an Integer are read as a Real.
func ParseValue(text string) (Value, error) {
	text = strings.TrimSpace(text)
	if re, im, ok := strings.Cut(text, ","); ok {
		r, err := ParseOctal(re)
		if err != nil {
			return Value{}, err
		}
		i, err := ParseOctal(im)
		if err != nil {
			return Value{}, err
		}
		return ComplexValue(r, i), nil
	}
	if strings.Contains(text, ".") {
		f, err := ParseOctal(text)
		if err != nil {
			return Value{}, err
		}
		return RealValue(f), nil
	}
	neg := strings.HasPrefix(text, "-")
	n, err := parseOctalInt(strings.TrimPrefix(text, "-"))
	if errors.Is(err, ErrOctalRange) {
		// whole reals too large for an Integer print without a point
		f, err := ParseOctal(text)
		if err != nil {
			return Value{}, err
		}
		return RealValue(f), nil
	}
	if err != nil {
		return Value{}, err
	}
	if neg {
		n = -n
	}
	return IntegerValue(n), nil
}

// FormatOctal renders v as octal text. Complex values print both parts
// separated by a comma; reals print at most 15 fractional digits.
func FormatOctal(v Value) string {
	switch v.Kind {
	case Integer:
		return strconv.FormatInt(v.Int, 8)
	case Complex:
		return formatReal(v.Re) + "," + formatReal(v.Im)
	default:
		return formatReal(v.Re)
	}
}

func formatReal(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Inf"
	case math.IsInf(f, -1):
		return "-Inf"
	case f < 0:
		return "-" + formatReal(-f)
	}

	whole, frac := math.Modf(f)
	digits := octalWhole(whole)
	if frac == 0 {
		return digits
	}

	var sb strings.Builder
	sb.WriteString(digits)
	sb.WriteByte('.')
	for i := 0; i < maxFractionDigits; i++ {
		frac *= 8
		d := math.Floor(frac)
		sb.WriteByte(byte('0' + int(d)))
		frac -= d
		if frac == 0 {
			break
		}
	}
	return sb.String()
}

// octalWhole prints a non-negative integral float in base 8.
func octalWhole(whole float64) string {
	if whole < 1<<63 {
		return strconv.FormatUint(uint64(whole), 8)
	}
	n, _ := new(big.Float).SetFloat64(whole).Int(nil)
	return n.Text(8)
}
