package translator

import (
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOctal(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		err  error
	}{
		{in: "10", want: 8},
		{in: "7.4", want: 7.5},
		{in: "0.01", want: 1.0 / 64},
		{in: "17.04", want: 15 + 4.0/64},
		{in: "-7.4", want: -7.5},
		{in: "7.", want: 7},
		{in: "8.0", err: ErrInvalidOctalDigit},
		{in: "7.9", err: ErrInvalidOctalDigit},
		{in: "1.2.3", err: ErrInvalidOctalDigit},
		{in: ".4", err: ErrEmptyOctal},
		{in: "", err: ErrEmptyOctal},
		{in: "7777777777777777777777777", want: math.Pow(8, 25) - 1},
		{in: "-1000000000000000000000000000000.0", want: -math.Pow(8, 30)},
		{in: "1" + strings.Repeat("0", 400), err: ErrOctalRange},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseOctal(tt.in)
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		in   string
		want Value
	}{
		{in: "17", want: IntegerValue(15)},
		{in: "-17", want: IntegerValue(-15)},
		{in: "17.4", want: RealValue(15.5)},
		{in: "1.0,-2.4", want: ComplexValue(1, -2.5)},
		{in: "  0.4 ", want: RealValue(0.5)},
		{in: "1000000000000000000000", want: RealValue(math.Pow(8, 21))},
		{in: "-12657072742654304000000", want: RealValue(-1e20)},
	}
	for _, tt := range tests {
		got, err := ParseValue(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseValue("1.0,9.0")
	assert.ErrorIs(t, err, ErrInvalidOctalDigit)
	_, err = ParseValue("19")
	assert.ErrorIs(t, err, ErrInvalidOctalDigit)
}

func TestFormatOctal(t *testing.T) {
	tests := []struct {
		name string
		in   Value
		want string
	}{
		{"Eight", RealValue(8), "10"},
		{"Half", RealValue(0.5), "0.4"},
		{"Negative Real", RealValue(-7.5), "-7.4"},
		{"Zero", RealValue(0), "0"},
		{"Negative Zero", RealValue(math.Copysign(0, -1)), "0"},
		{"Integer", IntegerValue(64), "100"},
		{"Negative Integer", IntegerValue(-8), "-10"},
		{"Complex", ComplexValue(1, -2.5), "1,-2.4"},
		{"Complex Negative Real Part", ComplexValue(-0.5, 8), "-0.4,10"},
		{"Fraction Capped At Fifteen Digits", RealValue(0.1), "0.063146314631463"},
		{"Large Magnitude", RealValue(1e20), "12657072742654304000000"},
		{"Infinity", RealValue(math.Inf(1)), "Inf"},
		{"Negative Infinity", RealValue(math.Inf(-1)), "-Inf"},
		{"NaN", RealValue(math.NaN()), "NaN"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatOctal(tt.in))
		})
	}
}

func TestOctalRoundTrip(t *testing.T) {
	tolerance := math.Pow(8, -15)
	rng := rand.New(rand.NewSource(42))

	values := []float64{0, 1, -1, 0.1, 1.0 / 3, -2.0 / 7, 123.456, 4095.999, math.Pi}
	for i := 0; i < 500; i++ {
		values = append(values, (rng.Float64()-0.5)*2000)
	}
	// whole parts past 64 bits
	values = append(values, 1<<64, 1e20, -3e25, math.Pow(8, 30), math.MaxFloat64, -math.MaxFloat64)
	for i := 0; i < 100; i++ {
		v := (1 + rng.Float64()) * math.Pow(10, float64(20+rng.Intn(280)))
		if rng.Intn(2) == 0 {
			v = -v
		}
		values = append(values, v)
	}

	for _, v := range values {
		text := FormatOctal(RealValue(v))
		back, err := ParseOctal(text)
		require.NoError(t, err, "value %v formatted as %q", v, text)
		assert.InDelta(t, v, back, tolerance, "value %v formatted as %q", v, text)
	}
}
