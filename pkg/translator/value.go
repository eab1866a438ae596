package translator

import (
	"errors"
	"math"
	"math/cmplx"
	"sort"
)

// Kind tags the variant held by a Value.
type Kind int

const (
	Integer Kind = iota
	Real
	Complex
)

func (k Kind) String() string {
	switch k {
	case Integer:
		return "integer"
	case Real:
		return "real"
	case Complex:
		return "complex"
	default:
		return "unknown"
	}
}

// Value is a signed integer, real, or complex number.
//
//	Array 17 7.4 1.0,2.0
//	      ^^ IntegerValue(15)
//	         ^^^ RealValue(7.5)
//	             ^^^^^^^ ComplexValue(1, 2)
type Value struct {
	Kind Kind
	Int  int64   // Integer payload
	Re   float64 // Real payload, or real part of a Complex
	Im   float64 // imaginary part of a Complex
}

func IntegerValue(i int64) Value        { return Value{Kind: Integer, Int: i} }
func RealValue(f float64) Value         { return Value{Kind: Real, Re: f} }
func ComplexValue(re, im float64) Value { return Value{Kind: Complex, Re: re, Im: im} }
func complexOf(c complex128) Value      { return ComplexValue(real(c), imag(c)) }
func (v Value) cplx() complex128        { return complex(v.float(), v.Im) }
func (v Value) String() string          { return FormatOctal(v) }

func (v Value) float() float64 {
	if v.Kind == Integer {
		return float64(v.Int)
	}
	return v.Re
}

// IsZero reports whether every component of v is zero.
func (v Value) IsZero() bool {
	switch v.Kind {
	case Integer:
		return v.Int == 0
	case Complex:
		return v.Re == 0 && v.Im == 0
	default:
		return v.Re == 0
	}
}

// finite reports whether no component is infinite or NaN.
func (v Value) finite() bool {
	ok := func(f float64) bool { return !math.IsInf(f, 0) && !math.IsNaN(f) }
	return ok(v.float()) && ok(v.Im)
}

var (
	errDivisionByZero = errors.New("division by zero")
	errZeroPower      = errors.New("zero cannot be raised to a negative or complex power")
	errOutOfRange     = errors.New("result out of range")
)

// scale multiplies v by a unary sign.
func (v Value) scale(sign float64) Value {
	switch v.Kind {
	case Complex:
		return ComplexValue(v.Re*sign, v.Im*sign)
	default:
		return RealValue(v.float() * sign)
	}
}

// arith applies a binary operator. Operands are reals unless either side is
// already complex; a negative base raised to a fractional power promotes the
// result to complex.
func arith(op TokenType, left, right Value) (Value, error) {
	var out Value
	if left.Kind == Complex || right.Kind == Complex {
		a, b := left.cplx(), right.cplx()
		switch op {
		case PLUS:
			out = complexOf(a + b)
		case MINUS:
			out = complexOf(a - b)
		case STAR:
			out = complexOf(a * b)
		case SLASH:
			if b == 0 {
				return Value{}, errDivisionByZero
			}
			out = complexOf(a / b)
		case POWER:
			if a == 0 && (real(b) < 0 || imag(b) != 0) {
				return Value{}, errZeroPower
			}
			if b == 0 {
				out = ComplexValue(1, 0)
			} else {
				out = complexOf(cmplx.Pow(a, b))
			}
		}
	} else {
		a, b := left.float(), right.float()
		switch op {
		case PLUS:
			out = RealValue(a + b)
		case MINUS:
			out = RealValue(a - b)
		case STAR:
			out = RealValue(a * b)
		case SLASH:
			if b == 0 {
				return Value{}, errDivisionByZero
			}
			out = RealValue(a / b)
		case POWER:
			switch {
			case a == 0 && b < 0:
				return Value{}, errZeroPower
			case a < 0 && b != math.Trunc(b):
				out = complexOf(cmplx.Pow(complex(a, 0), complex(b, 0)))
			default:
				out = RealValue(math.Pow(a, b))
			}
		}
	}
	if !out.finite() {
		return Value{}, errOutOfRange
	}
	return out, nil
}

// SymbolTable maps a declared variable name to its computed value.
type SymbolTable map[string]Value

// Names returns the variable names in sorted order.
func (st SymbolTable) Names() []string {
	names := make([]string, 0, len(st))
	for name := range st {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
