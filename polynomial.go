package propertycurve

import (
	"fmt"
	"strings"
)

// Polynomial holds coefficients in ascending power order: p[i] multiplies x^i.
type Polynomial []float64

// Eval evaluates the polynomial at x using Horner's scheme.
func (p Polynomial) Eval(x float64) float64 {
	var res float64
	for i := len(p) - 1; i >= 0; i-- {
		res = res*x + p[i]
	}
	return res
}

// Degree returns the highest power, or -1 for an empty polynomial.
func (p Polynomial) Degree() int {
	return len(p) - 1
}

// Derivative returns the term-by-term derivative.
func (p Polynomial) Derivative() Polynomial {
	if len(p) < 2 {
		return Polynomial{0}
	}
	res := make(Polynomial, len(p)-1)
	for i := 1; i < len(p); i++ {
		res[i-1] = p[i] * float64(i)
	}
	return res
}

func (p Polynomial) String() string {
	var sb strings.Builder
	for i, c := range p {
		if i > 0 {
			sb.WriteString(" + ")
		}
		switch i {
		case 0:
			fmt.Fprintf(&sb, "%g", c)
		case 1:
			fmt.Fprintf(&sb, "%g*x", c)
		default:
			fmt.Fprintf(&sb, "%g*x^%d", c, i)
		}
	}
	return sb.String()
}
