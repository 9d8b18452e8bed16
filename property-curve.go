// Package propertycurve evaluates and integrates temperature-dependent material
// properties stored as piecewise polynomial fits.
package propertycurve

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/floats/scalar"
)

// ErrInvalidCurve is returned when a segment table violates the curve invariants.
var ErrInvalidCurve = errors.New("invalid property curve")

// Segment is one fit range of a curve. Upper is +Inf for the top segment.
type Segment struct {
	Lower, Upper   float64
	Value          Polynomial
	Antiderivative Polynomial
}

// Curve is an immutable piecewise polynomial over [DomainMin, +Inf). The zero
// value has no segments: F returns NaN and Integrate fails with ErrInvalidCurve.
type Curve struct {
	name      string
	domainMin float64
	segments  []Segment
}

// Discontinuity reports the values of two adjacent fits at their shared boundary.
type Discontinuity struct {
	At          float64
	Left, Right float64
	Smooth      bool
}

// NewCurve validates the segment table and returns a curve owning a copy of it.
func NewCurve(name string, domainMin float64, segments ...Segment) (*Curve, error) {
	if len(segments) == 0 {
		return nil, fmt.Errorf("%w: %s has no segments", ErrInvalidCurve, name)
	}
	if segments[0].Lower != domainMin {
		return nil, fmt.Errorf("%w: %s starts at %v, domain minimum is %v",
			ErrInvalidCurve, name, segments[0].Lower, domainMin)
	}
	last := len(segments) - 1
	for i, s := range segments {
		if !(s.Lower < s.Upper) {
			return nil, fmt.Errorf("%w: %s segment %d has empty range [%v, %v]",
				ErrInvalidCurve, name, i, s.Lower, s.Upper)
		}
		if len(s.Value) == 0 {
			return nil, fmt.Errorf("%w: %s segment %d has no coefficients", ErrInvalidCurve, name, i)
		}
		if len(s.Antiderivative) != len(s.Value)+1 {
			return nil, fmt.Errorf("%w: %s segment %d has %d antiderivative coefficients, want %d",
				ErrInvalidCurve, name, i, len(s.Antiderivative), len(s.Value)+1)
		}
		if i < last && s.Upper != segments[i+1].Lower {
			return nil, fmt.Errorf("%w: %s segments %d and %d are not contiguous (%v != %v)",
				ErrInvalidCurve, name, i, i+1, s.Upper, segments[i+1].Lower)
		}
	}
	if !math.IsInf(segments[last].Upper, 1) {
		return nil, fmt.Errorf("%w: %s top segment must be open-ended", ErrInvalidCurve, name)
	}

	return &Curve{
		name:      name,
		domainMin: domainMin,
		segments:  cloneSegments(segments),
	}, nil
}

func cloneSegment(s Segment) Segment {
	return Segment{
		Lower:          s.Lower,
		Upper:          s.Upper,
		Value:          slices.Clone(s.Value),
		Antiderivative: slices.Clone(s.Antiderivative),
	}
}

func cloneSegments(segments []Segment) []Segment {
	res := make([]Segment, len(segments))
	for i, s := range segments {
		res[i] = cloneSegment(s)
	}
	return res
}

// MustCurve is like NewCurve but panics on an invalid table.
func MustCurve(name string, domainMin float64, segments ...Segment) *Curve {
	c, err := NewCurve(name, domainMin, segments...)
	if err != nil {
		panic(err)
	}
	return c
}

// Name returns the property name the curve was built with.
func (c *Curve) Name() string {
	return c.name
}

// DomainMin returns the lowest temperature Integrate accepts.
func (c *Curve) DomainMin() float64 {
	return c.domainMin
}

// Segments returns a copy of the segment table.
func (c *Curve) Segments() []Segment {
	return cloneSegments(c.segments)
}

func (c *Curve) clone() *Curve {
	return &Curve{
		name:      c.name,
		domainMin: c.domainMin,
		segments:  cloneSegments(c.segments),
	}
}

// Breakpoints returns the interior segment boundaries in ascending order.
func (c *Curve) Breakpoints() []float64 {
	if len(c.segments) < 2 {
		return nil
	}
	res := make([]float64, 0, len(c.segments)-1)
	for _, s := range c.segments[:len(c.segments)-1] {
		res = append(res, s.Upper)
	}
	return res
}

// segmentFor returns the first segment whose closed range holds x. Values below
// the domain map to the lowest segment and values above it to the top one.
func (c *Curve) segmentFor(x float64) int {
	k, _ := slices.BinarySearchFunc(c.segments, x, func(s Segment, x float64) int {
		return cmp.Compare(s.Upper, x)
	})
	if k >= len(c.segments) {
		k = len(c.segments) - 1
	}
	return k
}

// F evaluates the curve at x. It never fails: x below DomainMin is
// extrapolated with the lowest fit, x above the top bound with the open-ended one.
func (c *Curve) F(x float64) float64 {
	if len(c.segments) == 0 {
		return math.NaN()
	}
	return c.segments[c.segmentFor(x)].Value.Eval(x)
}

// Continuity evaluates both neighbouring fits at every interior boundary.
func (c *Curve) Continuity(absTol, relTol float64) []Discontinuity {
	var res []Discontinuity
	for i := 0; i+1 < len(c.segments); i++ {
		at := c.segments[i].Upper
		left := c.segments[i].Value.Eval(at)
		right := c.segments[i+1].Value.Eval(at)
		res = append(res, Discontinuity{
			At:     at,
			Left:   left,
			Right:  right,
			Smooth: scalar.EqualWithinAbsOrRel(left, right, absTol, relTol),
		})
	}
	return res
}

func (c *Curve) String() string {
	s := fmt.Sprintf("\nProperty curve %s:\n", c.name)
	s = fmt.Sprintf("%s\tdomain: [%v, +Inf)\n", s, c.domainMin)
	for i, seg := range c.segments {
		s = fmt.Sprintf("%s\t%d: [%v, %v] f(x) = %v\n", s, i, seg.Lower, seg.Upper, seg.Value)
	}
	return s
}
