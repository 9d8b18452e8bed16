package propertycurve

import (
	"cmp"
	"fmt"
	"slices"
)

// DomainError is returned when an integration interval starts below the
// curve's domain minimum.
type DomainError struct {
	Property string
	Value    float64
	Min      float64
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: lower bound out of acceptable range; %v < %v", e.Property, e.Value, e.Min)
}

// startSegment returns the largest index whose lower bound does not exceed t.
// At an exact threshold the segment starting there is chosen. A t below the
// first segment is a DomainError.
func (c *Curve) startSegment(t float64) (int, error) {
	k, found := slices.BinarySearchFunc(c.segments, t, func(s Segment, t float64) int {
		return cmp.Compare(s.Lower, t)
	})
	if found {
		return k, nil
	}
	if k == 0 {
		return 0, &DomainError{Property: c.name, Value: t, Min: c.segments[0].Lower}
	}
	return k - 1, nil
}

// Path returns the index of the first segment an integration from lo to hi
// touches, and the breakpoints lo, the crossed segment bounds, then hi.
// Segment start+i is integrated between points i and i+1.
func (c *Curve) Path(lo, hi float64) (int, []float64, error) {
	if len(c.segments) == 0 {
		return 0, nil, fmt.Errorf("%w: %s has no segments", ErrInvalidCurve, c.name)
	}
	if !(lo >= c.domainMin) {
		return 0, nil, &DomainError{Property: c.name, Value: lo, Min: c.domainMin}
	}
	start, err := c.startSegment(lo)
	if err != nil {
		return 0, nil, err
	}
	points := []float64{lo}
	for j := start; j < len(c.segments)-1 && c.segments[j].Upper < hi; j++ {
		points = append(points, c.segments[j].Upper)
	}
	return start, append(points, hi), nil
}

// Integrate returns the definite integral of the curve from lo to hi by
// summing the closed-form antiderivative of every segment on the path.
// An upper bound past the last threshold extrapolates with the open-ended
// segment. Reversed bounds negate the result.
func (c *Curve) Integrate(lo, hi float64) (float64, error) {
	res, _, _, err := c.integrate(lo, hi)
	return res, err
}

// integrate also returns the path it summed over, in ascending order.
func (c *Curve) integrate(lo, hi float64) (float64, int, []float64, error) {
	if hi < lo {
		res, start, points, err := c.integrate(hi, lo)
		return -res, start, points, err
	}
	start, points, err := c.Path(lo, hi)
	if err != nil {
		return 0, 0, nil, err
	}

	var sum float64
	for i := 0; i+1 < len(points); i++ {
		a := c.segments[start+i].Antiderivative
		sum += a.Eval(points[i+1]) - a.Eval(points[i])
	}
	return sum, start, points, nil
}
