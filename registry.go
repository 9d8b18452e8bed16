package propertycurve

import (
	"errors"
	"fmt"
	"slices"

	"go.uber.org/zap"
)

// Property names a registered curve.
type Property string

const (
	Cp     Property = "cp"
	Beta   Property = "beta"
	BetaCp Property = "beta_cp_product"
	RhoR   Property = "rho_r"
)

// ErrUnknownProperty is returned for a property name with no registered curve.
var ErrUnknownProperty = errors.New("unknown property")

// Registry maps property names to curves. It is read-only once built and
// safe for concurrent use.
type Registry struct {
	curves map[Property]*Curve
	log    *zap.Logger
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger used for integration diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(r *Registry) {
		if l != nil {
			r.log = l
		}
	}
}

// WithCurve registers a copy of c under p, replacing any built-in curve of
// that name. A curve with no segments is kept but reported by Curve as
// ErrInvalidCurve.
func WithCurve(p Property, c *Curve) Option {
	return func(r *Registry) {
		if c == nil {
			c = &Curve{}
		}
		r.curves[p] = c.clone()
	}
}

// NewRegistry returns a registry holding the built-in cp, beta,
// beta_cp_product and rho_r curves.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		curves: map[Property]*Curve{
			Cp:     cpCurve,
			Beta:   betaCurve,
			BetaCp: betaCpCurve,
			RhoR:   rhoRCurve,
		},
		log: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Curve returns a copy of the curve registered under p.
func (r *Registry) Curve(p Property) (*Curve, error) {
	c, err := r.lookup(p)
	if err != nil {
		return nil, err
	}
	return c.clone(), nil
}

func (r *Registry) lookup(p Property) (*Curve, error) {
	c, ok := r.curves[p]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownProperty, p)
	}
	if len(c.segments) == 0 {
		return nil, fmt.Errorf("%w: %q has no segments", ErrInvalidCurve, p)
	}
	return c, nil
}

// Properties lists the registered names in sorted order.
func (r *Registry) Properties() []Property {
	res := make([]Property, 0, len(r.curves))
	for p := range r.curves {
		res = append(res, p)
	}
	slices.Sort(res)
	return res
}

// Evaluate returns the value of property p at temperature t (Kelvin).
func (r *Registry) Evaluate(p Property, t float64) (float64, error) {
	c, err := r.lookup(p)
	if err != nil {
		return 0, err
	}
	return c.F(t), nil
}

// Integrate returns the integral of property p over [lo, hi] (Kelvin).
func (r *Registry) Integrate(p Property, lo, hi float64) (float64, error) {
	c, err := r.lookup(p)
	if err != nil {
		return 0, err
	}
	res, start, points, err := c.integrate(lo, hi)
	if err != nil {
		r.log.Debug("integration rejected",
			zap.String("property", string(p)),
			zap.Float64("lower", lo),
			zap.Float64("upper", hi),
			zap.Error(err))
		return 0, err
	}
	if ce := r.log.Check(zap.DebugLevel, "integrated"); ce != nil {
		ce.Write(
			zap.String("property", string(p)),
			zap.Float64("lower", lo),
			zap.Float64("upper", hi),
			zap.Int("first_segment", start),
			zap.Int("segments", len(points)-1),
			zap.Float64("result", res))
	}
	return res, nil
}

var defaultRegistry = NewRegistry()

// Evaluate looks up p in the default registry and evaluates it at t.
func Evaluate(p Property, t float64) (float64, error) {
	return defaultRegistry.Evaluate(p, t)
}

// Integrate looks up p in the default registry and integrates it over [lo, hi].
func Integrate(p Property, lo, hi float64) (float64, error) {
	return defaultRegistry.Integrate(p, lo, hi)
}
