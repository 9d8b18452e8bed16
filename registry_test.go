package propertycurve

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestRegistryProperties(t *testing.T) {
	assert.Equal(t, []Property{Beta, BetaCp, Cp, RhoR}, NewRegistry().Properties())
}

func TestEvaluate(t *testing.T) {
	for p, c := range builtinCurves() {
		for _, x := range []float64{200, 273, 600, 650, 1000} {
			got, err := Evaluate(p, x)
			require.NoError(t, err)
			assert.Equal(t, c.F(x), got, "%s at %v", p, x)
		}
	}
}

func TestIntegrate(t *testing.T) {
	got, err := Integrate(Cp, 500, 650)
	require.NoError(t, err)
	want, err := cpCurve.Integrate(500, 650)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = Integrate(BetaCp, 100, 650)
	var de *DomainError
	assert.True(t, errors.As(err, &de))
}

func TestUnknownProperty(t *testing.T) {
	_, err := Evaluate("enthalpy", 300)
	assert.ErrorIs(t, err, ErrUnknownProperty)

	_, err = Integrate("enthalpy", 300, 400)
	assert.ErrorIs(t, err, ErrUnknownProperty)

	_, err = NewRegistry().Curve("enthalpy")
	assert.ErrorIs(t, err, ErrUnknownProperty)
}

func TestWithCurve(t *testing.T) {
	constant := MustCurve("constant", 0, Segment{
		Lower:          0,
		Upper:          inf,
		Value:          Polynomial{2},
		Antiderivative: Polynomial{0, 2},
	})
	r := NewRegistry(WithCurve("constant", constant), WithCurve(Cp, constant))

	got, err := r.Integrate("constant", 10, 20)
	require.NoError(t, err)
	assert.Equal(t, 20.0, got)

	got, err = r.Evaluate(Cp, 300)
	require.NoError(t, err)
	assert.Equal(t, 2.0, got)

	// Other registries keep the built-in table.
	got, err = NewRegistry().Evaluate(Cp, 300)
	require.NoError(t, err)
	assert.Equal(t, cpCurve.F(300), got)
}

func TestCurveReturnsCopy(t *testing.T) {
	r := NewRegistry()
	c, err := r.Curve(Cp)
	require.NoError(t, err)

	const table = `{"name": "cp", "domain_min": 0, "segments": [
		{"lower": 0, "value": [1], "antiderivative": [0, 1]}
	]}`
	require.NoError(t, json.Unmarshal([]byte(table), c))
	assert.Equal(t, 0.0, c.DomainMin())

	_, err = r.Integrate(Cp, 100, 300)
	var de *DomainError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, 273.0, de.Min)

	got, err := r.Evaluate(Cp, 300)
	require.NoError(t, err)
	assert.Equal(t, cpCurve.F(300), got)
}

func TestWithCurveKeepsCopy(t *testing.T) {
	c := MustCurve("constant", 0, Segment{
		Lower:          0,
		Upper:          inf,
		Value:          Polynomial{2},
		Antiderivative: Polynomial{0, 2},
	})
	r := NewRegistry(WithCurve("constant", c))

	const table = `{"name": "constant", "domain_min": 0, "segments": [
		{"lower": 0, "value": [5], "antiderivative": [0, 5]}
	]}`
	require.NoError(t, json.Unmarshal([]byte(table), c))

	got, err := r.Evaluate("constant", 1)
	require.NoError(t, err)
	assert.Equal(t, 2.0, got)
}

func TestWithCurveEmpty(t *testing.T) {
	r := NewRegistry(WithCurve("zero", &Curve{}), WithCurve("nil", nil))
	for _, p := range []Property{"zero", "nil"} {
		_, err := r.Evaluate(p, 300)
		assert.ErrorIs(t, err, ErrInvalidCurve, "%s", p)

		_, err = r.Integrate(p, 300, 400)
		assert.ErrorIs(t, err, ErrInvalidCurve, "%s", p)

		_, err = r.Curve(p)
		assert.ErrorIs(t, err, ErrInvalidCurve, "%s", p)
	}
}

func TestRegistryLogging(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	r := NewRegistry(WithLogger(zap.New(core)))

	_, err := r.Integrate(Cp, 500, 650)
	require.NoError(t, err)
	entries := logs.FilterMessage("integrated").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "cp", fields["property"])
	assert.Equal(t, int64(0), fields["first_segment"])
	assert.Equal(t, int64(2), fields["segments"])

	_, err = r.Integrate(Cp, 200, 650)
	require.Error(t, err)
	assert.Equal(t, 1, logs.FilterMessage("integration rejected").Len())
}
