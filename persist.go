package propertycurve

import (
	"encoding/json"
	"math"

	"gopkg.in/yaml.v3"
)

// Dump is a serializable representation of a Curve.
type Dump struct {
	Name      string        `json:"name" yaml:"name"`
	DomainMin float64       `json:"domain_min" yaml:"domain_min"`
	Segments  []SegmentDump `json:"segments" yaml:"segments"`
}

// SegmentDump is one fit range. Upper is omitted for the open-ended top segment.
type SegmentDump struct {
	Lower          float64   `json:"lower" yaml:"lower"`
	Upper          *float64  `json:"upper,omitempty" yaml:"upper,omitempty"`
	Value          []float64 `json:"value" yaml:"value"`
	Antiderivative []float64 `json:"antiderivative" yaml:"antiderivative"`
}

// Dump generates a serializable dump for a curve.
func (c *Curve) Dump() *Dump {
	d := &Dump{
		Name:      c.name,
		DomainMin: c.domainMin,
		Segments:  make([]SegmentDump, len(c.segments)),
	}
	for i, s := range cloneSegments(c.segments) {
		sd := SegmentDump{
			Lower:          s.Lower,
			Value:          s.Value,
			Antiderivative: s.Antiderivative,
		}
		if !math.IsInf(s.Upper, 1) {
			upper := s.Upper
			sd.Upper = &upper
		}
		d.Segments[i] = sd
	}
	return d
}

// FromDump restores a curve from a dump. The table is validated the same way
// NewCurve validates it; on error the receiver is left unchanged.
func (c *Curve) FromDump(d *Dump) error {
	segments := make([]Segment, len(d.Segments))
	for i, sd := range d.Segments {
		upper := math.Inf(1)
		if sd.Upper != nil {
			upper = *sd.Upper
		}
		segments[i] = Segment{
			Lower:          sd.Lower,
			Upper:          upper,
			Value:          sd.Value,
			Antiderivative: sd.Antiderivative,
		}
	}
	restored, err := NewCurve(d.Name, d.DomainMin, segments...)
	if err != nil {
		return err
	}
	*c = *restored
	return nil
}

// MarshalJSON implements the json.Marshaler interface for Curve.
func (c *Curve) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Dump())
}

// UnmarshalJSON implements the json.Unmarshaler interface for Curve.
func (c *Curve) UnmarshalJSON(bytes []byte) error {
	var dump Dump
	if err := json.Unmarshal(bytes, &dump); err != nil {
		return err
	}
	return c.FromDump(&dump)
}

// MarshalYAML implements the yaml.Marshaler interface for Curve.
func (c *Curve) MarshalYAML() (interface{}, error) {
	return c.Dump(), nil
}

// UnmarshalYAML implements the yaml.Unmarshaler interface for Curve.
func (c *Curve) UnmarshalYAML(value *yaml.Node) error {
	var dump Dump
	if err := value.Decode(&dump); err != nil {
		return err
	}
	return c.FromDump(&dump)
}
