package schemargs

import (
	"errors"
	"fmt"
	"slices"

	"github.com/aretw0/schemargs/pkg/schema"
)

// ErrNoSuchFlag is wrapped by every accessor failure. It covers both an
// undeclared flag and a flag declared with another type.
var ErrNoSuchFlag = errors.New("no such flag of this type")

// AccessError reports a typed lookup that did not match the slot table.
type AccessError struct {
	ID   byte
	Kind schema.Kind // Requested kind
}

func (e *AccessError) Error() string {
	return fmt.Sprintf("there is no flag %q with type %s", string(e.ID), e.Kind)
}

func (e *AccessError) Unwrap() error { return ErrNoSuchFlag }

func lookup[T schema.Value](p *Parser, id byte, kind schema.Kind) (T, error) {
	v, ok := p.slots[id].(T)
	if !ok {
		var zero T
		return zero, &AccessError{ID: id, Kind: kind}
	}
	return v, nil
}

// Bool returns the value of a bool flag.
func (p *Parser) Bool(id byte) (bool, error) {
	v, err := lookup[schema.Bool](p, id, schema.KindBool)
	return bool(v), err
}

// Int returns the value of an integer flag.
func (p *Parser) Int(id byte) (int64, error) {
	v, err := lookup[schema.Int](p, id, schema.KindInt)
	return int64(v), err
}

// Float returns the value of a floating point flag.
func (p *Parser) Float(id byte) (float64, error) {
	v, err := lookup[schema.Float](p, id, schema.KindFloat)
	return float64(v), err
}

// String returns the value of a string flag.
func (p *Parser) String(id byte) (string, error) {
	v, err := lookup[schema.String](p, id, schema.KindString)
	return string(v), err
}

// IntList returns a copy of an integer list flag.
func (p *Parser) IntList(id byte) ([]int64, error) {
	v, err := lookup[schema.IntList](p, id, schema.KindIntList)
	if err != nil {
		return nil, err
	}
	return slices.Clone([]int64(v)), nil
}

// FloatList returns a copy of a floating point list flag.
func (p *Parser) FloatList(id byte) ([]float64, error) {
	v, err := lookup[schema.FloatList](p, id, schema.KindFloatList)
	if err != nil {
		return nil, err
	}
	return slices.Clone([]float64(v)), nil
}

// StringList returns a copy of a string list flag.
func (p *Parser) StringList(id byte) ([]string, error) {
	v, err := lookup[schema.StringList](p, id, schema.KindStringList)
	if err != nil {
		return nil, err
	}
	return slices.Clone([]string(v)), nil
}

// The Must variants panic with the *AccessError instead of returning it.
// Asking for the wrong type is a programming error at the call site.

func (p *Parser) MustBool(id byte) bool           { return must(p.Bool(id)) }
func (p *Parser) MustInt(id byte) int64           { return must(p.Int(id)) }
func (p *Parser) MustFloat(id byte) float64       { return must(p.Float(id)) }
func (p *Parser) MustString(id byte) string       { return must(p.String(id)) }
func (p *Parser) MustIntList(id byte) []int64     { return must(p.IntList(id)) }
func (p *Parser) MustFloatList(id byte) []float64 { return must(p.FloatList(id)) }
func (p *Parser) MustStringList(id byte) []string { return must(p.StringList(id)) }

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
