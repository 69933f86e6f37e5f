// Package param provides lock-free parameters shared between a controller
// context and the audio context.
package param

import (
	"fmt"
	"math"
	"strconv"
	"sync/atomic"
)

// Parameter is a scalar control value. The controller writes it, the audio
// context reads it; both sides go through one atomic word, so neither ever
// blocks the other. Changes take effect at the next block boundary the audio
// context happens to read.
type Parameter struct {
	Name         string
	Min          float64
	Max          float64
	DefaultValue float64

	value atomic.Uint64
}

// New creates a parameter initialized to its default value.
func New(name string, min, max, def float64) *Parameter {
	p := &Parameter{
		Name:         name,
		Min:          min,
		Max:          max,
		DefaultValue: def,
	}
	p.SetValue(def)
	return p
}

// Value returns the current value.
func (p *Parameter) Value() float64 {
	return math.Float64frombits(p.value.Load())
}

// SetValue sets the value, clamped to [Min, Max].
func (p *Parameter) SetValue(v float64) {
	if v < p.Min {
		v = p.Min
	} else if v > p.Max {
		v = p.Max
	}
	p.value.Store(math.Float64bits(v))
}

// SetString parses and sets the value from its string form.
func (p *Parameter) SetString(s string) error {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("param %s: %w", p.Name, err)
	}
	p.SetValue(v)
	return nil
}

// String formats the current value the way the host protocol expects.
func (p *Parameter) String() string {
	return strconv.FormatFloat(p.Value(), 'f', 2, 64)
}
