// Package signal represents sampled waveforms as paired x/y sequences.
package signal

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"
)

// Errors returned by signal construction and access.
var (
	ErrInvalidDimension = errors.New("signal: invalid dimension")
	ErrUnsetOutput      = errors.New("signal: output not set")
)

// Signal holds one sampled waveform: sampleCount x coordinates uniformly
// spaced over [0, length-1] and a parallel slice of y values. The y values
// stay unset until exactly one of the Set*Output generators has run; reading
// them before that returns ErrUnsetOutput.
type Signal struct {
	length      int
	sampleCount int
	seed        int64
	x           []float64
	y           []float64
}

// Option configures a Signal.
type Option func(*Signal)

// WithSeed sets the deterministic seed used by SetRandomOutput.
func WithSeed(seed int64) Option {
	return func(s *Signal) {
		s.seed = seed
	}
}

// New creates a Signal spanning the domain [0, length-1] with sampleCount
// sample positions. Returns ErrInvalidDimension if either argument is < 1.
func New(length, sampleCount int, opts ...Option) (*Signal, error) {
	if length < 1 {
		return nil, fmt.Errorf("%w: length must be >= 1: %d", ErrInvalidDimension, length)
	}
	if sampleCount < 1 {
		return nil, fmt.Errorf("%w: sample count must be >= 1: %d", ErrInvalidDimension, sampleCount)
	}

	s := &Signal{
		length:      length,
		sampleCount: sampleCount,
		seed:        1,
		x:           make([]float64, sampleCount),
	}

	// floats.Span requires at least two points; a single sample sits at 0.
	if sampleCount > 1 {
		floats.Span(s.x, 0, float64(length-1))
	}

	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s, nil
}

// Length returns the nominal domain extent.
func (s *Signal) Length() int { return s.length }

// SampleCount returns the number of x/y sample pairs.
func (s *Signal) SampleCount() int { return s.sampleCount }

// Populated reports whether a generator has filled the y values.
func (s *Signal) Populated() bool { return s.y != nil }

// X returns the sample positions. Callers must treat the slice as read-only.
func (s *Signal) X() []float64 { return s.x }

// Y returns the sample values. The convolution stepper mutates the returned
// slice of its output signal in place; all other callers must treat it as
// read-only.
func (s *Signal) Y() ([]float64, error) {
	if s.y == nil {
		return nil, fmt.Errorf("%w: call a Set*Output generator first", ErrUnsetOutput)
	}
	return s.y, nil
}

// SetCustomOutput fills the y values by evaluating f at every sample position.
func (s *Signal) SetCustomOutput(f func(float64) float64) error {
	if f == nil {
		return fmt.Errorf("signal: custom output func must not be nil")
	}
	y := make([]float64, s.sampleCount)
	for i, x := range s.x {
		y[i] = f(x)
	}
	s.y = y
	return nil
}

// SetRandomOutput fills the y values with integers drawn uniformly from
// [0, maxValue). The draw is deterministic for a fixed seed (see WithSeed).
func (s *Signal) SetRandomOutput(maxValue int) error {
	if maxValue < 1 {
		return fmt.Errorf("signal: random max value must be >= 1: %d", maxValue)
	}
	rng := rand.New(rand.NewSource(s.seed))
	y := make([]float64, s.sampleCount)
	for i := range y {
		y[i] = float64(rng.Intn(maxValue))
	}
	s.y = y
	return nil
}

// SetZeroOutput fills the y values with zeros.
func (s *Signal) SetZeroOutput() {
	s.y = make([]float64, s.sampleCount)
}

// Normalize scales data to target peak amplitude and returns a new slice.
// An all-zero input (or zero target) yields an all-zero result.
func Normalize(data []float64, targetPeak float64) ([]float64, error) {
	if targetPeak < 0 {
		return nil, fmt.Errorf("signal: normalize target peak must be >= 0: %f", targetPeak)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("signal: normalize input must not be empty")
	}

	maxAbs := 0.0
	for _, v := range data {
		if av := math.Abs(v); av > maxAbs {
			maxAbs = av
		}
	}

	out := make([]float64, len(data))
	if maxAbs == 0 || targetPeak == 0 {
		return out, nil
	}

	scale := targetPeak / maxAbs
	for i, v := range data {
		out[i] = v * scale
	}
	return out, nil
}
