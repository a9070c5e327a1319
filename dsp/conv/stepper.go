package conv

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-convtrace/dsp/signal"
)

// Errors returned by the stepper.
var (
	ErrExhausted   = errors.New("conv: stepper exhausted")
	ErrUnsetSignal = errors.New("conv: signal output not set")
)

// Step describes one completed multiply-accumulate.
//
// Index counts completed steps from 0. InputIndex, ImpulseIndex, and
// OutputIndex identify the (input, impulse, output) triple of the pair just
// processed, and OutputValue is the output bin's value after accumulation.
type Step struct {
	Index        int
	InputIndex   int
	ImpulseIndex int
	OutputIndex  int
	OutputValue  float64
}

// Stepper drives the input-side convolution of an input signal (N samples)
// with an impulse signal (M samples), one multiply-accumulate per Next call,
// in input-major, impulse-minor order. After any number of steps the output
// signal holds an exact prefix of the true convolution in that order.
type Stepper struct {
	input   *signal.Signal
	impulse *signal.Signal
	output  *signal.Signal

	inY  []float64
	impY []float64
	outY []float64

	inputIndex   int
	impulseIndex int
	steps        int
	done         bool
}

// NewStepper builds a stepper over two populated signals. The output signal
// is created with N+M-1 samples spanning [0, N+M-2], all zero. Returns
// ErrUnsetSignal if either signal has no generated output yet.
func NewStepper(input, impulse *signal.Signal) (*Stepper, error) {
	if input == nil || impulse == nil {
		return nil, fmt.Errorf("conv: input and impulse must not be nil")
	}

	inY, err := input.Y()
	if err != nil {
		return nil, fmt.Errorf("%w: input signal", ErrUnsetSignal)
	}
	impY, err := impulse.Y()
	if err != nil {
		return nil, fmt.Errorf("%w: impulse signal", ErrUnsetSignal)
	}

	outLen := len(inY) + len(impY) - 1
	output, err := signal.New(outLen, outLen)
	if err != nil {
		return nil, err
	}
	output.SetZeroOutput()
	outY, err := output.Y()
	if err != nil {
		return nil, err
	}

	return &Stepper{
		input:   input,
		impulse: impulse,
		output:  output,
		inY:     inY,
		impY:    impY,
		outY:    outY,
	}, nil
}

// Input returns the input signal.
func (s *Stepper) Input() *signal.Signal { return s.input }

// Impulse returns the impulse signal.
func (s *Stepper) Impulse() *signal.Signal { return s.impulse }

// Output returns the output signal. Its y values are mutated in place as
// steps are taken.
func (s *Stepper) Output() *signal.Signal { return s.output }

// Done reports whether all N*M pairs have been processed.
func (s *Stepper) Done() bool { return s.done }

// Steps returns the number of completed steps.
func (s *Stepper) Steps() int { return s.steps }

// TotalSteps returns N*M, the number of steps to completion.
func (s *Stepper) TotalSteps() int { return len(s.inY) * len(s.impY) }

// Next performs exactly one accumulation and returns the record for the pair
// just processed. Returns ErrExhausted once all pairs have been consumed.
func (s *Stepper) Next() (Step, error) {
	if s.done {
		return Step{}, fmt.Errorf("%w: all %d steps taken", ErrExhausted, s.steps)
	}

	outputIndex := s.inputIndex + s.impulseIndex
	s.outY[outputIndex] += s.inY[s.inputIndex] * s.impY[s.impulseIndex]

	step := Step{
		Index:        s.steps,
		InputIndex:   s.inputIndex,
		ImpulseIndex: s.impulseIndex,
		OutputIndex:  outputIndex,
		OutputValue:  s.outY[outputIndex],
	}
	s.steps++

	// Advance row-major: wrap the impulse index, carry into the input index.
	s.impulseIndex++
	if s.impulseIndex == len(s.impY) {
		s.impulseIndex = 0
		s.inputIndex++
		if s.inputIndex == len(s.inY) {
			s.done = true
		}
	}

	return step, nil
}

// Run drives the stepper to completion, invoking observe after every step.
// A nil observer just completes the convolution. If observe returns an
// error, Run stops and returns it; the steps taken so far remain applied.
func (s *Stepper) Run(observe func(Step) error) error {
	for !s.done {
		step, err := s.Next()
		if err != nil {
			return err
		}
		if observe != nil {
			if err := observe(step); err != nil {
				return err
			}
		}
	}
	return nil
}
