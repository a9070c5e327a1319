// Command convviz animates the input-side convolution of two generated
// signals in the terminal: input, impulse, and output lanes with index
// markers and a step counter, one multiply-accumulate per frame.
//
// Usage:
//
//	convviz [flags]
//
// The input signal is a sine over its domain; the impulse signal holds
// random integer values below -max-impulse. Resolutions default to the
// corresponding lengths.
//
// Examples:
//
//	convviz
//	convviz -input-len 30 -impulse-len 8 -delay 100ms
//	convviz -seed 7 -no-tui
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cwbudde/algo-convtrace/dsp/conv"
	"github.com/cwbudde/algo-convtrace/dsp/core"
	"github.com/cwbudde/algo-convtrace/dsp/signal"
	"github.com/cwbudde/algo-convtrace/internal/tui"
)

func main() {
	var (
		inputLen   = flag.Int("input-len", 0, "input signal length (default 20)")
		inputRes   = flag.Int("input-res", 0, "input signal sample count (default: input length)")
		impulseLen = flag.Int("impulse-len", 0, "impulse signal length (default 5)")
		impulseRes = flag.Int("impulse-res", 0, "impulse signal sample count (default: impulse length)")
		maxImpulse = flag.Int("max-impulse", 0, "exclusive upper bound for random impulse values (default 10)")
		delay      = flag.Duration("delay", 0, "pause between animation steps (default 200ms)")
		seed       = flag.Int64("seed", 1, "random seed for the impulse signal")
		noTUI      = flag.Bool("no-tui", false, "compute without animation and print the output signal")
	)
	flag.Parse()

	if *inputRes == 0 {
		*inputRes = *inputLen
	}
	if *impulseRes == 0 {
		*impulseRes = *impulseLen
	}

	cfg := core.ApplyTraceOptions(
		core.WithInputLength(*inputLen),
		core.WithInputResolution(*inputRes),
		core.WithImpulseLength(*impulseLen),
		core.WithImpulseResolution(*impulseRes),
		core.WithMaxImpulseValue(*maxImpulse),
		core.WithStepDelay(*delay),
	)

	input, impulse, err := buildSignals(cfg, *seed)
	if err != nil {
		fatal(err)
	}

	stepper, err := conv.NewStepper(input, impulse)
	if err != nil {
		fatal(err)
	}

	if *noTUI {
		if err := runPlain(stepper); err != nil {
			fatal(err)
		}
		return
	}

	program := tea.NewProgram(tui.New(stepper, cfg.StepDelay), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		fatal(err)
	}
}

// buildSignals constructs the two signals of the classic demo: a sine input
// and a random impulse response.
func buildSignals(cfg core.TraceConfig, seed int64) (*signal.Signal, *signal.Signal, error) {
	input, err := signal.New(cfg.InputLength, cfg.InputResolution)
	if err != nil {
		return nil, nil, fmt.Errorf("input signal: %w", err)
	}
	if err := input.SetCustomOutput(math.Sin); err != nil {
		return nil, nil, fmt.Errorf("input signal: %w", err)
	}

	impulse, err := signal.New(cfg.ImpulseLength, cfg.ImpulseResolution, signal.WithSeed(seed))
	if err != nil {
		return nil, nil, fmt.Errorf("impulse signal: %w", err)
	}
	if err := impulse.SetRandomOutput(cfg.MaxImpulseValue); err != nil {
		return nil, nil, fmt.Errorf("impulse signal: %w", err)
	}

	return input, impulse, nil
}

// runPlain drives the stepper to completion and prints the output signal.
func runPlain(stepper *conv.Stepper) error {
	if err := stepper.Run(nil); err != nil {
		return err
	}

	out := stepper.Output()
	y, err := out.Y()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "Sample\tX\tValue")
	for i, x := range out.X() {
		fmt.Fprintf(w, "%d\t%.1f\t%.4f\n", i, x, y[i])
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("Convolution complete after %d steps.\n", stepper.Steps())
	return nil
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "convviz:", err)
	os.Exit(1)
}
