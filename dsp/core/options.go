// Package core defines shared configuration and numeric helpers.
package core

import "time"

// TraceConfig defines the signal dimensions and pacing of a convolution trace.
type TraceConfig struct {
	InputLength       int
	InputResolution   int
	ImpulseLength     int
	ImpulseResolution int
	MaxImpulseValue   int
	StepDelay         time.Duration
}

// TraceOption mutates a TraceConfig.
type TraceOption func(*TraceConfig)

// DefaultTraceConfig returns the dimensions of the classic demo: a 20-sample
// input, a 5-sample impulse with values in [0, 10), and 200ms between steps.
func DefaultTraceConfig() TraceConfig {
	return TraceConfig{
		InputLength:       20,
		InputResolution:   20,
		ImpulseLength:     5,
		ImpulseResolution: 5,
		MaxImpulseValue:   10,
		StepDelay:         200 * time.Millisecond,
	}
}

// WithInputLength sets the input signal domain extent.
func WithInputLength(length int) TraceOption {
	return func(cfg *TraceConfig) {
		if length > 0 {
			cfg.InputLength = length
		}
	}
}

// WithInputResolution sets the input signal sample count.
func WithInputResolution(resolution int) TraceOption {
	return func(cfg *TraceConfig) {
		if resolution > 0 {
			cfg.InputResolution = resolution
		}
	}
}

// WithImpulseLength sets the impulse signal domain extent.
func WithImpulseLength(length int) TraceOption {
	return func(cfg *TraceConfig) {
		if length > 0 {
			cfg.ImpulseLength = length
		}
	}
}

// WithImpulseResolution sets the impulse signal sample count.
func WithImpulseResolution(resolution int) TraceOption {
	return func(cfg *TraceConfig) {
		if resolution > 0 {
			cfg.ImpulseResolution = resolution
		}
	}
}

// WithMaxImpulseValue sets the exclusive upper bound for random impulse values.
func WithMaxImpulseValue(maxValue int) TraceOption {
	return func(cfg *TraceConfig) {
		if maxValue > 0 {
			cfg.MaxImpulseValue = maxValue
		}
	}
}

// WithStepDelay sets the pause between animation steps.
func WithStepDelay(delay time.Duration) TraceOption {
	return func(cfg *TraceConfig) {
		if delay > 0 {
			cfg.StepDelay = delay
		}
	}
}

// ApplyTraceOptions applies zero or more options to the default config.
func ApplyTraceOptions(opts ...TraceOption) TraceConfig {
	cfg := DefaultTraceConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
