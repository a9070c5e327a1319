package signal

import (
	"errors"
	"math"
	"testing"
)

func TestNewDomain(t *testing.T) {
	tests := []struct {
		name        string
		length      int
		sampleCount int
	}{
		{"dense", 20, 20},
		{"sparse", 20, 5},
		{"oversampled", 5, 20},
		{"single sample", 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New(tt.length, tt.sampleCount)
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			x := s.X()
			if len(x) != tt.sampleCount {
				t.Fatalf("len(x) = %d, want %d", len(x), tt.sampleCount)
			}
			if x[0] != 0 {
				t.Errorf("x[0] = %v, want 0", x[0])
			}
			if tt.sampleCount > 1 {
				last := x[len(x)-1]
				if math.Abs(last-float64(tt.length-1)) > 1e-12 {
					t.Errorf("x[last] = %v, want %d", last, tt.length-1)
				}
			}
		})
	}
}

func TestNewInvalidDimension(t *testing.T) {
	if _, err := New(0, 5); !errors.Is(err, ErrInvalidDimension) {
		t.Errorf("New(0, 5): expected ErrInvalidDimension, got %v", err)
	}
	if _, err := New(5, 0); !errors.Is(err, ErrInvalidDimension) {
		t.Errorf("New(5, 0): expected ErrInvalidDimension, got %v", err)
	}
	if _, err := New(-3, -3); !errors.Is(err, ErrInvalidDimension) {
		t.Errorf("New(-3, -3): expected ErrInvalidDimension, got %v", err)
	}
}

func TestYBeforeGenerator(t *testing.T) {
	s, err := New(5, 5)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if s.Populated() {
		t.Fatal("Populated() = true before any generator")
	}
	if _, err := s.Y(); !errors.Is(err, ErrUnsetOutput) {
		t.Fatalf("expected ErrUnsetOutput, got %v", err)
	}
}

func TestSetCustomOutput(t *testing.T) {
	s, err := New(5, 5)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := s.SetCustomOutput(func(x float64) float64 { return 2 * x }); err != nil {
		t.Fatalf("SetCustomOutput() error = %v", err)
	}

	y, err := s.Y()
	if err != nil {
		t.Fatalf("Y() error = %v", err)
	}
	if len(y) != s.SampleCount() {
		t.Fatalf("len(y) = %d, want %d", len(y), s.SampleCount())
	}
	for i, x := range s.X() {
		if math.Abs(y[i]-2*x) > 1e-12 {
			t.Errorf("y[%d] = %v, want %v", i, y[i], 2*x)
		}
	}
}

func TestSetCustomOutputNilFunc(t *testing.T) {
	s, err := New(5, 5)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := s.SetCustomOutput(nil); err == nil {
		t.Fatal("expected error for nil generator func")
	}
}

func TestSetRandomOutputDeterministic(t *testing.T) {
	s1, err := New(16, 16, WithSeed(42))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	s2, err := New(16, 16, WithSeed(42))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if err := s1.SetRandomOutput(10); err != nil {
		t.Fatalf("SetRandomOutput() error = %v", err)
	}
	if err := s2.SetRandomOutput(10); err != nil {
		t.Fatalf("SetRandomOutput() error = %v", err)
	}

	y1, _ := s1.Y()
	y2, _ := s2.Y()
	for i := range y1 {
		if y1[i] != y2[i] {
			t.Fatalf("mismatch at %d: %v != %v", i, y1[i], y2[i])
		}
	}
}

func TestSetRandomOutputBounds(t *testing.T) {
	s, err := New(64, 64, WithSeed(7))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := s.SetRandomOutput(10); err != nil {
		t.Fatalf("SetRandomOutput() error = %v", err)
	}

	y, _ := s.Y()
	for i, v := range y {
		if v != math.Trunc(v) {
			t.Errorf("y[%d] = %v, want an integer value", i, v)
		}
		if v < 0 || v >= 10 {
			t.Errorf("y[%d] = %v, want value in [0, 10)", i, v)
		}
	}
}

func TestSetRandomOutputInvalidMax(t *testing.T) {
	s, err := New(5, 5)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := s.SetRandomOutput(0); err == nil {
		t.Fatal("expected error for max value 0")
	}
}

func TestSetZeroOutput(t *testing.T) {
	s, err := New(5, 8)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	s.SetZeroOutput()

	y, err := s.Y()
	if err != nil {
		t.Fatalf("Y() error = %v", err)
	}
	if len(y) != 8 {
		t.Fatalf("len(y) = %d, want 8", len(y))
	}
	for i, v := range y {
		if v != 0 {
			t.Errorf("y[%d] = %v, want 0", i, v)
		}
	}
}

func TestNormalize(t *testing.T) {
	out, err := Normalize([]float64{-0.5, 1.0, -0.25}, 0.5)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if out[1] != 0.5 {
		t.Fatalf("peak = %v, want 0.5", out[1])
	}
}

func TestNormalizeZeroInput(t *testing.T) {
	out, err := Normalize([]float64{0, 0, 0}, 1)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	for i, v := range out {
		if v != 0 {
			t.Errorf("out[%d] = %v, want 0", i, v)
		}
	}
}
