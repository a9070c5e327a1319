package core

import "testing"

func TestClamp(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		min      float64
		max      float64
		expected float64
	}{
		{"inside", 0.5, 0, 1, 0.5},
		{"below", -2, 0, 1, 0},
		{"above", 3, 0, 1, 1},
		{"swapped bounds", 0.5, 1, 0, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp(tt.value, tt.min, tt.max); got != tt.expected {
				t.Fatalf("Clamp(%v, %v, %v) = %v, want %v",
					tt.value, tt.min, tt.max, got, tt.expected)
			}
		})
	}
}

func TestNearlyEqual(t *testing.T) {
	if !NearlyEqual(1.0, 1.0+1e-13, 1e-12) {
		t.Error("expected nearly equal within eps")
	}
	if NearlyEqual(1.0, 1.1, 1e-12) {
		t.Error("expected not nearly equal")
	}
	if !NearlyEqual(0, 0, 0) {
		t.Error("expected zero equal to zero with default eps")
	}
}
