package format

import (
	"math"
	"testing"
)

func TestNumber(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		in       float64
		expected string
	}{
		{"zero", 0, "0"},
		{"negative zero normalized", math.Copysign(0, -1), "0"},
		{"integer", 8, "8"},
		{"negative integer", -42, "-42"},
		{"near-integer snaps", 2.0000000001, "2"},
		{"negative near-integer snaps", -2.9999999999, "-3"},
		{"half", 0.5, "0.5"},
		{"third truncated deterministically", 1.0 / 3.0, "0.3333333333"},
		{"sqrt2", math.Sqrt2, "1.414213562"},
		{"NaN", math.NaN(), "NaN"},
		{"positive infinity", math.Inf(1), "Infinity"},
		{"negative infinity", math.Inf(-1), "-Infinity"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Number(tt.in); got != tt.expected {
				t.Errorf("Number(%v) = %q, want %q", tt.in, got, tt.expected)
			}
		})
	}
}

func TestNumberDeterministic(t *testing.T) {
	t.Parallel()
	values := []float64{0.1 + 0.2, math.Pi, 1e-7, 123456.789}
	for _, v := range values {
		first := Number(v)
		for i := 0; i < 10; i++ {
			if got := Number(v); got != first {
				t.Fatalf("Number(%v) not deterministic: %q vs %q", v, first, got)
			}
		}
	}
}

func TestSignedNumber(t *testing.T) {
	t.Parallel()
	if got := SignedNumber(3); got != " + 3" {
		t.Errorf("SignedNumber(3) = %q", got)
	}
	if got := SignedNumber(-4); got != " - 4" {
		t.Errorf("SignedNumber(-4) = %q", got)
	}
	if got := SignedNumber(0); got != " + 0" {
		t.Errorf("SignedNumber(0) = %q", got)
	}
}

func TestComplex(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		re, im   float64
		expected string
	}{
		{"pure real", 3, 0, "3"},
		{"pure imaginary unit", 0, 1, "i"},
		{"pure negative imaginary unit", 0, -1, "-i"},
		{"pure imaginary", 0, 2.5, "2.5i"},
		{"mixed positive", 1, 2, "1 + 2i"},
		{"mixed negative", -0.5, -3, "-0.5 - 3i"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Complex(tt.re, tt.im); got != tt.expected {
				t.Errorf("Complex(%v, %v) = %q, want %q", tt.re, tt.im, got, tt.expected)
			}
		})
	}
}
