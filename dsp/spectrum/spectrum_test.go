package spectrum

import (
	"math"
	"testing"
)

func TestMagnitude(t *testing.T) {
	in := []complex128{complex(3, 4), complex(0, 0), complex(-1, 0), complex(0, 2)}
	want := []float64{5, 0, 1, 2}

	got := Magnitude(in)
	if len(got) != len(want) {
		t.Fatalf("length = %d, want %d", len(got), len(want))
	}
	for i := range got {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Fatalf("bin %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestMagnitudeEmpty(t *testing.T) {
	if got := Magnitude(nil); got != nil {
		t.Fatalf("Magnitude(nil) = %v, want nil", got)
	}
}

func TestMagnitudeFromParts(t *testing.T) {
	re := []float64{3, 0, 1}
	im := []float64{4, 1, 0}
	dst := make([]float64, 3)

	MagnitudeFromParts(dst, re, im)
	want := []float64{5, 1, 1}
	for i := range dst {
		if math.Abs(dst[i]-want[i]) > 1e-12 {
			t.Fatalf("bin %d: got %v, want %v", i, dst[i], want[i])
		}
	}
}

func TestPowerIsSquaredMagnitude(t *testing.T) {
	in := []complex128{complex(3, 4), complex(1, 1), complex(0, -2)}

	mag := Magnitude(in)
	pow := Power(in)
	for i := range in {
		if math.Abs(pow[i]-mag[i]*mag[i]) > 1e-9 {
			t.Fatalf("bin %d: power %v, magnitude^2 %v", i, pow[i], mag[i]*mag[i])
		}
	}
}
