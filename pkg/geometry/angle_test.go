package geometry

import (
	"math"
	"testing"
)

func TestNormalizeDegrees(t *testing.T) {
	cases := map[float64]float64{
		0:    0,
		360:  0,
		-90:  270,
		725:  5,
		-720: 0,
		180:  180,
	}

	for in, expected := range cases {
		got := NormalizeDegrees(in)
		if math.Abs(got-expected) > 1e-10 {
			t.Errorf("NormalizeDegrees(%v) failed: expected %v, got %v", in, expected, got)
		}
	}

	if got := NormalizeDegrees(-1e-15); got < 0 || got >= 360 {
		t.Errorf("NormalizeDegrees(-1e-15) out of range: %v", got)
	}
}

func TestMinorArcWrapsAroundZero(t *testing.T) {
	start, end, sweep := MinorArc(10, 350)

	if math.Abs(sweep-20) > 1e-10 {
		t.Errorf("MinorArc sweep failed: expected 20, got %v", sweep)
	}
	if math.Abs(start-350) > 1e-10 {
		t.Errorf("MinorArc start failed: expected 350, got %v", start)
	}
	if math.Abs(end-370) > 1e-10 {
		t.Errorf("MinorArc end failed: expected 370, got %v", end)
	}
}

func TestMinorArcKeepsForwardSweep(t *testing.T) {
	start, end, sweep := MinorArc(30, 120)

	if start != 30 || end != 120 || sweep != 90 {
		t.Errorf("MinorArc failed: expected (30, 120, 90), got (%v, %v, %v)", start, end, sweep)
	}
}

func TestMinorArcSwapsReflexSweep(t *testing.T) {
	start, end, sweep := MinorArc(120, 30)

	if start != 30 || end != 120 || sweep != 90 {
		t.Errorf("MinorArc failed: expected (30, 120, 90), got (%v, %v, %v)", start, end, sweep)
	}
}

func TestMinorArcNegativeBearings(t *testing.T) {
	_, _, sweep := MinorArc(-45, 45)
	if math.Abs(sweep-90) > 1e-10 {
		t.Errorf("MinorArc sweep failed: expected 90, got %v", sweep)
	}
}

func TestMinorArcNeverExceedsHalfTurn(t *testing.T) {
	for a := -360.0; a <= 360; a += 37 {
		for c := -360.0; c <= 360; c += 23 {
			_, _, sweep := MinorArc(a, c)
			if sweep < 0 || sweep > 180 {
				t.Errorf("MinorArc(%v, %v) sweep out of range: %v", a, c, sweep)
			}
		}
	}
}
