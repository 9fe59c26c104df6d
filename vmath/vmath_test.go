package vmath

import (
	"math"
	"testing"
)

func TestMulDivRoundTrip(t *testing.T) {
	cases := []struct {
		a, b float64
	}{
		{1.0, 1.0},
		{2.5, 4.0},
		{-3.0, 7.5},
		{0.001, 800.0},
		{123.456, -0.789},
	}

	for _, c := range cases {
		got := ToFloat(Mul(FromFloat(c.a), FromFloat(c.b)))
		want := c.a * c.b
		if math.Abs(got-want) > 1e-6 {
			t.Errorf("Mul(%v, %v) = %v, want %v", c.a, c.b, got, want)
		}

		if c.b != 0 {
			got = ToFloat(Div(FromFloat(c.a), FromFloat(c.b)))
			want = c.a / c.b
			if math.Abs(got-want) > 1e-6 {
				t.Errorf("Div(%v, %v) = %v, want %v", c.a, c.b, got, want)
			}
		}
	}
}

func TestDivByZero(t *testing.T) {
	if Div(FromInt(10), 0) != 0 {
		t.Error("Div by zero should return 0")
	}
}

func TestSqrt(t *testing.T) {
	for _, v := range []float64{0.25, 1.0, 2.0, 100.0, 640000.0} {
		got := ToFloat(Sqrt(FromFloat(v)))
		want := math.Sqrt(v)
		if math.Abs(got-want)/want > 0.001 {
			t.Errorf("Sqrt(%v) = %v, want %v", v, got, want)
		}
	}
}

func TestSinCosLUT(t *testing.T) {
	// Quarter rotation = π/2
	if math.Abs(ToFloat(Sin(Scale/4))-1.0) > 0.01 {
		t.Errorf("Sin(quarter) = %v, want 1.0", ToFloat(Sin(Scale/4)))
	}
	if math.Abs(ToFloat(Cos(0))-1.0) > 0.01 {
		t.Errorf("Cos(0) = %v, want 1.0", ToFloat(Cos(0)))
	}
	if math.Abs(ToFloat(Cos(Scale/2))+1.0) > 0.01 {
		t.Errorf("Cos(half) = %v, want -1.0", ToFloat(Cos(Scale/2)))
	}
}

func TestAtan2Quadrants(t *testing.T) {
	cases := []struct {
		dx, dy float64
		want   float64 // Rotations
	}{
		{1, 0, 0},
		{0, 1, 0.25},
		{-1, 0, 0.5},
		{0, -1, 0.75},
		{1, 1, 0.125},
	}
	for _, c := range cases {
		got := ToFloat(Atan2(FromFloat(c.dy), FromFloat(c.dx)))
		if math.Abs(got-c.want) > 0.005 {
			t.Errorf("Atan2(%v, %v) = %v rotations, want %v", c.dy, c.dx, got, c.want)
		}
	}
}

func TestAngleDiffShortestPath(t *testing.T) {
	// 350° to 10° should be +20°, not -340°
	from := DegreesToAngle(350)
	to := DegreesToAngle(10)
	diff := AngleDiff(from, to)
	want := DegreesToAngle(20)
	if Abs(diff-want) > DegreesToAngle(1) {
		t.Errorf("AngleDiff(350°, 10°) = %v°, want 20°", ToFloat(diff)*360)
	}
}

func TestDistanceApproxError(t *testing.T) {
	cases := [][2]float64{{3, 4}, {100, 0}, {50, 50}, {1, 7}}
	for _, c := range cases {
		got := ToFloat(DistanceApprox(FromFloat(c[0]), FromFloat(c[1])))
		want := math.Hypot(c[0], c[1])
		if math.Abs(got-want)/want > 0.05 {
			t.Errorf("DistanceApprox(%v, %v) = %v, want %v ±5%%", c[0], c[1], got, want)
		}
	}
}

func TestNormalize2DZeroSafe(t *testing.T) {
	nx, ny := Normalize2D(0, 0)
	if nx != 0 || ny != 0 {
		t.Error("Normalize2D of zero vector should be zero")
	}
}

func TestPointSegmentDistanceDegenerate(t *testing.T) {
	// Zero-length segment behaves as point distance
	d := PointSegmentDistance(FromInt(3), FromInt(4), 0, 0, 0, 0)
	want := FromInt(5)
	if Abs(d-want) > FromFloat(0.25) {
		t.Errorf("degenerate segment distance = %v, want 5", ToFloat(d))
	}
}

func TestSegmentCircleHit(t *testing.T) {
	// Horizontal segment passing above a circle center
	if !SegmentCircleHit(FromInt(-10), FromInt(2), FromInt(10), FromInt(2), 0, 0, FromInt(3)) {
		t.Error("segment within radius should hit")
	}
	if SegmentCircleHit(FromInt(-10), FromInt(5), FromInt(10), FromInt(5), 0, 0, FromInt(3)) {
		t.Error("segment outside radius should miss")
	}
}

func TestPointInArc(t *testing.T) {
	facing := int64(0) // +X
	reach := FromInt(300)
	halfWidth := DegreesToAngle(45)

	// Dead ahead at 150 units
	if !PointInArc(FromInt(150), 0, 0, 0, facing, reach, halfWidth) {
		t.Error("target at bearing 0° within reach should be in arc")
	}
	// Bearing 90° is outside a 45° half-width
	if PointInArc(0, FromInt(150), 0, 0, facing, reach, halfWidth) {
		t.Error("target at bearing 90° should be outside arc")
	}
	// Beyond reach
	if PointInArc(FromInt(400), 0, 0, 0, facing, reach, halfWidth) {
		t.Error("target beyond reach should be outside arc")
	}
}

func TestHalvingDecay(t *testing.T) {
	if Halving(0, 60) != Scale {
		t.Error("Halving at x=0 should be 1.0")
	}
	got := ToFloat(Halving(60, 60))
	if math.Abs(got-0.5) > 0.02 {
		t.Errorf("Halving at one half-life = %v, want 0.5", got)
	}
	got = ToFloat(Halving(120, 60))
	if math.Abs(got-0.25) > 0.02 {
		t.Errorf("Halving at two half-lives = %v, want 0.25", got)
	}
}

func TestFastRandDeterminism(t *testing.T) {
	a := NewFastRand(42)
	b := NewFastRand(42)
	for i := 0; i < 100; i++ {
		if a.Next() != b.Next() {
			t.Fatal("same seed must produce same sequence")
		}
	}
}
