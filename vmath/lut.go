package vmath

import (
	"math"
)

func init() {
	// Sin/Cos LUT calculation
	for i := 0; i < LUTSize; i++ {
		rad := 2.0 * math.Pi * float64(i) / LUTSize
		SinLUT[i] = int64(math.Sin(rad) * Scale)
		CosLUT[i] = int64(math.Cos(rad) * Scale)
	}

	// Atan2 LUT: ratio [0,1] -> angle [0, π/4] in Q32.32 rotation units
	for i := 0; i < LUTSize; i++ {
		ratio := float64(i) / float64(LUTMask)
		angle := math.Atan(ratio)
		atan2LUT[i] = int64(angle / (2 * math.Pi) * Scale)
	}

	// Decay LUT calculation
	for i := 0; i < DecayLUTSize; i++ {
		x := float64(i) * DecayLUTMaxInput / float64(DecayLUTSize-1)
		HalvingLUT[i] = int64(math.Exp2(-x/DecayLUTHalfLife) * Scale)
	}
}

// SinLUT and CosLUT scaled by Q32.32
var (
	SinLUT [LUTSize]int64
	CosLUT [LUTSize]int64

	// atan2LUT maps ratio [0,1] to angle [0, Scale/8] (one octant)
	atan2LUT [LUTSize]int64
)

// Halving decay LUT for spawn scheduling ramps
// Usage: interval multiplier over elapsed time, border pressure falloff

// DecayLUTSize defines resolution of the halving lookup table
const DecayLUTSize = 256

// DecayLUTMaxInput is the maximum input value mapped to the LUT
// Beyond this, output saturates at the final entry
const DecayLUTMaxInput = 1024

// DecayLUTHalfLife is the input distance over which output halves
const DecayLUTHalfLife = 64.0

// HalvingLUT contains pre-computed 2^(-x/halfLife) values scaled to Q32.32
var HalvingLUT [DecayLUTSize]int64

// Halving returns 2^(-x/halfLife) in Q32.32 using LUT interpolation
// x is an integer input (seconds, units); halfLife the halving distance
// Result ranges from Scale (at x=0) toward 0, O(1) with linear interpolation
func Halving(x int, halfLife int) int64 {
	if x <= 0 || halfLife <= 0 {
		return Scale
	}

	// Rescale input so the LUT's fixed half-life applies
	scaled := x * int(DecayLUTHalfLife) / halfLife
	if scaled >= DecayLUTMaxInput {
		return HalvingLUT[DecayLUTSize-1]
	}

	scaledIdx := scaled * (DecayLUTSize - 1)
	idx := scaledIdx / DecayLUTMaxInput
	frac := scaledIdx % DecayLUTMaxInput

	if idx >= DecayLUTSize-1 {
		return HalvingLUT[DecayLUTSize-1]
	}

	v0 := HalvingLUT[idx]
	v1 := HalvingLUT[idx+1]
	return v0 + ((v1-v0)*int64(frac))/DecayLUTMaxInput
}

// Atan2 returns angle in [0, Scale) for (dy, dx) using LUT
// Result is Q32.32 where Scale = full rotation (2π)
// Zero vector returns 0
func Atan2(dy, dx int64) int64 {
	if dx == 0 && dy == 0 {
		return 0
	}

	adx, ady := dx, dy
	if adx < 0 {
		adx = -adx
	}
	if ady < 0 {
		ady = -ady
	}

	var baseAngle int64
	if adx >= ady {
		// Octants 0,3,4,7: ratio = |dy/dx| in [0,1]
		idx := (ady * LUTMask) / adx
		if idx > LUTMask {
			idx = LUTMask
		}
		baseAngle = atan2LUT[idx]
	} else {
		// Octants 1,2,5,6: ratio = |dx/dy| in [0,1], angle = π/4 + (π/4 - atan(ratio))
		idx := (adx * LUTMask) / ady
		if idx > LUTMask {
			idx = LUTMask
		}
		baseAngle = Scale/4 - atan2LUT[idx]
	}

	// Map base angle into the correct quadrant
	switch {
	case dx >= 0 && dy >= 0: // Q1
		return baseAngle
	case dx < 0 && dy >= 0: // Q2
		return Scale/2 - baseAngle
	case dx < 0 && dy < 0: // Q3
		return Scale/2 + baseAngle
	default: // Q4
		return Scale - baseAngle
	}
}
