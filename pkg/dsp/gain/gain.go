// Package gain provides amplitude staging for the amp/cab signal path.
package gain

import (
	"math"
)

// Knob-to-dB mapping for the input and output level controls.
// A knob at 0 attenuates by 24 dB, the midpoint sits at -6 dB, and
// full rotation boosts by 12 dB.
const (
	KnobMinDB   = -24.0
	KnobRangeDB = 36.0
)

// MinDB is the floor below which a dB value is treated as silence.
const MinDB = -200.0

// LinearToDb converts a linear amplitude value to decibels.
// Returns MinDB for values <= 0.
func LinearToDb(linear float64) float64 {
	if linear <= 0 {
		return MinDB
	}
	return 20.0 * math.Log10(linear)
}

// DbToLinear converts a decibel value to linear amplitude.
// Values <= MinDB return 0.
func DbToLinear(db float64) float64 {
	if db <= MinDB {
		return 0
	}
	return math.Pow(10.0, db/20.0)
}

// DbToLinear32 is the float32 version of DbToLinear.
func DbToLinear32(db float32) float32 {
	if db <= MinDB {
		return 0
	}
	return float32(math.Pow(10.0, float64(db)/20.0))
}

// LinearToDb32 is the float32 version of LinearToDb.
func LinearToDb32(linear float32) float32 {
	if linear <= 0 {
		return MinDB
	}
	return 20.0 * float32(math.Log10(float64(linear)))
}

// KnobToGain maps a normalized [0,1] knob position onto the level
// control's dB range and returns the linear gain. Positions outside
// [0,1] are clamped.
func KnobToGain(knob float32) float32 {
	if knob < 0 {
		knob = 0
	} else if knob > 1 {
		knob = 1
	}
	db := KnobMinDB + float64(knob)*KnobRangeDB
	return float32(math.Pow(10.0, db/20.0))
}

// Apply applies a gain factor to a sample.
func Apply(sample, gain float32) float32 {
	return sample * gain
}

// ApplyBuffer applies gain to an entire buffer in-place.
func ApplyBuffer(buffer []float32, gain float32) {
	for i := range buffer {
		buffer[i] *= gain
	}
}

// HardClip applies hard clipping to limit signal amplitude.
func HardClip(input, threshold float32) float32 {
	if input > threshold {
		return threshold
	}
	if input < -threshold {
		return -threshold
	}
	return input
}

// HardClipBuffer applies hard clipping to an entire buffer.
func HardClipBuffer(buffer []float32, threshold float32) {
	for i := range buffer {
		buffer[i] = HardClip(buffer[i], threshold)
	}
}
