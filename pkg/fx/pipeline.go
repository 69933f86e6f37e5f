package fx

import (
	"github.com/tonefold/ampcab/pkg/dsp/gain"
)

// ProcessBlock runs one block through the pipeline, in place:
// interleaved stereo int16 in, dual-mono stereo int16 out.
//
// This is the audio-context entry point. It performs no allocation and
// takes no locks; frame counts beyond BlockCapacity (or beyond the buffer)
// are clamped. With no model active the block passes through untouched;
// that is the defined behavior while the first load is still in flight.
func (inst *Instance) ProcessBlock(buf []int16, frames int) {
	inst.activatePending()

	if inst.model == nil {
		return
	}

	n := frames
	if n > BlockCapacity {
		n = BlockCapacity
	}
	if n*2 > len(buf) {
		n = len(buf) / 2
	}
	if n <= 0 {
		return
	}

	// Deinterleave and downmix with input gain applied. The gain read here
	// is whatever the controller last wrote; changes land at block
	// boundaries, never mid-block.
	ig := gain.KnobToGain(float32(inst.inputLevel.Value()))
	for i := 0; i < n; i++ {
		l := float32(buf[i*2]) / 32768.0
		r := float32(buf[i*2+1]) / 32768.0
		inst.monoIn[i] = (l + r) * 0.5 * ig
	}

	inst.model.Process(inst.monoIn[:n], inst.monoOut[:n])

	// Apply no-ops when bypassed or no IR is loaded.
	inst.cab.Apply(inst.monoOut[:n])

	og := gain.KnobToGain(float32(inst.outputLevel.Value()))
	for i := 0; i < n; i++ {
		s := gain.HardClip(inst.monoOut[i]*og, 1.0)
		v := int16(s * 32767.0)
		buf[i*2] = v
		buf[i*2+1] = v
	}
}

// activatePending swaps in a freshly loaded model, if one is parked in the
// pending slot. Runs only at the top of a block, so activation is always
// block-aligned; the replaced model is released here, outside the sample
// loop.
func (inst *Instance) activatePending() {
	res := inst.pending.Take()
	if res == nil {
		return
	}
	if res.model == nil {
		// Failed load; the previous model, if any, stays active.
		return
	}

	old := inst.model
	inst.model = res.model
	if old != nil {
		old.Close()
	}
}
