// Package convolve implements direct time-domain FIR convolution against a
// circular history buffer, sized for short cabinet impulse responses.
//
// The IRs this engine is built for are a few thousand samples at most, which
// keeps the direct form cheaper and simpler than setting up a partitioned
// FFT convolver at 128-frame blocks.
package convolve

import (
	"errors"
	"sync/atomic"
)

// MaxIRLength bounds the impulse response length. Longer IRs are truncated,
// never rejected.
const MaxIRLength = 8192

// ErrEmptyIR is returned when LoadIR is given no samples.
var ErrEmptyIR = errors.New("convolve: empty impulse response")

// irState pairs an impulse response with its history buffer. The two are
// only ever replaced together; the cursor is touched by the audio context
// alone.
type irState struct {
	ir      []float32
	history []float32
	cursor  int
}

// Engine convolves a mono signal with a hot-swappable impulse response.
//
// LoadIR and SetBypass may be called from a controller context while Apply
// runs on the audio context: the IR/history pair is published through an
// atomic pointer, so Apply always sees either the complete old pair or the
// complete new pair. Apply itself never locks or allocates.
type Engine struct {
	state     atomic.Pointer[irState]
	bypassed  atomic.Bool
	blockSize int
}

// New creates an engine with no impulse response loaded. Apply is a no-op
// until LoadIR succeeds.
func New(blockSize int) *Engine {
	return &Engine{blockSize: blockSize}
}

// LoadIR installs a new impulse response. The samples are copied; a fresh
// zeroed history buffer of len(ir)+blockSize is allocated and the write
// cursor starts at 0. On error the previous IR, if any, stays active.
func (e *Engine) LoadIR(samples []float32) error {
	if len(samples) == 0 {
		return ErrEmptyIR
	}
	if len(samples) > MaxIRLength {
		samples = samples[:MaxIRLength]
	}

	ir := make([]float32, len(samples))
	copy(ir, samples)

	e.state.Store(&irState{
		ir:      ir,
		history: make([]float32, len(ir)+e.blockSize),
	})
	return nil
}

// SetBypass toggles the bypass gate. Bypass leaves the loaded IR in place.
func (e *Engine) SetBypass(bypass bool) {
	e.bypassed.Store(bypass)
}

// Bypassed reports the bypass gate state.
func (e *Engine) Bypassed() bool {
	return e.bypassed.Load()
}

// IRLength returns the active impulse response length, or 0 when none is
// loaded.
func (e *Engine) IRLength() int {
	st := e.state.Load()
	if st == nil {
		return 0
	}
	return len(st.ir)
}

// Apply convolves buf in place with the active impulse response. With no IR
// loaded, or while bypassed, the buffer is left untouched.
//
// For each input sample: write it into the history ring at the cursor, then
// accumulate ir[j]*history[cursor-j] walking the ring backwards with
// wraparound, overwrite the sample with the sum, and advance the cursor.
func (e *Engine) Apply(buf []float32) {
	if e.bypassed.Load() {
		return
	}
	st := e.state.Load()
	if st == nil {
		return
	}

	ir := st.ir
	history := st.history
	n := len(history)
	cursor := st.cursor

	for i := range buf {
		history[cursor] = buf[i]

		var sum float32
		h := cursor
		for j := 0; j < len(ir); j++ {
			sum += ir[j] * history[h]
			h--
			if h < 0 {
				h = n - 1
			}
		}
		buf[i] = sum

		cursor++
		if cursor >= n {
			cursor = 0
		}
	}

	st.cursor = cursor
}
