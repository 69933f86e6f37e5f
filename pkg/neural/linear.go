package neural

import (
	"encoding/json"
	"fmt"
)

type linearConfig struct {
	ReceptiveField int  `json:"receptive_field"`
	Bias           bool `json:"bias"`
}

// linear runs the NAM Linear architecture: a plain FIR over the last
// receptive_field input samples, plus an optional bias term. The weights
// array holds the FIR taps newest-first, with the bias as the final element
// when present.
type linear struct {
	weights    []float32
	bias       float32
	history    []float32
	cursor     int
	maxBuffer  int
	sampleRate float64
}

func newLinear(nf *namFile) (Model, error) {
	var cfg linearConfig
	if err := json.Unmarshal(nf.Config, &cfg); err != nil {
		return nil, fmt.Errorf("%w: linear config: %v", ErrBadModelFile, err)
	}
	if cfg.ReceptiveField <= 0 {
		return nil, fmt.Errorf("%w: linear receptive_field %d", ErrBadModelFile, cfg.ReceptiveField)
	}

	want := cfg.ReceptiveField
	if cfg.Bias {
		want++
	}
	if len(nf.Weights) != want {
		return nil, fmt.Errorf("%w: linear expects %d weights, file has %d",
			ErrBadModelFile, want, len(nf.Weights))
	}

	m := &linear{
		weights:    nf.Weights[:cfg.ReceptiveField],
		maxBuffer:  defaultMaxBufferSize,
		history:    make([]float32, cfg.ReceptiveField+defaultMaxBufferSize),
		sampleRate: nf.SampleRate,
	}
	if cfg.Bias {
		m.bias = nf.Weights[cfg.ReceptiveField]
	}
	if m.sampleRate <= 0 {
		m.sampleRate = DefaultSampleRate
	}
	return m, nil
}

func (m *linear) Process(in, out []float32) {
	n := len(in)
	if len(out) < n {
		n = len(out)
	}
	for n > 0 {
		chunk := n
		if chunk > m.maxBuffer {
			chunk = m.maxBuffer
		}
		m.processChunk(in[:chunk], out[:chunk])
		in = in[chunk:]
		out = out[chunk:]
		n -= chunk
	}
}

func (m *linear) processChunk(in, out []float32) {
	ring := len(m.history)
	cursor := m.cursor

	for i := range in {
		m.history[cursor] = in[i]

		sum := m.bias
		h := cursor
		for j := 0; j < len(m.weights); j++ {
			sum += m.weights[j] * m.history[h]
			h--
			if h < 0 {
				h = ring - 1
			}
		}
		out[i] = sum

		cursor++
		if cursor >= ring {
			cursor = 0
		}
	}

	m.cursor = cursor
}

func (m *linear) SampleRate() float64 {
	return m.sampleRate
}

func (m *linear) Close() {}
