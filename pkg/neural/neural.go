// Package neural loads and runs neural amp capture models.
//
// The model is an opaque mono block processor from the pipeline's point of
// view. This package understands the NAM JSON container and runs the Linear
// architecture natively; network architectures (WaveNet, LSTM) and RTNeural
// .aidax files are reported as unsupported, which the caller treats as a
// non-fatal load failure.
package neural

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Model is an active amp capture. Process reads len(in) mono samples and
// writes the same number to out; any internal sub-block chunking is the
// model's business. Process must not allocate.
type Model interface {
	Process(in, out []float32)
	SampleRate() float64
	Close()
}

// Errors reported by the loader.
var (
	ErrUnsupportedArch = errors.New("neural: unsupported architecture")
	ErrBadModelFile    = errors.New("neural: malformed model file")
)

// DefaultSampleRate is assumed when a model file does not declare one.
const DefaultSampleRate = 48000.0

var defaultMaxBufferSize = 128

// SetDefaultMaxBufferSize sets the largest block models constructed after
// this call must accept in one Process invocation without chunking.
func SetDefaultMaxBufferSize(n int) {
	if n > 0 {
		defaultMaxBufferSize = n
	}
}

// namFile is the NAM JSON container.
type namFile struct {
	Version      string          `json:"version"`
	Architecture string          `json:"architecture"`
	Config       json.RawMessage `json:"config"`
	Weights      []float32       `json:"weights"`
	SampleRate   float64         `json:"sample_rate"`
}

// LoadFile constructs a model from a .nam or .json capture file.
//
// Blocking file I/O and construction make this a background-thread call;
// the audio path only ever receives the finished Model.
func LoadFile(path string) (Model, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".aidax" {
		return nil, fmt.Errorf("%w: aidax (RTNeural)", ErrUnsupportedArch)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("neural: read %s: %w", path, err)
	}

	var nf namFile
	if err := json.Unmarshal(raw, &nf); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrBadModelFile, path, err)
	}

	switch nf.Architecture {
	case "Linear":
		return newLinear(&nf)
	case "":
		return nil, fmt.Errorf("%w: %s: missing architecture", ErrBadModelFile, path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedArch, nf.Architecture)
	}
}
