// Package audiofile reads cabinet impulse responses from WAV files.
//
// Container parsing is delegated to github.com/cwbudde/wav; this package
// only enforces the plugin's contract on top of it: first channel only,
// bounded length, normalized float32 samples.
package audiofile

import (
	"errors"
	"fmt"
	"os"

	"github.com/cwbudde/wav"
)

// ErrInvalidFile is returned for files the WAV decoder rejects.
var ErrInvalidFile = errors.New("audiofile: invalid wav file")

// ReadIR decodes path into a flat mono float32 sample sequence.
//
// Multi-channel files are accepted; only the first channel of each frame is
// kept. Files longer than maxSamples are truncated, not rejected. The
// source sample rate is returned for the caller to log; no resampling
// happens here.
func ReadIR(path string, maxSamples int) ([]float32, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("audiofile: open %s: %w", path, err)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, 0, fmt.Errorf("%w: %s", ErrInvalidFile, path)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, 0, fmt.Errorf("audiofile: decode %s: %w", path, err)
	}
	if buf == nil || buf.Format == nil || buf.Format.NumChannels < 1 {
		return nil, 0, fmt.Errorf("%w: %s", ErrInvalidFile, path)
	}

	numCh := buf.Format.NumChannels
	frames := len(buf.Data) / numCh
	if frames == 0 {
		return nil, 0, fmt.Errorf("audiofile: empty wav data: %s", path)
	}
	if maxSamples > 0 && frames > maxSamples {
		frames = maxSamples
	}

	samples := make([]float32, frames)
	for i := 0; i < frames; i++ {
		samples[i] = buf.Data[i*numCh]
	}

	return samples, buf.Format.SampleRate, nil
}
