package audiofile

import (
	"bytes"
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"testing"
)

// writeFloatWav writes a minimal IEEE-float WAVE file with the given
// interleaved channel data.
func writeFloatWav(t *testing.T, path string, channels int, frames [][]float32) {
	t.Helper()

	var data bytes.Buffer
	for _, frame := range frames {
		for ch := 0; ch < channels; ch++ {
			binary.Write(&data, binary.LittleEndian, math.Float32bits(frame[ch]))
		}
	}

	const sampleRate = 44100
	blockAlign := channels * 4

	var buf bytes.Buffer
	buf.WriteString("RIFF")
	binary.Write(&buf, binary.LittleEndian, uint32(36+data.Len()))
	buf.WriteString("WAVE")
	buf.WriteString("fmt ")
	binary.Write(&buf, binary.LittleEndian, uint32(16))
	binary.Write(&buf, binary.LittleEndian, uint16(3)) // IEEE float
	binary.Write(&buf, binary.LittleEndian, uint16(channels))
	binary.Write(&buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(&buf, binary.LittleEndian, uint32(sampleRate*blockAlign))
	binary.Write(&buf, binary.LittleEndian, uint16(blockAlign))
	binary.Write(&buf, binary.LittleEndian, uint16(32))
	buf.WriteString("data")
	binary.Write(&buf, binary.LittleEndian, uint32(data.Len()))
	buf.Write(data.Bytes())

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestReadIRMono(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ir.wav")
	writeFloatWav(t, path, 1, [][]float32{{1.0}, {0.5}, {-0.25}, {0.0}})

	samples, rate, err := ReadIR(path, 0)
	if err != nil {
		t.Fatalf("ReadIR: %v", err)
	}
	if rate != 44100 {
		t.Errorf("sample rate = %d, want 44100", rate)
	}
	want := []float32{1.0, 0.5, -0.25, 0.0}
	if len(samples) != len(want) {
		t.Fatalf("got %d samples, want %d", len(samples), len(want))
	}
	for i := range want {
		if math.Abs(float64(samples[i]-want[i])) > 1e-4 {
			t.Errorf("samples[%d] = %f, want %f", i, samples[i], want[i])
		}
	}
}

func TestReadIRFirstChannelOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stereo.wav")
	writeFloatWav(t, path, 2, [][]float32{{0.1, 0.9}, {0.2, 0.8}, {0.3, 0.7}})

	samples, _, err := ReadIR(path, 0)
	if err != nil {
		t.Fatalf("ReadIR: %v", err)
	}
	want := []float32{0.1, 0.2, 0.3}
	if len(samples) != len(want) {
		t.Fatalf("got %d samples, want %d", len(samples), len(want))
	}
	for i := range want {
		if math.Abs(float64(samples[i]-want[i])) > 1e-4 {
			t.Errorf("samples[%d] = %f, want %f (first channel)", i, samples[i], want[i])
		}
	}
}

func TestReadIRTruncates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "long.wav")
	frames := make([][]float32, 100)
	for i := range frames {
		frames[i] = []float32{float32(i) / 100}
	}
	writeFloatWav(t, path, 1, frames)

	samples, _, err := ReadIR(path, 10)
	if err != nil {
		t.Fatalf("ReadIR: %v", err)
	}
	if len(samples) != 10 {
		t.Errorf("got %d samples, want truncation to 10", len(samples))
	}
}

func TestReadIRRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.wav")
	if err := os.WriteFile(path, []byte("this is not a wav file"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, _, err := ReadIR(path, 0); err == nil {
		t.Error("ReadIR of garbage returned nil error")
	}
}

func TestReadIRMissingFile(t *testing.T) {
	if _, _, err := ReadIR(filepath.Join(t.TempDir(), "nope.wav"), 0); err == nil {
		t.Error("ReadIR of missing file returned nil error")
	}
}
