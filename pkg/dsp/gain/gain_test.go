package gain

import (
	"math"
	"testing"
)

func TestKnobToGain(t *testing.T) {
	tests := []struct {
		name    string
		knob    float32
		wantDb  float64
		epsilon float64
	}{
		{"Full attenuation", 0.0, -24.0, 0.001},
		{"Midpoint", 0.5, -6.0, 0.001},
		{"Full boost", 1.0, 12.0, 0.001},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := math.Pow(10.0, tt.wantDb/20.0)
			got := float64(KnobToGain(tt.knob))
			if math.Abs(got-want) > tt.epsilon {
				t.Errorf("KnobToGain(%f) = %f, want %f (%.1f dB)", tt.knob, got, want, tt.wantDb)
			}
		})
	}
}

func TestKnobToGainClamps(t *testing.T) {
	if got, want := KnobToGain(-0.5), KnobToGain(0); got != want {
		t.Errorf("KnobToGain(-0.5) = %f, want clamp to %f", got, want)
	}
	if got, want := KnobToGain(1.5), KnobToGain(1); got != want {
		t.Errorf("KnobToGain(1.5) = %f, want clamp to %f", got, want)
	}
}

func TestDbConversion(t *testing.T) {
	tests := []struct {
		name    string
		linear  float64
		db      float64
		epsilon float64
	}{
		{"Unity gain", 1.0, 0.0, 0.001},
		{"Half amplitude", 0.5, -6.02, 0.01},
		{"Double amplitude", 2.0, 6.02, 0.01},
		{"Zero amplitude", 0.0, MinDB, 0.001},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotDb := LinearToDb(tt.linear)
			if math.Abs(gotDb-tt.db) > tt.epsilon {
				t.Errorf("LinearToDb(%f) = %f, want %f", tt.linear, gotDb, tt.db)
			}

			if tt.db != MinDB {
				gotLinear := DbToLinear(tt.db)
				if math.Abs(gotLinear-tt.linear) > tt.epsilon {
					t.Errorf("DbToLinear(%f) = %f, want %f", tt.db, gotLinear, tt.linear)
				}
			}
		})
	}
}

func TestHardClip(t *testing.T) {
	tests := []struct {
		input float32
		want  float32
	}{
		{0.5, 0.5},
		{1.5, 1.0},
		{-1.5, -1.0},
		{-0.25, -0.25},
	}

	for _, tt := range tests {
		if got := HardClip(tt.input, 1.0); got != tt.want {
			t.Errorf("HardClip(%f, 1.0) = %f, want %f", tt.input, got, tt.want)
		}
	}
}

func TestHardClipBuffer(t *testing.T) {
	buf := []float32{0.5, 2.0, -3.0, 0.0}
	HardClipBuffer(buf, 1.0)
	want := []float32{0.5, 1.0, -1.0, 0.0}
	for i := range buf {
		if buf[i] != want[i] {
			t.Errorf("buf[%d] = %f, want %f", i, buf[i], want[i])
		}
	}
}

func TestApplyBuffer(t *testing.T) {
	buf := []float32{1.0, -0.5, 0.25}
	ApplyBuffer(buf, 2.0)
	want := []float32{2.0, -1.0, 0.5}
	for i := range buf {
		if buf[i] != want[i] {
			t.Errorf("buf[%d] = %f, want %f", i, buf[i], want[i])
		}
	}
}
