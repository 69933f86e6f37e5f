package debug

import (
	"strings"
	"testing"
	"time"
)

func TestLoggerLevels(t *testing.T) {
	c := NewCapture()
	c.SetLevel(LogLevelWarn)

	c.Debug("debug message")
	c.Info("info message")
	c.Warn("warn message")
	c.Error("error message")

	out := c.String()
	if strings.Contains(out, "debug message") || strings.Contains(out, "info message") {
		t.Errorf("messages below level leaked: %q", out)
	}
	if !strings.Contains(out, "warn message") || !strings.Contains(out, "error message") {
		t.Errorf("messages at/above level missing: %q", out)
	}
}

func TestLoggerPrefix(t *testing.T) {
	c := NewCapture()
	c.Logger.prefix = "nam"
	c.Info("hello")
	if !c.Contains("[nam]") {
		t.Errorf("prefix missing: %q", c.String())
	}
	if !c.Contains("[INFO]") {
		t.Errorf("level tag missing: %q", c.String())
	}
}

func TestLoggerFormatting(t *testing.T) {
	c := NewCapture()
	c.Info("loaded %d of %d", 3, 7)
	if !c.Contains("loaded 3 of 7") {
		t.Errorf("formatted message missing: %q", c.String())
	}
}

func TestDiscard(t *testing.T) {
	l := Discard()
	l.Error("nobody hears this") // must not panic
}

func TestMeter(t *testing.T) {
	var m Meter
	m.Record(2 * time.Millisecond)
	m.Record(4 * time.Millisecond)

	s := m.Stats()
	if s.Count != 2 {
		t.Errorf("Count = %d, want 2", s.Count)
	}
	if s.Min != 2*time.Millisecond || s.Max != 4*time.Millisecond {
		t.Errorf("Min/Max = %v/%v, want 2ms/4ms", s.Min, s.Max)
	}
	if s.Avg != 3*time.Millisecond {
		t.Errorf("Avg = %v, want 3ms", s.Avg)
	}

	m.Reset()
	if m.Stats().Count != 0 {
		t.Error("Reset did not clear the meter")
	}
}

func TestMeterTime(t *testing.T) {
	var m Meter
	m.Time(func() {})
	if m.Stats().Count != 1 {
		t.Error("Time did not record a sample")
	}
}
