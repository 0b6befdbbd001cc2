package pixedit

import (
	"testing"
	"time"
)

func TestDefaultEngineOptions(t *testing.T) {
	o := defaultEngineOptions()
	if o.background != White {
		t.Errorf("default background = %+v, want white", o.background)
	}
	if o.frameInterval != time.Second/60 {
		t.Errorf("default frame interval = %v, want %v", o.frameInterval, time.Second/60)
	}
	if o.schedule != nil {
		t.Error("default schedule func should be nil (flush-driven)")
	}
}

func TestEngineFrameInterval(t *testing.T) {
	e := NewEngine(4, 4, WithFrameInterval(20*time.Millisecond))
	if got := e.FrameInterval(); got != 20*time.Millisecond {
		t.Errorf("FrameInterval() = %v, want 20ms", got)
	}
}

func TestWithBackground(t *testing.T) {
	e := NewEngine(4, 4, WithBackground(Red))
	if got := e.Layers().Active().Surface().GetPixel(0, 0); got != Red {
		t.Errorf("background pixel = %+v, want red", got)
	}
}

func TestWithFrameIntervalRejectsNonPositive(t *testing.T) {
	o := defaultEngineOptions()
	WithFrameInterval(0)(&o)
	if o.frameInterval != time.Second/60 {
		t.Errorf("zero interval accepted: %v", o.frameInterval)
	}
	WithFrameInterval(-time.Millisecond)(&o)
	if o.frameInterval != time.Second/60 {
		t.Errorf("negative interval accepted: %v", o.frameInterval)
	}
	WithFrameInterval(33 * time.Millisecond)(&o)
	if o.frameInterval != 33*time.Millisecond {
		t.Errorf("interval = %v, want 33ms", o.frameInterval)
	}
}

func TestWithPresentReceivesComposite(t *testing.T) {
	var got *Pixmap
	e := NewEngine(4, 4,
		WithBackground(Cyan),
		WithScheduleFunc(func(fire func()) { fire() }),
		WithPresent(func(pm *Pixmap) { got = pm }),
	)

	e.RequestRepaint()
	if got == nil {
		t.Fatal("present callback never ran")
	}
	if c := got.GetPixel(1, 1); c != Cyan {
		t.Errorf("presented pixel = %+v, want cyan", c)
	}
}
