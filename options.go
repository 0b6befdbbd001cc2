package pixedit

import "time"

// EngineOption configures an Engine during creation.
// Use functional options to customize Engine behavior.
//
// Example:
//
//	// Default: white background, repaints run on FlushRepaint
//	en := pixedit.NewEngine(800, 600)
//
//	// Transparent canvas driven by a host paint loop
//	en := pixedit.NewEngine(800, 600,
//	    pixedit.WithBackground(pixedit.Transparent),
//	    pixedit.WithScheduleFunc(loop.NextFrame))
type EngineOption func(*engineOptions)

// engineOptions holds optional configuration for Engine creation.
type engineOptions struct {
	background    RGBA
	frameInterval time.Duration
	schedule      func(func())
	present       func(*Pixmap)
}

// defaultEngineOptions returns the default engine options.
func defaultEngineOptions() engineOptions {
	return engineOptions{
		background:    White,
		frameInterval: time.Second / 60,
	}
}

// WithBackground sets the color the initial background layer is cleared to.
func WithBackground(c RGBA) EngineOption {
	return func(o *engineOptions) {
		o.background = c
	}
}

// WithFrameInterval sets the display-refresh cadence the engine reports
// via FrameInterval; hosts driving FlushRepaint themselves tick at this
// rate. The default is one sixtieth of a second.
func WithFrameInterval(d time.Duration) EngineOption {
	return func(o *engineOptions) {
		if d > 0 {
			o.frameInterval = d
		}
	}
}

// WithScheduleFunc replaces the flush-driven repaint deferral with a
// host-provided one. The function receives the repaint callback and must
// invoke it once on the next display-refresh tick, on the same goroutine
// that performs edits; the callback reads layer pixels while it runs.
//
// Example:
//
//	en := pixedit.NewEngine(800, 600, pixedit.WithScheduleFunc(func(fire func()) {
//	    app.QueueOnFrame(fire)
//	}))
func WithScheduleFunc(schedule func(func())) EngineOption {
	return func(o *engineOptions) {
		o.schedule = schedule
	}
}

// WithPresent sets a callback invoked with the freshly flattened composite
// every time a scheduled repaint runs. Hosts use it to blit the result to
// the screen.
func WithPresent(present func(*Pixmap)) EngineOption {
	return func(o *engineOptions) {
		o.present = present
	}
}
