// Package pixedit provides the editing core of a multi-layer raster
// (pixel) editor for Go.
//
// # Overview
//
// pixedit is a Pure Go raster-editing engine designed to integrate with
// the GoGPU ecosystem. It maintains an ordered stack of RGBA layers,
// composites them with per-layer opacity, blend mode and clip-to-below
// masking, and records every edit as a reversible before/after patch on
// an undo/redo history stack. Drawing tools are external: they write
// pixels directly and use the engine's stroke-transaction and dirty-rect
// primitives to make their edits atomic and undoable.
//
// # Quick Start
//
//	import "github.com/gogpu/pixedit"
//
//	// Create an editing session with a 512x512 white background
//	en := pixedit.NewEngine(512, 512, pixedit.WithBackground(pixedit.White))
//
//	// A brush gesture: many raw pixel writes, one history entry
//	en.BeginStrokeSnapshot()
//	layer := en.Layers().Active()
//	layer.Surface().SetPixel(10, 10, pixedit.Black)
//	en.ExpandPendingRect(10, 10, 1)
//	en.CommitStrokeSnapshot()
//
//	// Bucket fill is already atomic; it produces its own patch
//	en.FloodFill(5, 5, pixedit.Red, 32)
//
//	en.Undo()
//	en.Redo()
//
//	// Composite all layers and save
//	en.Flatten().SavePNG("output.png")
//
// # Architecture
//
// The engine is organized into:
//   - Public API: Engine, LayerStack, Layer, Pixmap, Patch, History
//   - Internal: blend (per-pixel compositing)
//
// All edits are single-writer and synchronous. Repaint requests coalesce
// and run either through a host-injected schedule func or at the next
// FlushRepaint call, so recomposition never overlaps in-progress edits.
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
package pixedit
