package pixedit

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"
)

// Export flattens the layer stack and encodes the composite to w.
// Supported formats: "png", "bmp", "tiff".
func (e *Engine) Export(w io.Writer, format string) error {
	img := e.Flatten().ToImage()
	switch strings.ToLower(format) {
	case "png":
		return png.Encode(w, img)
	case "bmp":
		return bmp.Encode(w, img)
	case "tiff", "tif":
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("pixedit: unsupported export format %q", format)
	}
}

// SaveImage flattens the layer stack and writes the composite to path,
// choosing the format from the file extension (.png, .bmp, .tif, .tiff).
func (e *Engine) SaveImage(path string) error {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return fmt.Errorf("pixedit: cannot derive format from path %q", path)
	}

	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return e.Export(f, ext)
}

// Thumbnail flattens the layer stack and returns a scaled-down copy whose
// longest edge is at most maxEdge, resampled with Catmull-Rom filtering.
// The composite is returned unscaled when it already fits.
func (e *Engine) Thumbnail(maxEdge int) *Pixmap {
	src := e.Flatten()
	w, h := src.Width(), src.Height()
	if maxEdge <= 0 || (w <= maxEdge && h <= maxEdge) {
		return src.Clone()
	}

	tw, th := maxEdge, maxEdge
	if w >= h {
		th = max(1, h*maxEdge/w)
	} else {
		tw = max(1, w*maxEdge/h)
	}

	dst := image.NewNRGBA(image.Rect(0, 0, tw, th))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src.ToImage(), src.Bounds(), draw.Src, nil)
	return FromImage(dst)
}

// ImportImage decodes the image at path and inserts it as a new layer
// directly above the active layer. PNG, BMP and TIFF are recognized.
// The decoded image is drawn at the layer origin and cropped to the
// canvas; the new layer becomes active.
func (e *Engine) ImportImage(path string) (*Layer, error) {
	f, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("pixedit: decode %q: %w", path, err)
	}

	layer, err := e.layers.AddLayer(e.layers.ActiveIndex())
	if err != nil {
		return nil, err
	}
	layer.Rename(filepath.Base(path))

	surface := layer.Surface()
	bounds := img.Bounds()
	w := min(bounds.Dx(), surface.Width())
	h := min(bounds.Dy(), surface.Height())
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			surface.SetPixel(x, y, FromColor(img.At(bounds.Min.X+x, bounds.Min.Y+y)))
		}
	}

	e.RequestRepaint()
	return layer, nil
}
