package pixedit

import (
	"image"
	"image/color"
	"image/png"
	"os"
)

// Pixmap represents a rectangular pixel buffer.
type Pixmap struct {
	width  int
	height int
	data   []uint8 // RGBA format, 4 bytes per pixel, non-premultiplied
}

// NewPixmap creates a new pixmap with the given dimensions.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data (RGBA format).
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// SetPixel sets the color of a single pixel.
func (p *Pixmap) SetPixel(x, y int, c RGBA) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0] = uint8(clamp255(c.R * 255))
	p.data[i+1] = uint8(clamp255(c.G * 255))
	p.data[i+2] = uint8(clamp255(c.B * 255))
	p.data[i+3] = uint8(clamp255(c.A * 255))
}

// GetPixel returns the color of a single pixel.
func (p *Pixmap) GetPixel(x, y int) RGBA {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return Transparent
	}
	i := (y*p.width + x) * 4
	return RGBA{
		R: float64(p.data[i+0]) / 255,
		G: float64(p.data[i+1]) / 255,
		B: float64(p.data[i+2]) / 255,
		A: float64(p.data[i+3]) / 255,
	}
}

// SetPixelRGBA sets a single pixel from raw 8-bit channel values.
// This is the fast path used by flood fill and patch application.
func (p *Pixmap) SetPixelRGBA(x, y int, r, g, b, a uint8) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0] = r
	p.data[i+1] = g
	p.data[i+2] = b
	p.data[i+3] = a
}

// GetPixelRGBA returns a single pixel as raw 8-bit channel values.
// Out-of-bounds coordinates return fully transparent black.
func (p *Pixmap) GetPixelRGBA(x, y int) (r, g, b, a uint8) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return 0, 0, 0, 0
	}
	i := (y*p.width + x) * 4
	return p.data[i+0], p.data[i+1], p.data[i+2], p.data[i+3]
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c RGBA) {
	r := uint8(clamp255(c.R * 255))
	g := uint8(clamp255(c.G * 255))
	b := uint8(clamp255(c.B * 255))
	a := uint8(clamp255(c.A * 255))

	for i := 0; i < len(p.data); i += 4 {
		p.data[i+0] = r
		p.data[i+1] = g
		p.data[i+2] = b
		p.data[i+3] = a
	}
}

// Clone returns a deep copy of the pixmap.
func (p *Pixmap) Clone() *Pixmap {
	c := NewPixmap(p.width, p.height)
	copy(c.data, p.data)
	return c
}

// CopyRect extracts a window of the pixmap as a new pixmap of r's size.
// The rectangle is clipped against the pixmap bounds first; pixels of r
// that fall outside the pixmap are left transparent in the result.
func (p *Pixmap) CopyRect(r Rect) *Pixmap {
	out := NewPixmap(r.W, r.H)
	c := r.Clip(p.width, p.height)
	for y := c.Y; y < c.Y+c.H; y++ {
		srcOff := (y*p.width + c.X) * 4
		dstOff := ((y-r.Y)*r.W + (c.X - r.X)) * 4
		copy(out.data[dstOff:dstOff+c.W*4], p.data[srcOff:srcOff+c.W*4])
	}
	return out
}

// DrawRect writes src into the pixmap at rectangle r, overwriting pixels.
// src must have dimensions r.W x r.H; the write is clipped against the
// pixmap bounds.
func (p *Pixmap) DrawRect(r Rect, src *Pixmap) {
	if src == nil || src.width != r.W || src.height != r.H {
		return
	}
	c := r.Clip(p.width, p.height)
	for y := c.Y; y < c.Y+c.H; y++ {
		dstOff := (y*p.width + c.X) * 4
		srcOff := ((y-r.Y)*r.W + (c.X - r.X)) * 4
		copy(p.data[dstOff:dstOff+c.W*4], src.data[srcOff:srcOff+c.W*4])
	}
}

// Equal reports whether two pixmaps have identical dimensions and pixel data.
func (p *Pixmap) Equal(other *Pixmap) bool {
	if other == nil || p.width != other.width || p.height != other.height {
		return false
	}
	for i, v := range p.data {
		if v != other.data[i] {
			return false
		}
	}
	return true
}

// ToImage converts the pixmap to an image.NRGBA.
func (p *Pixmap) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// FromImage creates a pixmap from an image.
func FromImage(img image.Image) *Pixmap {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pm := NewPixmap(width, height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := img.At(bounds.Min.X+x, bounds.Min.Y+y)
			pm.SetPixel(x, y, FromColor(c))
		}
	}

	return pm
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	img := p.ToImage()
	return png.Encode(f, img)
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.GetPixel(x, y).Color()
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}
