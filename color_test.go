package pixedit

import (
	"image/color"
	"math"
	"testing"
)

func colorsClose(a, b RGBA) bool {
	const eps = 1e-9
	return math.Abs(a.R-b.R) < eps && math.Abs(a.G-b.G) < eps &&
		math.Abs(a.B-b.B) < eps && math.Abs(a.A-b.A) < eps
}

func TestHex(t *testing.T) {
	tests := []struct {
		in   string
		want RGBA
	}{
		{"#f00", Red},
		{"00ff00", Green},
		{"#0000ffff", Blue},
		{"000f", RGBA2(0, 0, 0, 1)},
		{"12345", Black}, // unsupported length falls back to opaque black
	}
	for _, tt := range tests {
		if got := Hex(tt.in); !colorsClose(got, tt.want) {
			t.Errorf("Hex(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestColorRoundTrip(t *testing.T) {
	in := RGBA2(0.25, 0.5, 0.75, 1.0)
	out := FromColor(in.Color())
	// 8-bit quantization allows up to 1/255 drift per channel.
	const eps = 1.0 / 255
	if math.Abs(in.R-out.R) > eps || math.Abs(in.G-out.G) > eps ||
		math.Abs(in.B-out.B) > eps || math.Abs(in.A-out.A) > eps {
		t.Errorf("round trip %+v -> %+v drifted more than 1/255", in, out)
	}
}

func TestPremultiplyUnpremultiply(t *testing.T) {
	c := RGBA2(0.8, 0.4, 0.2, 0.5)
	p := c.Premultiply()
	if !colorsClose(p, RGBA2(0.4, 0.2, 0.1, 0.5)) {
		t.Errorf("Premultiply = %+v", p)
	}
	if got := p.Unpremultiply(); !colorsClose(got, c) {
		t.Errorf("Unpremultiply(Premultiply) = %+v, want %+v", got, c)
	}

	zero := RGBA2(0.3, 0.3, 0.3, 0).Premultiply().Unpremultiply()
	if !colorsClose(zero, Transparent) {
		t.Errorf("zero-alpha unpremultiply = %+v, want transparent", zero)
	}
}

func TestLerp(t *testing.T) {
	got := Black.Lerp(White, 0.5)
	want := RGBA2(0.5, 0.5, 0.5, 1.0)
	if !colorsClose(got, want) {
		t.Errorf("Lerp = %+v, want %+v", got, want)
	}
	if !colorsClose(Black.Lerp(White, 0), Black) {
		t.Error("Lerp(t=0) should return the receiver")
	}
	if !colorsClose(Black.Lerp(White, 1), White) {
		t.Error("Lerp(t=1) should return the argument")
	}
}

func TestColorBytes(t *testing.T) {
	r, g, b, a := White.bytes()
	if r != 255 || g != 255 || b != 255 || a != 255 {
		t.Errorf("White.bytes() = (%d, %d, %d, %d), want all 255", r, g, b, a)
	}

	// Out-of-range components clamp rather than wrap.
	r, g, b, a = RGBA2(2.0, -1.0, 0.5, 1.0).bytes()
	if r != 255 || g != 0 || b != 127 || a != 255 {
		t.Errorf("clamped bytes = (%d, %d, %d, %d), want (255, 0, 127, 255)", r, g, b, a)
	}
}

func TestColorInterface(t *testing.T) {
	c := Red.Color()
	nrgba, ok := c.(color.NRGBA)
	if !ok {
		t.Fatalf("Color() returned %T, want color.NRGBA", c)
	}
	if nrgba.R != 255 || nrgba.G != 0 || nrgba.B != 0 || nrgba.A != 255 {
		t.Errorf("Red.Color() = %+v", nrgba)
	}
}
