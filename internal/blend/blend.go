// Package blend provides per-pixel color blending for layer compositing.
package blend

// Mode defines how source pixels are blended with destination pixels.
type Mode uint8

const (
	// ModeNormal performs standard alpha blending (source over destination).
	ModeNormal Mode = iota

	// ModeMultiply multiplies source and destination colors.
	// Result is always darker or equal. Formula: dst * src
	ModeMultiply

	// ModeScreen performs inverse multiply for lighter results.
	// Formula: 1 - (1-dst) * (1-src)
	ModeScreen

	// ModeOverlay combines multiply and screen based on destination brightness.
	// Dark areas are multiplied, bright areas are screened.
	ModeOverlay
)

const unknownMode = "Unknown"

// String returns a string representation of the blend mode.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "Normal"
	case ModeMultiply:
		return "Multiply"
	case ModeScreen:
		return "Screen"
	case ModeOverlay:
		return "Overlay"
	default:
		return unknownMode
	}
}

// Pixel blends a source pixel onto a destination pixel using the given mode.
// All channels are non-premultiplied 8-bit values.
func Pixel(srcR, srcG, srcB, srcA, dstR, dstG, dstB, dstA uint8, mode Mode) (r, g, b, a uint8) {
	if srcA == 0 {
		// Fully transparent source, return destination unchanged
		return dstR, dstG, dstB, dstA
	}

	if mode == ModeNormal {
		return normal(srcR, srcG, srcB, srcA, dstR, dstG, dstB, dstA)
	}

	// For other blend modes, first blend the colors, then apply alpha
	var blendedR, blendedG, blendedB uint8

	switch mode {
	case ModeMultiply:
		blendedR, blendedG, blendedB = multiply(srcR, srcG, srcB, dstR, dstG, dstB)
	case ModeScreen:
		blendedR, blendedG, blendedB = screen(srcR, srcG, srcB, dstR, dstG, dstB)
	case ModeOverlay:
		blendedR, blendedG, blendedB = overlay(srcR, srcG, srcB, dstR, dstG, dstB)
	default:
		blendedR, blendedG, blendedB = srcR, srcG, srcB
	}

	return normal(blendedR, blendedG, blendedB, srcA, dstR, dstG, dstB, dstA)
}

// normal performs standard alpha blending (source over destination).
func normal(srcR, srcG, srcB, srcA, dstR, dstG, dstB, dstA uint8) (r, g, b, a uint8) {
	if srcA == 255 {
		return srcR, srcG, srcB, 255
	}

	if dstA == 0 {
		return srcR, srcG, srcB, srcA
	}

	// Porter-Duff "source over" formula
	// out_a = src_a + dst_a * (1 - src_a)
	// out_c = (src_c * src_a + dst_c * dst_a * (1 - src_a)) / out_a

	srcAlpha := float64(srcA) / 255.0
	dstAlpha := float64(dstA) / 255.0

	outAlpha := srcAlpha + dstAlpha*(1-srcAlpha)

	if outAlpha == 0 {
		return 0, 0, 0, 0
	}

	r = uint8((float64(srcR)*srcAlpha + float64(dstR)*dstAlpha*(1-srcAlpha)) / outAlpha)
	g = uint8((float64(srcG)*srcAlpha + float64(dstG)*dstAlpha*(1-srcAlpha)) / outAlpha)
	b = uint8((float64(srcB)*srcAlpha + float64(dstB)*dstAlpha*(1-srcAlpha)) / outAlpha)
	a = uint8(outAlpha * 255.0)

	return r, g, b, a
}

// multiply multiplies source and destination colors.
func multiply(srcR, srcG, srcB, dstR, dstG, dstB uint8) (r, g, b uint8) {
	r = uint8((int(srcR) * int(dstR)) / 255)
	g = uint8((int(srcG) * int(dstG)) / 255)
	b = uint8((int(srcB) * int(dstB)) / 255)
	return r, g, b
}

// screen performs screen blending for lighter results.
func screen(srcR, srcG, srcB, dstR, dstG, dstB uint8) (r, g, b uint8) {
	// Formula: 1 - (1-src) * (1-dst) = src + dst - src*dst
	r = uint8(255 - (255-int(srcR))*(255-int(dstR))/255)
	g = uint8(255 - (255-int(srcG))*(255-int(dstG))/255)
	b = uint8(255 - (255-int(srcB))*(255-int(dstB))/255)
	return r, g, b
}

// overlay combines multiply and screen based on destination brightness.
func overlay(srcR, srcG, srcB, dstR, dstG, dstB uint8) (r, g, b uint8) {
	r = overlayChannel(srcR, dstR)
	g = overlayChannel(srcG, dstG)
	b = overlayChannel(srcB, dstB)
	return r, g, b
}

// overlayChannel applies overlay blending to a single channel.
func overlayChannel(src, dst uint8) uint8 {
	// If dst < 0.5: 2 * src * dst
	// Else: 1 - 2 * (1-src) * (1-dst)
	if dst < 128 {
		return uint8((2 * int(src) * int(dst)) / 255)
	}
	return uint8(255 - (2*(255-int(src))*(255-int(dst)))/255)
}
