package render

// RGB is a 24-bit color
type RGB struct {
	R, G, B uint8
}

// Background is the clear color behind the scene
var Background = RGB{R: 18, G: 20, B: 30}

// HexRGB unpacks 0xRRGGBB
func HexRGB(hex uint32) RGB {
	return RGB{
		R: uint8(hex >> 16),
		G: uint8(hex >> 8),
		B: uint8(hex),
	}
}

// Scale multiplies every channel by f, saturating at 255
func (c RGB) Scale(f float64) RGB {
	return RGB{R: clampF(float64(c.R) * f), G: clampF(float64(c.G) * f), B: clampF(float64(c.B) * f)}
}

// Lerp blends a toward b, t in [0,1]
func Lerp(a, b RGB, t float64) RGB {
	return RGB{
		R: clampF(float64(a.R) + (float64(b.R)-float64(a.R))*t),
		G: clampF(float64(a.G) + (float64(b.G)-float64(a.G))*t),
		B: clampF(float64(a.B) + (float64(b.B)-float64(a.B))*t),
	}
}

func clampF(v float64) uint8 {
	if v > 255.0 {
		return 255
	}
	if v < 0.0 {
		return 0
	}
	return uint8(v)
}
