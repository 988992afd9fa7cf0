package core

// Color is a packed 24-bit RGB value (0xRRGGBB)
type Color uint32

const (
	ColorBlack Color = 0x000000
	ColorWhite Color = 0xFFFFFF
	ColorRed   Color = 0xFF0000
	ColorGreen Color = 0x00FF00
	ColorBlue  Color = 0x0000FF
)

// RGB packs components into a Color
func RGB(r, g, b uint8) Color {
	return Color(uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// R returns the red component
func (c Color) R() uint8 { return uint8(c >> 16) }

// G returns the green component
func (c Color) G() uint8 { return uint8(c >> 8) }

// B returns the blue component
func (c Color) B() uint8 { return uint8(c) }

// Scale multiplies each component by brightness, clamped to [0, 1]
func (c Color) Scale(brightness float64) Color {
	if brightness <= 0 {
		return ColorBlack
	}
	if brightness >= 1 {
		return c
	}
	return RGB(
		uint8(float64(c.R())*brightness),
		uint8(float64(c.G())*brightness),
		uint8(float64(c.B())*brightness),
	)
}

// Blend linearly interpolates toward another color
// ratio 0 returns c, ratio 1 returns o
func (c Color) Blend(o Color, ratio float64) Color {
	if ratio <= 0 {
		return c
	}
	if ratio >= 1 {
		return o
	}
	lerp := func(a, b uint8) uint8 {
		return uint8(float64(a) + (float64(b)-float64(a))*ratio)
	}
	return RGB(lerp(c.R(), o.R()), lerp(c.G(), o.G()), lerp(c.B(), o.B()))
}

// RainbowPalette is a pre-computed 30-entry hue sweep
// Shared by ambient effects to avoid per-frame HSV math
var RainbowPalette = []Color{
	0xFF0000, 0xFF1A00, 0xFF3300, 0xFF4D00, 0xFF6600, 0xFF8000,
	0xFF9900, 0xFFB300, 0xFFCC00, 0xFFE600, 0xFFFF00, 0xE6FF00,
	0xCCFF00, 0xB3FF00, 0x99FF00, 0x80FF00, 0x66FF00, 0x4DFF00,
	0x33FF00, 0x1AFF00, 0x00FF00, 0x00FF1A, 0x00FF33, 0x00FF4D,
	0x00FF66, 0x00FF80, 0x00FF99, 0x00FFB3, 0x00FFCC, 0x00FFE6,
}

// RainbowColor samples the palette at position in [0, 1), offset for animation
func RainbowColor(position, offset float64) Color {
	p := position + offset
	p -= float64(int(p)) // wrap to [0, 1)
	if p < 0 {
		p += 1
	}
	idx := int(p * float64(len(RainbowPalette)))
	if idx >= len(RainbowPalette) {
		idx = len(RainbowPalette) - 1
	}
	return RainbowPalette[idx]
}
