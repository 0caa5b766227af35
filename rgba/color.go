// SPDX-License-Identifier: MIT

package rgba

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Channel selects one of the four channels of a Color.
type Channel int

const (
	// Red is the most significant byte of the packed form.
	Red Channel = iota
	// Green channel.
	Green
	// Blue channel.
	Blue
	// Alpha is the least significant byte of the packed form; 0 is fully transparent.
	Alpha
)

// Channels lists every channel in packing order.
var Channels = [4]Channel{Red, Green, Blue, Alpha}

// String returns the lower-case channel name.
func (ch Channel) String() string {
	switch ch {
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	case Alpha:
		return "alpha"
	default:
		return "channel(" + strconv.Itoa(int(ch)) + ")"
	}
}

// Color is an immutable RGBA color with 8 bits per channel.
// The zero value is fully transparent black.
type Color struct {
	r, g, b, a uint8
}

// Transparent is fully transparent black, the default no-data and fallback color.
var Transparent = Color{}

// Clamp limits v to the 8-bit channel range [0,255].
func Clamp(v int) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}

// New builds a Color from four channel values, clamping each to [0,255].
// Complexity: O(1).
func New(r, g, b, a int) Color {
	return Color{r: Clamp(r), g: Clamp(g), b: Clamp(b), a: Clamp(a)}
}

// RGB builds an opaque Color (alpha 255) from clamped red, green and blue.
func RGB(r, g, b int) Color {
	return New(r, g, b, 255)
}

// FromUint32 unpacks a 0xRRGGBBAA integer.
func FromUint32(v uint32) Color {
	return Color{
		r: uint8(v >> 24),
		g: uint8(v >> 16),
		b: uint8(v >> 8),
		a: uint8(v),
	}
}

// Uint32 packs c as 0xRRGGBBAA. FromUint32(c.Uint32()) == c for every c.
func (c Color) Uint32() uint32 {
	return uint32(c.r)<<24 | uint32(c.g)<<16 | uint32(c.b)<<8 | uint32(c.a)
}

// R returns the red channel.
func (c Color) R() uint8 { return c.r }

// G returns the green channel.
func (c Color) G() uint8 { return c.g }

// B returns the blue channel.
func (c Color) B() uint8 { return c.b }

// A returns the alpha channel.
func (c Color) A() uint8 { return c.a }

// RGB decomposes c into red, green and blue.
func (c Color) RGB() (r, g, b uint8) {
	return c.r, c.g, c.b
}

// Channels decomposes c into all four channels.
func (c Color) Channels() (r, g, b, a uint8) {
	return c.r, c.g, c.b, c.a
}

// Channel reads a single channel. Unknown selectors read as 0.
func (c Color) Channel(ch Channel) uint8 {
	switch ch {
	case Red:
		return c.r
	case Green:
		return c.g
	case Blue:
		return c.b
	case Alpha:
		return c.a
	default:
		return 0
	}
}

// WithChannel returns a copy of c with channel ch replaced by the clamped v.
// Unknown selectors return c unchanged.
func (c Color) WithChannel(ch Channel, v int) Color {
	switch ch {
	case Red:
		c.r = Clamp(v)
	case Green:
		c.g = Clamp(v)
	case Blue:
		c.b = Clamp(v)
	case Alpha:
		c.a = Clamp(v)
	}
	return c
}

// WithAlpha returns a copy of c with the clamped alpha a.
func (c Color) WithAlpha(a int) Color {
	c.a = Clamp(a)
	return c
}

// IsOpaque reports whether alpha is 255.
func (c Color) IsOpaque() bool { return c.a == 255 }

// IsTransparent reports whether alpha is 0.
func (c Color) IsTransparent() bool { return c.a == 0 }

// NRGBA converts c to the non-premultiplied standard library color.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.r, G: c.g, B: c.b, A: c.a}
}

// RGBA implements color.Color. The returned channels are alpha-premultiplied
// 16-bit values, as image/color requires.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// FromColor converts any image/color value, un-premultiplying its channels.
func FromColor(col color.Color) Color {
	n := color.NRGBAModel.Convert(col).(color.NRGBA)
	return Color{r: n.R, g: n.G, b: n.B, a: n.A}
}

// Colorful converts the color channels of c to go-colorful's float
// representation. Alpha is dropped; keep it separately when round-tripping.
func (c Color) Colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.r) / 255.0,
		G: float64(c.g) / 255.0,
		B: float64(c.b) / 255.0,
	}
}

// FromColorful converts a go-colorful value back to 8-bit channels.
// Out-of-gamut values are clamped first.
func FromColorful(col colorful.Color, alpha uint8) Color {
	r, g, b := col.Clamped().RGB255()
	return Color{r: r, g: g, b: b, a: alpha}
}

// ParseHex parses #rgb, #rrggbb and #rrggbbaa colors. The leading '#' may be
// replaced with "0x" or omitted. Six- and three-digit forms are opaque.
func ParseHex(s string) (Color, error) {
	h := strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(h, "#"):
		h = h[1:]
	case strings.HasPrefix(h, "0x"), strings.HasPrefix(h, "0X"):
		h = h[2:]
	}

	alpha := uint8(255)
	switch len(h) {
	case 3, 6:
	case 8:
		a, err := strconv.ParseUint(h[6:], 16, 8)
		if err != nil {
			return Transparent, fmt.Errorf("%w: %q", ErrBadHex, s)
		}
		alpha = uint8(a)
		h = h[:6]
	default:
		return Transparent, fmt.Errorf("%w: %q", ErrBadHex, s)
	}

	col, err := colorful.Hex("#" + strings.ToLower(h))
	if err != nil {
		return Transparent, fmt.Errorf("%w: %q", ErrBadHex, s)
	}
	return FromColorful(col, alpha), nil
}

// Hex formats c as #rrggbbaa.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.r, c.g, c.b, c.a)
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return c.Hex()
}
