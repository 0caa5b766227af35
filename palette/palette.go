// SPDX-License-Identifier: MIT

package palette

import (
	"fmt"
	"slices"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"

	"github.com/Dennsy/geotrellis/ramp"
	"github.com/Dennsy/geotrellis/rgba"
)

// builtins maps ramp names to packed 0xRRGGBBAA stops, low values first.
var builtins = map[string][]uint32{
	"BlueToOrange": {
		0x2586ABFF, 0x4EA3C8FF, 0x7FB8D4FF, 0xAFD1E2FF, 0xD8E6EBFF,
		0xF7D6A3FF, 0xF4B25FFF, 0xEB8B2FFF, 0xC9601CFF,
	},
	"BlueToRed": {
		0x2586ABFF, 0x4EA3C8FF, 0x7FB8D4FF, 0xAFD1E2FF, 0xECE1DFFF,
		0xF0A29AFF, 0xE86F63FF, 0xD9402FFF, 0xB02816FF,
	},
	"GreenToRedOrange": {
		0x52A88AFF, 0x7FBF8CFF, 0xB1D58CFF, 0xE1E88CFF, 0xF9D477FF,
		0xF6A95AFF, 0xEF7A40FF, 0xE24C2CFF,
	},
	"LightYellowToOrange": {
		0xFFFFCCFF, 0xFFF0A8FF, 0xFEE087FF, 0xFEC965FF, 0xFEAB4BFF,
		0xFD893CFF, 0xFA5C2EFF, 0xEC3023FF, 0xD31121FF,
	},
	"HeatmapYellowToRed": {
		0xFFFFB2FF, 0xFED976FF, 0xFEB24CFF, 0xFD8D3CFF, 0xFC4E2AFF,
		0xE31A1CFF, 0xB10026FF,
	},
	"LightToDarkGreen": {
		0xF7FCF5FF, 0xE5F5E0FF, 0xC7E9C0FF, 0xA1D99BFF, 0x74C476FF,
		0x41AB5DFF, 0x238B45FF, 0x006D2CFF, 0x00441BFF,
	},
	"Viridis": {
		0x440154FF, 0x46327EFF, 0x365C8DFF, 0x277F8EFF, 0x1FA187FF,
		0x4AC16DFF, 0xA0DA39FF, 0xFDE725FF,
	},
	"ClassificationBoldLandUse": {
		0xB2182BFF, 0xEF8A62FF, 0xFDDBC7FF, 0x67A9CFFF, 0x2166ACFF,
		0x1B7837FF, 0x5AAE61FF, 0xD9F0D3FF, 0x762A83FF, 0xC2A5CFFF,
	},
}

// Names returns the built-in ramp names, sorted.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Named returns a fresh copy of the built-in ramp called name.
// Lookup ignores case.
func Named(name string) ([]rgba.Color, error) {
	for key, stops := range builtins {
		if strings.EqualFold(key, name) {
			out := make([]rgba.Color, len(stops))
			for i, v := range stops {
				out[i] = rgba.FromUint32(v)
			}
			return out, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownPalette, name)
}

// MustNamed is Named for names known at compile time; it panics on error.
func MustNamed(name string) []rgba.Color {
	colors, err := Named(name)
	if err != nil {
		panic(err)
	}
	return colors
}

// FromColorNames resolves SVG color keywords ("steelblue", "gold", ...) to
// opaque colors.
func FromColorNames(names ...string) ([]rgba.Color, error) {
	out := make([]rgba.Color, len(names))
	for i, name := range names {
		c, ok := colornames.Map[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownColorName, name)
		}
		out[i] = rgba.FromColor(c)
	}
	return out, nil
}

// ParseColor accepts a hex color (see rgba.ParseHex) or an SVG color keyword.
func ParseColor(s string) (rgba.Color, error) {
	if c, err := rgba.ParseHex(s); err == nil {
		return c, nil
	}
	named, err := FromColorNames(s)
	if err != nil {
		return rgba.Transparent, fmt.Errorf("%w or %w: %q", rgba.ErrBadHex, ErrUnknownColorName, s)
	}
	return named[0], nil
}

// Perceptual returns n colors from from to to, blending red, green and blue
// in CIE-L*a*b* and alpha linearly with ramp.Blend. Unlike ramp.Gradient the
// midpoints keep perceived lightness evenly spaced.
//
// Panics if n <= 0.
func Perceptual(from, to rgba.Color, n int) []rgba.Color {
	alphas := ramp.GradientChannel(int(from.A()), int(to.A()), n)
	out := make([]rgba.Color, n)
	if n == 1 {
		out[0] = from
		return out
	}
	a, b := from.Colorful(), to.Colorful()
	out[0], out[n-1] = from, to
	for i := 1; i < n-1; i++ {
		out[i] = lab(a, b, float64(i)/float64(n-1), alphas[i])
	}
	return out
}

func lab(a, b colorful.Color, t float64, alpha int) rgba.Color {
	return rgba.FromColorful(a.BlendLab(b, t), rgba.Clamp(alpha))
}
