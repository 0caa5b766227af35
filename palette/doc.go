// SPDX-License-Identifier: MIT

// Package palette supplies color sequences for classifiers and reads
// classification configs from YAML.
//
// What:
//
//   - Built-in ramps looked up by name (Named, MustNamed, Names).
//   - SVG 1.1 color keywords via golang.org/x/image/colornames (FromColorNames).
//   - Perceptual ramps interpolated in CIE-L*a*b* with go-colorful (Perceptual).
//   - Config: mode, boundary, no-data and fallback colors, palette or explicit
//     colors, breaks, class count and alpha, decoded with gopkg.in/yaml.v3.
//
// Example config:
//
//	mode: blending
//	boundary: lessOrEqual
//	noData: "#00000000"
//	palette: BlueToRed
//	steps: 16
//	breaks: [0, 10, 20, 30]
//	alpha: 0.8
//
// Errors:
//
//   - ErrUnknownPalette, ErrUnknownColorName, ErrEmptyPalette, ErrInvalidConfig.
//   - rgba.ErrBadHex (wrapped) for malformed hex entries.
package palette
