// SPDX-License-Identifier: MIT

// Package rgba defines the immutable four-channel color value used by the
// classification engine.
//
// What:
//
//   - Color holds red, green, blue and alpha as 8-bit unsigned channels.
//   - Channels are clamped to [0,255] on construction: New(300, -4, 7, 255)
//     yields (255, 0, 7, 255). Construction never fails.
//   - A Color packs losslessly into a uint32 in 0xRRGGBBAA byte order and
//     unpacks back to the same channels (FromUint32 / Uint32).
//   - Interop with image/color (NRGBA, FromColor) and go-colorful
//     (Colorful, FromColorful) for perceptual color math.
//
// Equality:
//
//   - Color is comparable; two colors are equal iff all four channels are equal.
//
// Errors:
//
//   - ErrBadHex: ParseHex received a malformed hex color string.
package rgba
