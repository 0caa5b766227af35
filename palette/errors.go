// SPDX-License-Identifier: MIT

package palette

import "errors"

var (
	// ErrUnknownPalette indicates a ramp name that is not built in.
	ErrUnknownPalette = errors.New("palette: unknown palette")
	// ErrUnknownColorName indicates a name missing from the SVG color keywords.
	ErrUnknownColorName = errors.New("palette: unknown color name")
	// ErrEmptyPalette indicates a config with neither a palette nor colors.
	ErrEmptyPalette = errors.New("palette: no colors configured")
	// ErrInvalidConfig indicates an out-of-range numeric config field.
	ErrInvalidConfig = errors.New("palette: invalid config")
)
