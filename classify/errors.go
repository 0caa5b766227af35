// SPDX-License-Identifier: MIT

package classify

import "errors"

// Sentinel errors for configuration-driven construction.
var (
	// ErrUnknownBoundaryType indicates a boundary name ParseBoundaryType does not know.
	ErrUnknownBoundaryType = errors.New("classify: unknown boundary type")
	// ErrUnknownMode indicates a classifier mode other than strict or blending.
	ErrUnknownMode = errors.New("classify: unknown classification mode")
	// ErrNoBreaks indicates neither explicit breaks nor a non-empty histogram were supplied.
	ErrNoBreaks = errors.New("classify: no breaks and no histogram to derive them from")
	// ErrLengthMismatch indicates explicit strict breaks and colors differ in length.
	ErrLengthMismatch = errors.New("classify: strict breaks and colors must have equal length")
	// ErrUnrepresentableBreak indicates a configured break that does not fit the break type exactly.
	ErrUnrepresentableBreak = errors.New("classify: break not representable in break type")
	// ErrDuplicateBreak indicates a strict config listing the same break twice.
	ErrDuplicateBreak = errors.New("classify: duplicate strict break")
)

// Stable panic messages for programmer errors.
const (
	panicNilHistogram = "classify: histogram must not be nil"
)
