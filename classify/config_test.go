// SPDX-License-Identifier: MIT
package classify_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dennsy/geotrellis/classify"
	"github.com/Dennsy/geotrellis/histogram"
	"github.com/Dennsy/geotrellis/palette"
	"github.com/Dennsy/geotrellis/rgba"
)

func loadConfig(t *testing.T, doc string) palette.Config {
	t.Helper()
	cfg, err := palette.LoadConfig(strings.NewReader(doc))
	require.NoError(t, err)
	return cfg
}

func TestFromConfig_BlendingExplicitBreaks(t *testing.T) {
	cfg := loadConfig(t, `
boundary: ">="
noData: "#01020304"
fallback: red
colors: ["#000000", "#ffffff"]
breaks: [10, 20, 30, 40, 50]
alpha: 0.5
`)
	c, err := classify.FromConfig[int](cfg, nil)
	require.NoError(t, err)
	bc, ok := c.(*classify.Blending[int])
	require.True(t, ok)
	assert.Equal(t, classify.GreaterOrEqual, bc.BoundaryType())
	assert.Equal(t, rgba.New(1, 2, 3, 4), bc.NoDataColor())
	assert.Equal(t, rgba.RGB(255, 0, 0), bc.FallbackColor())
	assert.Equal(t, 2, bc.ColorCount(), "not normalized by construction")

	e := bc.ToColorMap(nil)
	require.Equal(t, []int{10, 20, 30, 40, 50}, e.Breaks)
	cols := e.RGBA()
	assert.Equal(t, rgba.New(0, 0, 0, 127), cols[0])
	assert.Equal(t, rgba.New(255, 255, 255, 127), cols[4])
}

func TestFromConfig_StrictFromHistogram(t *testing.T) {
	cfg := loadConfig(t, `
mode: strict
palette: HeatmapYellowToRed
classes: 3
`)
	h := histogram.New(1.0, 2.0, 3.0, 4.0, 5.0, 6.0)
	c, err := classify.FromConfig[float64](cfg, h)
	require.NoError(t, err)
	s, ok := c.(*classify.Strict[float64])
	require.True(t, ok)
	require.Equal(t, 3, s.Len())
	assert.Equal(t, 6.0, s.Breaks()[2])

	heat := palette.MustNamed("HeatmapYellowToRed")
	assert.Equal(t, heat[0], s.Colors()[0])
	assert.Equal(t, heat[len(heat)-1], s.Colors()[2])
}

func TestFromConfig_StrictExplicit(t *testing.T) {
	cfg := loadConfig(t, `
mode: strict
boundary: exact
colors: [gold, "#0000ff"]
breaks: [7, 3]
`)
	c, err := classify.FromConfig[int16](cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, []int16{3, 7}, c.Breaks())
	assert.Equal(t, []rgba.Color{rgba.RGB(0, 0, 255), rgba.RGB(255, 215, 0)}, c.Colors())
	assert.Equal(t, classify.Exact, c.BoundaryType())
}

func TestFromConfig_BlendingFromHistogram(t *testing.T) {
	cfg := loadConfig(t, `
palette: Viridis
`)
	h := histogram.New(0, 10, 20, 30, 40, 50, 60, 70, 80, 90, 100)
	c, err := classify.FromConfig[int](cfg, h)
	require.NoError(t, err)
	assert.LessOrEqual(t, c.Len(), 8)
	assert.Equal(t, c.Len(), c.ToColorMap(h).Len())
}

func TestFromConfig_Errors(t *testing.T) {
	cases := []struct {
		name string
		cfg  palette.Config
		h    classify.Histogram[int]
		err  error
	}{
		{"UnknownMode", palette.Config{Mode: "fuzzy", Colors: []string{"red"}, Breaks: []float64{1}}, nil, classify.ErrUnknownMode},
		{"UnknownBoundary", palette.Config{Boundary: "near", Colors: []string{"red"}, Breaks: []float64{1}}, nil, classify.ErrUnknownBoundaryType},
		{"NoBreaksBlending", palette.Config{Colors: []string{"red"}}, nil, classify.ErrNoBreaks},
		{"NoBreaksStrict", palette.Config{Mode: "strict", Colors: []string{"red"}}, nil, classify.ErrNoBreaks},
		{"StrictMismatch", palette.Config{Mode: "strict", Colors: []string{"red"}, Breaks: []float64{1, 2}}, nil, classify.ErrLengthMismatch},
		{"EmptyPalette", palette.Config{Breaks: []float64{1}}, fixedHistogram[int]{1}, palette.ErrEmptyPalette},
		{"BadColor", palette.Config{Colors: []string{"#zzz"}, Breaks: []float64{1}}, nil, rgba.ErrBadHex},
		{"FractionalBreak", palette.Config{Mode: "strict", Colors: []string{"red", "green"}, Breaks: []float64{0.2, 1}}, nil, classify.ErrUnrepresentableBreak},
		{"FractionalBreakBlending", palette.Config{Colors: []string{"red"}, Breaks: []float64{1, 2.5}}, nil, classify.ErrUnrepresentableBreak},
		{"DuplicateStrictBreak", palette.Config{Mode: "strict", Colors: []string{"red", "green"}, Breaks: []float64{4, 4}}, nil, classify.ErrDuplicateBreak},
		{"EmptyHistogramStrict", palette.Config{Mode: "strict", Colors: []string{"red"}}, histogram.New[int](), classify.ErrNoBreaks},
		{"EmptyHistogramBlending", palette.Config{Colors: []string{"red"}}, histogram.New[int](), classify.ErrNoBreaks},
		{"NilSample", palette.Config{Mode: "strict", Colors: []string{"red"}}, (*histogram.Sample[int])(nil), classify.ErrNoBreaks},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := classify.FromConfig[int](tc.cfg, tc.h)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.err), "got %v, want %v", err, tc.err)
		})
	}
}

// TestFromConfig_BreakRange checks that breaks outside the break type are
// rejected instead of wrapping, and that float breaks pass through.
func TestFromConfig_BreakRange(t *testing.T) {
	cfg := palette.Config{
		Mode:   "strict",
		Colors: []string{"red", "green", "blue"},
		Breaks: []float64{0.2, 0.7, 300},
	}
	_, err := classify.FromConfig[uint8](cfg, nil)
	require.ErrorIs(t, err, classify.ErrUnrepresentableBreak)

	cfg.Breaks = []float64{0, 7, 300}
	_, err = classify.FromConfig[uint8](cfg, nil)
	require.ErrorIs(t, err, classify.ErrUnrepresentableBreak)

	cfg.Breaks = []float64{-1, 0, 255}
	_, err = classify.FromConfig[uint8](cfg, nil)
	require.ErrorIs(t, err, classify.ErrUnrepresentableBreak)

	cfg.Breaks = []float64{0, 7, 255}
	c, err := classify.FromConfig[uint8](cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, []uint8{0, 7, 255}, c.Breaks())
	assert.Equal(t, 3, c.Len())

	cfg.Breaks = []float64{0.2, 0.7, 1e300}
	_, err = classify.FromConfig[float32](cfg, nil)
	require.ErrorIs(t, err, classify.ErrUnrepresentableBreak)

	cfg.Breaks = []float64{0.2, 0.7, 300}
	f, err := classify.FromConfig[float32](cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, []float32{0.2, 0.7, 300}, f.Breaks())
}
