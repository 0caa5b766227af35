// Package geotrellis maps numeric raster samples to display colors.
//
// A caller picks breaks and a palette, builds a classifier, and hands its
// (breaks, colors, options) export to a color map that colorizes every cell
// of a raster tile.
//
// Under the hood, everything is organized under five subpackages:
//
//	rgba/      — immutable 8-bit RGBA Color, packed 0xRRGGBBAA form, hex parsing
//	ramp/      — interpolation engine: Spread, ChooseColors, Gradient, alpha ramps
//	classify/  — Strict and Blending classifiers, builders, Export, YAML-driven setup
//	histogram/ — sample histogram with quantile breaks (go-moremath)
//	palette/   — named ramps, SVG color names, CIE-Lab ramps, YAML config
//
// Quick example:
//
//	h := histogram.New(samples...)
//	s := classify.StrictFromQuantiles[float64](h, palette.MustNamed("BlueToRed"))
//	export := s.ToColorMap(h)
//
// Classifiers are mutable builders and are not safe for concurrent use.
//
//	go get github.com/Dennsy/geotrellis
package geotrellis
