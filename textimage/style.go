/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package textimage renders text to raster images: single lines,
// multiline blocks, and word-wrapped text fitted into a target width or
// box. All rendering works on RGBA images with fully transparent pixels
// where nothing was drawn, so results composite cleanly onto any
// background.
package textimage

import (
	"fmt"
	"image/color"

	"textimg/palette"
)

// Justify positions a rendered line horizontally on its canvas. The
// zero value centers, matching the rendering defaults.
type Justify int

const (
	JustifyCenter Justify = iota
	JustifyLeft
	JustifyRight
)

// Vertical positions a fitted text block inside a fixed-height box. The
// zero value aligns to the top.
type Vertical int

const (
	VerticalTop Vertical = iota
	VerticalCenter
	VerticalBottom
)

// Style bundles the optional rendering parameters. The zero value is
// usable: black text on a transparent white background, single line
// spacing, centered.
type Style struct {
	// Foreground is the text color as a hex string ("#rrggbb" or
	// "#rrggbbaa"). Empty means opaque black.
	Foreground string
	// Background fills the canvas behind the text. Empty means fully
	// transparent white ("#ffffff00").
	Background string
	// Spacing scales the line height; values below or equal to zero mean
	// 1.0. The extra space is distributed evenly above and below the
	// glyphs of each line.
	Spacing float64
	// Justify sets the horizontal placement of each line.
	Justify Justify
}

const (
	defaultForeground = "#000000ff"
	defaultBackground = "#ffffff00"
)

// colors resolves the style's color strings, applying defaults for
// empty fields.
func (s Style) colors() (fg, bg color.RGBA, err error) {
	fgHex := s.Foreground
	if fgHex == "" {
		fgHex = defaultForeground
	}
	bgHex := s.Background
	if bgHex == "" {
		bgHex = defaultBackground
	}
	fg, err = palette.ParseHex(fgHex)
	if err != nil {
		return fg, bg, fmt.Errorf("foreground: %w", err)
	}
	bg, err = palette.ParseHex(bgHex)
	if err != nil {
		return fg, bg, fmt.Errorf("background: %w", err)
	}
	return fg, bg, nil
}

func (s Style) spacing() float64 {
	if s.Spacing <= 0 {
		return 1.0
	}
	return s.Spacing
}

// transparent returns a copy of the style with a fully transparent
// background, used for intermediate renders that get composited later.
func (s Style) transparent() Style {
	c := s
	c.Background = "#00000000"
	return c
}
