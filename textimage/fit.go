/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package textimage

import (
	"fmt"
	"image"
	"image/draw"
	"math"
	"unicode/utf8"

	"log/slog"

	"textimg/fontlib"
	applog "textimg/internal/log"
)

// FitWidth wraps text to the target width at the largest fitting size
// and renders it. The result has exactly the requested width; its
// height is the vertical ink extent of the rendered block, so there is
// no blank band above or below the text.
func FitWidth(text string, f *fontlib.Font, width, minChars int, st Style) (*image.RGBA, error) {
	lines, size, err := WordWrap(text, f, width, minChars)
	if err != nil {
		return nil, err
	}
	block, err := RenderMultiline(lines, f, size, width, st.transparent())
	if err != nil {
		return nil, err
	}
	fg, bg, err := st.colors()
	if err != nil {
		return nil, err
	}

	ink := Bounds(block, fg, true)
	cropped := block.SubImage(image.Rect(0, ink.Min.Y, width, ink.Max.Y)).(*image.RGBA)
	cb := cropped.Bounds()

	out := image.NewRGBA(image.Rect(0, 0, width, cb.Dy()))
	draw.Draw(out, out.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	draw.Draw(out, out.Bounds(), cropped, cb.Min, draw.Over)
	return out, nil
}

// FitBox fits text into a fixed width x height box. The search walks up
// from minChars per line: fewer characters mean more, narrower lines at
// a larger size, so the first character count whose block fits the
// height wins the largest possible text. When even a single line is too
// tall, the size shrinks until the height fits. The block is cropped to
// its vertical ink and aligned in the box per v; the result always has
// exactly the requested dimensions.
func FitBox(text string, f *fontlib.Font, width, height, minChars int, st Style, v Vertical) (*image.RGBA, error) {
	if height < 1 {
		return nil, fmt.Errorf("target height %d, want >= 1", height)
	}
	spacing := st.spacing()

	chars := minChars
	maxChars := utf8.RuneCountInString(text)
	var lines []string
	var size int
	for {
		var err error
		lines, size, err = WordWrap(text, f, width, chars)
		if err != nil {
			return nil, err
		}
		est, err := blockHeight(f, size, len(lines), spacing)
		if err != nil {
			return nil, err
		}
		if est <= height {
			break
		}
		if len(lines) == 1 || chars >= maxChars {
			// wrapping cannot shorten the block further; give up height
			// by shrinking the size instead
			for size > 1 {
				size--
				est, err = blockHeight(f, size, len(lines), spacing)
				if err != nil {
					return nil, err
				}
				if est <= height {
					break
				}
			}
			break
		}
		chars++
	}

	applog.WithComponent("textimage").Debug("box fit",
		slog.Int("lines", len(lines)),
		slog.Int("size", size),
		slog.Int("width", width),
		slog.Int("height", height))

	block, err := RenderMultiline(lines, f, size, width, st.transparent())
	if err != nil {
		return nil, err
	}
	fg, bg, err := st.colors()
	if err != nil {
		return nil, err
	}

	ink := Bounds(block, fg, true)
	cropped := block.SubImage(image.Rect(0, ink.Min.Y, width, ink.Max.Y)).(*image.RGBA)
	cb := cropped.Bounds()

	out := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(out, out.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	var y int
	switch v {
	case VerticalBottom:
		y = height - cb.Dy()
	case VerticalCenter:
		y = int(math.Floor(float64(height-cb.Dy()) / 2))
	default:
		y = 0
	}
	draw.Draw(out, image.Rect(0, y, width, y+cb.Dy()), cropped, cb.Min, draw.Over)
	return out, nil
}

// blockHeight predicts the vertical ink extent of n stacked lines at
// the given size: the first line contributes its reference ink height,
// each further line a full spacing-scaled row.
func blockHeight(f *fontlib.Font, size, n int, spacing float64) (int, error) {
	refH, err := refLineHeight(f, size)
	if err != nil {
		return 0, err
	}
	row := int(math.Floor(float64(refH) * spacing))
	if row < 1 {
		row = 1
	}
	return refH + (n-1)*row, nil
}
