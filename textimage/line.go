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
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"textimg/fontlib"
)

// RenderLine renders a single line of text onto a canvas of the given
// width. The canvas height is the face's reference line height scaled
// by the style's spacing, so two lines of different text at the same
// size always get canvases of identical height. The text strip is
// cropped horizontally to its ink, placed per the style's justification
// with a one pixel inset from the edge, and centered vertically.
func RenderLine(text string, f *fontlib.Font, size, width int, st Style) (*image.RGBA, error) {
	if size < 1 {
		return nil, fmt.Errorf("font size %d, want >= 1", size)
	}
	if width < 1 {
		return nil, fmt.Errorf("canvas width %d, want >= 1", width)
	}
	fg, bg, err := st.colors()
	if err != nil {
		return nil, err
	}

	face, err := f.Face(float64(size))
	if err != nil {
		return nil, err
	}
	defer face.Close()

	asc, desc := refMetrics(face)
	refH := asc + desc
	if refH <= 0 {
		refH = size
	}

	// Draw on a transparent scratch buffer with a generous margin so
	// hinting shifts and glyph overhang never clip. The vertical crop
	// band is fixed by the reference metrics, not by the ink, so the
	// baseline lands at the same canvas position for every text.
	pad := size
	adv := font.MeasureString(face, text).Ceil()
	scratch := image.NewRGBA(image.Rect(0, 0, adv+2*pad, refH+2*pad))
	d := &font.Drawer{
		Dst:  scratch,
		Src:  image.NewUniform(fg),
		Face: face,
		Dot:  fixed.P(pad, pad+asc),
	}
	d.DrawString(text)

	ink := Bounds(scratch, color.RGBA{}, false)
	strip := scratch.SubImage(image.Rect(ink.Min.X, pad, ink.Max.X, pad+refH)).(*image.RGBA)

	outH := int(math.Floor(float64(refH) * st.spacing()))
	if outH < 1 {
		outH = 1
	}
	out := image.NewRGBA(image.Rect(0, 0, width, outH))
	draw.Draw(out, out.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	sb := strip.Bounds()
	tw, th := sb.Dx(), sb.Dy()
	var x int
	switch st.Justify {
	case JustifyLeft:
		x = 1
	case JustifyRight:
		x = width - tw - 1
	default:
		x = int(math.Floor(float64(width-tw) / 2))
	}
	y := int(math.Floor(float64(outH-th) / 2))

	draw.Draw(out, image.Rect(x, y, x+tw, y+th), strip, sb.Min, draw.Over)
	return out, nil
}
