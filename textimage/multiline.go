/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package textimage

import (
	"image"
	"image/draw"

	"textimg/fontlib"
)

// RenderMultiline stacks the given lines onto one canvas. Every line is
// rendered through RenderLine at the same size, so all rows have the
// same height and the canvas is width x rows*lineheight. The background
// is filled once for the whole canvas; the individual lines composite
// over it with transparent backgrounds. An empty slice renders as a
// single blank line.
func RenderMultiline(lines []string, f *fontlib.Font, size, width int, st Style) (*image.RGBA, error) {
	if len(lines) == 0 {
		lines = []string{""}
	}
	_, bg, err := st.colors()
	if err != nil {
		return nil, err
	}
	lineStyle := st.transparent()

	first, err := RenderLine(lines[0], f, size, width, lineStyle)
	if err != nil {
		return nil, err
	}
	h := first.Bounds().Dy()

	out := image.NewRGBA(image.Rect(0, 0, width, h*len(lines)))
	draw.Draw(out, out.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	draw.Draw(out, image.Rect(0, 0, width, h), first, first.Bounds().Min, draw.Over)
	for i := 1; i < len(lines); i++ {
		img, err := RenderLine(lines[i], f, size, width, lineStyle)
		if err != nil {
			return nil, err
		}
		draw.Draw(out, image.Rect(0, i*h, width, (i+1)*h), img, img.Bounds().Min, draw.Over)
	}
	return out, nil
}
