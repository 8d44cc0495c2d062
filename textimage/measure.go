/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package textimage

import (
	"golang.org/x/image/font"

	"textimg/fontlib"
)

// referenceGlyphs covers tall ascenders, deep descenders and full-height
// punctuation. Its vertical extent defines the line height for a face,
// so every line of the same face and size gets the same height no
// matter which characters it contains.
const referenceGlyphs = "AQTUbdfghjpqy|(){}[]"

// refMetrics returns the reference ascent and descent in pixels for a
// face, measured from the ink extent of the reference glyphs relative
// to the baseline.
func refMetrics(face font.Face) (ascent, descent int) {
	b, _ := font.BoundString(face, referenceGlyphs)
	ascent = (-b.Min.Y).Ceil()
	descent = b.Max.Y.Ceil()
	return ascent, descent
}

// refLineHeight is the reference ink height of a line at the given
// size, independent of the text rendered.
func refLineHeight(f *fontlib.Font, size int) (int, error) {
	face, err := f.Face(float64(size))
	if err != nil {
		return 0, err
	}
	defer face.Close()
	asc, desc := refMetrics(face)
	h := asc + desc
	if h <= 0 {
		h = size
	}
	return h, nil
}

// inkWidth returns the horizontal ink extent of s in pixels, which can
// differ from the advance width for slanted or overhanging glyphs.
func inkWidth(face font.Face, s string) int {
	b, _ := font.BoundString(face, s)
	return (b.Max.X - b.Min.X).Ceil()
}
