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
	"image/color"
)

// Bounds returns the tight bounding box of the pixels of interest in
// img, in the image's own coordinate space. With foreground true the
// box encloses every pixel exactly equal to match; with foreground
// false it encloses every pixel that differs from match. Left and top
// edges are inclusive, right and bottom exclusive. When no pixel
// qualifies, the full extent of the affected axis is returned, so the
// result is always a usable crop rectangle.
func Bounds(img image.Image, match color.Color, foreground bool) image.Rectangle {
	b := img.Bounds()
	mr, mg, mb, ma := match.RGBA()

	hit := func(x, y int) bool {
		r, g, bl, a := img.At(x, y).RGBA()
		equal := r == mr && g == mg && bl == mb && a == ma
		return equal == foreground
	}

	left, right := b.Min.X, b.Max.X
	top, bottom := b.Min.Y, b.Max.Y

	foundLeft := false
scanLeft:
	for x := b.Min.X; x < b.Max.X; x++ {
		for y := b.Min.Y; y < b.Max.Y; y++ {
			if hit(x, y) {
				left = x
				foundLeft = true
				break scanLeft
			}
		}
	}
	foundRight := false
scanRight:
	for x := b.Max.X - 1; x >= b.Min.X; x-- {
		for y := b.Min.Y; y < b.Max.Y; y++ {
			if hit(x, y) {
				right = x + 1
				foundRight = true
				break scanRight
			}
		}
	}
	foundTop := false
scanTop:
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if hit(x, y) {
				top = y
				foundTop = true
				break scanTop
			}
		}
	}
	foundBottom := false
scanBottom:
	for y := b.Max.Y - 1; y >= b.Min.Y; y-- {
		for x := b.Min.X; x < b.Max.X; x++ {
			if hit(x, y) {
				bottom = y + 1
				foundBottom = true
				break scanBottom
			}
		}
	}

	if !foundLeft || !foundRight || left >= right {
		left, right = b.Min.X, b.Max.X
	}
	if !foundTop || !foundBottom || top >= bottom {
		top, bottom = b.Min.Y, b.Max.Y
	}
	return image.Rect(left, top, right, bottom)
}
