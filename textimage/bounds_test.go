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
	"image/draw"
	"testing"
)

func filled(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: c}, image.Point{}, draw.Src)
	return img
}

func TestBoundsForegroundPixels(t *testing.T) {
	fg := color.RGBA{R: 200, G: 10, B: 10, A: 255}
	img := filled(40, 30, color.RGBA{})
	img.SetRGBA(5, 7, fg)
	img.SetRGBA(20, 12, fg)
	img.SetRGBA(33, 25, fg)

	got := Bounds(img, fg, true)
	want := image.Rect(5, 7, 34, 26)
	if got != want {
		t.Fatalf("Bounds() = %v, want %v", got, want)
	}
}

func TestBoundsSinglePixel(t *testing.T) {
	fg := color.RGBA{A: 255}
	img := filled(10, 10, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	img.SetRGBA(3, 4, fg)

	if got, want := Bounds(img, fg, true), image.Rect(3, 4, 4, 5); got != want {
		t.Fatalf("Bounds() = %v, want %v", got, want)
	}
}

func TestBoundsBackgroundMode(t *testing.T) {
	bg := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	img := filled(30, 20, bg)
	ink := color.RGBA{R: 1, G: 2, B: 3, A: 255}
	for y := 5; y < 9; y++ {
		for x := 10; x < 15; x++ {
			img.SetRGBA(x, y, ink)
		}
	}

	// foreground=false: everything that is not the background counts
	if got, want := Bounds(img, bg, false), image.Rect(10, 5, 15, 9); got != want {
		t.Fatalf("Bounds() = %v, want %v", got, want)
	}
}

func TestBoundsNoMatchFallsBackToFullImage(t *testing.T) {
	img := filled(12, 8, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	absent := color.RGBA{R: 9, G: 9, B: 9, A: 255}

	if got, want := Bounds(img, absent, true), image.Rect(0, 0, 12, 8); got != want {
		t.Fatalf("Bounds() with no match = %v, want full image %v", got, want)
	}
}

func TestBoundsUniformBackgroundMode(t *testing.T) {
	bg := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	img := filled(12, 8, bg)

	// nothing differs from the background; full extent on both axes
	if got, want := Bounds(img, bg, false), image.Rect(0, 0, 12, 8); got != want {
		t.Fatalf("Bounds() on uniform image = %v, want %v", got, want)
	}
}
