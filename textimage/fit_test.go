/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package textimage

import (
	"testing"

	"textimg/palette"
)

func TestFitWidthDimensionsAndCrop(t *testing.T) {
	f := testFont(t)
	st := Style{Foreground: "#000000ff", Background: "#ffffffff"}
	img, err := FitWidth("a handful of words to wrap across lines", f, 320, 8, st)
	if err != nil {
		t.Fatalf("FitWidth() error: %v", err)
	}
	if img.Bounds().Dx() != 320 {
		t.Fatalf("width = %d, want 320", img.Bounds().Dx())
	}
	h := img.Bounds().Dy()
	if h <= 0 {
		t.Fatalf("height = %d, want > 0", h)
	}

	// vertically tight: first and last rows both carry text pixels
	fg, _ := palette.ParseHex("#000000ff")
	ink := Bounds(img, fg, true)
	if ink.Min.Y != 0 || ink.Max.Y != h {
		t.Fatalf("ink rows [%d,%d), want [0,%d)", ink.Min.Y, ink.Max.Y, h)
	}
}

func TestFitBoxExactDimensions(t *testing.T) {
	f := testFont(t)
	for _, v := range []Vertical{VerticalTop, VerticalCenter, VerticalBottom} {
		img, err := FitBox("fit this text into the box", f, 200, 120, 1, Style{}, v)
		if err != nil {
			t.Fatalf("FitBox() error: %v", err)
		}
		if img.Bounds().Dx() != 200 || img.Bounds().Dy() != 120 {
			t.Fatalf("FitBox() dims = %dx%d, want 200x120",
				img.Bounds().Dx(), img.Bounds().Dy())
		}
	}
}

func TestFitBoxVerticalAlignment(t *testing.T) {
	f := testFont(t)
	const w, h = 240, 160
	st := Style{Foreground: "#000000ff", Background: "#ffffffff"}
	fg, _ := palette.ParseHex("#000000ff")

	top, err := FitBox("short text", f, w, h, 2, st, VerticalTop)
	if err != nil {
		t.Fatalf("FitBox() error: %v", err)
	}
	if ink := Bounds(top, fg, true); ink.Min.Y != 0 {
		t.Fatalf("top aligned ink starts at row %d, want 0", ink.Min.Y)
	}

	bottom, err := FitBox("short text", f, w, h, 2, st, VerticalBottom)
	if err != nil {
		t.Fatalf("FitBox() error: %v", err)
	}
	if ink := Bounds(bottom, fg, true); ink.Max.Y != h {
		t.Fatalf("bottom aligned ink ends at row %d, want %d", ink.Max.Y, h)
	}

	center, err := FitBox("short text", f, w, h, 2, st, VerticalCenter)
	if err != nil {
		t.Fatalf("FitBox() error: %v", err)
	}
	ink := Bounds(center, fg, true)
	topGap := ink.Min.Y
	bottomGap := h - ink.Max.Y
	if diff := topGap - bottomGap; diff < -1 || diff > 1 {
		t.Fatalf("centered gaps %d and %d differ by more than 1", topGap, bottomGap)
	}
}

func TestFitBoxTinyBoxStillExactSize(t *testing.T) {
	f := testFont(t)
	img, err := FitBox("words that cannot possibly fit nicely", f, 30, 12, 1, Style{}, VerticalTop)
	if err != nil {
		t.Fatalf("FitBox() error: %v", err)
	}
	if img.Bounds().Dx() != 30 || img.Bounds().Dy() != 12 {
		t.Fatalf("FitBox() dims = %dx%d, want 30x12", img.Bounds().Dx(), img.Bounds().Dy())
	}
}

func TestFitBoxInvalidHeight(t *testing.T) {
	f := testFont(t)
	if _, err := FitBox("x", f, 100, 0, 1, Style{}, VerticalTop); err == nil {
		t.Fatalf("height 0 accepted")
	}
}
