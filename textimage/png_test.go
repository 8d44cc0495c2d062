/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package textimage

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestWritePNGRoundTrip(t *testing.T) {
	f := testFont(t)
	img, err := RenderLine("Saved", f, 24, 200, Style{Background: "#ffffffff"})
	if err != nil {
		t.Fatalf("RenderLine() error: %v", err)
	}

	path := filepath.Join(t.TempDir(), "out", "saved.png")
	if err := WritePNG(path, img); err != nil {
		t.Fatalf("WritePNG() error: %v", err)
	}

	fh, err := os.Open(path)
	if err != nil {
		t.Fatalf("open written png: %v", err)
	}
	defer fh.Close()
	decoded, err := png.Decode(fh)
	if err != nil {
		t.Fatalf("decode written png: %v", err)
	}
	if decoded.Bounds() != img.Bounds() {
		t.Fatalf("decoded bounds %v, want %v", decoded.Bounds(), img.Bounds())
	}
}

func TestEncodePNG(t *testing.T) {
	f := testFont(t)
	img, err := RenderLine("Buf", f, 18, 120, Style{})
	if err != nil {
		t.Fatalf("RenderLine() error: %v", err)
	}
	var buf bytes.Buffer
	if err := EncodePNG(&buf, img); err != nil {
		t.Fatalf("EncodePNG() error: %v", err)
	}
	decoded, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode encoded png: %v", err)
	}
	if decoded.Bounds() != img.Bounds() {
		t.Fatalf("decoded bounds %v, want %v", decoded.Bounds(), img.Bounds())
	}
}

func TestThumbnailScalesDown(t *testing.T) {
	f := testFont(t)
	img, err := RenderLine("Thumbnail", f, 40, 400, Style{Background: "#ffffffff"})
	if err != nil {
		t.Fatalf("RenderLine() error: %v", err)
	}

	th := Thumbnail(img, 100)
	if th.Bounds().Dx() != 100 {
		t.Fatalf("thumbnail width = %d, want 100", th.Bounds().Dx())
	}
	wantH := img.Bounds().Dy() * 100 / img.Bounds().Dx()
	if th.Bounds().Dy() != wantH {
		t.Fatalf("thumbnail height = %d, want %d", th.Bounds().Dy(), wantH)
	}

	// already small enough: unchanged dimensions
	same := Thumbnail(th, 200)
	if same.Bounds() != th.Bounds() {
		t.Fatalf("small image rescaled: %v, want %v", same.Bounds(), th.Bounds())
	}
}
