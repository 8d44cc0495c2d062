/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package fontlib locates and loads fonts installed on the system.
// It scans the platform font directories, resolves logical names or style
// keys ("serif", "monospace", ...) to concrete font handles and falls
// back to embedded Go fonts when nothing usable is installed. Resolution
// never hard-fails: a file that looks like a font but does not parse is
// treated as a non-match and scanning continues.
package fontlib

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// ErrNotFound signals that no candidate font could be resolved.
var ErrNotFound = errors.New("font not found")

// fontDPI is the resolution used for all faces; sizes are then pixel
// sizes, which keeps measurement and rendering consistent.
const fontDPI = 72

// Font is a loaded font. It is stateless between calls: Face derives an
// independent size variant without mutating the parsed font, so a Font
// may be shared as long as each goroutine uses its own faces.
type Font struct {
	parsed *opentype.Font
	path   string
}

// Load reads and parses a font file. Collections (.ttc/.otc) yield their
// first font.
func Load(path string) (*Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font %s: %w", path, err)
	}
	return LoadBytes(data, path)
}

// LoadBytes parses raw font data. The path is kept for diagnostics only
// and may be empty.
func LoadBytes(data []byte, path string) (*Font, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".ttc" || ext == ".otc" {
		coll, err := opentype.ParseCollection(data)
		if err != nil {
			return nil, fmt.Errorf("parse font collection %s: %w", path, err)
		}
		f, err := coll.Font(0)
		if err != nil {
			return nil, fmt.Errorf("font collection %s has no usable font: %w", path, err)
		}
		return &Font{parsed: f, path: path}, nil
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font %s: %w", path, err)
	}
	return &Font{parsed: f, path: path}, nil
}

// Path returns the file the font was loaded from, or "" for embedded
// fonts.
func (f *Font) Path() string { return f.path }

// Name returns the family name from the font's name table.
func (f *Font) Name() string {
	var buf sfnt.Buffer
	name, err := f.parsed.Name(&buf, sfnt.NameIDFamily)
	if err != nil {
		return ""
	}
	return name
}

// Style returns the subfamily name ("Regular", "Bold Italic", ...).
func (f *Font) Style() string {
	var buf sfnt.Buffer
	name, err := f.parsed.Name(&buf, sfnt.NameIDSubfamily)
	if err != nil {
		return ""
	}
	return name
}

// Face creates a new face at the given pixel size. Each face is an
// independent, non-mutating view of the font.
func (f *Font) Face(size float64) (font.Face, error) {
	face, err := opentype.NewFace(f.parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     fontDPI,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create face at %.1fpx: %w", size, err)
	}
	return face, nil
}

// Get resolves a font by filename stem (extension stripped) from a list
// of font file paths. The first path whose stem equals name and which
// parses as a font wins; files that match by name but fail to parse are
// skipped. Returns ErrNotFound when no candidate loads.
func Get(name string, fonts []string) (*Font, error) {
	for _, path := range fonts {
		stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		if stem != name {
			continue
		}
		f, err := Load(path)
		if err != nil {
			// matched by name but not a usable font; keep scanning
			continue
		}
		return f, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
}
