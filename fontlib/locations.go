/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package fontlib

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// candidateDirs are the well-known font directories across Windows,
// Linux and macOS. Paths for other platforms simply fail the existence
// check and drop out.
var candidateDirs = []string{
	`C:\Windows\Fonts`,
	"/usr/share/fonts",
	"/usr/local/share/fonts",
	"${HOME}/.local/share/fonts",
	"/Library/Fonts",
	"/System/Library/Fonts",
	"${HOME}/Library/Fonts",
}

// fontExtensions lists the file extensions treated as font files during
// a scan, lower case with leading dot.
var fontExtensions = map[string]bool{
	".ttf": true,
	".otf": true,
	".ttc": true,
	".otc": true,
}

// Locations returns the platform font directories that exist on this
// machine, as absolute paths. Environment references like ${HOME} are
// expanded before checking.
func Locations() []string {
	var dirs []string
	for _, d := range candidateDirs {
		expanded := os.ExpandEnv(d)
		if strings.TrimSpace(expanded) == "" {
			continue
		}
		abs, err := filepath.Abs(expanded)
		if err != nil {
			continue
		}
		info, err := os.Stat(abs)
		if err != nil || !info.IsDir() {
			continue
		}
		dirs = append(dirs, abs)
	}
	return dirs
}

// SystemFonts walks the given directories recursively and returns the
// absolute paths of all font files found, sorted. A nil slice of
// locations scans the platform defaults from Locations. Unreadable
// subtrees are skipped rather than failing the whole scan.
func SystemFonts(locations []string) []string {
	if locations == nil {
		locations = Locations()
	}
	var fonts []string
	for _, dir := range locations {
		root, err := filepath.Abs(dir)
		if err != nil {
			continue
		}
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				if d != nil && d.IsDir() {
					return fs.SkipDir
				}
				return nil
			}
			if d.IsDir() {
				return nil
			}
			if fontExtensions[strings.ToLower(filepath.Ext(path))] {
				fonts = append(fonts, path)
			}
			return nil
		})
	}
	sort.Strings(fonts)
	return fonts
}
