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
	"strings"
	"unicode/utf8"

	"log/slog"

	"textimg/fontlib"
	applog "textimg/internal/log"
)

// WordWrap splits text into lines of at most minChars characters
// (raised to the longest word so words are never broken) and finds the
// largest font size whose widest line still fits the target pixel
// width. Whitespace runs are collapsed to single spaces before
// wrapping. Returns the wrapped lines and the chosen size; text with no
// words yields a single empty line at size 1.
func WordWrap(text string, f *fontlib.Font, width, minChars int) ([]string, int, error) {
	if width < 1 {
		return nil, 0, fmt.Errorf("target width %d, want >= 1", width)
	}
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}, 1, nil
	}

	maxChars := minChars
	for _, w := range words {
		if n := utf8.RuneCountInString(w); n > maxChars {
			maxChars = n
		}
	}
	if maxChars < 1 {
		maxChars = 1
	}
	lines := wrapWords(words, maxChars)

	// Start from a size that surely fits and grow until the widest line
	// would overflow; the last fitting size wins. The estimate can
	// overshoot for very wide glyphs, in which case the search walks
	// back down instead.
	size := width / (maxChars * 2)
	if size < 1 {
		size = 1
	}
	fits, err := linesFit(lines, f, size, width)
	if err != nil {
		return nil, 0, err
	}
	if !fits {
		for size > 1 {
			size--
			ok, err := linesFit(lines, f, size, width)
			if err != nil {
				return nil, 0, err
			}
			if ok {
				break
			}
		}
	} else {
		for {
			ok, err := linesFit(lines, f, size+1, width)
			if err != nil {
				return nil, 0, err
			}
			if !ok {
				break
			}
			size++
		}
	}

	applog.WithComponent("textimage").Debug("word wrap",
		slog.Int("lines", len(lines)),
		slog.Int("chars", maxChars),
		slog.Int("size", size))
	return lines, size, nil
}

// wrapWords packs words greedily into lines of at most maxChars runes,
// counting the single separating spaces. A word longer than maxChars
// cannot occur because the caller raises the limit first.
func wrapWords(words []string, maxChars int) []string {
	var lines []string
	var cur strings.Builder
	curLen := 0
	for _, w := range words {
		n := utf8.RuneCountInString(w)
		switch {
		case curLen == 0:
			cur.WriteString(w)
			curLen = n
		case curLen+1+n <= maxChars:
			cur.WriteByte(' ')
			cur.WriteString(w)
			curLen += 1 + n
		default:
			lines = append(lines, cur.String())
			cur.Reset()
			cur.WriteString(w)
			curLen = n
		}
	}
	if curLen > 0 {
		lines = append(lines, cur.String())
	}
	return lines
}

// linesFit reports whether the widest line's ink is strictly narrower
// than the target width at the given size.
func linesFit(lines []string, f *fontlib.Font, size, width int) (bool, error) {
	face, err := f.Face(float64(size))
	if err != nil {
		return false, err
	}
	defer face.Close()
	widest := 0
	for _, line := range lines {
		if w := inkWidth(face, line); w > widest {
			widest = w
		}
	}
	return widest < width, nil
}
