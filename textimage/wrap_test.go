/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package textimage

import (
	"reflect"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestWrapWordsGreedy(t *testing.T) {
	words := strings.Fields("a bb ccc dddd eeeee")
	got := wrapWords(words, 5)
	want := []string{"a bb", "ccc", "dddd", "eeeee"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("wrapWords() = %v, want %v", got, want)
	}
}

func TestWrapWordsSingleLine(t *testing.T) {
	got := wrapWords(strings.Fields("all on one line"), 100)
	if !reflect.DeepEqual(got, []string{"all on one line"}) {
		t.Fatalf("wrapWords() = %v, want one line", got)
	}
}

func TestWordWrapNeverBreaksWords(t *testing.T) {
	f := testFont(t)
	text := "a few reasonably extraordinary words"
	lines, size, err := WordWrap(text, f, 400, 3)
	if err != nil {
		t.Fatalf("WordWrap() error: %v", err)
	}
	if size < 1 {
		t.Fatalf("size = %d, want >= 1", size)
	}
	// the limit is raised to the longest word, so every word survives
	// intact and no line exceeds that limit
	limit := 3
	for _, w := range strings.Fields(text) {
		if n := utf8.RuneCountInString(w); n > limit {
			limit = n
		}
	}
	joined := strings.Join(lines, " ")
	if joined != text {
		t.Fatalf("wrapped lines %v lose or reorder words", lines)
	}
	for _, line := range lines {
		if n := utf8.RuneCountInString(line); n > limit {
			t.Fatalf("line %q has %d chars, limit %d", line, n, limit)
		}
	}
}

// The chosen size is maximal: it fits the width and the next size up
// does not.
func TestWordWrapSizeIsMaximal(t *testing.T) {
	f := testFont(t)
	lines, size, err := WordWrap("some words to wrap here", f, 400, 5)
	if err != nil {
		t.Fatalf("WordWrap() error: %v", err)
	}
	ok, err := linesFit(lines, f, size, 400)
	if err != nil {
		t.Fatalf("linesFit() error: %v", err)
	}
	if !ok {
		t.Fatalf("chosen size %d does not fit width", size)
	}
	ok, err = linesFit(lines, f, size+1, 400)
	if err != nil {
		t.Fatalf("linesFit() error: %v", err)
	}
	if ok {
		t.Fatalf("size %d fits but %d was chosen", size+1, size)
	}
}

func TestWordWrapCollapsesWhitespace(t *testing.T) {
	f := testFont(t)
	lines, _, err := WordWrap("  hello \t  world \n again  ", f, 300, 100)
	if err != nil {
		t.Fatalf("WordWrap() error: %v", err)
	}
	if !reflect.DeepEqual(lines, []string{"hello world again"}) {
		t.Fatalf("WordWrap() lines = %v, want collapsed single line", lines)
	}
}

func TestWordWrapEmptyText(t *testing.T) {
	f := testFont(t)
	for _, text := range []string{"", "   \t\n  "} {
		lines, size, err := WordWrap(text, f, 300, 5)
		if err != nil {
			t.Fatalf("WordWrap(%q) error: %v", text, err)
		}
		if !reflect.DeepEqual(lines, []string{""}) || size != 1 {
			t.Fatalf("WordWrap(%q) = (%v, %d), want ([\"\"], 1)", text, lines, size)
		}
	}
}

func TestWordWrapInvalidWidth(t *testing.T) {
	f := testFont(t)
	if _, _, err := WordWrap("text", f, 0, 5); err == nil {
		t.Fatalf("width 0 accepted")
	}
}
