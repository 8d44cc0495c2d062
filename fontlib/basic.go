/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package fontlib

import (
	"strings"
	"sync"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
)

// Style keys accepted by Basic. Any other value resolves to the
// built-in regular font without consulting installed fonts.
const (
	StyleSerif     = "serif"
	StyleSansSerif = "sans-serif"
	StyleMonospace = "monospace"
)

// styleChains maps a style key plus bold/italic modifiers to an ordered
// list of filename stems to try. The lists mix the common commercial
// names with their classic Windows 8.3 stems and the free metric
// substitutes shipped by Linux distributions.
var styleChains = map[string][]string{
	"serif": {
		"Garamond", "Georgia", "Baskerville", "Times New Roman", "times",
		"FreeSerif", "DejaVuSerif",
	},
	"serif-bold": {
		"Georgia Bold", "georgiab", "Times New Roman Bold", "timesbd",
		"FreeSerifBold", "DejaVuSerif-Bold",
	},
	"serif-italic": {
		"Georgia Italic", "georgiai", "Times New Roman Italic", "timesi",
		"FreeSerifItalic", "DejaVuSerif-Italic",
	},
	"serif-bold-italic": {
		"Georgia Bold Italic", "georgiaz", "Times New Roman Bold Italic", "timesbi",
		"FreeSerifBoldItalic", "DejaVuSerif-BoldItalic",
	},
	"sans-serif": {
		"Helvetica", "Arial", "arial", "Verdana", "verdana", "Tahoma",
		"FreeSans", "DejaVuSans",
	},
	"sans-serif-bold": {
		"Arial Bold", "arialbd", "Verdana Bold", "verdanab",
		"FreeSansBold", "DejaVuSans-Bold",
	},
	"sans-serif-italic": {
		"Arial Italic", "ariali", "Verdana Italic", "verdanai",
		"FreeSansOblique", "DejaVuSans-Oblique",
	},
	"sans-serif-bold-italic": {
		"Arial Bold Italic", "arialbi", "Verdana Bold Italic", "verdanaz",
		"FreeSansBoldOblique", "DejaVuSans-BoldOblique",
	},
	"monospace": {
		"Courier New", "cour", "Courier", "Monaco", "Consolas",
		"FreeMono", "DejaVuSansMono",
	},
	"monospace-bold": {
		"Courier New Bold", "courbd", "Consolas Bold",
		"FreeMonoBold", "DejaVuSansMono-Bold",
	},
	"monospace-italic": {
		"Courier New Italic", "couri", "Consolas Italic",
		"FreeMonoOblique", "DejaVuSansMono-Oblique",
	},
	"monospace-bold-italic": {
		"Courier New Bold Italic", "courbi", "Consolas Bold Italic",
		"FreeMonoBoldOblique", "DejaVuSansMono-BoldOblique",
	},
}

// Basic resolves a usable font for a generic style key, preferring an
// installed font from the given path list and falling back to the
// embedded Go fonts. It never fails: a requested bold or italic variant
// that is not installed degrades to the plain variant of the same
// style, and when nothing is installed at all the embedded font for the
// requested style and modifiers is returned. An unrecognized style key
// skips the installed fonts entirely and returns the fixed built-in
// regular font.
func Basic(style string, fonts []string, bold, italic bool) *Font {
	key, ok := normalizeStyle(style)
	if !ok {
		return builtin(StyleSansSerif, false, false)
	}

	if f := fromChain(chainKey(key, bold, italic), fonts); f != nil {
		return f
	}
	// variant not installed; retry the plain style before giving up on
	// the system fonts entirely
	if bold || italic {
		if f := fromChain(key, fonts); f != nil {
			return f
		}
	}
	return builtin(key, bold, italic)
}

func normalizeStyle(style string) (string, bool) {
	switch strings.ToLower(strings.TrimSpace(style)) {
	case StyleSerif:
		return StyleSerif, true
	case StyleSansSerif:
		return StyleSansSerif, true
	case StyleMonospace:
		return StyleMonospace, true
	default:
		return "", false
	}
}

func chainKey(style string, bold, italic bool) string {
	switch {
	case bold && italic:
		return style + "-bold-italic"
	case bold:
		return style + "-bold"
	case italic:
		return style + "-italic"
	default:
		return style
	}
}

func fromChain(key string, fonts []string) *Font {
	for _, name := range styleChains[key] {
		if f, err := Get(name, fonts); err == nil {
			return f
		}
	}
	return nil
}

// builtinData selects the embedded Go font bytes for a style. The Go
// fonts have no dedicated serif family, so serif and sans-serif share
// the proportional variants.
func builtinData(style string, bold, italic bool) []byte {
	if style == StyleMonospace {
		switch {
		case bold && italic:
			return gomonobolditalic.TTF
		case bold:
			return gomonobold.TTF
		case italic:
			return gomonoitalic.TTF
		default:
			return gomono.TTF
		}
	}
	switch {
	case bold && italic:
		return gobolditalic.TTF
	case bold:
		return gobold.TTF
	case italic:
		return goitalic.TTF
	default:
		return goregular.TTF
	}
}

var builtinCache sync.Map // key string -> *Font

// builtin returns the embedded fallback font, parsed once per variant.
// Parsing embedded data cannot fail at runtime, so a parse error here
// is a build defect and panics.
func builtin(style string, bold, italic bool) *Font {
	key := chainKey(style, bold, italic)
	if f, ok := builtinCache.Load(key); ok {
		return f.(*Font)
	}
	f, err := LoadBytes(builtinData(style, bold, italic), "")
	if err != nil {
		panic("fontlib: embedded font " + key + " failed to parse: " + err.Error())
	}
	builtinCache.Store(key, f)
	return f
}
