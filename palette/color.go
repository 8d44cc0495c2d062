/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package palette

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
)

// HSV converts a hue in degrees plus saturation/value fractions in [0,1]
// to an RGBA color with full alpha. Channels are rounded half-up so the
// published palette hex values stay stable.
func HSV(hue int, s, v float64) color.RGBA {
	h := float64(NormalizeHue(hue)) / 60
	i := int(h)
	f := h - float64(i)
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))

	var r, g, b float64
	switch i % 6 {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	case 5:
		r, g, b = v, p, q
	}
	return color.RGBA{
		R: uint8(math.Round(r * 255)),
		G: uint8(math.Round(g * 255)),
		B: uint8(math.Round(b * 255)),
		A: 255,
	}
}

// Hex formats a color as a lowercase "#rrggbbff" string. Alpha is always
// written as ff; palettes are fully opaque.
func Hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02xff", c.R, c.G, c.B)
}

// ParseHex canonicalizes a "#rrggbb" or "#rrggbbaa" string into an RGBA
// tuple. A 6-digit color gets full alpha.
func ParseHex(s string) (color.RGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 && len(h) != 8 {
		return color.RGBA{}, fmt.Errorf("hex color %q: want 6 or 8 digits", s)
	}
	n, err := strconv.ParseUint(h, 16, 64)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("hex color %q: %w", s, err)
	}
	if len(h) == 6 {
		n = n<<8 | 0xff
	}
	return color.RGBA{
		R: uint8(n >> 24),
		G: uint8(n >> 16),
		B: uint8(n >> 8),
		A: uint8(n),
	}, nil
}
