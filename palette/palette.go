/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package palette

import "math/rand/v2"

// Palette maps fixed variant keys to "#rrggbbff" hex colors. The key set
// depends on the constructor: Monochrome and DualHue use
// light/dark-saturated/desaturated, Random uses primary/secondary
// variants.
type Palette map[string]string

// Variant keys produced by Monochrome and DualHue.
const (
	LightSaturated   = "light-saturated"
	LightDesaturated = "light-desaturated"
	DarkSaturated    = "dark-saturated"
	DarkDesaturated  = "dark-desaturated"
)

// Variant keys produced by Random.
const (
	PrimarySaturated     = "primary-saturated"
	PrimaryDesaturated   = "primary-desaturated"
	SecondarySaturated   = "secondary-saturated"
	SecondaryDesaturated = "secondary-desaturated"
)

// Monochrome builds a four-variant palette from a single hue. The HSV
// recipes are fixed: 80%/90% light-saturated, 80%/30% dark-saturated,
// 20%/100% light-desaturated and 50%/20% dark-desaturated.
func Monochrome(hue int) Palette {
	return Palette{
		LightSaturated:   Hex(HSV(hue, 0.8, 0.9)),
		DarkSaturated:    Hex(HSV(hue, 0.8, 0.3)),
		LightDesaturated: Hex(HSV(hue, 0.2, 1.0)),
		DarkDesaturated:  Hex(HSV(hue, 0.5, 0.2)),
	}
}

// DualHue combines the dark variants of darkHue with the light variants
// of lightHue.
func DualHue(darkHue, lightHue int) Palette {
	dark := Monochrome(darkHue)
	light := Monochrome(lightHue)
	return Palette{
		LightSaturated:   light[LightSaturated],
		LightDesaturated: light[LightDesaturated],
		DarkSaturated:    dark[DarkSaturated],
		DarkDesaturated:  dark[DarkDesaturated],
	}
}

// Random builds a dual-hue palette from a random base hue using either a
// triadic or tetradic offset scheme, then randomly assigns the dark or
// the light pair as the primary color.
func Random() Palette {
	offset := 360 / (3 + rand.IntN(2))
	hues := HueOffsets(rand.IntN(360), offset)[:2]
	if rand.IntN(2) == 1 {
		hues[0], hues[1] = hues[1], hues[0]
	}
	base := DualHue(hues[0], hues[1])

	p := Palette{}
	if rand.IntN(2) == 1 {
		// dark primary
		p[PrimarySaturated] = base[DarkSaturated]
		p[PrimaryDesaturated] = base[DarkDesaturated]
		p[SecondarySaturated] = base[LightSaturated]
		p[SecondaryDesaturated] = base[LightDesaturated]
	} else {
		p[PrimarySaturated] = base[LightSaturated]
		p[PrimaryDesaturated] = base[LightDesaturated]
		p[SecondarySaturated] = base[DarkSaturated]
		p[SecondaryDesaturated] = base[DarkDesaturated]
	}
	return p
}

// Scheme picks a random foreground/background/text combination for
// caption rendering. Text is black or white; the foreground hue is
// quantized to 15 degree steps and the background hue sits either 30
// degrees (analogous) or 120 degrees (triadic) away. A white text pairs
// with a dark background (30% value) and a bright foreground (90%), a
// black text with the inverse.
func Scheme() (foreground, background, text string) {
	fgHue := rand.IntN(24) * 15
	offsets := [4]int{-30, 30, -120, 120}
	bgHue := NormalizeHue(fgHue + offsets[rand.IntN(4)])

	fgValue, bgValue := 0.3, 0.9
	text = "#000000ff"
	if rand.IntN(2) == 1 {
		fgValue, bgValue = 0.9, 0.3
		text = "#ffffffff"
	}
	foreground = Hex(HSV(fgHue, 0.8, fgValue))
	background = Hex(HSV(bgHue, 0.8, bgValue))
	return foreground, background, text
}
