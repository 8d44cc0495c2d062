/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package palette generates harmonious hex color palettes from hue
// arithmetic. Hues are integer degrees in [0,360); all arithmetic wraps
// back into that range instead of clamping.
package palette

// Common hue offset schemes.
const (
	OffsetTriadic       = 120
	OffsetTetradic      = 90
	OffsetComplementary = 180
)

// NormalizeHue wraps an arbitrary integer hue into [0,360).
func NormalizeHue(hue int) int {
	h := hue % 360
	if h < 0 {
		h += 360
	}
	return h
}

// HueOffsets returns floor(360/offset) hues spaced evenly starting from
// hue. The first element is NormalizeHue(hue); consecutive elements
// differ by exactly offset (mod 360).
func HueOffsets(hue, offset int) []int {
	if offset <= 0 {
		return nil
	}
	n := 360 / offset
	hues := make([]int, 0, n)
	for i := 0; i < n; i++ {
		hues = append(hues, NormalizeHue(hue+i*offset))
	}
	return hues
}
