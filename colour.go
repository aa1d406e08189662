// seehuhn.de/go/identicon - deterministic identicon images
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package identicon

import "image/color"

// Limits for derived colour channels. Raw digest bytes are rescaled
// from the full 0-255 range into this band so that icons stay
// distinguishable from a white background and from dark UI chrome.
const (
	colourMin = 40
	colourMax = 215
)

// deriveColour maps the first three digest bytes to the icon colour.
func deriveColour(digest [DigestSize]byte) color.RGBA {
	return color.RGBA{
		R: rescale(digest[0]),
		G: rescale(digest[1]),
		B: rescale(digest[2]),
		A: 255,
	}
}

// rescale maps a raw byte linearly onto [colourMin, colourMax].
// The mapping is monotone, so the full digest range still spans a
// diverse set of hues.
func rescale(v byte) uint8 {
	return uint8(colourMin + int(v)*(colourMax-colourMin)/255)
}
