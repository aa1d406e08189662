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

// Package identicon derives small square raster images from seed
// strings. The same seed always yields the same image, different seeds
// yield visually distinct images, and the cell pattern is symmetric
// under horizontal mirroring.
package identicon

import (
	"fmt"
	"image"
	"image/color"

	"github.com/zeebo/blake3"
)

// DigestSize is the number of bytes every digest function must return.
// The first three bytes select the icon colour; the remaining 29 bytes
// feed the cell pattern.
const DigestSize = 32

// Default generator parameters.
const (
	// DefaultSize is the default image side length in pixels.
	DefaultSize = 420

	// DefaultGrid is the default number of pattern cells per axis.
	DefaultGrid = 5

	// DefaultPadding is the default border width as a percentage of
	// the image side length.
	DefaultPadding = 8
)

// Generator derives identicon images from seed strings. Create one
// instance, adjust the exported fields as needed, and reuse it for
// multiple seeds. Each call to [Generator.Render] allocates a fresh
// output buffer, so a Generator whose fields are not modified is safe
// for concurrent use.
type Generator struct {
	// Size is the side length of the generated image in pixels.
	// Must be at least 1.
	Size int

	// Grid is the number of pattern cells along each axis.
	// Must be between 1 and [MaxGrid].
	Grid int

	// Padding is the border width as a percentage of Size.
	// Must be between 0 and 49; 50 would leave no drawable area.
	Padding int

	// Background is the colour of the border and of "off" cells.
	Background color.RGBA

	// Digest maps the seed to a fixed-size digest. Must be
	// deterministic. The default is BLAKE3.
	Digest func([]byte) [DigestSize]byte
}

// NewGenerator returns a Generator with the default parameters: a
// 420-pixel image, a 5x5 grid, 8 percent padding, a white background,
// and a BLAKE3 digest.
func NewGenerator() *Generator {
	return &Generator{
		Size:       DefaultSize,
		Grid:       DefaultGrid,
		Padding:    DefaultPadding,
		Background: color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Digest:     blake3.Sum256,
	}
}

// Render generates the identicon for the given seed. The returned
// buffer is freshly allocated and owned by the caller. Identical
// parameters and seed always produce byte-identical buffers.
func (g *Generator) Render(seed string) (*image.RGBA, error) {
	geo, err := g.geometry()
	if err != nil {
		return nil, err
	}

	digest := g.Digest([]byte(seed))
	col := deriveColour(digest)
	pat := derivePattern(digest, g.Grid)

	return g.rasterise(geo, pat, col), nil
}

// Generate renders the identicon for the given seed using the default
// parameters.
func Generate(seed string) (*image.RGBA, error) {
	return NewGenerator().Render(seed)
}

// ConfigError reports an invalid combination of generator parameters.
type ConfigError string

func (e ConfigError) Error() string {
	return "identicon: " + string(e)
}

func configErrorf(format string, a ...any) error {
	return ConfigError(fmt.Sprintf(format, a...))
}
