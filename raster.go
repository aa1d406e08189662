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

import (
	"image"
	"image/color"

	"seehuhn.de/go/geom/rect"
)

// geometry describes the integer pixel layout of one icon: the image
// square, the offset of the centred drawable square, and the cell
// side length.
type geometry struct {
	size   int // image side length in pixels
	origin int // offset of the drawable square from each image edge
	cell   int // cell side length in pixels
}

// geometry validates the generator parameters and computes the pixel
// layout. All arithmetic is integer with truncating division; the
// remainder from dividing the drawable area into cells is split
// evenly onto both sides so the pattern stays centred.
func (g *Generator) geometry() (geometry, error) {
	if g.Size < 1 {
		return geometry{}, configErrorf("image size %d, must be at least 1", g.Size)
	}
	if g.Padding < 0 || g.Padding > 49 {
		return geometry{}, configErrorf("padding %d%%, must be between 0 and 49", g.Padding)
	}
	if g.Grid < 1 {
		return geometry{}, configErrorf("grid size %d, must be at least 1", g.Grid)
	}
	if g.Grid > MaxGrid {
		needed := g.Grid * ((g.Grid + 1) / 2)
		return geometry{}, configErrorf("grid size %d needs %d pattern bits, the digest provides %d",
			g.Grid, needed, patternBits)
	}

	pad := g.Size * g.Padding / 100
	inner := g.Size - 2*pad
	if inner < 1 {
		// Unreachable for padding <= 49; kept as a guard for the
		// invariant the fill loops rely on.
		return geometry{}, configErrorf("padding %d%% leaves no drawable area", g.Padding)
	}

	cell := inner / g.Grid
	if cell < 1 {
		return geometry{}, configErrorf("grid size %d does not fit into %d drawable pixels", g.Grid, inner)
	}

	origin := pad + (inner-cell*g.Grid)/2

	return geometry{size: g.Size, origin: origin, cell: cell}, nil
}

// bounds returns the full image square in device coordinates.
func (geo geometry) bounds() rect.Rect {
	return rect.Rect{URx: float64(geo.size), URy: float64(geo.size)}
}

// cellRect returns the device rectangle covered by the pattern cell
// at (row, col). Coordinates are integer-aligned.
func (geo geometry) cellRect(row, col int) rect.Rect {
	x0 := float64(geo.origin + col*geo.cell)
	y0 := float64(geo.origin + row*geo.cell)
	side := float64(geo.cell)
	return rect.Rect{LLx: x0, LLy: y0, URx: x0 + side, URy: y0 + side}
}

// rasterise fills a fresh RGBA buffer: the background colour
// everywhere, then the icon colour over every "on" cell.
func (g *Generator) rasterise(geo geometry, pat pattern, col color.RGBA) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, geo.size, geo.size))

	fillRect(dst, geo.bounds(), g.Background)
	for row := 0; row < pat.grid; row++ {
		for c := 0; c < pat.grid; c++ {
			if pat.at(row, c) {
				fillRect(dst, geo.cellRect(row, c), col)
			}
		}
	}

	return dst
}

// fillRect fills an integer-aligned device rectangle with a single
// colour, overwriting whatever is there. Rows are written as slices
// of dst.Pix, offset by dst.Stride.
func fillRect(dst *image.RGBA, r rect.Rect, col color.RGBA) {
	x0, y0 := int(r.LLx), int(r.LLy)
	x1, y1 := int(r.URx), int(r.URy)

	for y := y0; y < y1; y++ {
		row := dst.Pix[y*dst.Stride+4*x0 : y*dst.Stride+4*x1]
		for i := 0; i < len(row); i += 4 {
			row[i+0] = col.R
			row[i+1] = col.G
			row[i+2] = col.B
			row[i+3] = col.A
		}
	}
}
