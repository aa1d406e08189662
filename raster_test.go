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
	"fmt"
	"image/color"
	"testing"
)

// fixedDigest returns a digest function that ignores the seed.
func fixedDigest(d [DigestSize]byte) func([]byte) [DigestSize]byte {
	return func([]byte) [DigestSize]byte { return d }
}

// allOnes is a digest whose pattern bits are all set and whose colour
// is a uniform grey at the top of the contrast band.
func allOnes() [DigestSize]byte {
	var d [DigestSize]byte
	for i := range d {
		d[i] = 0xff
	}
	return d
}

func TestGeometry(t *testing.T) {
	cases := []struct {
		size, grid, padding int
		origin, cell        int
		wantErr             bool
	}{
		// The default parameters: pad 33, drawable 354, cell 70,
		// remainder 4 split as 2 extra pixels per side.
		{size: 420, grid: 5, padding: 8, origin: 35, cell: 70},
		{size: 100, grid: 5, padding: 0, origin: 0, cell: 20},
		{size: 10, grid: 5, padding: 0, origin: 0, cell: 2},
		{size: 1, grid: 1, padding: 0, origin: 0, cell: 1},
		{size: 2000, grid: MaxGrid, padding: 0, origin: 2, cell: 95},

		{size: 0, grid: 5, padding: 8, wantErr: true},
		{size: 420, grid: 0, padding: 8, wantErr: true},
		{size: 420, grid: MaxGrid + 1, padding: 8, wantErr: true},
		{size: 420, grid: 5, padding: 50, wantErr: true},
		{size: 420, grid: 5, padding: -1, wantErr: true},
		// Drawable area of 5 pixels cannot hold 21 cells per axis.
		{size: 5, grid: MaxGrid, padding: 0, wantErr: true},
	}

	for _, tc := range cases {
		name := fmt.Sprintf("%d_%d_%d", tc.size, tc.grid, tc.padding)
		t.Run(name, func(t *testing.T) {
			g := NewGenerator()
			g.Size = tc.size
			g.Grid = tc.grid
			g.Padding = tc.padding

			geo, err := g.geometry()
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected configuration error")
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if geo.size != tc.size || geo.origin != tc.origin || geo.cell != tc.cell {
				t.Errorf("geometry = {size %d, origin %d, cell %d}, want {size %d, origin %d, cell %d}",
					geo.size, geo.origin, geo.cell, tc.size, tc.origin, tc.cell)
			}
		})
	}
}

// TestRenderFullCoverage renders with all pattern bits set and zero
// padding, so that every pixel is the icon colour.
func TestRenderFullCoverage(t *testing.T) {
	g := NewGenerator()
	g.Size = 50
	g.Padding = 0
	g.Digest = fixedDigest(allOnes())

	img, err := g.Render("ignored")
	if err != nil {
		t.Fatal(err)
	}

	want := color.RGBA{R: 215, G: 215, B: 215, A: 255}
	for y := 0; y < 50; y++ {
		for x := 0; x < 50; x++ {
			if got := img.RGBAAt(x, y); got != want {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

// TestRenderEmptyPattern renders with no pattern bits set, so that
// every pixel keeps the background colour.
func TestRenderEmptyPattern(t *testing.T) {
	g := NewGenerator()
	g.Size = 64
	g.Digest = fixedDigest([DigestSize]byte{})

	img, err := g.Render("ignored")
	if err != nil {
		t.Fatal(err)
	}

	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			if got := img.RGBAAt(x, y); got != g.Background {
				t.Fatalf("pixel (%d,%d) = %v, want background %v", x, y, got, g.Background)
			}
		}
	}
}

// TestCellPlacement pins down the device coordinates of individual
// cells for the default 420/5/8 layout: origin 35, cell side 70.
func TestCellPlacement(t *testing.T) {
	digest := [DigestSize]byte{}
	digest[colourBytes] = 0b0000_0001 // top-left cell, mirrored top-right

	g := NewGenerator()
	g.Digest = fixedDigest(digest)

	img, err := g.Render("ignored")
	if err != nil {
		t.Fatal(err)
	}

	icon := deriveColour(digest)
	cases := []struct {
		x, y int
		on   bool
	}{
		{35, 35, true},    // top-left corner of cell (0,0)
		{104, 104, true},  // bottom-right pixel of cell (0,0)
		{34, 34, false},   // in the border
		{105, 35, false},  // cell (0,1) is off
		{175, 35, false},  // centre column is off
		{315, 35, true},   // mirrored cell (0,4)
		{384, 104, true},  // bottom-right pixel of cell (0,4)
		{385, 35, false},  // in the border again
		{35, 105, false},  // cell (1,0) is off
	}
	for _, tc := range cases {
		got := img.RGBAAt(tc.x, tc.y)
		want := g.Background
		if tc.on {
			want = icon
		}
		if got != want {
			t.Errorf("pixel (%d,%d) = %v, want %v", tc.x, tc.y, got, want)
		}
	}
}

func TestCustomBackground(t *testing.T) {
	g := NewGenerator()
	g.Size = 32
	g.Background = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	g.Digest = fixedDigest([DigestSize]byte{})

	img, err := g.Render("ignored")
	if err != nil {
		t.Fatal(err)
	}
	if got := img.RGBAAt(0, 0); got != g.Background {
		t.Errorf("pixel (0,0) = %v, want %v", got, g.Background)
	}
}
