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

// Split of the digest between the two derivation stages.
const (
	colourBytes = 3
	patternBits = (DigestSize - colourBytes) * 8
)

// MaxGrid is the largest supported grid size. A grid of side n needs
// n*ceil(n/2) pattern bits; 21 columns need 231 of the 232 available
// bits, 22 would need 242.
const MaxGrid = 21

// pattern is the square grid of on/off cells, stored row-major.
// Invariant: at(row, col) == at(row, grid-1-col) for all cells.
type pattern struct {
	grid  int
	cells []bool
}

func (p pattern) at(row, col int) bool {
	return p.cells[row*p.grid+col]
}

// derivePattern walks the pattern bits of the digest and fills the
// left half of the grid (including the centre column for odd grid
// sizes) in row-major order, mirroring each cell onto the right half.
// Bits are consumed least significant first, exhausting each byte
// before moving to the next. The caller must have checked grid
// against [MaxGrid]; the bit pool is never exceeded after that.
func derivePattern(digest [DigestSize]byte, grid int) pattern {
	p := pattern{
		grid:  grid,
		cells: make([]bool, grid*grid),
	}

	halfWidth := (grid + 1) / 2
	byteIdx := colourBytes
	bitIdx := 0

	for row := 0; row < grid; row++ {
		for col := 0; col < halfWidth; col++ {
			on := digest[byteIdx]>>bitIdx&1 == 1
			p.cells[row*grid+col] = on
			// The centre column of an odd grid mirrors onto itself.
			p.cells[row*grid+grid-1-col] = on

			bitIdx++
			if bitIdx == 8 {
				bitIdx = 0
				byteIdx++
			}
		}
	}

	return p
}
