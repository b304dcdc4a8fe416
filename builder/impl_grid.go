// SPDX-License-Identifier: MIT
// Package: roadnet/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Canonical model:
//   - 2D orthogonal grid with 4-neighbourhood (right & down neighbours per cell).
//   - Cell (r,c) sits at lattice position (c, r): columns grow along X, rows along Y.
//
// Contract:
//   - rows ≥ 1, cols ≥ 1 and rows*cols ≥ 2 (else ErrTooFewVertices).
//   - For each cell in row-major order, emits the Right then the Down segment
//     where that neighbour exists.
//
// Complexity: O(rows*cols).

package builder

import (
	"fmt"

	"github.com/katalvlaran/roadnet/geo"
	"github.com/katalvlaran/roadnet/network"
)

// Grid returns a Constructor that builds a rows×cols street grid.
func Grid(rows, cols int) Constructor {
	return func(nw *network.Network, cfg builderConfig) error {
		if rows < MinGridDim || cols < MinGridDim || rows*cols < 2 {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d, at least 2 cells): %w",
				MethodGrid, rows, cols, MinGridDim, ErrTooFewVertices)
		}

		// positions are drawn once so jittered cells are shared by their segments
		pts := make([][]geo.Coord, rows)
		for r := range pts {
			pts[r] = make([]geo.Coord, cols)
			for c := range pts[r] {
				pts[r][c] = cfg.at(c, r)
			}
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err := insert(MethodGrid, nw, cfg, pts[r][c], pts[r][c+1]); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := insert(MethodGrid, nw, cfg, pts[r][c], pts[r+1][c]); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
