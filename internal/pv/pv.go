//
// chesscore - chess engine core in GO
//
// MIT License
//
// Copyright (c) 2020-2026 Kyle Rupp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package pv holds the triangular principal-variation table a search layer
// fills in as it unwinds: row ply holds the best line found from that ply
// onward. A child's row is always fully populated before its parent's
// Update call splices it in, so no row is ever read while still being
// written by a deeper ply.
package pv

import (
	"github.com/kylejrp/chesscore/internal/moveslice"
	. "github.com/kylejrp/chesscore/internal/types"
)

// Table is a fixed-height triangular PV table for a search of maximum depth
// maxDepth. Row ply is a *moveslice.MoveSlice so Update can reuse the same
// append/copy path the rest of this core uses for move buffers.
type Table struct {
	rows []*moveslice.MoveSlice
}

// NewTable allocates a table sized for a search of maxDepth plies.
func NewTable(maxDepth int) *Table {
	t := &Table{rows: make([]*moveslice.MoveSlice, 0, maxDepth+1)}
	for i := 0; i <= maxDepth; i++ {
		t.rows = append(t.rows, moveslice.NewMoveSlice(maxDepth+1))
	}
	return t
}

// InitPly resets the stored PV length at ply to 0. Called when a search
// enters a node at that ply.
func (t *Table) InitPly(ply int) {
	t.rows[ply].Clear()
}

// Update places move at the start of row ply, then appends row ply+1 after
// it, so row ply reads as [move, row(ply+1)...]. Repeated calls at the same
// ply overwrite the row. The child row (ply+1) is only ever read here, not
// mutated, so a parent's Update never disturbs a row a sibling search might
// still be accumulating into.
func (t *Table) Update(ply int, move Move) {
	dest := t.rows[ply]
	dest.Clear()
	dest.PushBack(move)
	if ply+1 < len(t.rows) {
		child := t.rows[ply+1]
		for i := 0; i < child.Len(); i++ {
			dest.PushBack(child.At(i))
		}
	}
}

// RootPV returns the principal variation recovered from row 0, in play
// order.
func (t *Table) RootPV() []Move {
	row := t.rows[0]
	out := make([]Move, row.Len())
	for i := 0; i < row.Len(); i++ {
		out[i] = row.At(i)
	}
	return out
}

// Clear wipes every row; RootPV returns empty afterward.
func (t *Table) Clear() {
	for _, row := range t.rows {
		row.Clear()
	}
}
