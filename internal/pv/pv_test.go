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

package pv

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/kylejrp/chesscore/internal/types"
)

func TestUpdateSplicesChildRowAfterMove(t *testing.T) {
	table := NewTable(8)

	table.Update(2, Move(3456))
	table.Update(1, Move(2345))
	table.Update(0, Move(1234))

	root := table.RootPV()
	assert.Equal(t, []Move{Move(1234), Move(2345), Move(3456)}, root)
}

func TestUpdateOverwritesOnRepeatedCallsAtSamePly(t *testing.T) {
	table := NewTable(4)

	table.Update(1, Move(10))
	table.Update(0, Move(1))
	assert.Equal(t, []Move{Move(1), Move(10)}, table.RootPV())

	// a later, better move found at ply 1 overwrites the earlier one.
	table.Update(1, Move(20))
	table.Update(0, Move(1))
	assert.Equal(t, []Move{Move(1), Move(20)}, table.RootPV())
}

func TestInitPlyClearsJustThatRow(t *testing.T) {
	table := NewTable(4)
	table.Update(1, Move(10))
	table.Update(0, Move(1))
	assert.Equal(t, 2, len(table.RootPV()))

	table.InitPly(0)
	assert.Equal(t, 0, len(table.RootPV()))
}

func TestClearWipesEveryRow(t *testing.T) {
	table := NewTable(4)
	table.Update(1, Move(10))
	table.Update(0, Move(1))

	table.Clear()
	assert.Equal(t, 0, len(table.RootPV()))
	table.Update(0, Move(99))
	assert.Equal(t, []Move{Move(99)}, table.RootPV())
}

func TestParentUpdateDoesNotMutateChildRow(t *testing.T) {
	table := NewTable(4)
	table.Update(1, Move(10))
	table.Update(0, Move(1))
	assert.Equal(t, []Move{Move(10)}, []Move(*table.rows[1]), "parent Update leaves row 1 as it was")

	table.rows[1].PushBack(Move(11))
	assert.Equal(t, []Move{Move(1), Move(10)}, table.RootPV(),
		"row 0 was copied from row 1's contents at Update time, not aliased to it")
}
