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

package attacks

import (
	"os"
	"path"
	"runtime"
	"testing"

	"github.com/op/go-logging"
	"github.com/stretchr/testify/assert"

	"github.com/kylejrp/chesscore/internal/config"
	myLogging "github.com/kylejrp/chesscore/internal/logging"
	"github.com/kylejrp/chesscore/internal/position"
	. "github.com/kylejrp/chesscore/internal/types"
)

var logTest *logging.Logger

func init() {
	_, filename, _, _ := runtime.Caller(0)
	dir := path.Join(path.Dir(filename), "../..")
	if err := os.Chdir(dir); err != nil {
		panic(err)
	}
}

func TestMain(m *testing.M) {
	config.Setup()
	logTest = myLogging.GetTestLog()
	os.Exit(m.Run())
}

func TestIsSquareAttackedByKnight(t *testing.T) {
	p, err := position.NewPositionFen("4k3/8/8/8/3N4/8/8/4K3 w - - 0 1")
	assert.NoError(t, err)
	assert.True(t, IsSquareAttackedBy(p, SqC6, White))
	assert.True(t, IsSquareAttackedBy(p, SqE6, White))
	assert.False(t, IsSquareAttackedBy(p, SqD5, White))
}

func TestIsSquareAttackedBySlider(t *testing.T) {
	p, err := position.NewPositionFen("4k3/8/8/8/8/8/8/R3K3 w - - 0 1")
	assert.NoError(t, err)
	assert.True(t, IsSquareAttackedBy(p, SqA8, White))
	assert.True(t, IsSquareAttackedBy(p, SqD1, White))
	assert.False(t, IsSquareAttackedBy(p, SqB2, White))
}

func TestIsSquareAttackedBySliderBlockedByOccupant(t *testing.T) {
	p, err := position.NewPositionFen("4k3/8/8/8/8/8/P7/R3K3 w - - 0 1")
	assert.NoError(t, err)
	assert.False(t, IsSquareAttackedBy(p, SqA8, White), "own pawn on a2 blocks the rook's a-file ray beyond it")
	assert.True(t, IsSquareAttackedBy(p, SqA2, White), "the blocking square itself is still attacked/defended")
	assert.True(t, IsSquareAttackedBy(p, SqD1, White), "rank 1 toward the king is unobstructed up to d1")
}

func TestIsSquareAttackedByPawn(t *testing.T) {
	p, err := position.NewPositionFen("4k3/8/8/8/4p3/8/8/4K3 b - - 0 1")
	assert.NoError(t, err)
	assert.True(t, IsSquareAttackedBy(p, SqD3, Black))
	assert.True(t, IsSquareAttackedBy(p, SqF3, Black))
	assert.False(t, IsSquareAttackedBy(p, SqE3, Black))
}

func TestIsSquareAttackedByEnPassant(t *testing.T) {
	p, err := position.NewPositionFen("rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	assert.NoError(t, err)
	assert.True(t, IsSquareAttackedBy(p, SqD6, White), "white pawn on e5 can capture the d-pawn en passant onto d6")
}

func TestAttackerBreakdownSingleCheck(t *testing.T) {
	p, err := position.NewPositionFen("4k3/8/8/8/8/8/4r3/4K3 w - - 0 1")
	assert.NoError(t, err)
	b := AttackerBreakdown(p, SqE1, Black)
	assert.Equal(t, 1, b.Rooks)
	assert.Equal(t, 1, b.Count())
}

func TestAttackerBreakdownDoubleCheck(t *testing.T) {
	p, err := position.NewPositionFen("8/8/8/8/3n4/5b2/4K3/8 w - - 0 1")
	assert.NoError(t, err)
	b := AttackerBreakdown(p, SqE2, Black)
	assert.Equal(t, 1, b.Knights)
	assert.Equal(t, 1, b.Bishops)
	assert.Equal(t, 2, b.Count())
}

func TestAttackerBreakdownQueenCountedOnce(t *testing.T) {
	p, err := position.NewPositionFen("4k3/8/8/8/8/8/8/q3K3 w - - 0 1")
	assert.NoError(t, err)
	b := AttackerBreakdown(p, SqE1, Black)
	assert.Equal(t, 1, b.Queens)
	assert.Equal(t, 0, b.Rooks)
	assert.Equal(t, 0, b.Bishops)
}

func TestFindKingSquare(t *testing.T) {
	p, err := position.NewPositionFen(position.StartFen)
	assert.NoError(t, err)
	assert.Equal(t, SqE1, FindKingSquare(p, White))
	assert.Equal(t, SqE8, FindKingSquare(p, Black))
}

func TestRevealedAttacks(t *testing.T) {
	p, err := position.NewPositionFen("1k1r3q/1ppn3p/p4b2/4p3/8/P2N2P1/1PP1R1BP/2K1Q3 w - - 0 1")
	assert.NoError(t, err)
	occ := p.OccupiedAll()

	sq := SqE5
	before := RevealedAttacks(p, sq, occ, White) | RevealedAttacks(p, sq, occ, Black)

	// take away the bishop on f6, opening the a1-h8 diagonal to the black queen on h8
	occ.PopSquare(SqF6)
	after := RevealedAttacks(p, sq, occ, White) | RevealedAttacks(p, sq, occ, Black)

	assert.NotEqual(t, before, after, "removing the blocker must reveal at least one new slider attack")
}
