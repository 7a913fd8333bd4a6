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

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBitboardPopCount(t *testing.T) {
	tests := []struct {
		value    Bitboard
		expected int
	}{
		{BbZero, 0},
		{BbAll, 64},
		{1, 1},
		{128, 1},
		{7, 3},
	}
	for _, test := range tests {
		assert.Equal(t, test.expected, test.value.PopCount())
	}
}

func TestBitboardPushPopHas(t *testing.T) {
	var b Bitboard
	b.PushSquare(SqE4)
	assert.True(t, b.Has(SqE4))
	assert.False(t, b.Has(SqE5))
	b.PopSquare(SqE4)
	assert.False(t, b.Has(SqE4))
}

func TestBitboardLsbMsb(t *testing.T) {
	var b Bitboard
	assert.Equal(t, SqNone, b.Lsb())
	assert.Equal(t, SqNone, b.Msb())

	b.PushSquare(SqA1)
	b.PushSquare(SqH8)
	assert.Equal(t, SqA1, b.Lsb())
	assert.Equal(t, SqH8, b.Msb())
}

func TestBitboardPopLsb(t *testing.T) {
	var b Bitboard
	b.PushSquare(SqC3)
	b.PushSquare(SqD4)
	first := b.PopLsb()
	assert.Equal(t, SqC3, first)
	assert.Equal(t, 1, b.PopCount())
	second := b.PopLsb()
	assert.Equal(t, SqD4, second)
	assert.Equal(t, 0, b.PopCount())
}

func TestFileAndRankMasks(t *testing.T) {
	assert.Equal(t, 8, FileA_Bb.PopCount())
	assert.Equal(t, 8, Rank1_Bb.PopCount())
	assert.True(t, FileA_Bb.Has(SqA1))
	assert.True(t, FileA_Bb.Has(SqA8))
	assert.False(t, FileA_Bb.Has(SqB1))
	assert.True(t, Rank1_Bb.Has(SqA1))
	assert.True(t, Rank1_Bb.Has(SqH1))
	assert.False(t, Rank1_Bb.Has(SqA2))
}

func TestShiftBitboardWrap(t *testing.T) {
	var b Bitboard
	b.PushSquare(SqH4)
	shifted := ShiftBitboard(b, East)
	assert.Equal(t, BbZero, shifted, "shifting off the H file must not wrap to the A file")

	var b2 Bitboard
	b2.PushSquare(SqA4)
	shifted2 := ShiftBitboard(b2, West)
	assert.Equal(t, BbZero, shifted2, "shifting off the A file must not wrap to the H file")

	var b3 Bitboard
	b3.PushSquare(SqE4)
	assert.True(t, ShiftBitboard(b3, North).Has(SqE5))
	assert.True(t, ShiftBitboard(b3, South).Has(SqE3))
}

func TestBitboardString(t *testing.T) {
	var b Bitboard
	b.PushSquare(SqA1)
	s := b.String()
	assert.Equal(t, 9*8, len(s))
}
