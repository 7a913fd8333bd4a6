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

func TestSquareValues(t *testing.T) {
	assert.EqualValues(t, 0, SqA1)
	assert.EqualValues(t, 63, SqH8)
	assert.EqualValues(t, 64, SqNone)
}

func TestSquareIsValid(t *testing.T) {
	assert.True(t, SqA1.IsValid())
	assert.True(t, SqH8.IsValid())
	assert.False(t, SqNone.IsValid())
}

func TestSquareString(t *testing.T) {
	assert.Equal(t, "a1", SqA1.String())
	assert.Equal(t, "h8", SqH8.String())
	assert.Equal(t, "-", SqNone.String())
}

func TestMakeSquareFromFileRank(t *testing.T) {
	assert.Equal(t, SqA1, MakeSquare(FileA, Rank1))
	assert.Equal(t, SqH8, MakeSquare(FileH, Rank8))
	assert.Equal(t, SqE4, MakeSquare(FileE, Rank4))
}

func TestSquareFileOfRankOf(t *testing.T) {
	assert.Equal(t, FileE, SqE4.FileOf())
	assert.Equal(t, Rank4, SqE4.RankOf())
}

func TestSquareTo(t *testing.T) {
	assert.Equal(t, SqA2, SqA1.To(North))
	assert.Equal(t, SqA3, SqA1.To(North).To(North))
	assert.Equal(t, SqB1, SqA1.To(East))
	assert.Equal(t, SqA1, SqA2.To(South))
	assert.Equal(t, SqNone, SqA2.To(South).To(South))
	assert.Equal(t, SqNone, SqA1.To(West))
	assert.Equal(t, SqNone, SqH8.To(North))
	assert.Equal(t, SqNone, SqH8.To(East))
	assert.Equal(t, SqH7, SqH8.To(South))
}

func TestMakeSquareFromString(t *testing.T) {
	tests := []struct {
		in       string
		expected Square
		ok       bool
	}{
		{"a1", SqA1, true},
		{"h8", SqH8, true},
		{"e4", SqE4, true},
		{"i1", SqNone, false},
		{"a9", SqNone, false},
		{"aa", SqNone, false},
	}
	for _, test := range tests {
		got, ok := MakeSquareFromString(test.in)
		assert.Equal(t, test.ok, ok, test.in)
		if test.ok {
			assert.Equal(t, test.expected, got, test.in)
		}
	}
}

func TestToAlgebraicRoundTrip(t *testing.T) {
	for sq := SqA1; sq <= SqH8; sq++ {
		s := ToAlgebraic(sq)
		got, ok := MakeSquareFromString(s)
		assert.True(t, ok, s)
		assert.Equal(t, sq, got, s)
	}
}

func TestSquare0x88RoundTrip(t *testing.T) {
	for sq := SqA1; sq <= SqH8; sq++ {
		sp := ToSquare0x88(sq)
		assert.True(t, sp.IsOnBoard())
		assert.Equal(t, sq, ToDenseSquare(sp))
	}
}

func TestSquare0x88OffBoardOnStep(t *testing.T) {
	h1 := ToSquare0x88(SqH1)
	off := h1.Step(Direction0x88(1))
	assert.False(t, off.IsOnBoard())
}
