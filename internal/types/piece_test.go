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

func TestMakePiece(t *testing.T) {
	type args struct {
		c  Color
		pt PieceType
	}
	tests := []struct {
		name string
		args args
		want Piece
	}{
		{"White King", args{White, King}, WhiteKing},
		{"Black King", args{Black, King}, BlackKing},
		{"White Knight", args{White, Knight}, WhiteKnight},
		{"Black Knight", args{Black, Knight}, BlackKnight},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MakePiece(tt.args.c, tt.args.pt))
		})
	}
}

func TestPieceColorOfTypeOf(t *testing.T) {
	assert.Equal(t, White, WhiteQueen.ColorOf())
	assert.Equal(t, Black, BlackQueen.ColorOf())
	assert.Equal(t, Queen, WhiteQueen.TypeOf())
	assert.Equal(t, Queen, BlackQueen.TypeOf())
}

func TestPieceIndex(t *testing.T) {
	seen := make(map[int]Piece)
	for c := White; c < ColorLength; c++ {
		for pt := King; pt < PtLength; pt++ {
			p := MakePiece(c, pt)
			idx := p.PieceIndex()
			assert.True(t, idx >= 0 && idx < 12, "index out of range for %v", p)
			if other, ok := seen[idx]; ok {
				t.Fatalf("PieceIndex collision between %v and %v", p, other)
			}
			seen[idx] = p
		}
	}
}

func TestPieceFromChar(t *testing.T) {
	assert.Equal(t, PieceNone, PieceFromChar('-'))
	assert.Equal(t, WhiteKing, PieceFromChar('K'))
	assert.Equal(t, BlackKing, PieceFromChar('k'))
	assert.Equal(t, WhiteKnight, PieceFromChar('N'))
	assert.Equal(t, BlackKnight, PieceFromChar('n'))
}

func TestPieceChar(t *testing.T) {
	assert.Equal(t, byte('K'), WhiteKing.Char())
	assert.Equal(t, byte('k'), BlackKing.Char())
	assert.Equal(t, byte(' '), PieceNone.Char())
}
