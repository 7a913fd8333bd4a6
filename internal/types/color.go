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

// Color identifies the side to move or the owner of a piece.
type Color uint8

// Color constants.
const (
	White Color = iota
	Black
	ColorNone
	ColorLength = 2
)

// IsValid reports whether c is White or Black.
func (c Color) IsValid() bool {
	return c == White || c == Black
}

// Flip returns the opposite color.
func (c Color) Flip() Color {
	return c ^ 1
}

// String returns "w" or "b".
func (c Color) String() string {
	if c == White {
		return "w"
	}
	return "b"
}

// MoveDirection returns the direction pawns of this color advance.
func (c Color) MoveDirection() Direction {
	if c == White {
		return North
	}
	return South
}

// PromotionRankBb returns the bitboard of the rank pawns of this color
// promote on.
func (c Color) PromotionRankBb() Bitboard {
	if c == White {
		return Rank8_Bb
	}
	return Rank1_Bb
}

// PawnDoubleRank returns the rank pawns of this color double-push to.
func (c Color) PawnDoubleRank() Rank {
	if c == White {
		return Rank4
	}
	return Rank5
}

// PawnStartRank returns the rank pawns of this color start on.
func (c Color) PawnStartRank() Rank {
	if c == White {
		return Rank2
	}
	return Rank7
}
