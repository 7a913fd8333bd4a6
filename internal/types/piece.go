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

// Piece is a colored chess piece: PieceNone plus the twelve colored piece
// kinds. The bit layout packs color into bit 3: value = color<<3 | pieceType,
// so White pieces occupy 1..6 and Black pieces occupy 9..14 - TypeOf/ColorOf
// are plain shifts and masks, no lookup table required.
type Piece uint8

// Colored piece constants.
const (
	PieceNone Piece = 0

	WhiteKing Piece = iota
	WhitePawn
	WhiteKnight
	WhiteBishop
	WhiteRook
	WhiteQueen
)

const (
	BlackKing Piece = iota + 9
	BlackPawn
	BlackKnight
	BlackBishop
	BlackRook
	BlackQueen
)

// PieceLength sizes arrays indexed by Piece (0..14, with gaps at 7 and 8).
const PieceLength = 15

// MakePiece builds the colored piece for c and pt. pt must not be PtNone.
func MakePiece(c Color, pt PieceType) Piece {
	return Piece(uint8(c)<<3 | uint8(pt))
}

// ColorOf returns the owning color of p. Undefined for PieceNone.
func (p Piece) ColorOf() Color {
	return Color(p >> 3)
}

// TypeOf returns the piece kind of p, PtNone for PieceNone.
func (p Piece) TypeOf() PieceType {
	return PieceType(p & 7)
}

// PieceIndex returns a dense 0..11 index (6 per color) suitable for Zobrist
// piece-square tables. Undefined for PieceNone.
func (p Piece) PieceIndex() int {
	return int(p.ColorOf())*6 + int(p.TypeOf()) - 1
}

// PieceFromChar maps a FEN piece letter (e.g. 'P','n','Q') to a Piece, or
// PieceNone if c is not a recognized letter.
func PieceFromChar(c byte) Piece {
	switch c {
	case 'K':
		return WhiteKing
	case 'P':
		return WhitePawn
	case 'N':
		return WhiteKnight
	case 'B':
		return WhiteBishop
	case 'R':
		return WhiteRook
	case 'Q':
		return WhiteQueen
	case 'k':
		return BlackKing
	case 'p':
		return BlackPawn
	case 'n':
		return BlackKnight
	case 'b':
		return BlackBishop
	case 'r':
		return BlackRook
	case 'q':
		return BlackQueen
	default:
		return PieceNone
	}
}

// Char returns the FEN letter for p (upper case for White, lower for Black),
// or ' ' for PieceNone.
func (p Piece) Char() byte {
	if p == PieceNone {
		return ' '
	}
	c := p.TypeOf().Char()
	if p.ColorOf() == Black {
		return c + ('a' - 'A')
	}
	return c
}

// String returns a short human-readable name, e.g. "White Knight".
func (p Piece) String() string {
	if p == PieceNone {
		return "Empty"
	}
	color := "White"
	if p.ColorOf() == Black {
		color = "Black"
	}
	return color + " " + p.TypeOf().String()
}
