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

// PieceType is a color-less chess piece kind.
type PieceType uint8

// PieceType constants.
const (
	PtNone PieceType = iota
	King
	Pawn
	Knight
	Bishop
	Rook
	Queen
	PtLength
)

// IsValid reports whether pt is one of the six piece kinds.
func (pt PieceType) IsValid() bool {
	return pt >= King && pt < PtLength
}

var pieceTypeToChar = [PtLength]byte{' ', 'K', 'P', 'N', 'B', 'R', 'Q'}
var pieceTypeToString = [PtLength]string{"None", "King", "Pawn", "Knight", "Bishop", "Rook", "Queen"}

// Char returns the single-letter FEN/UCI glyph for pt ('K','P','N','B','R','Q').
func (pt PieceType) Char() byte {
	return pieceTypeToChar[pt]
}

// String returns the full name of the piece kind.
func (pt PieceType) String() string {
	return pieceTypeToString[pt]
}

// PieceTypeFromPromotionChar maps a UCI promotion letter (q r b n) to the
// corresponding PieceType, or PtNone if c is not one of those four.
func PieceTypeFromPromotionChar(c byte) PieceType {
	switch c {
	case 'q', 'Q':
		return Queen
	case 'r', 'R':
		return Rook
	case 'b', 'B':
		return Bishop
	case 'n', 'N':
		return Knight
	default:
		return PtNone
	}
}

// PromotionChar returns the lower-case promotion glyph for pt, or 0 if pt is
// not a legal promotion target.
func (pt PieceType) PromotionChar() byte {
	switch pt {
	case Queen:
		return 'q'
	case Rook:
		return 'r'
	case Bishop:
		return 'b'
	case Knight:
		return 'n'
	default:
		return 0
	}
}

// PromotionTypes lists the four piece kinds a pawn may promote to, in the
// order the generator emits them.
var PromotionTypes = [4]PieceType{Queen, Rook, Bishop, Knight}
