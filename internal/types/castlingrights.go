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

// CastlingRights is a 4-bit mask of the {WK, WQ, BK, BQ} rights.
type CastlingRights uint8

// CastlingRights bit constants.
const (
	CastlingNone  CastlingRights = 0
	CastlingWK    CastlingRights = 1 << 0
	CastlingWQ    CastlingRights = 1 << 1
	CastlingBK    CastlingRights = 1 << 2
	CastlingBQ    CastlingRights = 1 << 3
	CastlingAny   CastlingRights = CastlingWK | CastlingWQ | CastlingBK | CastlingBQ
	CastlingLength                = int(CastlingAny) + 1
)

// Has reports whether all bits of mask are set in cr.
func (cr CastlingRights) Has(mask CastlingRights) bool {
	return cr&mask == mask
}

// Remove clears the given bits, never sets them - rights are monotonic, this
// is the only mutator exposed.
func (cr CastlingRights) Remove(mask CastlingRights) CastlingRights {
	return cr &^ mask
}

// KingSideRight returns the king-side castling bit for the given color.
func KingSideRight(c Color) CastlingRights {
	if c == White {
		return CastlingWK
	}
	return CastlingBK
}

// QueenSideRight returns the queen-side castling bit for the given color.
func QueenSideRight(c Color) CastlingRights {
	if c == White {
		return CastlingWQ
	}
	return CastlingBQ
}

// BothRights returns both castling bits for the given color.
func BothRights(c Color) CastlingRights {
	return KingSideRight(c) | QueenSideRight(c)
}

var castlingLostBySquare [SqLength]CastlingRights

func init() {
	castlingLostBySquare[SqE1] = CastlingWK | CastlingWQ
	castlingLostBySquare[SqA1] = CastlingWQ
	castlingLostBySquare[SqH1] = CastlingWK
	castlingLostBySquare[SqE8] = CastlingBK | CastlingBQ
	castlingLostBySquare[SqA8] = CastlingBQ
	castlingLostBySquare[SqH8] = CastlingBK
}

// CastlingRightsLostBySquare returns the castling rights forfeited when a
// piece moves onto or off of sq (a king or rook leaving its home square, or
// a rook being captured on its home square).
func CastlingRightsLostBySquare(sq Square) CastlingRights {
	return castlingLostBySquare[sq]
}

// String renders cr in FEN order, e.g. "KQkq", "Kq", or "-" if none.
func (cr CastlingRights) String() string {
	if cr == CastlingNone {
		return "-"
	}
	s := ""
	if cr.Has(CastlingWK) {
		s += "K"
	}
	if cr.Has(CastlingWQ) {
		s += "Q"
	}
	if cr.Has(CastlingBK) {
		s += "k"
	}
	if cr.Has(CastlingBQ) {
		s += "q"
	}
	return s
}
