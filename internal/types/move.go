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

// MoveType classifies a Move for make/unmake and perft statistics.
type MoveType uint8

// MoveType constants.
const (
	Normal MoveType = iota
	DoublePush
	Capture
	EnPassant
	CastleKing
	CastleQueen
	Promotion
	PromotionCapture
)

// Move is a packed value type: no pointers, no allocation, cheap to copy and
// compare. Bit layout:
//
//	bits  0- 5: from square (0..63)
//	bits  6-11: to square (0..63)
//	bits 12-13: promotion piece type (0=Knight 1=Bishop 2=Rook 3=Queen)
//	bits 14-16: move type
//
// Move-ordering metadata (a search-layer concern) is intentionally not part
// of this value; callers that need to sort moves carry their own parallel
// key array.
type Move uint32

// MoveNone is the zero Move, never produced by the generator.
const MoveNone Move = 0

var promoTypeToBits = map[PieceType]uint32{Knight: 0, Bishop: 1, Rook: 2, Queen: 3}
var bitsToPromoType = [4]PieceType{Knight, Bishop, Rook, Queen}

// CreateMove packs a move. promo is ignored unless kind is Promotion or
// PromotionCapture.
func CreateMove(from, to Square, kind MoveType, promo PieceType) Move {
	m := Move(uint32(from) | uint32(to)<<6 | uint32(kind)<<14)
	if kind == Promotion || kind == PromotionCapture {
		m |= Move(promoTypeToBits[promo] << 12)
	}
	return m
}

// From returns the origin square.
func (m Move) From() Square {
	return Square(m & 0x3F)
}

// To returns the destination square.
func (m Move) To() Square {
	return Square((m >> 6) & 0x3F)
}

// MoveType returns the move's kind.
func (m Move) MoveType() MoveType {
	return MoveType((m >> 14) & 0x7)
}

// PromotionType returns the promotion piece type, valid only when MoveType
// is Promotion or PromotionCapture.
func (m Move) PromotionType() PieceType {
	return bitsToPromoType[(m>>12)&0x3]
}

// IsValid reports whether m is a non-zero, well-formed move.
func (m Move) IsValid() bool {
	return m != MoveNone && m.From() != m.To()
}

// IsCapture reports whether the move's kind carries a capture.
func (m Move) IsCapture() bool {
	switch m.MoveType() {
	case Capture, EnPassant, PromotionCapture:
		return true
	default:
		return false
	}
}

// IsCastling reports whether the move's kind is a castle.
func (m Move) IsCastling() bool {
	return m.MoveType() == CastleKing || m.MoveType() == CastleQueen
}

// IsPromotion reports whether the move's kind is a promotion.
func (m Move) IsPromotion() bool {
	return m.MoveType() == Promotion || m.MoveType() == PromotionCapture
}

// StringUci renders m as a UCI move string, e.g. "e2e4" or "e7e8q".
func (m Move) StringUci() string {
	s := ToAlgebraic(m.From()) + ToAlgebraic(m.To())
	if m.IsPromotion() {
		s += string(m.PromotionType().PromotionChar())
	}
	return s
}

// String is an alias for StringUci, used by fmt and %v/%s formatting.
func (m Move) String() string {
	if m == MoveNone {
		return "no move"
	}
	return m.StringUci()
}
