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

// Package attacks answers "is this square attacked, and by what" queries
// against a position. It uses the reverse-attack technique: generate the
// pseudo-attacks of every piece type FROM the query square and intersect
// with the actual attacker-color piece bitboards, rather than unioning the
// attacks of every piece on the board.
package attacks

import (
	. "github.com/kylejrp/chesscore/internal/types"

	"github.com/kylejrp/chesscore/internal/position"
)

// IsSquareAttackedBy reports whether sq is attacked by any piece of color
// by.
func IsSquareAttackedBy(p *position.Position, sq Square, by Color) bool {
	occupied := p.OccupiedAll()

	return GetPawnAttacks(by.Flip(), sq)&p.PiecesBb(by, Pawn) != 0 ||
		GetAttacksBb(Knight, sq, occupied)&p.PiecesBb(by, Knight) != 0 ||
		GetAttacksBb(King, sq, occupied)&p.PiecesBb(by, King) != 0 ||
		GetAttacksBb(Rook, sq, occupied)&(p.PiecesBb(by, Rook)|p.PiecesBb(by, Queen)) != 0 ||
		GetAttacksBb(Bishop, sq, occupied)&(p.PiecesBb(by, Bishop)|p.PiecesBb(by, Queen)) != 0
}

// Breakdown reports, per attacking piece type, how many pieces of color by
// attack a square. Perft's check classification needs this to tell a single
// checking piece apart from a discovered double check.
type Breakdown struct {
	Pawns, Knights, Bishops, Rooks, Queens, Kings int
}

// Count returns the total number of attackers across all piece types.
func (b Breakdown) Count() int {
	return b.Pawns + b.Knights + b.Bishops + b.Rooks + b.Queens + b.Kings
}

// AttackerBreakdown returns a per-piece-type count of attackers of color by
// on sq, using the same reverse-attack technique as IsSquareAttackedBy.
func AttackerBreakdown(p *position.Position, sq Square, by Color) Breakdown {
	occupied := p.OccupiedAll()

	var b Breakdown
	b.Pawns = (GetPawnAttacks(by.Flip(), sq) & p.PiecesBb(by, Pawn)).PopCount()
	if enPassantAttackerExists(p, sq, by) {
		b.Pawns++
	}
	b.Knights = (GetAttacksBb(Knight, sq, occupied) & p.PiecesBb(by, Knight)).PopCount()
	b.Kings = (GetAttacksBb(King, sq, occupied) & p.PiecesBb(by, King)).PopCount()

	rookAttacks := GetAttacksBb(Rook, sq, occupied)
	bishopAttacks := GetAttacksBb(Bishop, sq, occupied)
	b.Rooks = (rookAttacks & p.PiecesBb(by, Rook)).PopCount()
	b.Bishops = (bishopAttacks & p.PiecesBb(by, Bishop)).PopCount()
	b.Queens = ((rookAttacks | bishopAttacks) & p.PiecesBb(by, Queen)).PopCount()

	return b
}

// enPassantAttackerExists reports whether sq is the current en-passant
// target and a pawn of color by stands on a file neighboring the captured
// pawn's square, ready to capture onto sq.
func enPassantAttackerExists(p *position.Position, sq Square, by Color) bool {
	epSq := p.EnPassantSquare()
	if epSq == SqNone || epSq != sq {
		return false
	}
	pawnSquare := epSq.To(by.Flip().MoveDirection())
	west := pawnSquare.To(West)
	east := pawnSquare.To(East)
	return (west.IsValid() && p.PiecesBb(by, Pawn).Has(west)) ||
		(east.IsValid() && p.PiecesBb(by, Pawn).Has(east))
}

// FindKingSquare returns the square of color c's king, reading the
// position's maintained king-square cache directly rather than scanning the
// board.
func FindKingSquare(p *position.Position, c Color) Square {
	return p.KingSquare(c)
}

// RevealedAttacks returns the sliding attacks on sq by color by's rooks,
// bishops, and queens given an updated occupancy - used after a piece has
// moved off a ray to check whether that move discovers a new attack on sq.
func RevealedAttacks(p *position.Position, sq Square, occupied Bitboard, by Color) Bitboard {
	return (GetAttacksBb(Rook, sq, occupied) & (p.PiecesBb(by, Rook) | p.PiecesBb(by, Queen)) & occupied) |
		(GetAttacksBb(Bishop, sq, occupied) & (p.PiecesBb(by, Bishop) | p.PiecesBb(by, Queen)) & occupied)
}
