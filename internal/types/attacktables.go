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

// Precomputed, immutable-after-init engine tables: knight/king/pawn attack
// masks, magic-bitboard sliding attacks, and the between-squares mask. Built
// once in init() and never mutated afterward - safe to share across boards
// and goroutines without synchronization.

var (
	knightAttacks [SqLength]Bitboard
	kingAttacks   [SqLength]Bitboard
	pawnAttacks   [ColorLength][SqLength]Bitboard
	betweenMask   [SqLength][SqLength]Bitboard

	rookMagics   [SqLength]Magic
	bishopMagics [SqLength]Magic
	rookTable    []Bitboard
	bishopTable  []Bitboard
)

var knightDeltas = [8]Direction{17, 15, 10, 6, -17, -15, -10, -6}
var rookDirs = [4]Direction{North, South, East, West}
var bishopDirs = [4]Direction{Northeast, Northwest, Southeast, Southwest}

func init() {
	initPseudoAttacks()
	initBetween()
	rookTable = make([]Bitboard, 0x19000)
	bishopTable = make([]Bitboard, 0x1480)
	initMagics(&rookTable, &rookMagics, &rookDirs)
	initMagics(&bishopTable, &bishopMagics, &bishopDirs)
}

func initPseudoAttacks() {
	for sq := SqA1; sq <= SqH8; sq++ {
		var king, knight Bitboard
		for _, d := range Directions {
			if to := sq.To(d); to.IsValid() {
				king.PushSquare(to)
			}
		}
		for _, d := range knightDeltas {
			if to, ok := knightStep(sq, d); ok {
				knight.PushSquare(to)
			}
		}
		kingAttacks[sq] = king
		knightAttacks[sq] = knight

		var wp, bp Bitboard
		if to := sq.To(Northeast); to.IsValid() {
			wp.PushSquare(to)
		}
		if to := sq.To(Northwest); to.IsValid() {
			wp.PushSquare(to)
		}
		if to := sq.To(Southeast); to.IsValid() {
			bp.PushSquare(to)
		}
		if to := sq.To(Southwest); to.IsValid() {
			bp.PushSquare(to)
		}
		pawnAttacks[White][sq] = wp
		pawnAttacks[Black][sq] = bp
	}
}

// knightStep computes the destination of a knight delta, rejecting
// off-board results and file wrap-around. Knight deltas are not expressible
// as a single Direction step through Square.To's direction table, so the
// raw offset is range- and distance-checked directly.
func knightStep(sq Square, d Direction) (Square, bool) {
	raw := int(sq) + int(d)
	if raw < 0 || raw > 63 {
		return SqNone, false
	}
	to := Square(raw)
	if FileDistance(sq, to) > 2 || RankDistance(sq, to) > 2 {
		return SqNone, false
	}
	return to, true
}

// FileDistance returns the absolute file distance between two squares.
func FileDistance(a, b Square) int {
	fa, fb := int(a.FileOf()), int(b.FileOf())
	if fa > fb {
		return fa - fb
	}
	return fb - fa
}

// RankDistance returns the absolute rank distance between two squares.
func RankDistance(a, b Square) int {
	ra, rb := int(a.RankOf()), int(b.RankOf())
	if ra > rb {
		return ra - rb
	}
	return rb - ra
}

func initBetween() {
	for a := SqA1; a <= SqH8; a++ {
		for _, d := range Directions {
			s := a
			var line Bitboard
			for {
				next := s.To(d)
				if !next.IsValid() {
					break
				}
				if next != a {
					betweenMask[a][next] = line
				}
				line.PushSquare(next)
				s = next
			}
		}
	}
}

// Intermediate returns the mask of squares strictly between a and b if they
// are collinear (same rank, file, or diagonal), zero otherwise.
func Intermediate(a, b Square) Bitboard {
	return betweenMask[a][b]
}

// GetPseudoAttacks returns the static (occupancy-independent) attack mask
// for a knight or king standing on sq.
func GetPseudoAttacks(pt PieceType, sq Square) Bitboard {
	switch pt {
	case Knight:
		return knightAttacks[sq]
	case King:
		return kingAttacks[sq]
	default:
		panic("GetPseudoAttacks only supports Knight and King")
	}
}

// GetPawnAttacks returns the squares a pawn of color c standing on sq
// attacks.
func GetPawnAttacks(c Color, sq Square) Bitboard {
	return pawnAttacks[c][sq]
}

// GetAttacksBb returns the attack bitboard for a piece of type pt standing
// on sq given the full board occupancy. For King and Knight this is the
// static pseudo-attack mask; for Bishop/Rook/Queen it is the magic-bitboard
// sliding lookup.
func GetAttacksBb(pt PieceType, sq Square, occupied Bitboard) Bitboard {
	switch pt {
	case Knight:
		return knightAttacks[sq]
	case King:
		return kingAttacks[sq]
	case Bishop:
		m := &bishopMagics[sq]
		return m.Attacks[m.index(occupied)]
	case Rook:
		m := &rookMagics[sq]
		return m.Attacks[m.index(occupied)]
	case Queen:
		rm := &rookMagics[sq]
		bm := &bishopMagics[sq]
		return rm.Attacks[rm.index(occupied)] | bm.Attacks[bm.index(occupied)]
	default:
		panic("GetAttacksBb does not support Pawn or PtNone")
	}
}
