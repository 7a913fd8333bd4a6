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

// Package movegen generates pseudo-legal and legal moves for a position.
// Pseudo-legal generation obeys each piece's movement rules in isolation;
// legal generation additionally rejects any move that would leave the
// mover's own king attacked, checked by playing the move, probing the king
// square, and unplaying it.
//
// The Movegen generation methods fill the two moveslice.MoveSlice buffers
// owned by the Movegen value the caller holds (see
// moveslice.DefaultCapacity). The perft functions in perft.go create a new
// Movegen, and with it new buffers, at every node they expand.
package movegen

import (
	"regexp"
	"strings"

	"github.com/kylejrp/chesscore/internal/attacks"
	"github.com/kylejrp/chesscore/internal/moveslice"
	"github.com/kylejrp/chesscore/internal/position"
	. "github.com/kylejrp/chesscore/internal/types"
)

// GenMode selects which families of pseudo-legal moves to generate.
type GenMode uint8

// GenMode bit constants.
const (
	GenZero   GenMode = 0b00
	GenCap    GenMode = 0b01
	GenNonCap GenMode = 0b10
	GenAll    GenMode = 0b11
)

// Movegen holds the caller-owned move buffers used across a generation
// call. Reuse one instance per traversal depth to avoid allocating a fresh
// buffer pair on every node.
type Movegen struct {
	pseudoLegalMoves *moveslice.MoveSlice
	legalMoves       *moveslice.MoveSlice
}

// NewMoveGen returns a Movegen with freshly allocated buffers at
// moveslice.DefaultCapacity.
func NewMoveGen() *Movegen {
	return &Movegen{
		pseudoLegalMoves: moveslice.NewMoveSlice(moveslice.DefaultCapacity),
		legalMoves:       moveslice.NewMoveSlice(moveslice.DefaultCapacity),
	}
}

// GeneratePseudoLegalMoves fills and returns mg's pseudo-legal buffer with
// every move obeying the mover's piece-movement rules, without checking
// whether the move leaves the mover's king attacked.
func (mg *Movegen) GeneratePseudoLegalMoves(p *position.Position, mode GenMode) *moveslice.MoveSlice {
	mg.pseudoLegalMoves.Clear()
	generatePawnMoves(p, mode, mg.pseudoLegalMoves)
	generateKingMoves(p, mode, mg.pseudoLegalMoves)
	generateOfficerMoves(p, mode, mg.pseudoLegalMoves)
	if mode&GenNonCap != 0 {
		generateCastling(p, mg.pseudoLegalMoves)
	}
	return mg.pseudoLegalMoves
}

// GenerateLegalMoves fills and returns mg's legal buffer: every pseudo-legal
// move that does not leave the mover's own king attacked after being played.
func (mg *Movegen) GenerateLegalMoves(p *position.Position, mode GenMode) *moveslice.MoveSlice {
	mg.GeneratePseudoLegalMoves(p, mode)
	mg.legalMoves.Clear()
	mg.pseudoLegalMoves.FilterCopy(mg.legalMoves, func(i int) bool {
		return IsLegalMove(p, mg.pseudoLegalMoves.At(i))
	})
	return mg.legalMoves
}

// IsLegalMove reports whether playing m leaves the mover's own king
// un-attacked. It plays the move, probes the king square, and unplays it -
// the make-test-unmake technique every legality check in this package uses,
// since Position carries no cached check flag to consult instead.
func IsLegalMove(p *position.Position, m Move) bool {
	mover := p.NextPlayer()
	p.DoMove(m)
	kingSq := attacks.FindKingSquare(p, mover)
	legal := !attacks.IsSquareAttackedBy(p, kingSq, mover.Flip())
	p.UndoMove()
	return legal
}

// HasLegalMove reports whether the side to move has at least one legal
// move, without building a full legal move list - the cheapest possible
// checkmate/stalemate probe. King moves are tried first, mirroring the
// intuition that a side this close to having no moves is usually in check.
func HasLegalMove(p *position.Position) bool {
	mover := p.NextPlayer()
	ownPieces := p.OccupiedBb(mover)
	occupied := p.OccupiedAll()

	kingSq := p.KingSquare(mover)
	kingMoves := GetPseudoAttacks(King, kingSq) &^ ownPieces
	for kingMoves != 0 {
		to := kingMoves.PopLsb()
		if IsLegalMove(p, CreateMove(kingSq, to, Normal, PtNone)) {
			return true
		}
	}

	myPawns := p.PiecesBb(mover, Pawn)
	oppPieces := p.OccupiedBb(mover.Flip())
	pushDir := mover.MoveDirection()
	backDir := mover.Flip().MoveDirection()

	for _, d := range []Direction{West, East} {
		captures := ShiftBitboard(myPawns, pushDir+d) & oppPieces
		for captures != 0 {
			to := captures.PopLsb()
			from := to.To(backDir - d)
			if IsLegalMove(p, CreateMove(from, to, Capture, PtNone)) {
				return true
			}
		}
	}
	pushes := ShiftBitboard(myPawns, pushDir) &^ occupied
	doublePushes := ShiftBitboard(pushes, pushDir) &^ occupied & mover.PawnDoubleRank().Bb()
	for pushes != 0 {
		to := pushes.PopLsb()
		from := to.To(backDir)
		if IsLegalMove(p, CreateMove(from, to, Normal, PtNone)) {
			return true
		}
	}
	for doublePushes != 0 {
		to := doublePushes.PopLsb()
		from := to.To(backDir).To(backDir)
		if IsLegalMove(p, CreateMove(from, to, DoublePush, PtNone)) {
			return true
		}
	}

	for pt := Knight; pt <= Queen; pt++ {
		pieces := p.PiecesBb(mover, pt)
		for pieces != 0 {
			from := pieces.PopLsb()
			targets := GetAttacksBb(pt, from, occupied) &^ ownPieces
			for targets != 0 {
				to := targets.PopLsb()
				kind := Normal
				if oppPieces.Has(to) {
					kind = Capture
				}
				if IsLegalMove(p, CreateMove(from, to, kind, PtNone)) {
					return true
				}
			}
		}
	}

	epSq := p.EnPassantSquare()
	if epSq != SqNone {
		for _, d := range []Direction{West, East} {
			candidates := ShiftBitboard(epSq.Bb(), backDir-d) & myPawns
			if candidates != 0 {
				from := candidates.Lsb()
				if IsLegalMove(p, CreateMove(from, epSq, EnPassant, PtNone)) {
					return true
				}
			}
		}
	}

	return false
}

var regexUciMove = regexp.MustCompile(`^([a-h][1-8])([a-h][1-8])([nbrqNBRQ])?$`)

// ParseUciMove generates every legal move on p and returns the one matching
// the given UCI move string (e.g. "e2e4", "e7e8q"), or MoveNone if text does
// not match any legal move.
func ParseUciMove(mg *Movegen, p *position.Position, text string) Move {
	matches := regexUciMove.FindStringSubmatch(text)
	if matches == nil {
		return MoveNone
	}
	from, ok := MakeSquareFromString(matches[1])
	if !ok {
		return MoveNone
	}
	to, ok := MakeSquareFromString(matches[2])
	if !ok {
		return MoveNone
	}
	promo := strings.ToLower(matches[3])

	legal := mg.GenerateLegalMoves(p, GenAll)
	for i := 0; i < legal.Len(); i++ {
		m := legal.At(i)
		if m.From() != from || m.To() != to {
			continue
		}
		if m.IsPromotion() {
			if len(promo) == 1 && byte(promo[0]) == m.PromotionType().PromotionChar() {
				return m
			}
			continue
		}
		if promo == "" {
			return m
		}
	}
	return MoveNone
}

func generatePawnMoves(p *position.Position, mode GenMode, ml *moveslice.MoveSlice) {
	mover := p.NextPlayer()
	myPawns := p.PiecesBb(mover, Pawn)
	oppPieces := p.OccupiedBb(mover.Flip())
	occupied := p.OccupiedAll()
	pushDir := mover.MoveDirection()
	backDir := mover.Flip().MoveDirection()
	promoRank := mover.PromotionRankBb()

	if mode&GenCap != 0 {
		for _, d := range []Direction{West, East} {
			captures := ShiftBitboard(myPawns, pushDir+d) & oppPieces
			promoCaptures := captures & promoRank
			for promoCaptures != 0 {
				to := promoCaptures.PopLsb()
				from := to.To(backDir - d)
				for _, pt := range PromotionTypes {
					ml.PushBack(CreateMove(from, to, PromotionCapture, pt))
				}
			}
			plainCaptures := captures &^ promoRank
			for plainCaptures != 0 {
				to := plainCaptures.PopLsb()
				from := to.To(backDir - d)
				ml.PushBack(CreateMove(from, to, Capture, PtNone))
			}
		}

		epSq := p.EnPassantSquare()
		if epSq != SqNone {
			for _, d := range []Direction{West, East} {
				candidates := ShiftBitboard(epSq.Bb(), backDir-d) & myPawns
				if candidates != 0 {
					from := candidates.Lsb()
					ml.PushBack(CreateMove(from, epSq, EnPassant, PtNone))
				}
			}
		}
	}

	if mode&GenNonCap != 0 {
		singlePush := ShiftBitboard(myPawns, pushDir) &^ occupied
		promoPush := singlePush & promoRank
		for promoPush != 0 {
			to := promoPush.PopLsb()
			from := to.To(backDir)
			for _, pt := range PromotionTypes {
				ml.PushBack(CreateMove(from, to, Promotion, pt))
			}
		}
		quietPush := singlePush &^ promoRank
		doubleCandidates := quietPush
		for quietPush != 0 {
			to := quietPush.PopLsb()
			from := to.To(backDir)
			ml.PushBack(CreateMove(from, to, Normal, PtNone))
		}

		doublePush := ShiftBitboard(doubleCandidates, pushDir) &^ occupied & mover.PawnDoubleRank().Bb()
		for doublePush != 0 {
			to := doublePush.PopLsb()
			from := to.To(backDir).To(backDir)
			ml.PushBack(CreateMove(from, to, DoublePush, PtNone))
		}
	}
}

func generateKingMoves(p *position.Position, mode GenMode, ml *moveslice.MoveSlice) {
	mover := p.NextPlayer()
	if p.PiecesBb(mover, King) == 0 {
		return
	}
	from := p.KingSquare(mover)
	ownPieces := p.OccupiedBb(mover)
	oppPieces := p.OccupiedBb(mover.Flip())

	moves := GetPseudoAttacks(King, from) &^ ownPieces
	if mode&GenCap != 0 {
		captures := moves & oppPieces
		for captures != 0 {
			to := captures.PopLsb()
			ml.PushBack(CreateMove(from, to, Capture, PtNone))
		}
	}
	if mode&GenNonCap != 0 {
		quiet := moves &^ oppPieces
		for quiet != 0 {
			to := quiet.PopLsb()
			ml.PushBack(CreateMove(from, to, Normal, PtNone))
		}
	}
}

func generateOfficerMoves(p *position.Position, mode GenMode, ml *moveslice.MoveSlice) {
	mover := p.NextPlayer()
	ownPieces := p.OccupiedBb(mover)
	oppPieces := p.OccupiedBb(mover.Flip())
	occupied := p.OccupiedAll()

	for pt := Knight; pt <= Queen; pt++ {
		pieces := p.PiecesBb(mover, pt)
		for pieces != 0 {
			from := pieces.PopLsb()
			moves := GetAttacksBb(pt, from, occupied) &^ ownPieces
			if mode&GenCap != 0 {
				captures := moves & oppPieces
				for captures != 0 {
					to := captures.PopLsb()
					ml.PushBack(CreateMove(from, to, Capture, PtNone))
				}
			}
			if mode&GenNonCap != 0 {
				quiet := moves &^ oppPieces
				for quiet != 0 {
					to := quiet.PopLsb()
					ml.PushBack(CreateMove(from, to, Normal, PtNone))
				}
			}
		}
	}
}

// castlingSpec names the squares a given castling right depends on: the
// king's home/target squares, the rook's home/target squares, the squares
// that must be empty between them, and the two squares (start and transit)
// that must not be attacked.
type castlingSpec struct {
	right              CastlingRights
	kingFrom, kingTo   Square
	rookFrom, rookTo   Square
	emptySquares       Bitboard
	kingTransitSquares [2]Square
	moveType           MoveType
}

var castlingSpecs = []castlingSpec{
	{CastlingWK, SqE1, SqG1, SqH1, SqF1, Intermediate(SqE1, SqH1), [2]Square{SqE1, SqF1}, CastleKing},
	{CastlingWQ, SqE1, SqC1, SqA1, SqD1, Intermediate(SqE1, SqA1), [2]Square{SqE1, SqD1}, CastleQueen},
	{CastlingBK, SqE8, SqG8, SqH8, SqF8, Intermediate(SqE8, SqH8), [2]Square{SqE8, SqF8}, CastleKing},
	{CastlingBQ, SqE8, SqC8, SqA8, SqD8, Intermediate(SqE8, SqA8), [2]Square{SqE8, SqD8}, CastleQueen},
}

// generateCastling generates castling moves, including the checks the
// teacher's pseudo-legal-only generator defers to a later legality pass:
// the squares between king and rook must be empty, and neither the king's
// current square nor the square it passes through may be attacked. Only
// the king's final square is left to the ordinary make-test-unmake legality
// filter that GenerateLegalMoves applies afterward.
func generateCastling(p *position.Position, ml *moveslice.MoveSlice) {
	mover := p.NextPlayer()
	rights := p.CastlingRights()
	if rights == CastlingNone {
		return
	}
	occupied := p.OccupiedAll()
	kingSq := p.KingSquare(mover)

	for _, spec := range castlingSpecs {
		if spec.kingFrom != kingSq || !rights.Has(spec.right) {
			continue
		}
		if spec.emptySquares&occupied != 0 {
			continue
		}
		attacked := false
		for _, sq := range spec.kingTransitSquares {
			if attacks.IsSquareAttackedBy(p, sq, mover.Flip()) {
				attacked = true
				break
			}
		}
		if attacked {
			continue
		}
		ml.PushBack(CreateMove(spec.kingFrom, spec.kingTo, spec.moveType, PtNone))
	}
}
