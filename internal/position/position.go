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

// Package position represents a chess board and its position: an 8x8 piece
// array plus per-color/per-type bitboards, castling rights, en-passant
// square, half/full move counters, and an incrementally maintained Zobrist
// key, with a fixed-size history array backing Do/UndoMove.
//
// Create a new instance with NewPosition(), or NewPositionFen(fen) for a
// specific position.
package position

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/op/go-logging"

	"github.com/kylejrp/chesscore/internal/assert"
	"github.com/kylejrp/chesscore/internal/config"
	myLogging "github.com/kylejrp/chesscore/internal/logging"
	. "github.com/kylejrp/chesscore/internal/types"
	"github.com/kylejrp/chesscore/internal/zobrist"
)

var log *logging.Logger

// StartFen is the standard chess starting position.
const StartFen string = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// maxHistory bounds the fixed-size Do/UndoMove history array. A game is
// very unlikely to exceed this many plies; if it does, DoMove panics rather
// than silently allocate.
const maxHistory = 1024

// Position is a mutable chess board. It must be created via NewPosition or
// NewPositionFen.
type Position struct {
	zobristKey zobrist.Key

	board           [SqLength]Piece
	castlingRights  CastlingRights
	enPassantSquare Square
	halfMoveClock   int
	nextPlayer      Color

	kingSquare         [ColorLength]Square
	nextHalfMoveNumber int
	piecesBb           [ColorLength][PtLength]Bitboard
	occupiedBb         [ColorLength]Bitboard

	historyCounter int
	history        [maxHistory]historyEntry
}

type historyEntry struct {
	zobristKey      zobrist.Key
	move            Move
	capturedPiece   Piece
	castlingRights  CastlingRights
	enPassantSquare Square
	halfMoveClock   int
}

// NewPosition returns the standard starting position.
func NewPosition() *Position {
	p, _ := NewPositionFen(StartFen)
	return p
}

// NewPositionFen builds a Position from a FEN string. It returns an error
// if the FEN is malformed.
func NewPositionFen(fen string) (*Position, error) {
	if log == nil {
		log = myLogging.GetLog()
	}
	p := &Position{}
	p.enPassantSquare = SqNone
	if e := p.setupBoard(fen); e != nil {
		log.Errorf("invalid fen, position not created: %s", e)
		return nil, e
	}
	return p, nil
}

// Clone returns an independent copy of p, safe to hand to another
// goroutine - Position holds no pointers or slices, so a value copy is
// already a deep copy; Clone documents the intent at call sites (e.g.
// parallel perft, where every worker needs its own board).
func (p *Position) Clone() *Position {
	clone := *p
	return &clone
}

// DoMove commits a move to the board. The move is trusted to be
// (pseudo-)legal; the caller (a legality filter or move generator) is
// responsible for that.
func (p *Position) DoMove(m Move) {
	fromSq := m.From()
	fromPc := p.board[fromSq]
	myColor := fromPc.ColorOf()
	toSq := m.To()
	targetPc := p.board[toSq]

	if assert.DEBUG {
		assert.Assert(m.IsValid(), "DoMove: invalid move %s", m.String())
		assert.Assert(fromPc != PieceNone, "DoMove: no piece on %s for move %s", fromSq.String(), m.StringUci())
		assert.Assert(myColor == p.nextPlayer, "DoMove: piece to move does not belong to next player")
		assert.Assert(targetPc.TypeOf() != King, "DoMove: king cannot be captured")
	}

	h := &p.history[p.historyCounter]
	h.zobristKey = p.zobristKey
	h.move = m
	h.capturedPiece = targetPc
	if m.MoveType() == EnPassant {
		h.capturedPiece = MakePiece(myColor.Flip(), Pawn)
	}
	h.castlingRights = p.castlingRights
	h.enPassantSquare = p.enPassantSquare
	h.halfMoveClock = p.halfMoveClock
	p.historyCounter++

	switch m.MoveType() {
	case Normal, Capture:
		p.doQuietOrCapture(fromSq, toSq, targetPc, fromPc)
	case DoublePush:
		p.doDoublePush(fromSq, toSq, myColor)
	case EnPassant:
		p.doEnPassant(fromSq, toSq, myColor)
	case CastleKing:
		p.doCastle(fromSq, toSq)
	case CastleQueen:
		p.doCastle(fromSq, toSq)
	case Promotion, PromotionCapture:
		p.doPromotion(m, fromSq, toSq, targetPc, myColor)
	}

	p.nextHalfMoveNumber++
	p.nextPlayer = p.nextPlayer.Flip()
	p.zobristKey ^= zobrist.Base.NextPlayer()
}

// UndoMove reverts the most recent DoMove.
func (p *Position) UndoMove() {
	if assert.DEBUG {
		assert.Assert(p.historyCounter > 0, "UndoMove: no move to undo")
	}

	p.historyCounter--
	p.nextHalfMoveNumber--
	p.nextPlayer = p.nextPlayer.Flip()
	h := &p.history[p.historyCounter]
	m := h.move

	switch m.MoveType() {
	case Normal, Capture, DoublePush:
		p.movePiece(m.To(), m.From())
		if h.capturedPiece != PieceNone {
			p.putPieceRaw(h.capturedPiece, m.To())
		}
	case EnPassant:
		p.movePiece(m.To(), m.From())
		capSq := m.To().To(p.nextPlayer.Flip().MoveDirection())
		p.putPieceRaw(MakePiece(p.nextPlayer.Flip(), Pawn), capSq)
	case CastleKing, CastleQueen:
		p.movePiece(m.To(), m.From())
		switch m.To() {
		case SqG1:
			p.movePiece(SqF1, SqH1)
		case SqC1:
			p.movePiece(SqD1, SqA1)
		case SqG8:
			p.movePiece(SqF8, SqH8)
		case SqC8:
			p.movePiece(SqD8, SqA8)
		default:
			panic("UndoMove: invalid castle destination " + m.To().String())
		}
	case Promotion, PromotionCapture:
		p.removePieceRaw(m.To())
		p.putPieceRaw(MakePiece(p.nextPlayer, Pawn), m.From())
		if h.capturedPiece != PieceNone {
			p.putPieceRaw(h.capturedPiece, m.To())
		}
	}

	p.castlingRights = h.castlingRights
	p.enPassantSquare = h.enPassantSquare
	p.halfMoveClock = h.halfMoveClock
	p.zobristKey = h.zobristKey
}

// DoNullMove flips the side to move without moving a piece, for a search
// layer's null-move pruning. It must not touch move or repetition history
// beyond the reversible state needed to undo it.
func (p *Position) DoNullMove() {
	h := &p.history[p.historyCounter]
	h.zobristKey = p.zobristKey
	h.move = MoveNone
	h.capturedPiece = PieceNone
	h.castlingRights = p.castlingRights
	h.enPassantSquare = p.enPassantSquare
	h.halfMoveClock = p.halfMoveClock
	p.historyCounter++

	p.clearEnPassant()
	p.nextHalfMoveNumber++
	p.nextPlayer = p.nextPlayer.Flip()
	p.zobristKey ^= zobrist.Base.NextPlayer()
}

// UndoNullMove reverts a DoNullMove.
func (p *Position) UndoNullMove() {
	p.historyCounter--
	p.nextHalfMoveNumber--
	p.nextPlayer = p.nextPlayer.Flip()
	h := &p.history[p.historyCounter]
	p.castlingRights = h.castlingRights
	p.enPassantSquare = h.enPassantSquare
	p.halfMoveClock = h.halfMoveClock
	p.zobristKey = h.zobristKey
}

func (p *Position) doQuietOrCapture(fromSq, toSq Square, targetPc, fromPc Piece) {
	p.invalidateCastling(fromSq, toSq)
	p.clearEnPassant()
	if targetPc != PieceNone {
		p.removePieceRaw(toSq)
		p.halfMoveClock = 0
	} else if fromPc.TypeOf() == Pawn {
		p.halfMoveClock = 0
	} else {
		p.halfMoveClock++
	}
	p.movePiece(fromSq, toSq)
}

func (p *Position) doDoublePush(fromSq, toSq Square, myColor Color) {
	p.clearEnPassant()
	p.halfMoveClock = 0
	p.movePiece(fromSq, toSq)
	p.enPassantSquare = toSq.To(myColor.Flip().MoveDirection())
	p.zobristKey ^= zobrist.Base.EnPassantFile(p.enPassantSquare.FileOf())
}

func (p *Position) doEnPassant(fromSq, toSq Square, myColor Color) {
	capSq := toSq.To(myColor.Flip().MoveDirection())
	if assert.DEBUG {
		assert.Assert(p.enPassantSquare == toSq, "DoMove: en passant move without matching en passant square")
		assert.Assert(p.board[capSq] == MakePiece(myColor.Flip(), Pawn), "DoMove: no pawn to capture en passant")
	}
	p.removePieceRaw(capSq)
	p.movePiece(fromSq, toSq)
	p.clearEnPassant()
	p.halfMoveClock = 0
}

func (p *Position) doCastle(fromSq, toSq Square) {
	p.movePiece(fromSq, toSq)
	switch toSq {
	case SqG1:
		p.movePiece(SqH1, SqF1)
	case SqC1:
		p.movePiece(SqA1, SqD1)
	case SqG8:
		p.movePiece(SqH8, SqF8)
	case SqC8:
		p.movePiece(SqA8, SqD8)
	default:
		panic("DoMove: invalid castle destination " + toSq.String())
	}
	p.invalidateCastling(fromSq, toSq)
	p.clearEnPassant()
	p.halfMoveClock++
}

func (p *Position) doPromotion(m Move, fromSq, toSq Square, targetPc Piece, myColor Color) {
	if targetPc != PieceNone {
		p.removePieceRaw(toSq)
	}
	p.invalidateCastling(fromSq, toSq)
	p.removePieceRaw(fromSq)
	p.putPieceRaw(MakePiece(myColor, m.PromotionType()), toSq)
	p.clearEnPassant()
	p.halfMoveClock = 0
}

func (p *Position) invalidateCastling(fromSq, toSq Square) {
	if p.castlingRights == CastlingNone {
		return
	}
	lost := CastlingRightsLostBySquare(fromSq) | CastlingRightsLostBySquare(toSq)
	if lost == CastlingNone {
		return
	}
	p.zobristKey ^= zobrist.Base.Castling(p.castlingRights)
	p.castlingRights = p.castlingRights.Remove(lost)
	p.zobristKey ^= zobrist.Base.Castling(p.castlingRights)
}

func (p *Position) movePiece(fromSq, toSq Square) {
	p.putPieceRaw(p.removePieceRaw(fromSq), toSq)
}

func (p *Position) putPieceRaw(piece Piece, sq Square) {
	color := piece.ColorOf()
	pt := piece.TypeOf()

	if assert.DEBUG {
		assert.Assert(p.board[sq] == PieceNone, "putPiece: square %s already occupied\n%s", sq.String(), p.Dump())
	}

	p.board[sq] = piece
	if pt == King {
		p.kingSquare[color] = sq
	}
	p.piecesBb[color][pt].PushSquare(sq)
	p.occupiedBb[color].PushSquare(sq)
	p.zobristKey ^= zobrist.Base.PieceSquare(piece, sq)
}

func (p *Position) removePieceRaw(sq Square) Piece {
	removed := p.board[sq]
	color := removed.ColorOf()
	pt := removed.TypeOf()

	if assert.DEBUG {
		assert.Assert(removed != PieceNone, "removePiece: square %s already empty\n%s", sq.String(), p.Dump())
	}

	p.board[sq] = PieceNone
	p.piecesBb[color][pt].PopSquare(sq)
	p.occupiedBb[color].PopSquare(sq)
	p.zobristKey ^= zobrist.Base.PieceSquare(removed, sq)
	return removed
}

func (p *Position) clearEnPassant() {
	if p.enPassantSquare != SqNone {
		p.zobristKey ^= zobrist.Base.EnPassantFile(p.enPassantSquare.FileOf())
		p.enPassantSquare = SqNone
	}
}

// CheckRepetitions reports whether the current position has occurred at
// least reps times before in the game's reversible history (since the
// last capture or pawn move), as tracked by the fixed-size history array.
// Gated by config.Settings.Core.KeepRepetitions.
func (p *Position) CheckRepetitions(reps int) bool {
	if !config.Settings.Core.KeepRepetitions {
		return false
	}
	counter := 0
	lastHalfMove := p.halfMoveClock
	for i := p.historyCounter - 2; i >= 0; i -= 2 {
		if p.history[i].halfMoveClock >= lastHalfMove {
			break
		}
		lastHalfMove = p.history[i].halfMoveClock
		if p.zobristKey == p.history[i].zobristKey {
			counter++
			if counter >= reps {
				return true
			}
		}
	}
	return false
}

// PieceAt returns the piece on sq, PieceNone if empty. Satisfies the
// interface zobrist.Recompute needs to rebuild a key from scratch.
func (p *Position) PieceAt(sq Square) Piece {
	return p.board[sq]
}

// ZobristKey returns the incrementally maintained Zobrist key.
func (p *Position) ZobristKey() zobrist.Key {
	return p.zobristKey
}

// VerifyZobristKey recomputes the Zobrist key from scratch and compares it
// to the incrementally maintained one - the self-check the incremental
// maintenance path is verified against.
func (p *Position) VerifyZobristKey() bool {
	recomputed := zobrist.Recompute(p, p.castlingRights, p.enPassantSquare.FileOf(), p.enPassantSquare != SqNone, p.nextPlayer)
	return recomputed == p.zobristKey
}

// NextPlayer returns the side to move.
func (p *Position) NextPlayer() Color {
	return p.nextPlayer
}

// PiecesBb returns the bitboard of pieces of type pt and color c.
func (p *Position) PiecesBb(c Color, pt PieceType) Bitboard {
	return p.piecesBb[c][pt]
}

// OccupiedAll returns the bitboard of all occupied squares.
func (p *Position) OccupiedAll() Bitboard {
	return p.occupiedBb[White] | p.occupiedBb[Black]
}

// OccupiedBb returns the bitboard of squares occupied by color c.
func (p *Position) OccupiedBb(c Color) Bitboard {
	return p.occupiedBb[c]
}

// EnPassantSquare returns the currently capturable en-passant square, or
// SqNone if there is none.
func (p *Position) EnPassantSquare() Square {
	return p.enPassantSquare
}

// CastlingRights returns the current castling rights.
func (p *Position) CastlingRights() CastlingRights {
	return p.castlingRights
}

// KingSquare returns the square of color c's king.
func (p *Position) KingSquare(c Color) Square {
	return p.kingSquare[c]
}

// HalfMoveClock returns the half-move (50-move rule) clock.
func (p *Position) HalfMoveClock() int {
	return p.halfMoveClock
}

// LastMove returns the most recently played move, or MoveNone at the start
// position.
func (p *Position) LastMove() Move {
	if p.historyCounter == 0 {
		return MoveNone
	}
	return p.history[p.historyCounter-1].move
}

// LastCapturedPiece returns the piece captured by the last move, or
// PieceNone.
func (p *Position) LastCapturedPiece() Piece {
	if p.historyCounter == 0 {
		return PieceNone
	}
	return p.history[p.historyCounter-1].capturedPiece
}

// String renders the FEN of the current position.
func (p *Position) String() string {
	return p.fen()
}

// Dump deep-prints the board's mailbox, bitboards, and occupancies via
// go-spew - used by debug-build assertion failures (see internal/assert) to
// show exactly where mailbox/bitboard/occupancy agreement broke down,
// rather than just panicking with a one-line message.
func (p *Position) Dump() string {
	return spew.Sdump(struct {
		Board           [SqLength]Piece
		PiecesBb        [ColorLength][PtLength]Bitboard
		OccupiedBb      [ColorLength]Bitboard
		CastlingRights  CastlingRights
		EnPassantSquare Square
		ZobristKey      zobrist.Key
	}{p.board, p.piecesBb, p.occupiedBb, p.castlingRights, p.enPassantSquare, p.zobristKey})
}

// StringBoard renders an 8x8 ASCII board, rank 8 first.
func (p *Position) StringBoard() string {
	var sb strings.Builder
	for r := Rank8; ; r-- {
		for f := FileA; f <= FileH; f++ {
			pc := p.board[MakeSquare(f, r)]
			sb.WriteByte(pc.Char())
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
		if r == Rank1 {
			break
		}
	}
	return sb.String()
}

func (p *Position) fen() string {
	var fen strings.Builder
	for r := Rank8; ; r-- {
		empty := 0
		for f := FileA; f <= FileH; f++ {
			pc := p.board[MakeSquare(f, r)]
			if pc == PieceNone {
				empty++
				continue
			}
			if empty > 0 {
				fen.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			fen.WriteByte(pc.Char())
		}
		if empty > 0 {
			fen.WriteString(strconv.Itoa(empty))
		}
		if r != Rank1 {
			fen.WriteString("/")
		} else {
			break
		}
	}
	fen.WriteString(" ")
	fen.WriteString(p.nextPlayer.String())
	fen.WriteString(" ")
	fen.WriteString(p.castlingRights.String())
	fen.WriteString(" ")
	fen.WriteString(p.enPassantSquare.String())
	fen.WriteString(" ")
	fen.WriteString(strconv.Itoa(p.halfMoveClock))
	fen.WriteString(" ")
	fen.WriteString(strconv.Itoa((p.nextHalfMoveNumber + 1) / 2))
	return fen.String()
}

var (
	regexFenPos         = regexp.MustCompile(`^[0-8pPnNbBrRqQkK/]+$`)
	regexSideToMove     = regexp.MustCompile(`^[wb]$`)
	regexCastlingRights = regexp.MustCompile(`^(K?Q?k?q?|-)$`)
	regexEnPassant      = regexp.MustCompile(`^([a-h][1-8]|-)$`)
)

// setupBoard parses fen into p. Only the piece-placement field is
// required; every other field has a standard default, mirroring how most
// FEN consumers tolerate partial input.
func (p *Position) setupBoard(fen string) error {
	fen = strings.TrimSpace(fen)
	fenParts := strings.Split(fen, " ")
	if len(fenParts) == 0 || fenParts[0] == "" {
		return errors.New("fen must not be empty")
	}
	if !regexFenPos.MatchString(fenParts[0]) {
		return errors.New("fen position contains invalid characters")
	}

	currentSquare := SqA8
	for _, c := range fenParts[0] {
		switch {
		case c >= '1' && c <= '8':
			currentSquare = Square(int(currentSquare) + int(c-'0')*int(East))
		case c == '/':
			currentSquare = Square(int(currentSquare) + 2*int(South))
		default:
			piece := PieceFromChar(byte(c))
			if piece == PieceNone {
				return fmt.Errorf("invalid piece character: %c", c)
			}
			p.putPieceRaw(piece, currentSquare)
			currentSquare++
		}
	}
	if currentSquare != SqA2 {
		return errors.New("fen position does not describe a full 8x8 board")
	}

	p.nextHalfMoveNumber = 1
	p.enPassantSquare = SqNone

	if len(fenParts) >= 2 {
		if !regexSideToMove.MatchString(fenParts[1]) {
			return errors.New("fen side to move contains invalid characters")
		}
		if fenParts[1] == "b" {
			p.nextPlayer = Black
			p.zobristKey ^= zobrist.Base.NextPlayer()
			p.nextHalfMoveNumber++
		}
	}

	if len(fenParts) >= 3 {
		if !regexCastlingRights.MatchString(fenParts[2]) {
			return errors.New("fen castling rights contains invalid characters")
		}
		if fenParts[2] != "-" {
			for _, c := range fenParts[2] {
				switch c {
				case 'K':
					p.castlingRights |= CastlingWK
				case 'Q':
					p.castlingRights |= CastlingWQ
				case 'k':
					p.castlingRights |= CastlingBK
				case 'q':
					p.castlingRights |= CastlingBQ
				}
			}
		}
	}
	p.zobristKey ^= zobrist.Base.Castling(p.castlingRights)

	if len(fenParts) >= 4 {
		if !regexEnPassant.MatchString(fenParts[3]) {
			return errors.New("fen en passant square contains invalid characters")
		}
		if fenParts[3] != "-" {
			sq, ok := MakeSquareFromString(fenParts[3])
			if !ok {
				return errors.New("fen en passant square is malformed")
			}
			p.enPassantSquare = sq
			p.zobristKey ^= zobrist.Base.EnPassantFile(sq.FileOf())
		}
	}

	if len(fenParts) >= 5 {
		n, e := strconv.Atoi(fenParts[4])
		if e != nil {
			return e
		}
		p.halfMoveClock = n
	}

	if len(fenParts) >= 6 {
		moveNumber, e := strconv.Atoi(fenParts[5])
		if e != nil {
			return e
		}
		if moveNumber == 0 {
			moveNumber = 1
		}
		p.nextHalfMoveNumber = 2*moveNumber - (1 - int(p.nextPlayer))
	}

	return nil
}
