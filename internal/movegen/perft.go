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

// Package movegen also hosts perft (performance test): exhaustive leaf
// counting used to validate and benchmark move generation. Count is the
// plain fast path; Statistics classifies every leaf; Divide breaks node
// counts down per root move.
package movegen

import (
	"context"
	"runtime"
	"sync"

	"golang.org/x/sync/semaphore"

	"github.com/kylejrp/chesscore/internal/attacks"
	"github.com/kylejrp/chesscore/internal/config"
	"github.com/kylejrp/chesscore/internal/position"
	. "github.com/kylejrp/chesscore/internal/types"
)

// Stats is the classified leaf breakdown Statistics produces.
type Stats struct {
	Nodes           uint64
	Captures        uint64
	EnPassant       uint64
	Castles         uint64
	Promotions      uint64
	Checks          uint64
	DiscoveryChecks uint64
	DoubleChecks    uint64
	// Checkmates counts only states reached at a leaf (the move that
	// delivers mate is played at depth 1); a mate reached earlier in the
	// tree and searched past is not counted at that interior node, matching
	// the reference engine's published perft tables.
	Checkmates uint64
}

// DivideEntry is one root move's node count, as produced by Divide.
type DivideEntry struct {
	Move  Move
	Nodes uint64
}

// Count returns the number of leaf positions reachable from p at the given
// depth. Count(p, 1) equals the number of legal moves in p.
func Count(p *position.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	mg := NewMoveGen()
	moves := mg.GenerateLegalMoves(p, GenAll)
	if depth == 1 {
		return uint64(moves.Len())
	}
	var total uint64
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		p.DoMove(m)
		total += Count(p, depth-1)
		p.UndoMove()
	}
	return total
}

// Divide returns, for each legal root move, the node count reachable after
// playing it at depth-1. The sum of the returned counts equals Count(p, depth).
func Divide(p *position.Position, depth int) []DivideEntry {
	if depth <= 0 {
		return nil
	}
	mg := NewMoveGen()
	moves := mg.GenerateLegalMoves(p, GenAll)
	entries := make([]DivideEntry, 0, moves.Len())
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		p.DoMove(m)
		entries = append(entries, DivideEntry{Move: m, Nodes: Count(p, depth-1)})
		p.UndoMove()
	}
	return entries
}

// Statistics walks the game tree rooted at p to the given depth, classifying
// every leaf move into captures, en-passant, castles, promotions, checks,
// discovery checks, double checks, and checkmates.
// config.Settings.Core.KeepRepetitions is set to false for the run and
// restored afterward. That flag only gates Position.CheckRepetitions;
// DoMove records every key in the position's history either way.
func Statistics(p *position.Position, depth int) Stats {
	prevKeepReps := config.Settings.Core.KeepRepetitions
	config.Settings.Core.KeepRepetitions = false
	defer func() { config.Settings.Core.KeepRepetitions = prevKeepReps }()

	var s Stats
	statisticsRec(p, depth, &s)
	return s
}

func statisticsRec(p *position.Position, depth int, s *Stats) {
	mg := NewMoveGen()
	moves := mg.GenerateLegalMoves(p, GenAll)

	if depth > 1 {
		for i := 0; i < moves.Len(); i++ {
			m := moves.At(i)
			p.DoMove(m)
			statisticsRec(p, depth-1, s)
			p.UndoMove()
		}
		return
	}

	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		captured := p.PieceAt(m.To())
		p.DoMove(m)
		s.Nodes++
		classifyLeaf(p, m, captured, s)
		p.UndoMove()
	}
}

// classifyLeaf tallies one already-played leaf move into s. p must still be
// the position immediately after m was played (before UndoMove).
func classifyLeaf(p *position.Position, m Move, captured Piece, s *Stats) {
	if m.IsCapture() || captured != PieceNone {
		s.Captures++
	}
	if m.MoveType() == EnPassant {
		s.EnPassant++
	}
	if m.IsCastling() {
		s.Castles++
	}
	if m.IsPromotion() {
		s.Promotions++
	}

	mover := p.NextPlayer().Flip()
	defender := p.NextPlayer()
	kingSq := p.KingSquare(defender)
	breakdown := attacks.AttackerBreakdown(p, kingSq, mover)
	total := breakdown.Count()
	if total == 0 {
		return
	}
	s.Checks++
	if total >= 2 {
		s.DoubleChecks++
	}
	if !movedPieceAttacksSquare(p, m, kingSq) {
		s.DiscoveryChecks++
	}
	if !HasLegalMove(p) {
		s.Checkmates++
	}
}

// movedPieceAttacksSquare reports whether the piece m moved - the castling
// rook, for a castling move, since the king itself never checks anyone -
// directly attacks sq in the current position. A check where this is false
// was delivered by some other piece whose ray the move uncovered: a
// discovery check.
func movedPieceAttacksSquare(p *position.Position, m Move, sq Square) bool {
	to := m.To()
	if m.IsCastling() {
		for _, spec := range castlingSpecs {
			if spec.kingTo == m.To() && spec.moveType == m.MoveType() {
				to = spec.rookTo
				break
			}
		}
	}
	piece := p.PieceAt(to)
	if piece == PieceNone {
		return false
	}
	pt := piece.TypeOf()
	if pt == Pawn {
		return GetPawnAttacks(piece.ColorOf(), to).Has(sq)
	}
	return GetAttacksBb(pt, to, p.OccupiedAll()).Has(sq)
}

// StartPerftParallel fans the root moves of p out across goroutines, one
// clone of p per in-flight move, bounded by a weighted semaphore sized to
// workers (0 defaults to runtime.GOMAXPROCS(0)), and sums the
// Count(_, depth-1) each goroutine computes independently. Position.Clone
// is what makes this safe: each goroutine owns its own board and history,
// never touching the caller's p after the initial snapshot.
func StartPerftParallel(p *position.Position, depth int, workers int) uint64 {
	if depth <= 0 {
		return 1
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	mg := NewMoveGen()
	moves := mg.GenerateLegalMoves(p, GenAll).Clone()
	if depth == 1 {
		return uint64(moves.Len())
	}

	sem := semaphore.NewWeighted(int64(workers))
	ctx := context.Background()
	results := make([]uint64, moves.Len())

	var wg sync.WaitGroup
	wg.Add(moves.Len())
	for i := 0; i < moves.Len(); i++ {
		i := i
		if err := sem.Acquire(ctx, 1); err != nil {
			wg.Done()
			continue
		}
		go func() {
			defer wg.Done()
			defer sem.Release(1)
			clone := p.Clone()
			clone.DoMove(moves.At(i))
			results[i] = Count(clone, depth-1)
		}()
	}
	wg.Wait()

	var total uint64
	for _, r := range results {
		total += r
	}
	return total
}
