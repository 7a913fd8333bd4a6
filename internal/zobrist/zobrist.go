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

// Package zobrist holds the position hash keys: one random 64-bit key per
// piece-square, castling-rights value, en-passant file, and side to move.
// A position's Key is the XOR of the keys for everything on the board, which
// lets make/unmake maintain it incrementally (XOR out the old, XOR in the
// new) instead of recomputing it from scratch on every move.
package zobrist

import "github.com/kylejrp/chesscore/internal/types"

// Key is a Zobrist hash value.
type Key uint64

// Table holds one random key per hashable feature of a position. It is
// built once at init time and never mutated afterward, so it is safe to
// share across boards and goroutines.
type Table struct {
	pieces         [types.PieceLength][types.SqLength]Key
	castlingRights [types.CastlingLength]Key
	enPassantFile  [8]Key
	nextPlayer     Key
}

// Base is the package-wide Zobrist key table, computed once at init time
// from a fixed seed so that keys are reproducible across runs.
var Base Table

func init() {
	r := newRandom(1070372)
	for pc := 0; pc < types.PieceLength; pc++ {
		for sq := types.SqA1; sq <= types.SqH8; sq++ {
			Base.pieces[pc][sq] = Key(r.rand64())
		}
	}
	for cr := types.CastlingNone; int(cr) < types.CastlingLength; cr++ {
		Base.castlingRights[cr] = Key(r.rand64())
	}
	for f := types.FileA; f <= types.FileH; f++ {
		Base.enPassantFile[f] = Key(r.rand64())
	}
	Base.nextPlayer = Key(r.rand64())
}

// PieceSquare returns the key for piece p standing on square sq.
func (t *Table) PieceSquare(p types.Piece, sq types.Square) Key {
	return t.pieces[p][sq]
}

// Castling returns the key for a given castling-rights value.
func (t *Table) Castling(cr types.CastlingRights) Key {
	return t.castlingRights[cr]
}

// EnPassantFile returns the key for an en-passant-capturable file.
func (t *Table) EnPassantFile(f types.File) Key {
	return t.enPassantFile[f]
}

// NextPlayer returns the key XORed in when it is Black's turn, so that
// flipping the side to move toggles it in and out.
func (t *Table) NextPlayer() Key {
	return t.nextPlayer
}

// randomPieceSquareSource describes the minimum a board needs to expose for
// Recompute to rebuild a Key from scratch.
type randomPieceSquareSource interface {
	PieceAt(sq types.Square) types.Piece
}

// Recompute rebuilds a position's Key from scratch by XORing together the
// keys for every piece on the board plus castling rights, en-passant file,
// and side to move. It is deliberately independent of the incremental
// make/unmake path and exists as the self-check that path is verified
// against: after a sequence of Do/Undo, Recompute(pos) must equal the
// incrementally maintained key.
func Recompute(board randomPieceSquareSource, cr types.CastlingRights, epFile types.File, hasEp bool, sideToMove types.Color) Key {
	var k Key
	for sq := types.SqA1; sq <= types.SqH8; sq++ {
		if p := board.PieceAt(sq); p != types.PieceNone {
			k ^= Base.PieceSquare(p, sq)
		}
	}
	k ^= Base.Castling(cr)
	if hasEp {
		k ^= Base.EnPassantFile(epFile)
	}
	if sideToMove == types.Black {
		k ^= Base.NextPlayer()
	}
	return k
}

// random is the xorshift64star pseudo-random generator, taken directly from
// Stockfish (itself crediting Sebastiano Vigna's public-domain design):
// 64-bit output, passes Dieharder/SmallCrush, no warm-up needed, period
// 2^64-1.
type random struct {
	s uint64
}

func newRandom(seed uint64) *random {
	if seed == 0 {
		panic("zobrist: seed must not be 0")
	}
	return &random{s: seed}
}

func (r *random) rand64() uint64 {
	r.s ^= r.s >> 12
	r.s ^= r.s << 25
	r.s ^= r.s >> 27
	return r.s * 2685821657736338717
}
