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

import "fmt"

// Square is the dense 0..63 board index: rank = index>>3, file = index&7.
// It is the encoding bitboards and tables are keyed on.
type Square uint8

// Dense square constants, A1..H8, plus the SqNone sentinel.
//noinspection GoUnusedConst
const (
	SqA1 Square = iota
	SqB1
	SqC1
	SqD1
	SqE1
	SqF1
	SqG1
	SqH1
	SqA2
	SqB2
	SqC2
	SqD2
	SqE2
	SqF2
	SqG2
	SqH2
	SqA3
	SqB3
	SqC3
	SqD3
	SqE3
	SqF3
	SqG3
	SqH3
	SqA4
	SqB4
	SqC4
	SqD4
	SqE4
	SqF4
	SqG4
	SqH4
	SqA5
	SqB5
	SqC5
	SqD5
	SqE5
	SqF5
	SqG5
	SqH5
	SqA6
	SqB6
	SqC6
	SqD6
	SqE6
	SqF6
	SqG6
	SqH6
	SqA7
	SqB7
	SqC7
	SqD7
	SqE7
	SqF7
	SqG7
	SqH7
	SqA8
	SqB8
	SqC8
	SqD8
	SqE8
	SqF8
	SqG8
	SqH8
	SqNone
)

// SqLength is the number of on-board dense squares.
const SqLength = 64

// IsValid reports whether sq is an on-board dense square.
func (sq Square) IsValid() bool {
	return sq <= SqH8
}

// FileOf returns the file of a dense square.
func (sq Square) FileOf() File {
	return File(sq & 7)
}

// RankOf returns the rank of a dense square.
func (sq Square) RankOf() Rank {
	return Rank(sq >> 3)
}

// Bb returns the single-bit Bitboard of sq.
func (sq Square) Bb() Bitboard {
	return Bitboard(1) << sq
}

// MakeSquare builds a dense square from a file and rank.
func MakeSquare(f File, r Rank) Square {
	return Square(uint8(r)<<3 + uint8(f))
}

// To returns the square reached by stepping in the given direction, or
// SqNone if that step would leave the board. Precomputed at init time so the
// hot path is a single table lookup, mirroring the teacher's sqTo table.
func (sq Square) To(d Direction) Square {
	if !sq.IsValid() {
		return SqNone
	}
	return sqTo[sq][directionIndex(d)]
}

var sqTo [SqLength][8]Square

func directionIndex(d Direction) int {
	for i, dd := range Directions {
		if dd == d {
			return i
		}
	}
	panic(fmt.Sprintf("invalid direction %d", d))
}

func init() {
	for sq := SqA1; sq <= SqH8; sq++ {
		f, r := sq.FileOf(), sq.RankOf()
		for i, d := range Directions {
			nf, nr := fileRankAfterStep(f, r, d)
			if nf.IsValid() && nr.IsValid() {
				sqTo[sq][i] = MakeSquare(nf, nr)
			} else {
				sqTo[sq][i] = SqNone
			}
		}
	}
}

func fileRankAfterStep(f File, r Rank, d Direction) (File, Rank) {
	fi, ri := int(f), int(r)
	switch d {
	case North:
		ri++
	case South:
		ri--
	case East:
		fi++
	case West:
		fi--
	case Northeast:
		fi++
		ri++
	case Southeast:
		fi++
		ri--
	case Southwest:
		fi--
		ri--
	case Northwest:
		fi--
		ri++
	}
	if fi < 0 || fi > 7 || ri < 0 || ri > 7 {
		return FileNone, RankNone
	}
	return File(fi), Rank(ri)
}

// String renders sq in algebraic form, or "-" for SqNone.
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return sq.FileOf().String() + sq.RankOf().String()
}

// MakeSquareFromString parses a two-character algebraic square such as "e4".
// Returns SqNone and false if s is not a well-formed on-board square.
func MakeSquareFromString(s string) (Square, bool) {
	if len(s) != 2 {
		return SqNone, false
	}
	fc, rc := s[0], s[1]
	if fc < 'a' || fc > 'h' || rc < '1' || rc > '8' {
		return SqNone, false
	}
	return MakeSquare(File(fc-'a'), Rank(rc-'1')), true
}

// algebraicInterned holds one canonical string per dense square so that
// repeated calls to ToAlgebraic return the same backing
// string value - the reference contract for algebraic round trips (spec
// "to_algebraic(x) == to_algebraic(x)" as references).
var algebraicInterned [SqLength]string

func init() {
	for sq := SqA1; sq <= SqH8; sq++ {
		algebraicInterned[sq] = sq.FileOf().String() + sq.RankOf().String()
	}
}

// ToAlgebraic returns the canonical interned algebraic string for sq.
func ToAlgebraic(sq Square) string {
	if !sq.IsValid() {
		return "-"
	}
	return algebraicInterned[sq]
}

// Square0x88 is the sparse 0..127 encoding: rank = index>>4, file = index&7.
// Off-board iff index&0x88 != 0, so a stepwise walk rejects off-board
// destinations with a single mask test instead of a per-direction lookup
// table. Dense and 0x88 are kept as two distinct types on purpose -
// bitboards and the precomputed tables are keyed on dense squares, while the
// 0x88 type offers allocation-free step-and-mask arithmetic. The move
// generator works on dense bitboards and does not use this type.
type Square0x88 uint8

// Sq0x88None is the canonical invalid-but-representable 0x88 value; callers
// should prefer the IsOnBoard test over comparing against this sentinel.
const Sq0x88None Square0x88 = 0x88

// IsOnBoard reports whether a 0x88 index is on the board.
func (sq Square0x88) IsOnBoard() bool {
	return sq&0x88 == 0
}

// FileOf returns the file of an on-board 0x88 square.
func (sq Square0x88) FileOf() File {
	return File(sq & 7)
}

// RankOf returns the rank of an on-board 0x88 square.
func (sq Square0x88) RankOf() Rank {
	return Rank(sq >> 4)
}

// Step returns the 0x88 square reached by adding delta, without checking
// whether the result is on-board - callers must test IsOnBoard themselves,
// which is the entire point of the encoding (one mask test per step, no
// table lookup, no branch on file wrap-around).
func (sq Square0x88) Step(delta Direction0x88) Square0x88 {
	return Square0x88(int8(sq) + int8(delta))
}

// ToSquare0x88 converts a dense square to its 0x88 counterpart. Total for
// all on-board dense values.
func ToSquare0x88(sq Square) Square0x88 {
	return Square0x88(uint8(sq.RankOf())<<4 | uint8(sq.FileOf()))
}

// ToDenseSquare converts an on-board 0x88 square back to dense. The caller
// must never present an off-board 0x88 value (sq.IsOnBoard() == false) to
// this function; doing so is a programming error in the caller, not
// something this function can recover from.
func ToDenseSquare(sq Square0x88) Square {
	return MakeSquare(sq.FileOf(), sq.RankOf())
}
