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

import (
	"fmt"
	"math/bits"
	"strings"
)

// Bitboard is a 64-bit set where bit i represents dense square i.
type Bitboard uint64

// BbZero and BbAll are the empty and full bitboards.
const (
	BbZero Bitboard = 0
	BbAll  Bitboard = 0xFFFFFFFFFFFFFFFF
)

// File and rank masks, built at init time.
var (
	fileBb [8]Bitboard
	rankBb [8]Bitboard
)

// Named file/rank masks, for readability at call sites.
var (
	FileA_Bb, FileB_Bb, FileC_Bb, FileD_Bb Bitboard
	FileE_Bb, FileF_Bb, FileG_Bb, FileH_Bb Bitboard
	Rank1_Bb, Rank2_Bb, Rank3_Bb, Rank4_Bb Bitboard
	Rank5_Bb, Rank6_Bb, Rank7_Bb, Rank8_Bb Bitboard
)

func init() {
	for f := FileA; f <= FileH; f++ {
		var b Bitboard
		for r := Rank1; r <= Rank8; r++ {
			b.PushSquare(MakeSquare(f, r))
		}
		fileBb[f] = b
	}
	for r := Rank1; r <= Rank8; r++ {
		var b Bitboard
		for f := FileA; f <= FileH; f++ {
			b.PushSquare(MakeSquare(f, r))
		}
		rankBb[r] = b
	}
	FileA_Bb, FileB_Bb, FileC_Bb, FileD_Bb = fileBb[FileA], fileBb[FileB], fileBb[FileC], fileBb[FileD]
	FileE_Bb, FileF_Bb, FileG_Bb, FileH_Bb = fileBb[FileE], fileBb[FileF], fileBb[FileG], fileBb[FileH]
	Rank1_Bb, Rank2_Bb, Rank3_Bb, Rank4_Bb = rankBb[Rank1], rankBb[Rank2], rankBb[Rank3], rankBb[Rank4]
	Rank5_Bb, Rank6_Bb, Rank7_Bb, Rank8_Bb = rankBb[Rank5], rankBb[Rank6], rankBb[Rank7], rankBb[Rank8]
}

// PushSquare sets the bit for sq.
func (b *Bitboard) PushSquare(sq Square) {
	*b |= sq.Bb()
}

// PopSquare clears the bit for sq.
func (b *Bitboard) PopSquare(sq Square) {
	*b &^= sq.Bb()
}

// Has reports whether sq's bit is set.
func (b Bitboard) Has(sq Square) bool {
	return b&sq.Bb() != 0
}

// Lsb returns the least significant set square, or SqNone if empty.
func (b Bitboard) Lsb() Square {
	if b == 0 {
		return SqNone
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// Msb returns the most significant set square, or SqNone if empty.
func (b Bitboard) Msb() Square {
	if b == 0 {
		return SqNone
	}
	return Square(63 - bits.LeadingZeros64(uint64(b)))
}

// PopLsb clears and returns the least significant set square.
func (b *Bitboard) PopLsb() Square {
	sq := b.Lsb()
	*b &= *b - 1
	return sq
}

// PopCount returns the number of set bits.
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// ShiftBitboard shifts every bit of b one step in direction d, masking off
// squares that would wrap around a file edge.
func ShiftBitboard(b Bitboard, d Direction) Bitboard {
	switch d {
	case North:
		return b << 8
	case South:
		return b >> 8
	case East:
		return (b &^ FileH_Bb) << 1
	case West:
		return (b &^ FileA_Bb) >> 1
	case Northeast:
		return (b &^ FileH_Bb) << 9
	case Southeast:
		return (b &^ FileH_Bb) >> 7
	case Northwest:
		return (b &^ FileA_Bb) << 7
	case Southwest:
		return (b &^ FileA_Bb) >> 9
	default:
		panic(fmt.Sprintf("invalid shift direction %d", d))
	}
}

// String renders b as a human-readable 8x8 board, rank 8 first.
func (b Bitboard) String() string {
	var sb strings.Builder
	for r := Rank8; ; r-- {
		for f := FileA; f <= FileH; f++ {
			if b.Has(MakeSquare(f, r)) {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
		sb.WriteByte('\n')
		if r == Rank1 {
			break
		}
	}
	return sb.String()
}
