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

// Direction is a set of constants for moving between dense squares.
type Direction int8

// Direction constants for the eight ray directions.
const (
	North     Direction = 8
	East      Direction = 1
	South     Direction = -North
	West      Direction = -East
	Northeast Direction = North + East
	Southeast Direction = South + East
	Southwest Direction = South + West
	Northwest Direction = North + West
)

// Directions lists all eight ray directions, used by slider pseudo-attack
// precomputation and by the magic-bitboard generator.
var Directions = [8]Direction{North, East, South, West, Northeast, Southeast, Southwest, Northwest}

// String returns a short label for the direction (N, E, ..., NW).
func (d Direction) String() string {
	switch d {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	case West:
		return "W"
	case Northeast:
		return "NE"
	case Southeast:
		return "SE"
	case Southwest:
		return "SW"
	case Northwest:
		return "NW"
	default:
		panic(fmt.Sprintf("invalid direction %d", d))
	}
}

// Direction0x88 is the matching step delta for the sparse 0x88 encoding,
// where off-board destinations are rejected by a single mask test rather
// than a per-square lookup table.
type Direction0x88 int8

// Direction0x88 constants mirror Direction but in 0x88 index space (rank
// shifted by 16 instead of 8).
const (
	North0x88     Direction0x88 = 16
	East0x88      Direction0x88 = 1
	South0x88     Direction0x88 = -North0x88
	West0x88      Direction0x88 = -East0x88
	Northeast0x88 Direction0x88 = North0x88 + East0x88
	Southeast0x88 Direction0x88 = South0x88 + East0x88
	Southwest0x88 Direction0x88 = South0x88 + West0x88
	Northwest0x88 Direction0x88 = North0x88 + West0x88
)

// KnightDeltas0x88 are the eight knight-step deltas in 0x88 index space.
var KnightDeltas0x88 = [8]int8{33, 31, 18, 14, -33, -31, -18, -14}
