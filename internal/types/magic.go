/*
 * chesscore - chess engine core in GO
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 Kyle Rupp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package types

// Magic holds the magic-bitboard lookup data for a single square.
// Taken from Stockfish; see https://stockfishchess.org/about/ for license.
type Magic struct {
	Mask    Bitboard
	Magic   Bitboard
	Attacks []Bitboard
	Shift   uint
}

// index computes the table index for a given occupancy.
//  occ &= m.Mask; occ *= m.Magic; occ >>= m.Shift
func (m *Magic) index(occupied Bitboard) uint {
	occ := occupied & m.Mask
	occ *= m.Magic
	occ >>= m.Shift
	return uint(occ)
}

// initMagics computes magic numbers and fills the attack table for every
// square, using the "fancy" approach described at
// https://www.chessprogramming.org/Magic_Bitboards. Taken from Stockfish.
func initMagics(table *[]Bitboard, magics *[64]Magic, directions *[4]Direction) {
	seeds := [8]uint64{728, 10316, 55013, 32803, 12281, 15100, 16645, 255}

	var occupancy, reference [4096]Bitboard
	var epoch [4096]int
	var edges, b Bitboard
	cnt := 0
	size := 0

	for sq := SqA1; sq <= SqH8; sq++ {
		edges = ((Rank1_Bb | Rank8_Bb) &^ sq.RankOf().Bb()) | ((FileA_Bb | FileH_Bb) &^ sq.FileOf().Bb())

		m := &(*magics)[sq]
		m.Mask = slidingAttack(directions, sq, BbZero) &^ edges
		m.Shift = uint(64 - m.Mask.PopCount())

		if sq == SqA1 {
			m.Attacks = *table
		} else {
			m.Attacks = magics[sq-1].Attacks[size:]
		}

		b = 0
		size = 0
		for {
			occupancy[size] = b
			reference[size] = slidingAttack(directions, sq, b)
			size++
			b = (b - m.Mask) & m.Mask
			if b == 0 {
				break
			}
		}

		rng := newPrnG(seeds[sq.RankOf()])

		for i := 0; i < size; {
			for m.Magic = 0; ; {
				m.Magic = Bitboard(rng.sparseRand())
				if ((m.Magic * m.Mask) >> 56).PopCount() < 6 {
					break
				}
			}

			cnt++
			for i = 0; i < size; i++ {
				idx := m.index(occupancy[i])
				if epoch[idx] < cnt {
					epoch[idx] = cnt
					m.Attacks[idx] = reference[i]
				} else if m.Attacks[idx] != reference[i] {
					break
				}
			}
		}
	}
}

// slidingAttack computes sliding attacks along the given directions for sq
// given occupied, by simple ray-walking. Only used at init time.
func slidingAttack(directions *[4]Direction, sq Square, occupied Bitboard) Bitboard {
	var attack Bitboard
	for i := 0; i < 4; i++ {
		s := sq
		for {
			next := s.To(directions[i])
			if !next.IsValid() {
				break
			}
			attack.PushSquare(next)
			if occupied.Has(next) {
				break
			}
			s = next
		}
	}
	return attack
}

// PrnG is the xorshift64star pseudo-random generator used to find magic
// numbers. Taken from Stockfish, which attributes it to Sebastiano Vigna's
// public-domain xorshift64star.
type PrnG struct {
	s uint64
}

func newPrnG(seed uint64) *PrnG {
	return &PrnG{s: seed}
}

func (r *PrnG) rand64() uint64 {
	r.s ^= r.s >> 12
	r.s ^= r.s << 25
	r.s ^= r.s >> 27
	return r.s * 2685821657736338717
}

// sparseRand produces numbers with roughly 1/8th of their bits set, which
// converge to a valid magic much faster than uniform random numbers.
func (r *PrnG) sparseRand() uint64 {
	return r.rand64() & r.rand64() & r.rand64()
}
