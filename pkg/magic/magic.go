// Copyright © 2023 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package magic provides reusable utility types and functions used to
// generate magic hash tables for any sliding piece.
//
// Blocker masks are uint64 bitboards, so there are too many permutations
// to index directly. The relevant blockers for a given square are far
// fewer, and can be enumerated exhaustively. A magic number turns
// mask*magic>>shift into a perfect, contiguous hash of those
// permutations; magics are found by generating random candidates and
// checking them for collisions.
package magic

import (
	"github.com/kestrelchess/kestrel/internal/util"
	"github.com/kestrelchess/kestrel/pkg/bitboard"
	"github.com/kestrelchess/kestrel/pkg/square"
)

// magicSeeds are prng seeds, indexed by rank, chosen to generate valid
// magics quickly. Taken from the Stockfish chess engine.
var magicSeeds = [square.RankN]uint64{8977, 44560, 54343, 38998, 5731, 95205, 104912, 17020}

// NewTable generates a new magic hash table for the given move function.
// It generates the magics itself and is therefore a slow call, meant to
// be run once at program startup.
func NewTable(maskN int, moveFunc MoveFunc) *Table {
	var t Table

	var rand util.PRNG

	for s := square.A1; s <= square.H8; s++ {
		m := &t.Magics[s]

		m.BlockerMask = moveFunc(s, bitboard.Empty, true)
		bitCount := m.BlockerMask.Count()
		m.Shift = uint8(64 - bitCount)

		permutationsN := 1 << bitCount
		permutations := make([]bitboard.Board, permutationsN)

		blockers := bitboard.Empty
		for index := 0; blockers != bitboard.Empty || index == 0; index++ {
			permutations[index] = blockers
			blockers = (blockers - m.BlockerMask) & m.BlockerMask
		}

		rand.Seed(magicSeeds[s.Rank()])

	searchingMagic:
		for {
			t.Table[s] = make([]bitboard.Board, maskN)

			m.Number = rand.SparseUint64()

			for i := 0; i < permutationsN; i++ {
				blockers := permutations[i]

				index := m.Index(blockers)
				attacks := moveFunc(s, blockers, false)

				if t.Table[s][index] != bitboard.Empty && t.Table[s][index] != attacks {
					continue searchingMagic
				}

				t.Table[s][index] = attacks
			}

			break
		}
	}

	return &t
}

// Table is a magic hash table for a single sliding piece type.
type Table struct {
	Magics [square.N]Magic
	Table  [square.N][]bitboard.Board
}

// Probe returns the attack set for the piece on s given blockerMask.
func (t *Table) Probe(s square.Square, blockerMask bitboard.Board) bitboard.Board {
	return t.Table[s][t.Magics[s].Index(blockerMask)]
}

// Magic is a single square's magic hash entry.
type Magic struct {
	Number      uint64
	BlockerMask bitboard.Board
	Shift       byte
}

// Index computes the hash table index of blockerMask under this magic.
func (m Magic) Index(blockerMask bitboard.Board) uint64 {
	blockerMask &= m.BlockerMask
	return (uint64(blockerMask) * m.Number) >> m.Shift
}

// MoveFunc generates the attack set for a sliding piece on the given
// square given a blocker bitboard. When masking is true it is being
// asked for the relevant blocker mask instead, which excludes the edge
// squares of each ray since occupancy there never affects the piece's
// moves.
type MoveFunc func(s square.Square, blockers bitboard.Board, masking bool) bitboard.Board
