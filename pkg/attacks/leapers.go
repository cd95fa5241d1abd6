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

package attacks

import (
	"github.com/kestrelchess/kestrel/pkg/bitboard"
	"github.com/kestrelchess/kestrel/pkg/piece"
	"github.com/kestrelchess/kestrel/pkg/square"
)

// Knight and King hold the precalculated attack sets of a knight and a
// king from every square on the board.
var (
	Knight [square.N]bitboard.Board
	King   [square.N]bitboard.Board
)

// Pawn holds the precalculated pawn capture sets, indexed by color and
// origin square. It does not include the quiet push squares, which
// depend on occupancy and are generated by Pawns/PawnsLeft/PawnsRight.
var Pawn [piece.ColorN][square.N]bitboard.Board

// knightOffsets and kingOffsets are (file, rank) deltas for every leap
// of the respective piece.
var knightOffsets = [8][2]int{
	{1, 2}, {2, 1}, {2, -1}, {1, -2},
	{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}

var kingOffsets = [8][2]int{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1},
	{-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

func init() {
	for s := square.A1; s <= square.H8; s++ {
		Knight[s] = leap(s, knightOffsets[:])
		King[s] = leap(s, kingOffsets[:])

		Pawn[piece.White][s] = leap(s, [][2]int{{1, 1}, {-1, 1}})
		Pawn[piece.Black][s] = leap(s, [][2]int{{1, -1}, {-1, -1}})
	}
}

// leap returns the union of every target square reachable from s by one
// of the given (file, rank) offsets, discarding targets off the board.
func leap(s square.Square, offsets [][2]int) bitboard.Board {
	var b bitboard.Board

	f, r := int(s.File()), int(s.Rank())
	for _, o := range offsets {
		tf, tr := f+o[0], r+o[1]
		if tf < 0 || tf > 7 || tr < 0 || tr > 7 {
			continue
		}
		b.Set(square.New(square.File(tf), square.Rank(tr)))
	}

	return b
}
