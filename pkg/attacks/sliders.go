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
	"github.com/kestrelchess/kestrel/pkg/magic"
	"github.com/kestrelchess/kestrel/pkg/square"
)

var bishopTable *magic.Table
var rookTable *magic.Table

func init() {
	bishopTable = magic.NewTable(512, slide(bishopDirs))
	rookTable = magic.NewTable(4096, slide(rookDirs))
}

var bishopDirs = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
var rookDirs = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// slide builds a magic.MoveFunc for a slider moving along dirs. When
// masking is true, rays stop one square short of the board edge, since
// occupancy of the edge square never affects the slider's attack set.
func slide(dirs [4][2]int) magic.MoveFunc {
	return func(s square.Square, blockers bitboard.Board, masking bool) bitboard.Board {
		var attacks bitboard.Board

		for _, d := range dirs {
			f, r := int(s.File()), int(s.Rank())

			for {
				f += d[0]
				r += d[1]
				if f < 0 || f > 7 || r < 0 || r > 7 {
					break
				}

				if masking && (f == 0 || f == 7 || r == 0 || r == 7) {
					// the edge square itself is never a relevant blocker,
					// but is still included unless it's also the boundary
					// in the direction of travel.
					if onEdgeInDirection(f, r, d) {
						break
					}
				}

				t := square.New(square.File(f), square.Rank(r))
				attacks.Set(t)

				if blockers.IsSet(t) {
					break
				}
			}
		}

		return attacks
	}
}

// onEdgeInDirection reports whether (f, r) is the last reachable square
// along direction d before running off the board, i.e. whether it should
// be excluded from a blocker mask.
func onEdgeInDirection(f, r int, d [2]int) bool {
	if d[0] > 0 && f == 7 {
		return true
	}
	if d[0] < 0 && f == 0 {
		return true
	}
	if d[1] > 0 && r == 7 {
		return true
	}
	if d[1] < 0 && r == 0 {
		return true
	}
	return false
}

// Bishop returns the attack set for a bishop on s given the occupied
// squares blockers.
func Bishop(s square.Square, blockers bitboard.Board) bitboard.Board {
	return bishopTable.Probe(s, blockers)
}

// Rook returns the attack set for a rook on s given the occupied
// squares blockers.
func Rook(s square.Square, blockers bitboard.Board) bitboard.Board {
	return rookTable.Probe(s, blockers)
}

// Queen returns the attack set for a queen on s given the occupied
// squares blockers, the union of a rook's and a bishop's attack sets.
func Queen(s square.Square, blockers bitboard.Board) bitboard.Board {
	return Rook(s, blockers) | Bishop(s, blockers)
}
