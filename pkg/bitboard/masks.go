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

package bitboard

import "github.com/kestrelchess/kestrel/pkg/square"

// Squares holds a singleton bitboard for every square, avoiding a shift
// at every call site.
var Squares [square.N]Board

// file and rank masks.
var (
	FileA, FileB, FileC, FileD Board
	FileE, FileF, FileG, FileH Board

	Rank1, Rank2, Rank3, Rank4 Board
	Rank5, Rank6, Rank7, Rank8 Board
)

var files = [square.FileN]*Board{&FileA, &FileB, &FileC, &FileD, &FileE, &FileF, &FileG, &FileH}
var ranks = [square.RankN]*Board{&Rank1, &Rank2, &Rank3, &Rank4, &Rank5, &Rank6, &Rank7, &Rank8}

// Files and Ranks index file/rank masks by number, for callers that
// compute a file or rank index rather than naming it.
var Files [square.FileN]Board
var Ranks [square.RankN]Board

// castling-relevant square groups, named after the squares they cover.
var (
	F1G1, B1C1D1, C1D1 Board
	F8G8, B8C8D8, C8D8 Board
)

// Between[a][b] is the set of squares strictly between a and b if they
// share a rank, file, or diagonal, including neither endpoint. It is
// Empty if a and b don't share a line.
var Between [square.N][square.N]Board

// Line[a][b] is Between[a][b] plus both endpoints: the segment from a
// to b, not extended beyond either end. It is Empty if a and b don't
// share a line.
var Line [square.N][square.N]Board

func init() {
	for s := square.A1; s <= square.H8; s++ {
		Squares[s] = Board(1) << s
	}

	for f := square.FileA; f <= square.FileH; f++ {
		for s := square.A1; s <= square.H8; s++ {
			if s.File() == f {
				*files[f] |= Squares[s]
			}
		}
	}

	for r := square.Rank1; r <= square.Rank8; r++ {
		for s := square.A1; s <= square.H8; s++ {
			if s.Rank() == r {
				*ranks[r] |= Squares[s]
			}
		}
	}

	Files = [square.FileN]Board{FileA, FileB, FileC, FileD, FileE, FileF, FileG, FileH}
	Ranks = [square.RankN]Board{Rank1, Rank2, Rank3, Rank4, Rank5, Rank6, Rank7, Rank8}

	F1G1 = Squares[square.F1] | Squares[square.G1]
	C1D1 = Squares[square.C1] | Squares[square.D1]
	B1C1D1 = Squares[square.B1] | C1D1

	F8G8 = Squares[square.F8] | Squares[square.G8]
	C8D8 = Squares[square.C8] | Squares[square.D8]
	B8C8D8 = Squares[square.B8] | C8D8

	initBetween()
}

// rayDirs are the eight directions a queen can slide in, as (fileDelta,
// rankDelta) pairs.
var rayDirs = [8][2]int{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
}

func initBetween() {
	for a := square.A1; a <= square.H8; a++ {
		for _, d := range rayDirs {
			var ray Board
			f, r := int(a.File()), int(a.Rank())

			for {
				f += d[0]
				r += d[1]
				if f < 0 || f > 7 || r < 0 || r > 7 {
					break
				}

				b := square.New(square.File(f), square.Rank(r))
				Between[a][b] = ray
				Line[a][b] = ray | Squares[b] | Squares[a]

				ray |= Squares[b]
			}
		}
	}
}
