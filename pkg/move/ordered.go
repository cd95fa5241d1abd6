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

package move

// score is any type a move-ordering score can be; uint64 is excluded
// so a score and a move always fit in OrderedMove without overflow.
type score interface {
	~int | ~int8 | ~int16 | ~int32 |
		~uint | ~uint8 | ~uint16 | ~uint32
}

// ScoreMoves scores every move in moveList with scorer and returns
// them as an OrderedMoveList ready for incremental selection sort.
func ScoreMoves[T score](moveList []Move, scorer func(Move) T) OrderedMoveList[T] {
	ordered := make([]OrderedMove[T], len(moveList))
	for i, m := range moveList {
		ordered[i] = newOrdered(m, scorer(m))
	}

	return OrderedMoveList[T]{moves: ordered, Length: len(moveList)}
}

// OrderedMoveList is a move list paired with per-move scores, ranked
// lazily by PickMove as the search consumes it.
type OrderedMoveList[T score] struct {
	moves  []OrderedMove[T]
	Length int
}

// PickMove selects the highest-scored move among list[index:] and
// swaps it into index, so repeated calls with increasing index yield
// moves best-first without sorting the whole (mostly unexplored) list
// up front.
func (list *OrderedMoveList[T]) PickMove(index int) Move {
	bestIndex := index
	bestScore := list.moves[index].Score()

	for i := index + 1; i < list.Length; i++ {
		if s := list.moves[i].Score(); s > bestScore {
			bestIndex = i
			bestScore = s
		}
	}

	list.moves[index], list.moves[bestIndex] = list.moves[bestIndex], list.moves[index]
	return list.moves[index].Move()
}

// OrderedMove packs a move and its ordering score into one word.
type OrderedMove[T score] uint64

func newOrdered[T score](m Move, s T) OrderedMove[T] {
	// [ score 32 bits ] [ move 32 bits ]
	return OrderedMove[T](uint64(s)<<32 | uint64(m))
}

// Score returns the move's ordering score.
func (m OrderedMove[T]) Score() T {
	return T(m >> 32)
}

// Move returns the packed move.
func (m OrderedMove[T]) Move() Move {
	return Move(m & 0xFFFFFFFF)
}
