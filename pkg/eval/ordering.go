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

package eval

import (
	"github.com/kestrelchess/kestrel/pkg/board"
	"github.com/kestrelchess/kestrel/pkg/move"
	"github.com/kestrelchess/kestrel/pkg/piece"
)

// MoveScore orders a move relative to its siblings during search: the
// higher the score, the earlier alpha-beta should try it.
type MoveScore int32

// bands used to separate move categories. PV, capture, killer and
// countermove scores never overlap; a history score can grow up to
// KillerMoveScore, so it may outrank a countermove or the second
// killer.
const (
	PVMoveScore      MoveScore = 1 << 20
	CaptureBaseScore MoveScore = 1 << 16
	KillerMoveScore  MoveScore = 1 << 15
	CounterMoveScore MoveScore = 1 << 14
	DefaultMoveScore MoveScore = 0
)

// MvvLva scores a capture by victim value first, attacker value
// second: a pawn taking a queen sorts far ahead of a queen taking a
// pawn. Table taken from Blunder's move orderer.
// score = CaptureBaseScore + MvvLva[victim][attacker]
var MvvLva = [piece.TypeN][piece.TypeN]MoveScore{
	// Attackers:   -   P   N   B   R   Q   K
	piece.Pawn:   {16, 15, 14, 13, 12, 11, 10},
	piece.Knight: {26, 25, 24, 23, 22, 21, 20},
	piece.Bishop: {36, 35, 34, 33, 32, 31, 30},
	piece.Rook:   {46, 45, 44, 43, 42, 41, 40},
	piece.Queen:  {56, 55, 54, 53, 52, 51, 50},
	piece.King:   {66, 65, 64, 63, 62, 61, 60},
}

// OrderingFunc scores a single move for sorting a move list.
type OrderingFunc func(m move.Move) MoveScore

// Orderer returns an OrderingFunc for position b that ranks pv ahead
// of everything else, then captures and promotions by MVV-LVA, then
// quiet moves at DefaultMoveScore, leaving killer/history adjustment
// to the caller.
func Orderer(b *board.Board, pv move.Move) OrderingFunc {
	return func(m move.Move) MoveScore {
		switch {
		case m == pv:
			return PVMoveScore

		case m.IsCapture():
			victim := piece.Pawn
			if m.Kind() != move.EnPassant {
				victim = b.Position[m.Target()].Type()
			}
			attacker := m.Piece().Type()
			return CaptureBaseScore + MvvLva[victim][attacker]

		case m.IsPromotion():
			return CaptureBaseScore + MvvLva[m.Kind().PromotionType()][piece.Pawn]

		default:
			return DefaultMoveScore
		}
	}
}
