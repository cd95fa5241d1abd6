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

// Package eval scores chess positions and orders moves for search. The
// default Func is PeSTO, a tapered piece-square-table evaluator; the
// classical sub-package provides a swappable, hand-tunable alternative
// built from discrete positional terms.
package eval

import (
	"fmt"
	"math"

	"github.com/kestrelchess/kestrel/pkg/board"
)

// Eval represents a relative centipawn evaluation where > 0 is better
// for the side to move, while < 0 is better for the other side.
type Eval int32

// constants representing useful relative evaluations.
const (
	Inf  Eval = math.MaxInt32 / 2 // prevent any overflows
	Mate Eval = Inf - 1           // Inf is king capture
	Draw Eval = 0

	// limits to differentiate between regular and mate in n evaluations
	WinInMaxPly  Eval = Mate - 2*10000
	LoseInMaxPly Eval = -WinInMaxPly
)

// Func evaluates a position from the perspective of the side to move.
type Func func(b *board.Board) Eval

// MatedIn returns the evaluation for being mated in the given plys.
func MatedIn(plys int) Eval {
	// prefer the longer lines when getting mated, so they score higher
	return -Mate + Eval(plys)
}

// RandDraw returns the score awarded for a repeated or fifty-move
// draw: approximately -50cp from the mover's perspective, with a
// small seed-dependent jitter so search doesn't treat every repeated
// line as exactly equal and blind itself to a repetition it could
// instead avoid or force.
func RandDraw(seed uint64) Eval {
	return -50 + Eval(seed&7)
}

// String returns a UCI compliant string representation of the Eval.
func (e Eval) String() string {
	switch {
	case e > WinInMaxPly:
		plys := Mate - e
		return fmt.Sprintf("mate %d", (plys/2)+(plys%2))
	case e < LoseInMaxPly:
		plys := Mate + e
		return fmt.Sprintf("mate %d", -((plys/2)+(plys%2)))
	default:
		return fmt.Sprintf("cp %d", e)
	}
}
