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

package search

import (
	"github.com/kestrelchess/kestrel/internal/util"
	"github.com/kestrelchess/kestrel/pkg/eval"
	"github.com/kestrelchess/kestrel/pkg/move"
)

// storeKiller records killer as one of the two killer moves at plys,
// if it isn't a capture (captures are already ordered by MVV-LVA and
// don't need this slot).
func (search *Context) storeKiller(plys int, killer move.Move) {
	if !killer.IsCapture() && killer != search.killers[plys][0] {
		search.killers[plys][1] = search.killers[plys][0]
		search.killers[plys][0] = killer
	}
}

// storeCounter records that reply refuted the move the opponent just
// played, for use as a countermove on the next occurrence of that move.
func (search *Context) storeCounter(prev, reply move.Move) {
	if prev != move.Null {
		search.counter[prev.Source()][prev.Target()] = reply
	}
}

// isCounter reports whether m is the recorded countermove for prev.
func (search *Context) isCounter(prev, m move.Move) bool {
	return prev != move.Null && search.counter[prev.Source()][prev.Target()] == m
}

// updateHistory adjusts the history score of quiet move m by bonus,
// decaying the existing entry proportionally so scores stay bounded
// instead of growing without limit across a long search.
func (search *Context) updateHistory(m move.Move, bonus eval.MoveScore) {
	if m.IsCapture() {
		return
	}

	entry := &search.history[search.Board.SideToMove][m.Source()][m.Target()]
	*entry += bonus - *entry*util.Abs(bonus)/32768
}

// depthBonus scales the history bonus/malus awarded for a cutoff with
// the depth it occurred at: deeper cutoffs are stronger signal.
func depthBonus(depth int) eval.MoveScore {
	return eval.MoveScore(util.Min(2000, depth*155))
}
