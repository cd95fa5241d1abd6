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
	"fmt"

	"github.com/kestrelchess/kestrel/pkg/eval"
	"github.com/kestrelchess/kestrel/pkg/move"
)

// OnReport is called by iterativeDeepening after every completed
// iteration; the default just prints a UCI "info" line to stdout, but
// callers that route search output through a channel (as the engine's
// UCI loop does) can replace it before starting a search.
var OnReport = func(r Report) {
	fmt.Println(r.String())
}

// iterativeDeepening repeatedly searches the position at increasing
// depths until the depth limit is reached or the search is stopped. A
// shallower iteration seeds the transposition table and move ordering
// for the next, so walking up to depth N this way is faster overall
// than searching depth N directly.
// https://www.chessprogramming.org/Iterative_Deepening
func (search *Context) iterativeDeepening() (move.Variation, eval.Eval) {
	var score eval.Eval
	var pv move.Variation

	for search.depth = 1; search.depth <= search.limits.Depth; search.depth++ {
		search.stats.Depth = search.depth

		childScore, childPV := search.aspirationWindow(search.depth, score)

		if search.stopped {
			break
		}

		score, pv = childScore, childPV

		OnReport(search.GenerateReport(score, pv))

		if search.limits.Mate > 0 && mateDistance(score) <= search.limits.Mate {
			break
		}
	}

	return pv, score
}

// mateDistance returns the number of full moves until score's forced
// mate is delivered, or MaxDepth+1 if score isn't a mate score. Used
// to stop iterative deepening once a "go mate N" search has found a
// mate within the requested move count.
func mateDistance(score eval.Eval) int {
	if score <= eval.WinInMaxPly {
		return MaxDepth + 1
	}
	plys := eval.Mate - score
	return int(plys+1) / 2
}
