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
)

// quiescence searches only captures and promotions from the current
// position until it reaches a "quiet" position with none left, so
// negamax doesn't misjudge a position in the middle of a tactical
// exchange as if the exchange were over.
// https://www.chessprogramming.org/Quiescence_Search
func (search *Context) quiescence(plys int, alpha, beta eval.Eval) eval.Eval {
	search.stats.Nodes++
	search.stats.SelDepth = util.Max(search.stats.SelDepth, plys)

	if search.shouldStop() {
		return 0
	}

	standPat := search.score()
	if standPat >= beta {
		return standPat
	}
	alpha = util.Max(alpha, standPat)

	best := standPat

	moves := search.Board.GenerateCaptures()
	for _, m := range moves {
		search.Board.MakeMove(m)
		score := -search.quiescence(plys+1, -beta, -alpha)
		search.Board.UnmakeMove()

		if score > best {
			best = score

			if score > alpha {
				alpha = score
				if alpha >= beta {
					break
				}
			}
		}
	}

	return best
}
