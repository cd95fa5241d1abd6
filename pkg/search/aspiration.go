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

// aspirationWindow searches depth using a window centered on the
// previous iteration's score instead of (-inf, +inf). A narrower
// window causes more beta cutoffs and a faster search, at the cost of
// a re-search whenever the true score falls outside it.
// https://www.chessprogramming.org/Aspiration_Windows
func (search *Context) aspirationWindow(depth int, prevEval eval.Eval) (eval.Eval, move.Variation) {
	alpha := -eval.Inf
	beta := eval.Inf

	initialDepth := depth

	var windowSize eval.Eval = 25

	if depth >= 5 {
		alpha = prevEval - windowSize
		beta = prevEval + windowSize
	}

	for {
		if search.shouldStop() {
			return 0, move.Variation{}
		}

		var pv move.Variation
		result := search.negamax(0, depth, alpha, beta, &pv)

		switch {
		case result <= alpha:
			beta = (alpha + beta) / 2
			alpha = util.Max(alpha-windowSize, -eval.Inf)
			depth = initialDepth

		case result >= beta:
			beta = util.Min(beta+windowSize, eval.Inf)
			if util.Abs(result) <= eval.Inf/2 {
				depth--
			}

		default:
			return result, pv
		}

		windowSize += windowSize / 2
	}
}
