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
	"github.com/kestrelchess/kestrel/pkg/piece"
	"github.com/kestrelchess/kestrel/pkg/tt"
)

// minPiecesForNullMove guards null-move pruning: it is only tried
// while more than this many knights, bishops, rooks and queens (both
// colors together) remain. With fewer, zugzwang is common enough that
// the null move's "skip a turn and you're still fine" assumption
// breaks down.
const minPiecesForNullMove = 1

// negamax searches the current position to the given depth using
// alpha-beta pruning in its negamax form: a single function serves
// both sides since chess is zero-sum and -score(you) == score(them).
// https://www.chessprogramming.org/Negamax
// https://www.chessprogramming.org/Alpha-Beta
func (search *Context) negamax(plys, depth int, alpha, beta eval.Eval, pv *move.Variation) eval.Eval {
	search.stats.Nodes++
	search.stats.SelDepth = util.Max(search.stats.SelDepth, plys)

	switch {
	case search.shouldStop():
		return 0

	case plys > 0 && search.Board.IsDraw():
		return search.draw()

	case depth <= 0, plys >= MaxDepth:
		return search.quiescence(plys, alpha, beta)
	}

	isPVNode := beta-alpha != 1 // beta == alpha+1 in a PVS null-window search
	inCheck := search.Board.IsInCheck(search.Board.SideToMove)

	// check extension: search one ply deeper when in check, so the
	// search doesn't evaluate from the middle of a forced sequence.
	if inCheck {
		depth++
	}

	prevMove := move.Null
	if plys > 0 {
		prevMove = search.Board.History[search.Board.Plys-1].Move
	}

	// null-move pruning: give the opponent a free move and see if our
	// position is still good enough for a cutoff. If skipping a turn
	// doesn't lose beta, a real move will do no worse, so the position
	// is pruned without searching any of its children. It is never
	// tried directly after another null move.
	// https://www.chessprogramming.org/Null_Move_Pruning
	if !isPVNode && !inCheck && plys > 0 && prevMove != move.Null && depth >= 3 &&
		search.nonPawnMaterial() > minPiecesForNullMove &&
		search.score() >= beta {

		reduction := 3 + depth/6
		var childPV move.Variation

		search.Board.MakeMove(move.Null)
		score := -search.negamax(plys+1, depth-1-reduction, -beta, -beta+1, &childPV)
		search.Board.UnmakeMove()

		if search.stopped {
			return 0
		}
		if score >= beta {
			return beta
		}
	}

	moves := search.Board.GenerateMoves()
	if plys == 0 && len(search.limits.SearchMoves) > 0 {
		moves = restrictToSearchMoves(moves, search.limits.SearchMoves)
	}
	if len(moves) == 0 {
		if inCheck {
			return eval.MatedIn(plys)
		}
		return eval.Draw
	}

	originalAlpha := alpha

	bestMove := move.Null
	bestEval := -eval.Inf

	if entry, hit := search.tt.Probe(search.Board.Hash); hit {
		bestMove = entry.Move

		if !isPVNode && int(entry.Depth) >= depth {
			search.stats.TTHits++
			value := entry.Value.Eval(plys)

			switch entry.Type {
			case tt.ExactEntry:
				return value
			case tt.LowerBound:
				alpha = util.Max(alpha, value)
			case tt.UpperBound:
				beta = util.Min(beta, value)
			}

			if alpha >= beta {
				return value
			}
		}
	}

	orderer := search.orderer(bestMove, plys, prevMove)
	list := move.ScoreMoves(moves, orderer)

	quietsSearched := 0

	for i := 0; i < list.Length; i++ {
		var childPV move.Variation

		m := list.PickMove(i)

		search.Board.MakeMove(m)
		givesCheck := search.Board.IsInCheck(search.Board.SideToMove)

		var score eval.Eval

		switch {
		case i == 0:
			score = -search.negamax(plys+1, depth-1, -beta, -alpha, &childPV)

		default:
			// late move reduction: reduce the search depth for quiet
			// moves ordered late, since they are unlikely to beat alpha.
			reduction := 0
			if depth >= 3 && m.IsQuiet() && !inCheck && !givesCheck && quietsSearched >= 4 {
				reduction = lateMoveReduction(depth, i)
			}

			newDepth := util.Max(depth-1-reduction, 0)
			score = -search.negamax(plys+1, newDepth, -alpha-1, -alpha, &childPV)

			if score > alpha && (reduction > 0 || isPVNode) {
				// either the reduced search beat alpha and needs a full
				// depth recheck, or this is a pv node and the null
				// window search needs a full window re-search
				score = -search.negamax(plys+1, depth-1, -beta, -alpha, &childPV)
			}
		}

		search.Board.UnmakeMove()

		if m.IsQuiet() {
			quietsSearched++
		}

		if score > bestEval {
			bestMove = m
			bestEval = score

			if score > alpha {
				alpha = score
				pv.Update(m, childPV)

				if alpha >= beta {
					if m.IsQuiet() {
						search.storeKiller(plys, m)
						search.storeCounter(prevMove, m)
						search.updateHistory(m, depthBonus(depth))
					}
					break
				}
			}
		}
	}

	if !search.stopped {
		var entryType tt.EntryType
		switch {
		case bestEval <= originalAlpha:
			entryType = tt.UpperBound
		case bestEval >= beta:
			entryType = tt.LowerBound
		default:
			entryType = tt.ExactEntry
		}

		search.tt.Store(tt.Entry{
			Hash:  search.Board.Hash,
			Value: tt.EvalFrom(bestEval, plys),
			Move:  bestMove,
			Depth: uint8(depth),
			Type:  entryType,
		})
	}

	return bestEval
}

// restrictToSearchMoves filters moves down to the subset also present
// in allowed, preserving moves' order. Used at the root to honor a
// UCI "go searchmoves" restriction.
func restrictToSearchMoves(moves, allowed []move.Move) []move.Move {
	restricted := moves[:0:0]
	for _, m := range moves {
		for _, a := range allowed {
			if m == a {
				restricted = append(restricted, m)
				break
			}
		}
	}
	return restricted
}

// nonPawnMaterial reports how many minor/major pieces are left on the
// board, used as the zugzwang guard for null-move pruning.
func (search *Context) nonPawnMaterial() int {
	b := search.Board
	pieces := b.PieceBBs[piece.Knight] | b.PieceBBs[piece.Bishop] |
		b.PieceBBs[piece.Rook] | b.PieceBBs[piece.Queen]
	return pieces.Count()
}

// orderer builds the move-ordering function for a node: the PV/
// MVV-LVA base ordering from pkg/eval, with killer and countermove
// bonuses layered on for quiet moves.
func (search *Context) orderer(pvMove move.Move, plys int, prevMove move.Move) func(move.Move) eval.MoveScore {
	base := eval.Orderer(search.Board, pvMove)
	killer1, killer2 := search.killers[plys][0], search.killers[plys][1]

	return func(m move.Move) eval.MoveScore {
		if s := base(m); s != eval.DefaultMoveScore {
			return s
		}

		switch {
		case m == killer1:
			return eval.KillerMoveScore
		case m == killer2:
			return eval.KillerMoveScore - 1
		case search.isCounter(prevMove, m):
			return eval.CounterMoveScore
		default:
			return search.history[search.Board.SideToMove][m.Source()][m.Target()]
		}
	}
}
