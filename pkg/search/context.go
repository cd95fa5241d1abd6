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

// Package search implements the engine's move search: negamax with
// alpha-beta pruning, principal variation search, a quiescence search,
// iterative deepening with aspiration windows, and the move-ordering
// and pruning heuristics (transposition table, killers, history,
// null-move pruning, late move reductions) that make it fast enough to
// play at a useful depth.
package search

import (
	"errors"
	"time"

	"github.com/kestrelchess/kestrel/internal/util"
	"github.com/kestrelchess/kestrel/pkg/board"
	"github.com/kestrelchess/kestrel/pkg/eval"
	"github.com/kestrelchess/kestrel/pkg/move"
	"github.com/kestrelchess/kestrel/pkg/square"
	"github.com/kestrelchess/kestrel/pkg/tt"
)

// MaxDepth bounds how deep a search is ever allowed to go.
const MaxDepth = 256

// NewContext creates a new Context searching on board, with its own
// transposition table. A Context may be reused across searches on the
// same game by swapping out Board; start a fresh Context for a new
// game so stale TT/history data doesn't bias it.
func NewContext(b *board.Board) *Context {
	return &Context{
		Board:    b,
		tt:       tt.NewTable(16),
		stopped:  true,
		evalFunc: eval.PeSTO,
	}
}

// Context holds the state of one search: the position being searched,
// its transposition table, move-ordering heuristics, and statistics.
type Context struct {
	Board *board.Board

	tt       *tt.Table
	evalFunc eval.Func

	depth   int
	stopped bool

	killers [MaxDepth + 1][2]move.Move
	history [2][square.N][square.N]eval.MoveScore
	counter [square.N][square.N]move.Move

	stats Stats
	pv    move.Variation

	limits Limits
}

// Search runs iterative deepening on the context's board until limits
// is exhausted, and returns the principal variation found along with
// its evaluation. It is an error to search a position where the side
// not to move is in check, since that implies the king could be
// captured.
func (search *Context) Search(limits Limits) (move.Variation, eval.Eval, error) {
	search.start(limits)
	defer search.Stop()

	if search.Board.IsInCheck(search.Board.SideToMove.Other()) {
		return move.Variation{}, eval.Inf, errors.New("search: position is illegal")
	}

	pv, score := search.iterativeDeepening()
	return pv, score, nil
}

// UpdateLimits swaps in limits as the active search limits while a
// search is in progress, resetting its deadline. Used when a ponder
// search hits "ponderhit" and needs to continue under the real time
// control instead of the infinite one it started under. The caller
// must make sure a search is actually in progress before calling this.
func (search *Context) UpdateLimits(limits Limits) {
	limits.Depth = util.Min(limits.Depth, MaxDepth)
	search.limits = limits
	search.limits.Time.GetDeadline()
}

// ResizeTT rebuilds the context's transposition table to fit within
// mbs megabytes, discarding its previous contents.
func (search *Context) ResizeTT(mbs int) {
	search.tt.Resize(mbs)
}

// InProgress reports whether a search is currently running.
func (search *Context) InProgress() bool {
	return !search.stopped
}

// Stop halts any ongoing search; the search loop notices at its next
// node and unwinds immediately.
func (search *Context) Stop() {
	search.stopped = true
}

func (search *Context) start(limits Limits) {
	limits.Depth = util.Min(limits.Depth, MaxDepth)
	search.limits = limits

	search.stats = Stats{SearchStart: time.Now()}
	search.killers = [MaxDepth + 1][2]move.Move{}

	search.stopped = false
	search.limits.Time.GetDeadline()

	search.tt.NextEpoch()
}

// shouldStop reports whether some search limit has been crossed. Node
// and time limits are only checked once every 2048 nodes so the check
// itself doesn't become a bottleneck.
func (search *Context) shouldStop() bool {
	switch {
	case search.stopped:
		return true

	case search.stats.Nodes&2047 != 0, search.limits.Infinite:
		return false

	case search.limits.Nodes > 0 && search.stats.Nodes > search.limits.Nodes,
		search.limits.Time.Expired():
		search.Stop()
		return true

	default:
		return false
	}
}

// score returns the static evaluation of the current position.
func (search *Context) score() eval.Eval {
	return search.evalFunc(search.Board)
}

// draw returns a randomized draw score, so repeated draws among
// equally-scored lines don't make the search blind to a threefold
// repetition it could instead avoid or force.
func (search *Context) draw() eval.Eval {
	return eval.RandDraw(uint64(search.stats.Nodes))
}
