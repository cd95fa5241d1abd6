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
	"testing"

	"github.com/kestrelchess/kestrel/pkg/board"
	"github.com/kestrelchess/kestrel/pkg/eval"
	"github.com/kestrelchess/kestrel/pkg/move"
	"github.com/kestrelchess/kestrel/pkg/search/timemanager"
)

// TestSearchEmitsReportsAndABestMove exercises a "go movetime 200" style
// search on the starting position: it should emit at least one report
// through OnReport and finish with a non-null principal variation.
func TestSearchEmitsReportsAndABestMove(t *testing.T) {
	reports := 0
	prevOnReport := OnReport
	OnReport = func(r Report) { reports++ }
	defer func() { OnReport = prevOnReport }()

	ctx := NewContext(board.NewBoard(board.StartFEN))
	pv, _, err := ctx.Search(Limits{
		Depth: MaxDepth,
		Time:  &timemanager.Movetime{Duration: 200},
	})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	if reports == 0 {
		t.Error("Search should have emitted at least one report")
	}
	if pv.Len() == 0 || pv.Move(0) == move.Null {
		t.Error("Search should return a non-null best move from the starting position")
	}
}

func TestSearchRejectsIllegalPositionWhereOpponentIsInCheck(t *testing.T) {
	// the side not to move is in check, meaning the side to move could
	// capture the king outright -- an illegal position.
	b := board.New("4k3/8/8/8/4q3/8/4K3/8 b - - 0 1")
	ctx := NewContext(b)

	_, _, err := ctx.Search(Limits{Depth: 1, Time: &timemanager.Infinite{}})
	if err == nil {
		t.Error("Search should reject a position where the opponent is in check")
	}
}

func TestFreshContextIsNotInProgress(t *testing.T) {
	ctx := NewContext(board.NewBoard(board.StartFEN))
	if ctx.InProgress() {
		t.Error("a fresh Context should not report InProgress")
	}
}

func TestResizeTTDoesNotPanic(t *testing.T) {
	ctx := NewContext(board.NewBoard(board.StartFEN))
	ctx.ResizeTT(1)
}

// TestSearchHonorsSearchMoves checks that a "go searchmoves" restriction
// is actually applied at the root: with only a2a3/a2a4 allowed, the
// returned best move must be one of those two, even though they are
// far from the best moves in the starting position.
func TestSearchHonorsSearchMoves(t *testing.T) {
	b := board.NewBoard(board.StartFEN)
	ctx := NewContext(b)

	allowed := []move.Move{
		b.NewMoveFromString("a2a3"),
		b.NewMoveFromString("a2a4"),
	}

	pv, _, err := ctx.Search(Limits{
		Depth:       4,
		SearchMoves: allowed,
		Time:        &timemanager.Infinite{},
	})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	best := pv.Move(0)
	if best != allowed[0] && best != allowed[1] {
		t.Errorf("Search with searchmoves restricted to %v, %v returned %v", allowed[0], allowed[1], best)
	}
}

func TestRestrictToSearchMovesKeepsOnlyAllowedMoves(t *testing.T) {
	b := board.NewBoard(board.StartFEN)
	moves := b.GenerateMoves()

	allowed := []move.Move{b.NewMoveFromString("e2e4")}
	restricted := restrictToSearchMoves(moves, allowed)

	if len(restricted) != 1 || restricted[0] != allowed[0] {
		t.Errorf("restrictToSearchMoves = %v, want [%v]", restricted, allowed[0])
	}
}

func TestMateDistanceOnNonMateScoreIsUnreachable(t *testing.T) {
	if d := mateDistance(150); d <= MaxDepth {
		t.Errorf("mateDistance(150) = %d, want > MaxDepth for a non-mate score", d)
	}
}

func TestMateDistanceCountsFullMoves(t *testing.T) {
	// mate delivered 3 plies from now: the mover's move, the reply, and
	// the mating move -- two full moves.
	if d := mateDistance(eval.Mate - 3); d != 2 {
		t.Errorf("mateDistance(mate in 3 plies) = %d, want 2", d)
	}
}
