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

package board

import (
	"testing"

	"github.com/kestrelchess/kestrel/pkg/move"
	"github.com/kestrelchess/kestrel/pkg/piece"
	"github.com/kestrelchess/kestrel/pkg/square"
)

func TestCheckmateDetected(t *testing.T) {
	b := New("r1bqkbnr/pppp1Qp1/2n4p/4p3/2B1P3/8/PPPP1PPP/RNB1K1NR b KQkq - 0 4")

	moves := b.GenerateMoves()
	if len(moves) != 0 {
		t.Fatalf("len(GenerateMoves()) = %d, want 0", len(moves))
	}
	if !b.IsInCheck(b.SideToMove) {
		t.Error("side to move should be in check")
	}
}

func TestStalemateDetected(t *testing.T) {
	b := New("6k1/8/6K1/8/3B4/2P5/5R2/8 b - - 6 81")

	moves := b.GenerateMoves()
	if len(moves) != 0 {
		t.Fatalf("len(GenerateMoves()) = %d, want 0", len(moves))
	}
	if b.IsInCheck(b.SideToMove) {
		t.Error("side to move should not be in check")
	}
}

func TestEnPassantForbiddenByDiscoveredCheck(t *testing.T) {
	b := New("3br1k1/3q1ppp/p7/3P1P2/8/P6K/7P/8 b - - 0 36")
	b.MakeMove(b.NewMove(square.NewFromString("e7"), square.NewFromString("e5")))

	moves := b.GenerateMoves()
	if len(moves) != 5 {
		t.Fatalf("len(GenerateMoves()) = %d, want 5", len(moves))
	}

	for _, m := range moves {
		if m.Kind() == move.EnPassant {
			t.Fatal("en passant capture should not be legal")
		}
	}
}

func TestDoubleCheckForcesKingMove(t *testing.T) {
	b := New("rn1qkbnr/p1N1pppp/8/5b2/Q1p5/8/PP1PPPPP/R1B1KBNR b KQkq - 0 5")

	if moves := b.GenerateMoves(); len(moves) != 0 {
		t.Fatalf("len(GenerateMoves()) = %d, want 0 (mate by double check)", len(moves))
	}
}

func TestCastlingDisallowedInCheck(t *testing.T) {
	// white king on e1 in check from a rook on e8, with both rooks still
	// on their home squares so castling would otherwise be available.
	b := New("4r3/8/8/8/8/8/8/R3K2R w KQ - 0 1")
	if !b.IsInCheck(piece.White) {
		t.Fatal("test position should have white in check")
	}

	for _, m := range b.GenerateMoves() {
		if m.Kind() == move.Castle {
			t.Error("castling should not be legal while in check")
		}
	}
}

func TestMakeUnmakeRoundTrip(t *testing.T) {
	b := NewBoard(StartFEN)
	before := b.FEN()
	hashBefore := b.Hash

	for _, m := range b.GenerateMoves() {
		b.MakeMove(m)
		b.UnmakeMove()

		if got := b.FEN(); got != before {
			t.Fatalf("after make/unmake of %s: FEN = %q, want %q", m, got, before)
		}
		if b.Hash != hashBefore {
			t.Fatalf("after make/unmake of %s: Hash = %x, want %x", m, b.Hash, hashBefore)
		}
	}
}
