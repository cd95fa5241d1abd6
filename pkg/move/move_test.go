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

package move

import (
	"testing"

	"github.com/kestrelchess/kestrel/pkg/piece"
	"github.com/kestrelchess/kestrel/pkg/square"
)

func TestNewRoundTripsFields(t *testing.T) {
	m := New(square.E2, square.E4, piece.WhitePawn, false, DoublePawnPush)

	if m.Source() != square.E2 {
		t.Errorf("Source() = %v, want E2", m.Source())
	}
	if m.Target() != square.E4 {
		t.Errorf("Target() = %v, want E4", m.Target())
	}
	if m.Piece() != piece.WhitePawn {
		t.Errorf("Piece() = %v, want WhitePawn", m.Piece())
	}
	if m.Kind() != DoublePawnPush {
		t.Errorf("Kind() = %v, want DoublePawnPush", m.Kind())
	}
	if m.IsCapture() {
		t.Error("IsCapture() should be false")
	}
}

func TestStringFormatsLongAlgebraic(t *testing.T) {
	m := New(square.E2, square.E4, piece.WhitePawn, false, Quiet)
	if got, want := m.String(), "e2e4"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestStringFormatsPromotion(t *testing.T) {
	m := New(square.D7, square.D8, piece.WhitePawn, false, PromotionQueen)
	if got, want := m.String(), "d7d8q"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestNullMoveStringIsZeroes(t *testing.T) {
	if got, want := Null.String(), "0000"; got != want {
		t.Errorf("Null.String() = %q, want %q", got, want)
	}
}

func TestEnPassantIsACaptureEvenWithoutTheFlagSet(t *testing.T) {
	m := New(square.E5, square.D6, piece.WhitePawn, false, EnPassant)
	if !m.IsCapture() {
		t.Error("en passant moves should report IsCapture true")
	}
}

func TestIsQuietAndIsTacticalAreComplementary(t *testing.T) {
	quiet := New(square.E2, square.E3, piece.WhitePawn, false, Quiet)
	capture := New(square.E4, square.D5, piece.WhitePawn, true, Quiet)

	if !quiet.IsQuiet() || quiet.IsTactical() {
		t.Error("a plain quiet move should be IsQuiet, not IsTactical")
	}
	if capture.IsQuiet() || !capture.IsTactical() {
		t.Error("a capture should be IsTactical, not IsQuiet")
	}
}

func TestIsReversible(t *testing.T) {
	pawnPush := New(square.E2, square.E3, piece.WhitePawn, false, Quiet)
	knightMove := New(square.G1, square.F3, piece.WhiteKnight, false, Quiet)

	if pawnPush.IsReversible() {
		t.Error("a pawn move should not be reversible")
	}
	if !knightMove.IsReversible() {
		t.Error("a quiet knight move should be reversible")
	}
}

func TestPromotionKindKnowsItsPieceType(t *testing.T) {
	cases := map[Kind]piece.Type{
		PromotionKnight: piece.Knight,
		PromotionBishop: piece.Bishop,
		PromotionRook:   piece.Rook,
		PromotionQueen:  piece.Queen,
	}
	for kind, want := range cases {
		if got := kind.PromotionType(); got != want {
			t.Errorf("%v.PromotionType() = %v, want %v", kind, got, want)
		}
	}
}

func TestVariationUpdateBuildsPVFromChild(t *testing.T) {
	var child Variation
	child.Update(New(square.E7, square.E5, piece.BlackPawn, false, DoublePawnPush), Variation{})

	var v Variation
	v.Update(New(square.E2, square.E4, piece.WhitePawn, false, DoublePawnPush), child)

	if v.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", v.Len())
	}
	if got, want := v.Move(0).String(), "e2e4"; got != want {
		t.Errorf("Move(0) = %q, want %q", got, want)
	}
	if got, want := v.Move(1).String(), "e7e5"; got != want {
		t.Errorf("Move(1) = %q, want %q", got, want)
	}
	if v.Move(2) != Null {
		t.Error("Move past the end of the variation should be Null")
	}
}

func TestVariationClear(t *testing.T) {
	var v Variation
	v.Update(New(square.E2, square.E4, piece.WhitePawn, false, DoublePawnPush), Variation{})
	v.Clear()
	if v.Len() != 0 {
		t.Errorf("Len() after Clear() = %d, want 0", v.Len())
	}
}

func TestScoreMovesOrdersBestFirst(t *testing.T) {
	moves := []Move{
		New(square.A2, square.A3, piece.WhitePawn, false, Quiet),
		New(square.B2, square.B4, piece.WhitePawn, false, DoublePawnPush),
		New(square.G1, square.F3, piece.WhiteKnight, false, Quiet),
	}
	scores := map[Move]int{moves[0]: 10, moves[1]: 100, moves[2]: 50}

	list := ScoreMoves(moves, func(m Move) int { return scores[m] })

	first := list.PickMove(0)
	if first != moves[1] {
		t.Errorf("PickMove(0) = %v, want the highest-scored move %v", first, moves[1])
	}

	second := list.PickMove(1)
	if second != moves[2] {
		t.Errorf("PickMove(1) = %v, want the second-highest-scored move %v", second, moves[2])
	}
}
