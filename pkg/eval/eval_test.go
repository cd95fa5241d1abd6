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

package eval

import (
	"testing"

	"github.com/kestrelchess/kestrel/pkg/board"
)

func TestPeSTOStartingPositionIsSymmetric(t *testing.T) {
	b := board.NewBoard(board.StartFEN)
	if got := PeSTO(b); got != 0 {
		t.Errorf("PeSTO(startpos) = %d, want 0 (symmetric position)", got)
	}
}

func TestPeSTOFlipsSignWithSideToMove(t *testing.T) {
	whiteToMove := board.New("4k3/8/8/8/8/8/8/R3K3 w - - 0 1")
	blackToMove := board.New("4k3/8/8/8/8/8/8/R3K3 b - - 0 1")

	white := PeSTO(whiteToMove)
	black := PeSTO(blackToMove)

	if white <= 0 {
		t.Errorf("PeSTO(white to move, up a rook) = %d, want > 0", white)
	}
	if black >= 0 {
		t.Errorf("PeSTO(black to move, up a rook) = %d, want < 0", black)
	}
	if white != -black {
		t.Errorf("PeSTO(white) = %d, PeSTO(black) = %d, want exact negation", white, black)
	}
}

func TestMatedInPrefersLongerLines(t *testing.T) {
	soon := MatedIn(2)
	later := MatedIn(10)
	if later <= soon {
		t.Errorf("MatedIn(10) = %d should score higher than MatedIn(2) = %d", later, soon)
	}
}

func TestEvalStringFormatsCentipawns(t *testing.T) {
	if got, want := Eval(150).String(), "cp 150"; got != want {
		t.Errorf("Eval(150).String() = %q, want %q", got, want)
	}
}

func TestEvalStringFormatsWinningMate(t *testing.T) {
	e := Mate - 1 // one ply from delivering mate
	if got := e.String(); got != "mate 1" {
		t.Errorf("(Mate-1).String() = %q, want %q", got, "mate 1")
	}
}

func TestEvalStringFormatsLosingMate(t *testing.T) {
	e := MatedIn(3)
	if got, want := e.String(), "mate -2"; got != want {
		t.Errorf("MatedIn(3).String() = %q, want %q", got, want)
	}
}

func TestRandDrawStaysWithinSmallJitterAboveNegative50(t *testing.T) {
	for seed := uint64(0); seed < 16; seed++ {
		d := RandDraw(seed)
		if d > -43 || d < -50 {
			t.Errorf("RandDraw(%d) = %d, want a small jitter in [-50, -43]", seed, d)
		}
	}
}
