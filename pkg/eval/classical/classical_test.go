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

package classical

import (
	"strings"
	"testing"

	"github.com/kestrelchess/kestrel/pkg/board"
)

func TestEvaluateStartingPositionIsSymmetric(t *testing.T) {
	b := board.NewBoard(board.StartFEN)
	if got := Evaluate(b); got != 0 {
		t.Errorf("Evaluate(startpos) = %d, want 0 (symmetric position)", got)
	}
}

func TestEvaluateFlipsSignWithSideToMove(t *testing.T) {
	// white is up a rook; evaluating from white's turn and from black's
	// turn on the same material balance should have opposite sign.
	whiteToMove := board.New("4k3/8/8/8/8/8/8/R3K3 w - - 0 1")
	blackToMove := board.New("4k3/8/8/8/8/8/8/R3K3 b - - 0 1")

	white := Evaluate(whiteToMove)
	black := Evaluate(blackToMove)

	if white <= 0 {
		t.Errorf("Evaluate(white to move, up a rook) = %d, want > 0", white)
	}
	if black >= 0 {
		t.Errorf("Evaluate(black to move, up a rook) = %d, want < 0", black)
	}
	if white != -black {
		t.Errorf("Evaluate(white) = %d, Evaluate(black) = %d, want exact negation", white, black)
	}
}

func TestEvaluateUsesFENFields(t *testing.T) {
	fen := strings.Fields("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	b := board.NewBoard(fen)
	if Evaluate(b) != 0 {
		t.Error("Evaluate(startpos via NewBoard) should also be symmetric")
	}
}
