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

package zobrist

import (
	"testing"

	"github.com/kestrelchess/kestrel/internal/util"
	"github.com/kestrelchess/kestrel/pkg/castling"
	"github.com/kestrelchess/kestrel/pkg/piece"
	"github.com/kestrelchess/kestrel/pkg/square"
)

// TestKeysAreDeterministic checks that the package-level tables are
// seeded from a fixed seed rather than a time-based source, so that
// hashes computed in different processes agree.
func TestKeysAreDeterministic(t *testing.T) {
	before := PieceSquare[piece.WhitePawn][square.E4]
	if before == 0 {
		t.Fatal("PieceSquare table should be populated by init")
	}
	if got := PieceSquare[piece.WhitePawn][square.E4]; got != before {
		t.Errorf("PieceSquare[WhitePawn][E4] changed between reads: %d != %d", got, before)
	}

	var rng util.PRNG
	rng.Seed(1070372)
	if want := Key(rng.Uint64()); PieceSquare[0][square.A1] != want {
		t.Errorf("PieceSquare[0][A1] = %d, want %d from the fixed seed", PieceSquare[0][square.A1], want)
	}
}

// TestKeysAreDistinct is a sanity check that the PRNG isn't
// degenerate: every key in the piece-square table should differ from
// every other.
func TestKeysAreDistinct(t *testing.T) {
	seen := map[Key]bool{}
	for p := 0; p < piece.N; p++ {
		for s := square.A1; s <= square.H8; s++ {
			k := PieceSquare[p][s]
			if seen[k] {
				t.Fatalf("duplicate key %d at piece %d square %s", k, p, s)
			}
			seen[k] = true
		}
	}
}

func TestEnPassantKeysPerFileAreDistinct(t *testing.T) {
	seen := map[Key]bool{}
	for f := square.FileA; f <= square.FileH; f++ {
		k := EnPassant[f]
		if seen[k] {
			t.Fatalf("duplicate en passant key for file %d", f)
		}
		seen[k] = true
	}
}

func TestCastlingKeysCoverEveryRightsCombination(t *testing.T) {
	seen := map[Key]bool{}
	for r := castling.None; r <= castling.All; r++ {
		k := Castling[r]
		if seen[k] {
			t.Fatalf("duplicate castling key for rights %d", r)
		}
		seen[k] = true
	}
}

func TestSideToMoveKeyIsNonZero(t *testing.T) {
	if SideToMove == 0 {
		t.Error("SideToMove key should be a nonzero pseudo-random value")
	}
}
