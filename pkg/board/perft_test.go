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

import "testing"

// runPerft checks Perft(fen, depth) against want for depth 1..len(want).
// want holds every depth the test suite must verify; in -short mode only
// the first shortDepths entries run, since the deepest vectors explore
// hundreds of millions of leaves and are too slow for a quick run.
func runPerft(t *testing.T, name, fen string, want []int, shortDepths int) {
	t.Helper()

	n := len(want)
	if testing.Short() {
		n = shortDepths
	}

	for depth := 0; depth < n; depth++ {
		if got := Perft(fen, depth+1); got != want[depth] {
			t.Errorf("Perft(%s, %d) = %d, want %d", name, depth+1, got, want[depth])
		}
	}
}

func TestPerftStartingPosition(t *testing.T) {
	fen := "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
	want := []int{20, 400, 8902, 197281, 4865609, 119060324}
	runPerft(t, "startpos", fen, want, 4)
}

func TestPerftKiwipete(t *testing.T) {
	fen := "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq -"
	want := []int{48, 2039, 97862, 4085603, 193690690}
	runPerft(t, "kiwipete", fen, want, 3)
}

func TestPerftEndgamePin(t *testing.T) {
	fen := "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - -"
	want := []int{14, 191, 2812, 43238, 674624, 11030083}
	runPerft(t, "endgame pin", fen, want, 4)
}

func TestPerftPosition4(t *testing.T) {
	fen := "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1"
	want := []int{6, 264, 9467, 422333, 15833292}
	runPerft(t, "position 4", fen, want, 3)
}

func TestPerftPosition5(t *testing.T) {
	fen := "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8"
	want := []int{44, 1486, 62379, 2103487, 89941194}
	runPerft(t, "position 5", fen, want, 3)
}

func TestPerftPosition6(t *testing.T) {
	fen := "r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10"
	want := []int{46, 2079, 89890, 3894594, 164075551}
	runPerft(t, "position 6", fen, want, 3)
}
