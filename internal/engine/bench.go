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

package engine

import (
	"math"
	"strings"
	"time"

	"github.com/kestrelchess/kestrel/internal/util"
	"github.com/kestrelchess/kestrel/pkg/board"
	"github.com/kestrelchess/kestrel/pkg/search"
	"github.com/kestrelchess/kestrel/pkg/search/timemanager"
	"github.com/kestrelchess/kestrel/pkg/uci"
)

// benchDepth is the fixed depth every bench position is searched to,
// so bench's node count is stable across runs and only moves when the
// search itself changes, making it useful for regression checks.
const benchDepth = 8

// benchPositions is a small, fixed suite of FEN strings exercising
// varied middlegame and endgame structure.
var benchPositions = []string{
	"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
	"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	"r1bq1rk1/pp2bppp/2n1pn2/2pp4/3P1B2/2PBPN2/PP1N1PPP/R2Q1RK1 w - - 0 1",
	"8/8/8/8/8/4k3/4P3/4K3 w - - 0 1",
	"2r3k1/pp3pp1/1nq1p2p/3pP3/3P4/P1N2Q1P/1P3PP1/3R2K1 w - - 0 1",
}

// handleBench runs every bench position to benchDepth and reports the
// total nodes searched and the aggregate nodes-per-second, a quick
// way to confirm a change didn't silently blow up the search.
func (e *Engine) handleBench() {
	limits := search.Limits{
		Depth: benchDepth,
		Nodes: math.MaxInt,
		Time:  &timemanager.Infinite{},
	}

	prevReport := search.OnReport
	defer func() { search.OnReport = prevReport }()

	var totalNodes int
	start := time.Now()

	for _, fen := range benchPositions {
		var nodes int
		search.OnReport = func(r search.Report) { nodes = r.Nodes }

		ctx := search.NewContext(board.NewBoard(strings.Fields(fen)))
		if _, _, err := ctx.Search(limits); err != nil {
			e.out <- uci.Info("bench: skipping illegal position %q: %v", fen, err)
			continue
		}

		totalNodes += nodes
	}

	elapsed := util.Max(time.Since(start).Seconds(), 0.001)
	e.out <- uci.Info("bench: %d nodes %d nps", totalNodes, int(float64(totalNodes)/elapsed))
}
