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
	"fmt"
	"time"

	"github.com/kestrelchess/kestrel/internal/util"
	"github.com/kestrelchess/kestrel/pkg/eval"
	"github.com/kestrelchess/kestrel/pkg/move"
)

// Stats tracks the running counters of a single search.
type Stats struct {
	SearchStart time.Time

	TTHits   int
	Nodes    int
	Depth    int
	SelDepth int
}

// GenerateReport snapshots the context's current statistics and PV
// into a UCI-printable Report.
func (search *Context) GenerateReport(score eval.Eval, pv move.Variation) Report {
	searchTime := time.Since(search.stats.SearchStart)

	return Report{
		Depth:    search.stats.Depth,
		SelDepth: search.stats.SelDepth,

		Nodes: search.stats.Nodes,
		Nps:   float64(search.stats.Nodes) / util.Max(0.001, searchTime.Seconds()),

		Hashfull: search.tt.Hashfull(),

		Time: searchTime,

		Score: score,
		PV:    pv,
	}
}

// Report is a point-in-time summary of a search, formatted as a UCI
// "info" line by String.
type Report struct {
	Depth    int
	SelDepth int

	Nodes int
	Nps   float64

	Hashfull float64

	Time time.Duration

	Score eval.Eval
	PV    move.Variation
}

func (report Report) String() string {
	return fmt.Sprintf(
		"info depth %d seldepth %d score %s nodes %d nps %.f hashfull %.f time %d pv %s",
		report.Depth, report.SelDepth, report.Score, report.Nodes, report.Nps,
		report.Hashfull*1000, report.Time.Milliseconds(), report.PV,
	)
}
