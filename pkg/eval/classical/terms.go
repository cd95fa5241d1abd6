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
	"encoding/json"
	"os"

	"github.com/kestrelchess/kestrel/pkg/piece"
	"github.com/kestrelchess/kestrel/pkg/square"
)

// TermSet collects every tunable weight of the classical evaluator.
// cmd/tune loads, perturbs, and saves a TermSet; the engine itself
// only ever reads the package-level Terms.
type TermSet struct {
	Material [piece.TypeN]Score `json:"material"`

	// PassedPawn[r] is the bonus for an unblockable passed pawn on the
	// rank r squares away from its own back rank (0 = the back rank
	// itself, so entries 0 and 7 never apply).
	PassedPawn [square.RankN]Score `json:"passed_pawn"`
	// PassedPawnNoRookBehindPct scales PassedPawn when the pawn has no
	// friendly rook or queen behind it on its file, expressed as a
	// percentage (140 means +40%).
	PassedPawnNoRookBehindPct int64 `json:"passed_pawn_no_rook_behind_pct"`

	IsolatedPawn Score `json:"isolated_pawn"`
	DoubledPawn  Score `json:"doubled_pawn"`

	RookFullOpenFile Score `json:"rook_full_open_file"`
	RookSemiOpenFile Score `json:"rook_semi_open_file"`

	// CentralityWeight[t] scales a piece's distance-from-edge bonus;
	// distinct from PeSTO's baked piece-square tables, these are
	// computed from file/rank distance on each evaluation so a tuner can
	// calibrate six numbers instead of six 64-entry tables.
	CentralityWeight [piece.TypeN]Score `json:"centrality_weight"`
}

// defaultTerms are the term values shipped with the engine, chosen to
// be in the right ballpark rather than tuned; cmd/tune exists to
// replace them with values fit to actual game data.
var defaultTerms = TermSet{
	Material: [piece.TypeN]Score{
		piece.Pawn:   S(100, 120),
		piece.Knight: S(320, 290),
		piece.Bishop: S(330, 300),
		piece.Rook:   S(500, 520),
		piece.Queen:  S(900, 940),
	},

	PassedPawn: [square.RankN]Score{
		S(0, 0), S(0, 0), S(10, 20), S(20, 35),
		S(35, 60), S(60, 100), S(100, 150), S(0, 0),
	},
	PassedPawnNoRookBehindPct: 140,

	IsolatedPawn: S(-10, -15),
	DoubledPawn:  S(-8, -20),

	RookFullOpenFile: S(25, 10),
	RookSemiOpenFile: S(12, 6),

	CentralityWeight: [piece.TypeN]Score{
		piece.Pawn:   S(1, 0),
		piece.Knight: S(4, 2),
		piece.Bishop: S(3, 2),
		piece.Rook:   S(1, 1),
		piece.Queen:  S(2, 3),
		piece.King:   S(-3, 4),
	},
}

// Terms is the active term set used by Evaluate. LoadTerms replaces it
// wholesale; the zero value is never used directly.
var Terms = defaultTerms

// Parameters returns a pointer to every Score-valued weight in set, in
// a stable order. cmd/tune walks this slice to nudge each weight
// independently without needing to know TermSet's exact shape.
func (set *TermSet) Parameters() []*Score {
	params := make([]*Score, 0, piece.TypeN+square.RankN+4+piece.TypeN)

	for t := range set.Material {
		params = append(params, &set.Material[t])
	}
	for r := range set.PassedPawn {
		params = append(params, &set.PassedPawn[r])
	}

	params = append(params,
		&set.IsolatedPawn,
		&set.DoubledPawn,
		&set.RookFullOpenFile,
		&set.RookSemiOpenFile,
	)

	for t := range set.CentralityWeight {
		params = append(params, &set.CentralityWeight[t])
	}

	return params
}

// ScalarParameters returns a pointer to every plain int64 weight in
// set that Parameters does not cover, such as percentage scale
// factors. Tuned the same way as Score weights, just without an
// mg/eg split.
func (set *TermSet) ScalarParameters() []*int64 {
	return []*int64{&set.PassedPawnNoRookBehindPct}
}

// LoadTerms reads a TermSet previously written by SaveTerms (normally
// the output of cmd/tune) and installs it as the active Terms.
func LoadTerms(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var set TermSet
	if err := json.Unmarshal(data, &set); err != nil {
		return err
	}

	Terms = set
	return nil
}

// SaveTerms writes set to path as indented JSON.
func SaveTerms(path string, set TermSet) error {
	data, err := json.MarshalIndent(set, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
