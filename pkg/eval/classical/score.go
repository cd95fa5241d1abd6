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

// Package classical implements a second, hand-tunable evaluation
// function built from discrete positional terms rather than PeSTO's
// piece-square tables. It exists so the engine's term weights can be
// calibrated offline by cmd/tune against a labelled game corpus,
// instead of editing magic numbers by hand.
package classical

import "github.com/kestrelchess/kestrel/pkg/eval"

// Score packs a middle-game and an end-game evaluation into a single
// value, so every term only needs to be added once and tapered once.
type Score int64

// S creates a Score encapsulating the given mg and eg evaluations.
func S(mg, eg eval.Eval) Score {
	return Score(uint64(eg)<<32) + Score(mg)
}

// MG returns the score's middle-game evaluation.
func (s Score) MG() eval.Eval {
	return eval.Eval(int32(uint32(uint64(s))))
}

// EG returns the score's end-game evaluation. The +1<<31 rounds the
// unsigned shift so a negative mg component doesn't borrow into eg.
func (s Score) EG() eval.Eval {
	return eval.Eval(int32(uint32(uint64(s+(1<<31)) >> 32)))
}

// Scale returns s with both components scaled by pct percent, used to
// apply bonuses like "passed pawn, +40% with no rook behind" without
// corrupting the mg/eg packing a plain multiply would cause.
func (s Score) Scale(pct int64) Score {
	return S(s.MG()*eval.Eval(pct)/100, s.EG()*eval.Eval(pct)/100)
}
