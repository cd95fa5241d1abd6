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

package tt

import (
	"testing"

	"github.com/kestrelchess/kestrel/pkg/eval"
	"github.com/kestrelchess/kestrel/pkg/move"
	"github.com/kestrelchess/kestrel/pkg/zobrist"
)

func TestStoreProbeRoundTrip(t *testing.T) {
	table := NewTable(1)

	entry := Entry{
		Hash:  zobrist.Key(0xdeadbeef),
		Move:  move.Null,
		Value: EvalFrom(eval.Eval(150), 4),
		Type:  ExactEntry,
		Depth: 4,
	}
	table.Store(entry)

	got, ok := table.Probe(entry.Hash)
	if !ok {
		t.Fatal("Probe: entry not found after Store")
	}
	if got.Value != entry.Value || got.Type != entry.Type || got.Depth != entry.Depth {
		t.Errorf("Probe returned %+v, want %+v", got, entry)
	}
}

func TestProbeMissOnEmptyTable(t *testing.T) {
	table := NewTable(1)
	if _, ok := table.Probe(zobrist.Key(1)); ok {
		t.Error("Probe on an empty table unexpectedly succeeded")
	}
}

func TestProbeMissOnHashCollision(t *testing.T) {
	table := NewTable(1)

	// force a slot collision directly: two different hashes mapping
	// to the same index must not be reported as the same entry.
	idx := table.indexOf(zobrist.Key(1))
	table.table[idx] = Entry{Hash: zobrist.Key(1), Type: ExactEntry, Depth: 1}

	if _, ok := table.Probe(zobrist.Key(2)); ok {
		t.Fatal("Probe reported a hit for a hash never stored into that slot")
	}
}

func TestDeeperEntryNotOverwrittenBySameEpochShallowerStore(t *testing.T) {
	table := NewTable(1)

	hash := zobrist.Key(42)
	table.Store(Entry{Hash: hash, Type: ExactEntry, Depth: 10})
	table.Store(Entry{Hash: hash, Type: ExactEntry, Depth: 2})

	got, ok := table.Probe(hash)
	if !ok {
		t.Fatal("Probe: entry missing")
	}
	if got.Depth != 10 {
		t.Errorf("Depth = %d, want 10 (shallower same-epoch store should not win)", got.Depth)
	}
}

func TestEvalMateNormalizationRoundTrip(t *testing.T) {
	score := eval.Mate - 3 // mate in a few plies, as seen from the root
	stored := EvalFrom(score, 5)
	if got := stored.Eval(5); got != score {
		t.Errorf("round trip through EvalFrom/Eval = %d, want %d", got, score)
	}
}

func TestResizeClearsTable(t *testing.T) {
	table := NewTable(1)
	table.Store(Entry{Hash: zobrist.Key(7), Type: ExactEntry, Depth: 1})

	table.Resize(1)

	if _, ok := table.Probe(zobrist.Key(7)); ok {
		t.Error("Resize should discard the table's previous contents")
	}
}
