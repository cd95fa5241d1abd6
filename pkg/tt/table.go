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

// Package tt implements a transposition table: a fixed-size,
// open-addressed cache of previous search results keyed by Zobrist
// hash, used to avoid re-searching positions reached by a different
// move order.
package tt

import (
	"math/bits"
	"unsafe"

	"github.com/kestrelchess/kestrel/internal/util"
	"github.com/kestrelchess/kestrel/pkg/eval"
	"github.com/kestrelchess/kestrel/pkg/move"
	"github.com/kestrelchess/kestrel/pkg/zobrist"
)

// EntrySize is the size in bytes of a single table Entry.
var EntrySize = int(unsafe.Sizeof(Entry{}))

// NewTable creates a transposition table sized to fit within mbs
// megabytes.
func NewTable(mbs int) *Table {
	size := (mbs * 1024 * 1024) / EntrySize
	if size < 1 {
		size = 1
	}

	return &Table{
		table: make([]Entry, size),
		size:  size,
	}
}

// Table is a fixed-size transposition table.
type Table struct {
	table []Entry
	size  int
	epoch uint8
}

// Clear empties every entry in the table.
func (tt *Table) Clear() {
	clear(tt.table)
}

// NextEpoch marks the start of a new search, ageing every entry
// already in the table relative to new stores.
func (tt *Table) NextEpoch() {
	tt.epoch++
}

// Resize rebuilds the table to fit within mbs megabytes, discarding
// its previous contents.
func (tt *Table) Resize(mbs int) {
	size := (mbs * 1024 * 1024) / EntrySize
	if size < 1 {
		size = 1
	}

	*tt = Table{
		table: make([]Entry, size),
		size:  size,
	}
}

// Store inserts entry into the table, overwriting the existing slot
// only if entry is of equal or greater quality; this lets fresher,
// deeper searches evict stale shallow ones while a store from a
// shallower re-search doesn't clobber a good deep entry.
func (tt *Table) Store(entry Entry) {
	target := tt.fetch(entry.Hash)
	entry.epoch = tt.epoch

	if entry.quality() >= target.quality() {
		*target = entry
	}
}

// Probe looks up hash in the table. The returned bool is false if the
// slot is empty or holds a different position (a hash collision),
// in which case the Entry must not be used.
func (tt *Table) Probe(hash zobrist.Key) (Entry, bool) {
	entry := *tt.fetch(hash)
	return entry, entry.Type != NoEntry && entry.Hash == hash
}

// Hashfull estimates the fraction of the table currently in use by
// sampling its first 1000 slots (or fewer, if the table is smaller),
// as computing an exact count would mean scanning the whole table.
func (tt *Table) Hashfull() float64 {
	sample := util.Min(1000, tt.size)
	if sample == 0 {
		return 0
	}

	used := 0
	for i := 0; i < sample; i++ {
		if tt.table[i].Type != NoEntry {
			used++
		}
	}

	return float64(used) / float64(sample)
}

func (tt *Table) fetch(hash zobrist.Key) *Entry {
	return &tt.table[tt.indexOf(hash)]
}

// indexOf maps hash onto [0, size) without the bias or division cost
// of a modulo reduction.
// https://lemire.me/blog/2016/06/27/a-fast-alternative-to-the-modulo-reduction/
func (tt *Table) indexOf(hash zobrist.Key) uint {
	index, _ := bits.Mul(uint(hash), uint(tt.size))
	return index
}

// Entry is a single transposition table record.
type Entry struct {
	Hash zobrist.Key

	Move  move.Move
	Value Eval
	Type  EntryType

	Depth uint8
	epoch uint8
}

// quality ranks an entry for the replacement scheme: newer epochs and
// deeper searches are worth more and survive longer.
func (e *Entry) quality() uint8 {
	return e.epoch + e.Depth/3
}

// EntryType classifies how Entry.Value relates to the position's true
// score.
type EntryType uint8

const (
	NoEntry EntryType = iota

	ExactEntry // Value is the exact score
	LowerBound // Value is a lower bound (a beta cutoff occurred)
	UpperBound // Value is an upper bound (no move raised alpha)
)

// Eval is a transposition-table-stored evaluation: mate scores are
// normalized to plies-to-mate from the stored position rather than
// from the search root, so an entry remains valid when probed again
// at a different depth in the tree.
type Eval eval.Eval

// EvalFrom normalizes score, expressed as plies-to-mate from root, to
// an Eval expressed as plies-to-mate from the node at ply plys before
// storing it in the table.
func EvalFrom(score eval.Eval, plys int) Eval {
	switch {
	case score > eval.WinInMaxPly:
		score += eval.Eval(plys)
	case score < eval.LoseInMaxPly:
		score -= eval.Eval(plys)
	}
	return Eval(score)
}

// Eval denormalizes e, read back at ply plys below the search root,
// into a plies-to-mate-from-root score usable directly by search.
func (e Eval) Eval(plys int) eval.Eval {
	score := eval.Eval(e)

	switch {
	case score > eval.WinInMaxPly:
		score -= eval.Eval(plys)
	case score < eval.LoseInMaxPly:
		score += eval.Eval(plys)
	}

	return score
}
