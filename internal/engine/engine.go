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

// Package engine wires the pure UCI parsing of pkg/uci to a running
// position and search: a reader goroutine turns stdin into Commands, the
// Engine dispatches each Command against its board and search.Context,
// and a writer goroutine drains the resulting Responses to stdout. The
// search itself runs in its own goroutine so "stop"/"ponderhit" keep
// being read and acted on while a search is in progress.
package engine

import (
	"github.com/kestrelchess/kestrel/pkg/board"
	"github.com/kestrelchess/kestrel/pkg/search"
	"github.com/kestrelchess/kestrel/pkg/uci"
	"github.com/kestrelchess/kestrel/pkg/uci/option"
)

// Name and Author identify this engine in response to "uci".
const (
	Name   = "Kestrel"
	Author = "kestrelchess"
)

// New creates an Engine at the standard starting position, ready to
// Dispatch Commands. Every Response it produces, synchronous or from a
// background search, is sent on out.
func New(out chan<- uci.Response) *Engine {
	e := &Engine{
		search:       search.NewContext(board.NewBoard(board.StartFEN)),
		fromStartpos: true,
		out:          out,
	}

	e.optionSchema = newOptionSchema(e)
	if err := e.optionSchema.SetDefaults(); err != nil {
		// option defaults are fixed at compile time; a failure here is
		// a bug in newOptionSchema, not something a GUI can trigger
		panic(err)
	}

	// route the search package's iterative-deepening reports through
	// this engine's response channel instead of its default of stdout
	search.OnReport = func(r search.Report) {
		e.out <- uci.Response(r.String())
	}

	return e
}

// newSearchContext creates a fresh search.Context at the starting
// position, sized to hashMB megabytes of transposition table. Used at
// startup and on "ucinewgame", so a new game never carries over the
// previous one's search history or stale TT entries.
func newSearchContext(hashMB int) *search.Context {
	ctx := search.NewContext(board.NewBoard(board.StartFEN))
	if hashMB > 0 {
		ctx.ResizeTT(hashMB)
	}
	return ctx
}

// Engine holds the position under search and the UCI options
// configuring it. It is driven exclusively by Dispatch, called in
// sequence from the command channel, so its fields besides search
// itself need no synchronization; search.Context is safe to read
// concurrently with an in-progress search (InProgress/Stop) by design.
type Engine struct {
	search *search.Context

	searching bool

	// bookLine is the space-separated move sequence played from the
	// starting position so far, used to consult pkg/book; bookLine is
	// only meaningful while fromStartpos is true, since the book is
	// keyed from the standard starting position.
	bookLine     string
	fromStartpos bool

	pondering    bool
	ponderLimits search.Limits

	optionSchema option.Schema
	options      options

	out chan<- uci.Response
}
