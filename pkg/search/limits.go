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
	"github.com/kestrelchess/kestrel/pkg/move"
	"github.com/kestrelchess/kestrel/pkg/search/timemanager"
)

// Limits bounds how long and how deep a search is allowed to run; it
// is passed to Context.Search to start a new search.
type Limits struct {
	Nodes int
	Depth int

	// SearchMoves, if non-empty, restricts the root move set to just
	// these moves, per UCI "go searchmoves".
	SearchMoves []move.Move

	// Mate, if positive, stops the search as soon as a forced mate in
	// this many full moves is found, per UCI "go mate".
	Mate int

	Infinite bool
	Time     timemanager.Manager
}
