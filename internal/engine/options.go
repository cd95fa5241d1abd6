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

import "github.com/kestrelchess/kestrel/pkg/uci/option"

// options holds the current value of every UCI option this engine
// supports, kept in sync with optionSchema by each option's Storage
// callback.
type options struct {
	Ponder  bool // name Ponder type check
	Hash    int  // name Hash type spin
	Threads int  // name Threads type spin
}

// newOptionSchema builds the option.Schema this engine advertises in
// reply to "uci" and accepts through "setoption".
func newOptionSchema(e *Engine) option.Schema {
	schema := option.NewSchema()

	schema.AddOption("Hash", &option.Spin{
		Default: 16, // small default, like the teacher, so a GUI that
		// never sends setoption still gets a working engine
		Min: 1,
		Max: 33554432, // stockfish's ceiling, to silence tourney-manager warnings
		Storage: func(hash int) error {
			e.options.Hash = hash
			e.search.ResizeTT(hash)
			return nil
		},
	})

	schema.AddOption("Threads", &option.Spin{
		// multi-threaded search is a non-goal; fix the value at 1 so
		// the option still exists for tourney managers that require it
		Default: 1,
		Min:     1,
		Max:     1,
		Storage: func(threads int) error {
			e.options.Threads = threads
			return nil
		},
	})

	schema.AddOption("Ponder", &option.Check{
		Default: false,
		Storage: func(ponder bool) error {
			e.options.Ponder = ponder
			return nil
		},
	})

	return schema
}
