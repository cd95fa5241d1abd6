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

import "github.com/kestrelchess/kestrel/pkg/board"

// String returns a human readable representation of the position
// currently being searched, along with its FEN and Zobrist hash.
func (search *Context) String() string {
	return search.Board.String()
}

// SetPosition replaces the context's board with the position described
// by fen, the six space-separated FEN fields as parsed by the UCI
// "position" command.
func (search *Context) SetPosition(fen []string) {
	*search.Board = *board.NewBoard(fen)
}

// MakeMoves plays the given UCI long algebraic moves in order on the
// context's board.
func (search *Context) MakeMoves(moves ...string) {
	for _, m := range moves {
		search.Board.MakeMove(search.Board.NewMoveFromString(m))
	}
}
