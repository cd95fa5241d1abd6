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
	"errors"
	"strings"

	"github.com/kestrelchess/kestrel/pkg/board"
	"github.com/kestrelchess/kestrel/pkg/uci"
)

// handlePosition sets up the base position named by cmd's fen/startpos
// flags and plays its moves list on top of it.
func (e *Engine) handlePosition(cmd uci.Command) {
	values := cmd.Values

	var fen []string
	switch {
	case values["startpos"].Set && values["fen"].Set:
		e.out <- uci.Info("position: both startpos and fen given")
		return

	case values["startpos"].Set:
		fen = board.StartFEN
		e.fromStartpos = true

	case values["fen"].Set:
		fen = values["fen"].Value.([]string)
		e.fromStartpos = false

	default:
		e.out <- uci.Info("position: no startpos or fen given")
		return
	}

	e.search.SetPosition(fen)
	e.bookLine = ""

	if moves := values["moves"]; moves.Set {
		played := moves.Value.([]string)
		e.bookLine = strings.Join(played, " ")

		if err := e.playMoves(played); err != nil {
			e.out <- uci.Info("position: %v", err)
		}
	}
}

// playMoves plays each UCI long algebraic move in order, stopping at
// the first one that isn't legal in the position reached so far.
func (e *Engine) playMoves(moves []string) error {
	for _, m := range moves {
		candidate := e.search.Board.NewMoveFromString(m)

		legal := false
		for _, lm := range e.search.Board.GenerateMoves() {
			if lm == candidate {
				legal = true
				break
			}
		}
		if !legal {
			return errors.New("illegal move " + m)
		}

		e.search.Board.MakeMove(candidate)
	}
	return nil
}
