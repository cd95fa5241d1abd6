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
	"math"
	"strconv"

	"github.com/kestrelchess/kestrel/pkg/book"
	"github.com/kestrelchess/kestrel/pkg/board"
	"github.com/kestrelchess/kestrel/pkg/move"
	"github.com/kestrelchess/kestrel/pkg/piece"
	"github.com/kestrelchess/kestrel/pkg/search"
	"github.com/kestrelchess/kestrel/pkg/search/timemanager"
	"github.com/kestrelchess/kestrel/pkg/uci"
	"github.com/kestrelchess/kestrel/pkg/uci/flag"
)

// handleGo starts a search in its own goroutine so the command channel
// keeps draining (stop/ponderhit must still reach the engine while the
// search is running). Its eventual bestmove, and every info line the
// search reports along the way, arrive on e.out.
func (e *Engine) handleGo(cmd uci.Command) {
	if e.search.InProgress() {
		e.out <- uci.Info("go: search already in progress")
		return
	}

	if e.fromStartpos && !cmd.Values["ponder"].Set && !cmd.Values["searchmoves"].Set {
		if reply, ok := book.Lookup(e.bookLine); ok {
			e.out <- uci.BestMove(reply, "")
			return
		}
	}

	limits, err := parseSearchLimits(e.search.Board, cmd.Values)
	if err != nil {
		e.out <- uci.Info("go: %v", err)
		return
	}

	if cmd.Values["ponder"].Set {
		if !e.options.Ponder {
			e.out <- uci.Info("go ponder: pondering is disabled")
			return
		}

		e.pondering = true
		e.ponderLimits = limits

		// ponder under an infinite budget until "ponderhit" swaps in
		// the real limits stored above
		limits = search.Limits{
			Depth:    search.MaxDepth,
			Nodes:    math.MaxInt,
			Infinite: true,
			Time:     &timemanager.Infinite{},
		}
	}

	go func() {
		defer func() { e.pondering = false }()

		pv, _, err := e.search.Search(limits)
		if err != nil {
			e.out <- uci.Info("go: %v", err)
			return
		}

		e.out <- uci.BestMove(pv.Move(0).String(), pv.Move(1).String())
	}()
}

// parseSearchLimits builds search.Limits from a "go" command's flags,
// resolving "searchmoves" against b's legal moves.
func parseSearchLimits(b *board.Board, values flag.Values) (search.Limits, error) {
	us := b.SideToMove

	limits := search.Limits{
		Depth: search.MaxDepth,
		Nodes: math.MaxInt,
	}

	if depth := values["depth"]; depth.Set {
		d, err := strconv.Atoi(depth.Value.(string))
		if err != nil {
			return limits, err
		}
		limits.Depth = d
	}

	if nodes := values["nodes"]; nodes.Set {
		n, err := strconv.Atoi(nodes.Value.(string))
		if err != nil {
			return limits, err
		}
		limits.Nodes = n
	}

	if mate := values["mate"]; mate.Set {
		n, err := strconv.Atoi(mate.Value.(string))
		if err != nil {
			return limits, err
		}
		limits.Mate = n
	}

	if searchmoves := values["searchmoves"]; searchmoves.Set {
		requested := searchmoves.Value.([]string)
		legal := b.GenerateMoves()

		moves := make([]move.Move, 0, len(requested))
		for _, s := range requested {
			candidate := b.NewMoveFromString(s)

			for _, lm := range legal {
				if lm == candidate {
					moves = append(moves, candidate)
					break
				}
			}
		}
		limits.SearchMoves = moves
	}

	timeSet := values["wtime"].Set || values["btime"].Set
	if timeSet && (!values["wtime"].Set || !values["btime"].Set) {
		return limits, errors.New("both wtime and btime must be set")
	}

	switch {
	case values["movetime"].Set && values["infinite"].Set,
		values["movetime"].Set && timeSet,
		values["infinite"].Set && timeSet:
		return limits, errors.New("multiple time controls set")

	case values["movetime"].Set:
		t, err := strconv.Atoi(values["movetime"].Value.(string))
		if err != nil {
			return limits, err
		}
		limits.Time = &timemanager.Movetime{Duration: t}

	case timeSet:
		tc := &timemanager.Normal{Us: us}

		var err error
		if tc.Time[piece.White], err = strconv.Atoi(values["wtime"].Value.(string)); err != nil {
			return limits, err
		}
		if tc.Time[piece.Black], err = strconv.Atoi(values["btime"].Value.(string)); err != nil {
			return limits, err
		}

		incSet := values["winc"].Set || values["binc"].Set
		if incSet && (!values["winc"].Set || !values["binc"].Set) {
			return limits, errors.New("both winc and binc must be set")
		}
		if incSet {
			if tc.Increment[piece.White], err = strconv.Atoi(values["winc"].Value.(string)); err != nil {
				return limits, err
			}
			if tc.Increment[piece.Black], err = strconv.Atoi(values["binc"].Value.(string)); err != nil {
				return limits, err
			}
		}

		if values["movestogo"].Set {
			if tc.MovesToGo, err = strconv.Atoi(values["movestogo"].Value.(string)); err != nil {
				return limits, err
			}
		}

		limits.Time = tc

	case values["infinite"].Set:
		limits.Infinite = true
		limits.Time = &timemanager.Infinite{}

	default:
		limits.Time = &timemanager.Movetime{Duration: math.MaxInt32}
	}

	return limits, nil
}

// parseSetOption pulls the name/value pair out of a "setoption" command.
func parseSetOption(values flag.Values) (string, []string, error) {
	if !values["name"].Set {
		return "", nil, errors.New("setoption: name flag not given")
	}

	name := values["name"].Value.(string)

	value := []string{}
	if values["value"].Set {
		value = values["value"].Value.([]string)
	}

	return name, value, nil
}
