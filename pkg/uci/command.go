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

// Package uci implements the pure parsing and serialization half of
// the Universal Chess Interface protocol: turning a line of GUI input
// into a Command and its Values, and formatting engine output back
// into protocol strings. It does no I/O and knows nothing about board
// state or search; internal/engine supplies the goroutines that read
// stdin, dispatch Commands, and write the resulting responses.
package uci

import (
	"fmt"
	"strings"

	"github.com/kestrelchess/kestrel/pkg/uci/flag"
)

// Command names recognized from the GUI.
const (
	CmdUCI        = "uci"
	CmdDebug      = "debug"
	CmdIsReady    = "isready"
	CmdSetOption  = "setoption"
	CmdUCINewGame = "ucinewgame"
	CmdPosition   = "position"
	CmdGo         = "go"
	CmdStop       = "stop"
	CmdPonderHit  = "ponderhit"
	CmdQuit       = "quit"

	// non-standard diagnostic extensions, kept alongside the
	// standard vocabulary rather than as a separate protocol.
	CmdDisplay = "d"
	CmdBench   = "bench"
)

// schemas holds the flag schema each known command parses its
// argument list with.
var schemas = map[string]flag.Schema{
	CmdDebug:     debugSchema(),
	CmdSetOption: setOptionSchema(),
	CmdPosition:  positionSchema(),
	CmdGo:        goSchema(),
}

func debugSchema() flag.Schema {
	s := flag.NewSchema()
	s.Single("mode") // "on" | "off"
	return s
}

func setOptionSchema() flag.Schema {
	s := flag.NewSchema()
	s.Single("name")
	s.Variadic("value")
	return s
}

func positionSchema() flag.Schema {
	s := flag.NewSchema()
	s.Array("fen", 6)
	s.Button("startpos")
	s.Variadic("moves")
	return s
}

func goSchema() flag.Schema {
	s := flag.NewSchema()
	s.Variadic("searchmoves")
	s.Button("ponder")
	s.Single("wtime")
	s.Single("btime")
	s.Single("winc")
	s.Single("binc")
	s.Single("movestogo")
	s.Single("depth")
	s.Single("nodes")
	s.Single("mate")
	s.Single("movetime")
	s.Button("infinite")
	return s
}

// Command is a single parsed line of GUI input.
type Command struct {
	Name   string
	Values flag.Values
}

// Parse splits line into a command name and argument list and parses
// the arguments against that command's flag schema. Commands with no
// registered schema (uci, isready, ucinewgame, stop, ponderhit, quit,
// bench) take no flags; any extra tokens given to them are an error.
func Parse(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{}, fmt.Errorf("uci: empty command")
	}

	name, args := fields[0], fields[1:]

	schema := schemas[name]
	values, err := schema.Parse(args)
	if err != nil {
		return Command{}, fmt.Errorf("uci: %s: %w", name, err)
	}

	return Command{Name: name, Values: values}, nil
}
