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

package uci

import "testing"

func TestParseEmptyLine(t *testing.T) {
	if _, err := Parse(""); err == nil {
		t.Error("Parse(\"\") should be an error")
	}
	if _, err := Parse("   "); err == nil {
		t.Error("Parse of a blank line should be an error")
	}
}

func TestParseSimpleCommandsTakeNoFlags(t *testing.T) {
	cmd, err := Parse("isready")
	if err != nil {
		t.Fatalf("Parse(\"isready\"): %v", err)
	}
	if cmd.Name != CmdIsReady {
		t.Errorf("Name = %q, want %q", cmd.Name, CmdIsReady)
	}

	if _, err := Parse("isready extra"); err == nil {
		t.Error("isready with extra tokens should be an error")
	}
}

func TestParsePosition(t *testing.T) {
	cmd, err := Parse("position startpos moves e2e4 e7e5")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if !cmd.Values["startpos"].Set {
		t.Error("startpos flag should be set")
	}

	moves, ok := cmd.Values["moves"].Value.([]string)
	if !ok {
		t.Fatalf("moves value type = %T, want []string", cmd.Values["moves"].Value)
	}
	if len(moves) != 2 || moves[0] != "e2e4" || moves[1] != "e7e5" {
		t.Errorf("moves = %v, want [e2e4 e7e5]", moves)
	}
}

func TestParsePositionFEN(t *testing.T) {
	cmd, err := Parse("position fen rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	fen, ok := cmd.Values["fen"].Value.([]string)
	if !ok || len(fen) != 6 {
		t.Fatalf("fen value = %#v, want a 6-element []string", cmd.Values["fen"].Value)
	}
}

func TestParseGoDepth(t *testing.T) {
	cmd, err := Parse("go depth 10")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := cmd.Values["depth"].Value; got != "10" {
		t.Errorf("depth = %v, want \"10\"", got)
	}
}

func TestParseSetOption(t *testing.T) {
	cmd, err := Parse("setoption name Hash value 64")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := cmd.Values["name"].Value; got != "Hash" {
		t.Errorf("name = %v, want Hash", got)
	}
}

func TestParseUnknownCommandWithArgsErrors(t *testing.T) {
	if _, err := Parse("frobnicate now"); err == nil {
		t.Error("an unrecognized command with extra tokens should be an error")
	}
}
