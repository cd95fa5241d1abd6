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
	"strings"
	"testing"
	"time"

	"github.com/kestrelchess/kestrel/pkg/uci"
)

func newTestEngine() (*Engine, chan uci.Response) {
	responses := make(chan uci.Response, 4096)
	return New(responses), responses
}

func drain(t *testing.T, responses chan uci.Response, timeout time.Duration) []uci.Response {
	t.Helper()

	var got []uci.Response
	deadline := time.After(timeout)
	for {
		select {
		case r := <-responses:
			got = append(got, r)
		case <-deadline:
			return got
		}
	}
}

func mustParse(t *testing.T, line string) uci.Command {
	t.Helper()
	cmd, err := uci.Parse(line)
	if err != nil {
		t.Fatalf("parse %q: %v", line, err)
	}
	return cmd
}

func TestDispatchUCIHandshake(t *testing.T) {
	e, responses := newTestEngine()

	if quit := e.Dispatch(mustParse(t, "uci")); quit {
		t.Fatalf("uci: unexpectedly asked to quit")
	}

	got := drain(t, responses, 100*time.Millisecond)

	var sawID, sawOk bool
	for _, r := range got {
		s := string(r)
		if strings.HasPrefix(s, "id name "+Name) {
			sawID = true
		}
		if s == string(uci.UCIOk) {
			sawOk = true
		}
	}

	if !sawID {
		t.Errorf("uci: no id name line in %v", got)
	}
	if !sawOk {
		t.Errorf("uci: no uciok line in %v", got)
	}
}

func TestDispatchIsReady(t *testing.T) {
	e, responses := newTestEngine()

	e.Dispatch(mustParse(t, "isready"))

	got := drain(t, responses, 100*time.Millisecond)
	if len(got) != 1 || got[0] != uci.ReadyOk {
		t.Fatalf("isready: got %v, want [readyok]", got)
	}
}

func TestDispatchSetOptionHash(t *testing.T) {
	e, _ := newTestEngine()

	e.Dispatch(mustParse(t, "setoption name Hash value 4"))

	if e.options.Hash != 4 {
		t.Errorf("setoption Hash: got %d, want 4", e.options.Hash)
	}
}

func TestDispatchGoProducesBestMove(t *testing.T) {
	e, responses := newTestEngine()

	e.Dispatch(mustParse(t, "position startpos"))
	e.Dispatch(mustParse(t, "go depth 3"))

	var bestmove string
	deadline := time.After(5 * time.Second)
loop:
	for {
		select {
		case r := <-responses:
			if strings.HasPrefix(string(r), "bestmove") {
				bestmove = string(r)
				break loop
			}
		case <-deadline:
			break loop
		}
	}

	if bestmove == "" {
		t.Fatal("go depth 3: no bestmove response received")
	}
}

func TestDispatchGoSearchMovesRestrictsBestMove(t *testing.T) {
	e, responses := newTestEngine()

	e.Dispatch(mustParse(t, "position startpos"))
	e.Dispatch(mustParse(t, "go depth 3 searchmoves a2a3 a2a4"))

	var bestmove string
	deadline := time.After(5 * time.Second)
loop:
	for {
		select {
		case r := <-responses:
			if strings.HasPrefix(string(r), "bestmove") {
				bestmove = string(r)
				break loop
			}
		case <-deadline:
			break loop
		}
	}

	if !strings.HasPrefix(bestmove, "bestmove a2a3") && !strings.HasPrefix(bestmove, "bestmove a2a4") {
		t.Fatalf("go searchmoves a2a3 a2a4: got %q, want one of the restricted moves", bestmove)
	}
}

func TestDispatchPositionRejectsIllegalMove(t *testing.T) {
	e, responses := newTestEngine()

	e.Dispatch(mustParse(t, "position startpos moves e2e5"))

	got := drain(t, responses, 100*time.Millisecond)
	if len(got) == 0 {
		t.Fatal("position with illegal move: expected an info string, got none")
	}
	if !strings.Contains(string(got[0]), "illegal move") {
		t.Errorf("position with illegal move: got %q", got[0])
	}
}

func TestDispatchQuit(t *testing.T) {
	e, _ := newTestEngine()

	if quit := e.Dispatch(mustParse(t, "quit")); !quit {
		t.Fatal("quit: Dispatch did not report quit")
	}
}
