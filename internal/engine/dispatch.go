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

import "github.com/kestrelchess/kestrel/pkg/uci"

// Dispatch runs cmd against the engine, sending any resulting
// Responses on e.out. It reports whether the engine should quit after
// this command. A panic escaping from deep within the position or
// search code (an invariant violation a debug assertion would have
// caught) is recovered here, reported as a final info string, and
// treated the same as "quit" so the process still exits cleanly.
func (e *Engine) Dispatch(cmd uci.Command) (quit bool) {
	defer func() {
		if r := recover(); r != nil {
			e.out <- uci.Info("fatal: %v", r)
			quit = true
		}
	}()

	switch cmd.Name {
	case uci.CmdUCI:
		e.handleUCI()

	case uci.CmdDebug:
		// accepted for protocol compliance; this engine has no
		// separate debug-logging mode to toggle

	case uci.CmdIsReady:
		e.out <- uci.ReadyOk

	case uci.CmdSetOption:
		e.handleSetOption(cmd)

	case uci.CmdUCINewGame:
		e.handleNewGame()

	case uci.CmdPosition:
		e.handlePosition(cmd)

	case uci.CmdGo:
		e.handleGo(cmd)

	case uci.CmdStop:
		e.handleStop()

	case uci.CmdPonderHit:
		e.handlePonderHit()

	case uci.CmdDisplay:
		e.out <- uci.Response(e.search.String())

	case uci.CmdBench:
		e.handleBench()

	case uci.CmdQuit:
		return true

	default:
		e.out <- uci.Info("unrecognized command %q", cmd.Name)
	}

	return false
}

func (e *Engine) handleUCI() {
	for _, line := range uci.ID(Name, Author) {
		e.out <- line
	}
	e.out <- uci.Response(e.optionSchema.String())
	e.out <- uci.UCIOk
}

func (e *Engine) handleSetOption(cmd uci.Command) {
	name, value, err := parseSetOption(cmd.Values)
	if err != nil {
		e.out <- uci.Info("%v", err)
		return
	}

	if err := e.optionSchema.SetOption(name, value); err != nil {
		e.out <- uci.Info("%v", err)
	}
}

func (e *Engine) handleNewGame() {
	e.search = newSearchContext(e.options.Hash)
}

func (e *Engine) handleStop() {
	if !e.search.InProgress() {
		e.out <- uci.Info("stop: no search in progress")
		return
	}
	e.search.Stop()
}

func (e *Engine) handlePonderHit() {
	if !e.pondering {
		e.out <- uci.Info("ponderhit: no ponder search in progress")
		return
	}

	for !e.search.InProgress() {
		// the search goroutine hasn't entered Search yet; wait for it
		// so UpdateLimits lands on a running search, not a future one
	}

	e.pondering = false
	e.search.UpdateLimits(e.ponderLimits)
}
