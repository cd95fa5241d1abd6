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
	"io"

	"github.com/kestrelchess/kestrel/pkg/uci"
)

// Run reads UCI commands from in until EOF or "quit", dispatching each
// one against a fresh Engine and writing every Response to out. The
// reader, this dispatch loop, and the writer all run concurrently: a
// "go" search runs in its own goroutine so this loop keeps dispatching
// "stop"/"ponderhit" while it's in flight, and the writer drains
// Responses as they're produced rather than after the fact.
//
// Run returns once input is exhausted or "quit" is received; any
// search goroutine still unwinding at that point is abandoned, since
// the caller is expected to exit the process immediately afterwards.
func Run(in io.Reader, out io.Writer) {
	responses := make(chan uci.Response, 4096)
	commands := make(chan uci.Command, 16)

	go write(out, responses)
	go read(in, commands, responses)

	e := New(responses)
	for cmd := range commands {
		if e.Dispatch(cmd) {
			return
		}
	}
}
