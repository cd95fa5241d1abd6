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

import "fmt"

// Response is a single line of engine-to-GUI output.
type Response string

// ID formats the two "id" lines an engine sends in reply to "uci".
func ID(name, author string) []Response {
	return []Response{
		Response(fmt.Sprintf("id name %s", name)),
		Response(fmt.Sprintf("id author %s", author)),
	}
}

// Option formats a UCI "option" declaration line.
func Option(name, optType string, rest ...any) Response {
	s := fmt.Sprintf("option name %s type %s", name, optType)
	for _, r := range rest {
		s += fmt.Sprintf(" %v", r)
	}
	return Response(s)
}

// UCIOk, ReadyOk are the fixed acknowledgement lines.
const (
	UCIOk   Response = "uciok"
	ReadyOk Response = "readyok"
)

// BestMove formats the "bestmove" line, omitting "ponder" if
// ponderMove is empty.
func BestMove(best, ponderMove string) Response {
	if ponderMove == "" || ponderMove == "0000" {
		return Response(fmt.Sprintf("bestmove %s", best))
	}
	return Response(fmt.Sprintf("bestmove %s ponder %s", best, ponderMove))
}

// Info formats a freeform "info string" diagnostic line.
func Info(format string, a ...any) Response {
	return Response("info string " + fmt.Sprintf(format, a...))
}
