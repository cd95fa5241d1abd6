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

// Package book implements a small built-in opening book: a fixed
// dictionary from the sequence of moves played so far (from the
// standard starting position) to the replies known to be reasonable
// there. It is deliberately a thin lookup, not a weighted statistics
// store — search takes over the instant a line leaves the book.
package book

import "math/rand"

// Moves maps a space-separated sequence of long algebraic moves played
// from the starting position to its known candidate replies. The empty
// key is the position before White's first move.
var Moves = map[string][]string{
	"": {"e2e4", "d2d4", "c2c4", "g1f3"},

	"e2e4":       {"c7c5", "e7e5", "e7e6", "c7c6", "d7d5"},
	"e2e4 c7c5":  {"g1f3", "c2c3", "b1c3"},
	"e2e4 e7e5":  {"g1f3", "b1c3", "f1c4"},
	"e2e4 e7e6":  {"d2d4"},
	"e2e4 c7c6":  {"d2d4"},

	"d2d4":      {"d7d5", "g8f6", "e7e6", "c7c5"},
	"d2d4 d7d5": {"c2c4", "g1f3"},
	"d2d4 g8f6": {"c2c4", "g1f3"},

	"c2c4": {"e7e5", "g8f6", "c7c5"},

	"g1f3": {"d7d5", "g8f6", "c7c5"},
}

// Lookup returns a uniformly random reply known for the position
// reached by playing line (space-separated long algebraic moves from
// the starting position), and whether the book has an entry for it.
func Lookup(line string) (string, bool) {
	replies, ok := Moves[line]
	if !ok || len(replies) == 0 {
		return "", false
	}
	return replies[rand.Intn(len(replies))], true
}
