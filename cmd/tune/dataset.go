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

package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/kestrelchess/kestrel/pkg/board"
)

// Entry is a single labelled training position: a board to evaluate
// and the game result it was drawn from, from the perspective of the
// side to move (1.0 win, 0.5 draw, 0.0 loss).
type Entry struct {
	Board  *board.Board
	Result float64
}

// LoadDataset reads a file of lines produced by cmd/datagen, each
// formatted as "<fen> | <search score> | <result>". The search score
// column is ignored by the tuner; only the FEN and the game result are
// used, matching Dataset.NewDataset's own "static evaluation" scheme
// where positions are always re-evaluated against the current terms.
func LoadDataset(path string) ([]Entry, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var entries []Entry

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for line := 0; scanner.Scan(); line++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		fields := strings.Split(text, "|")
		if len(fields) != 3 {
			return nil, fmt.Errorf("dataset line %d: want 3 fields, got %d", line, len(fields))
		}

		fen := strings.TrimSpace(fields[0])
		var result float64
		if _, err := fmt.Sscanf(strings.TrimSpace(fields[2]), "%f", &result); err != nil {
			return nil, fmt.Errorf("dataset line %d: invalid result: %w", line, err)
		}

		entries = append(entries, Entry{
			Board:  board.NewBoard(strings.Fields(fen)),
			Result: result,
		})
	}

	return entries, scanner.Err()
}
