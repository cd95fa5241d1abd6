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

// Command datagen mines a PGN archive for cmd/tune's training data. It
// replays each game's moves onto a board, labelling every reached
// position with that game's eventual result, and writes one
// "<fen> | 0 | <result>" line per position sampled. Unlike the
// teacher's own datagen, which generates its corpus by self-play
// search, kestrel's tuning data comes from real played games, so
// mining an existing PGN archive is the more useful source.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/notnil/chess"
	"gopkg.in/freeeve/pgn.v1"

	"github.com/kestrelchess/kestrel/pkg/board"
	"github.com/kestrelchess/kestrel/pkg/move"
	"github.com/kestrelchess/kestrel/pkg/piece"
	"github.com/kestrelchess/kestrel/pkg/square"
)

func main() {
	pgnPath := flag.String("pgn", "", "path to a PGN file of games to mine")
	output := flag.String("output", "data.txt", "output file for the generated positions")
	skipPlies := flag.Int("skip-plies", 8, "opening plies to discard before sampling a game")
	sampleEvery := flag.Int("sample-every", 4, "only keep every Nth remaining ply, to decorrelate adjacent positions")
	flag.Parse()

	if *pgnPath == "" {
		fmt.Fprintln(os.Stderr, "datagen: -pgn is required")
		os.Exit(1)
	}

	if err := run(*pgnPath, *output, *skipPlies, *sampleEvery); err != nil {
		log.Fatalf("datagen: %v", err)
	}
}

func run(pgnPath, outPath string, skipPlies, sampleEvery int) error {
	wanted, err := countUsableGames(pgnPath)
	if err != nil {
		return fmt.Errorf("pre-scanning archive: %w", err)
	}
	log.Printf("datagen: %d games have a recorded result, mining them", wanted)

	in, err := os.Open(pgnPath)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(outPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer out.Close()

	w := bufio.NewWriterSize(out, 200_000)
	defer w.Flush()

	scanner := chess.NewScanner(bufio.NewReader(in))

	points, games := 0, 0
	for scanner.Scan() {
		game := scanner.Next()

		result, ok := parseResult(game.GetTagPair("Result").Value)
		if !ok {
			continue
		}
		games++

		minePositions(game, result, skipPlies, sampleEvery, func(p DataPoint) {
			_, _ = w.WriteString(p.String())
			points++
			if points%4096 == 0 {
				log.Printf("datagen: %d positions mined from %d games", points, games)
			}
		})
	}

	log.Printf("datagen: done, %d positions from %d games", points, games)
	return nil
}

// countUsableGames runs a cheap first pass over the archive with
// freeeve/pgn.v1's plain-text scanner, counting games that carry a
// Result tag before the slower, chess-rules-aware notnil/chess replay
// in run does the actual mining.
func countUsableGames(pgnPath string) (int, error) {
	f, err := os.Open(pgnPath)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	count := 0
	scanner := pgn.NewPGNScanner(bufio.NewReader(f))
	for scanner.Next() {
		game, err := scanner.Scan()
		if err != nil {
			continue
		}
		if _, ok := parseResult(game.Tags["Result"]); ok {
			count++
		}
	}
	return count, nil
}

// minePositions replays game's moves onto a fresh board, sampling a
// "fen | 0 | result" DataPoint for every ply past skipPlies that isn't
// thrown out by sampleEvery. Move squares come off notnil/chess's
// Move.S1/S2, which index a1=0 rank-major from White's side, the same
// numbering kestrel's square package uses, so no rank flip is needed
// before handing them to board.NewMove.
func minePositions(game *chess.Game, result float64, skipPlies, sampleEvery int, emit func(DataPoint)) {
	b := board.NewBoard(board.StartFEN)

	moves := game.Moves()
	for i, gm := range moves {
		from := convertSquare(gm.S1())
		to := convertSquare(gm.S2())

		m := buildMove(b, from, to, gm.Promo())
		if !isLegal(b, m) {
			// an illegal or unparsed move desynced us from the PGN;
			// stop mining the rest of this game.
			return
		}
		b.MakeMove(m)

		if i < skipPlies || (i-skipPlies)%sampleEvery != 0 {
			continue
		}
		if b.IsInCheck(b.SideToMove) {
			// skip positions where the side to move is in check, to
			// keep the dataset to quiet, staticly-evaluable positions
			continue
		}

		sideResult := result
		if b.SideToMove == piece.Black {
			sideResult = 1 - result
		}

		emit(DataPoint{FEN: b.FEN(), Result: sideResult})
	}
}

func convertSquare(s chess.Square) square.Square {
	file := square.File(int(s) % 8)
	rank := square.Rank(int(s) / 8)
	return square.New(file, rank)
}

func buildMove(b *board.Board, from, to square.Square, promo chess.PieceType) move.Move {
	switch promo {
	case chess.Knight:
		return b.NewPromotion(from, to, piece.Knight)
	case chess.Bishop:
		return b.NewPromotion(from, to, piece.Bishop)
	case chess.Rook:
		return b.NewPromotion(from, to, piece.Rook)
	case chess.Queen:
		return b.NewPromotion(from, to, piece.Queen)
	default:
		return b.NewMove(from, to)
	}
}

func isLegal(b *board.Board, m move.Move) bool {
	for _, legal := range b.GenerateMoves() {
		if legal == m {
			return true
		}
	}
	return false
}

// parseResult converts a PGN Result tag into a result from White's
// perspective, reporting false for an unfinished or unknown result.
func parseResult(tag string) (float64, bool) {
	switch tag {
	case "1-0":
		return 1.0, true
	case "0-1":
		return 0.0, true
	case "1/2-1/2":
		return 0.5, true
	default:
		return 0, false
	}
}

// DataPoint is a single mined training example, serialized in the
// same "fen | score | result" shape cmd/tune's LoadDataset expects.
// The score column is always 0: mining replaces a search's static
// score with the game's actual outcome as the training signal.
type DataPoint struct {
	FEN    string
	Result float64
}

func (d DataPoint) String() string {
	return fmt.Sprintf("%s | 0 | %.1f\n", d.FEN, d.Result)
}
