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

package board

import (
	"strconv"
	"strings"

	"github.com/kestrelchess/kestrel/pkg/castling"
	"github.com/kestrelchess/kestrel/pkg/piece"
	"github.com/kestrelchess/kestrel/pkg/square"
	"github.com/kestrelchess/kestrel/pkg/zobrist"
)

// StartFEN is the FEN field list of the standard starting position.
var StartFEN = strings.Fields("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")

// New builds a *Board from a complete, whitespace-separated FEN string.
func New(fen string) *Board {
	return NewBoard(strings.Fields(fen))
}

// NewBoard builds a *Board from a FEN string already split into its six
// whitespace-separated fields.
// https://www.chessprogramming.org/Forsyth-Edwards_Notation
func NewBoard(fen []string) *Board {
	var b Board

	b.SideToMove = piece.NewColorFromString(fen[1])
	if b.SideToMove == piece.Black {
		b.Hash ^= zobrist.SideToMove
	}

	// FEN ranks run from rank 8 down to rank 1.
	ranks := strings.Split(fen[0], "/")
	for i, rankData := range ranks {
		r := square.Rank(7 - i)
		f := square.FileA

		for _, id := range rankData {
			if id >= '1' && id <= '8' {
				f += square.File(id - '0')
				continue
			}

			b.FillSquare(square.New(f, r), piece.NewFromString(string(id)))
			f++
		}
	}

	b.CastlingRights = castling.NewRights(fen[2])
	b.Hash ^= zobrist.Castling[b.CastlingRights]

	b.EnPassantTarget = square.NewFromString(fen[3])
	if b.EnPassantTarget != square.None {
		b.Hash ^= zobrist.EnPassant[b.EnPassantTarget.File()]
	}

	if len(fen) > 4 {
		b.DrawClock, _ = strconv.Atoi(fen[4])
	}
	if len(fen) > 5 {
		b.FullMoves, _ = strconv.Atoi(fen[5])
	} else {
		b.FullMoves = 1
	}

	b.CalculateCheckmask()

	return &b
}

// FEN returns the FEN string of the current position.
func (b *Board) FEN() string {
	return strings.Join([]string{
		b.Position.FEN(),
		b.SideToMove.String(),
		b.CastlingRights.String(),
		b.EnPassantTarget.String(),
		strconv.Itoa(b.DrawClock),
		strconv.Itoa(b.FullMoves),
	}, " ")
}
