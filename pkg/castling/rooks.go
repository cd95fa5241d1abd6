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

package castling

import (
	"github.com/kestrelchess/kestrel/pkg/piece"
	"github.com/kestrelchess/kestrel/pkg/square"
)

// RookMove describes the rook's half of a castling move: it moves from
// From to To whenever the king moves to the square indexing this table.
type RookMove struct {
	From, To square.Square
	Rook     piece.Piece
}

// Rooks is indexed by the king's target square during a castling move,
// and gives the matching rook move. Squares which aren't a king's
// castling target hold the zero RookMove.
var Rooks = [square.N]RookMove{
	square.G1: {From: square.H1, To: square.F1, Rook: piece.WhiteRook},
	square.C1: {From: square.A1, To: square.D1, Rook: piece.WhiteRook},
	square.G8: {From: square.H8, To: square.F8, Rook: piece.BlackRook},
	square.C8: {From: square.A8, To: square.D8, Rook: piece.BlackRook},
}
