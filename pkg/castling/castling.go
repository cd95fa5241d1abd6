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

// Package castling represents the four castling rights as a packed
// bitfield, and provides the rook source/target lookup needed to play a
// castling move.
package castling

import "github.com/kestrelchess/kestrel/pkg/square"

// Rights is a packed bitfield of the four castling rights.
type Rights byte

// constants representing the individual and combined castling rights.
const (
	WhiteKingside  Rights = 1 << 0
	WhiteQueenside Rights = 1 << 1
	BlackKingside  Rights = 1 << 2
	BlackQueenside Rights = 1 << 3

	None Rights = 0

	White Rights = WhiteKingside | WhiteQueenside
	Black Rights = BlackKingside | BlackQueenside

	Kingside  Rights = WhiteKingside | BlackKingside
	Queenside Rights = WhiteQueenside | BlackQueenside

	All Rights = White | Black

	// N is the number of possible Rights combinations.
	N = 16
)

// NewRights parses a FEN castling availability field, e.g. "KQkq" or "-".
func NewRights(r string) Rights {
	if r == "-" {
		return None
	}

	var rights Rights

	if r != "" && r[0] == 'K' {
		r = r[1:]
		rights |= WhiteKingside
	}

	if r != "" && r[0] == 'Q' {
		r = r[1:]
		rights |= WhiteQueenside
	}

	if r != "" && r[0] == 'k' {
		r = r[1:]
		rights |= BlackKingside
	}

	if r != "" && r[0] == 'q' {
		rights |= BlackQueenside
	}

	return rights
}

func (c Rights) String() string {
	var str string

	if c&WhiteKingside != 0 {
		str += "K"
	}
	if c&WhiteQueenside != 0 {
		str += "Q"
	}
	if c&BlackKingside != 0 {
		str += "k"
	}
	if c&BlackQueenside != 0 {
		str += "q"
	}

	if str == "" {
		str = "-"
	}

	return str
}

// RightUpdates maps each square to the rights that are lost when a
// piece moves from or to it: losing a rook's home square revokes that
// rook's side, and losing a king's home square revokes both of its
// sides. Squares that never hold a king or an unmoved rook map to None.
var RightUpdates [square.N]Rights

func init() {
	RightUpdates[square.A1] = WhiteQueenside
	RightUpdates[square.H1] = WhiteKingside
	RightUpdates[square.E1] = White

	RightUpdates[square.A8] = BlackQueenside
	RightUpdates[square.H8] = BlackKingside
	RightUpdates[square.E8] = Black
}
