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

// Package bitboard implements a 64-bit bitboard and related functions
// for manipulating them.
package bitboard

import (
	"math/bits"

	"github.com/kestrelchess/kestrel/pkg/piece"
	"github.com/kestrelchess/kestrel/pkg/square"
)

// Board is a 64-bit bitboard, one bit per square.
type Board uint64

// Empty and Universe are the zero and all-ones bitboards.
const (
	Empty    Board = 0
	Universe Board = 0xFFFFFFFFFFFFFFFF
)

// String returns a human readable representation of the bitboard, rank
// 8 first, matching the way a board is usually printed.
func (b Board) String() string {
	var str string
	for r := square.Rank8; r >= square.Rank1; r-- {
		for f := square.FileA; f <= square.FileH; f++ {
			if b.IsSet(square.New(f, r)) {
				str += "1 "
			} else {
				str += "0 "
			}
		}
		str += "\n"
	}
	return str
}

// Up shifts the bitboard one rank towards the given color's promotion
// rank: north (towards rank 8) for white, south (towards rank 1) for
// black.
func (b Board) Up(c piece.Color) Board {
	if c == piece.White {
		return b.North()
	}
	return b.South()
}

// Down shifts the bitboard one rank away from the given color's
// promotion rank.
func (b Board) Down(c piece.Color) Board {
	if c == piece.White {
		return b.South()
	}
	return b.North()
}

// North shifts the bitboard towards rank 8.
func (b Board) North() Board {
	return b << 8
}

// South shifts the bitboard towards rank 1.
func (b Board) South() Board {
	return b >> 8
}

// East shifts the bitboard towards the h-file.
func (b Board) East() Board {
	return (b &^ FileH) << 1
}

// West shifts the bitboard towards the a-file.
func (b Board) West() Board {
	return (b &^ FileA) >> 1
}

// Pop removes and returns the least significant set square of b.
func (b *Board) Pop() square.Square {
	sq := b.FirstOne()
	*b &= *b - 1
	return sq
}

// Count returns the number of set squares in b.
func (b Board) Count() int {
	return bits.OnesCount64(uint64(b))
}

// FirstOne returns the least significant set square of b, without
// modifying it. If b is Empty it returns 64, which is not a valid square.
func (b Board) FirstOne() square.Square {
	return square.Square(bits.TrailingZeros64(uint64(b)))
}

// IsSet reports whether s is set in b.
func (b Board) IsSet(s square.Square) bool {
	return b&Squares[s] != Empty
}

// Set sets s in b. Setting square.None is a no-op.
func (b *Board) Set(s square.Square) {
	if s == square.None {
		return
	}
	*b |= Squares[s]
}

// Unset clears s in b. Clearing square.None is a no-op.
func (b *Board) Unset(s square.Square) {
	if s == square.None {
		return
	}
	*b &^= Squares[s]
}
