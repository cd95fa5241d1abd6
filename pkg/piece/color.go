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

package piece

// Color represents the color/side of a chess piece or player.
type Color uint8

// constants representing the two colors.
const (
	White Color = iota
	Black
)

// ColorN is the number of colors.
const ColorN = 2

// Other returns the opposite color.
func (c Color) Other() Color {
	return c ^ 1
}

// NewColorFromString parses the UCI "w"/"b" side-to-move token.
func NewColorFromString(id string) Color {
	switch id {
	case "w":
		return White
	case "b":
		return Black
	default:
		panic("piece.NewColorFromString: invalid color id " + id)
	}
}

func (c Color) String() string {
	if c == White {
		return "w"
	}
	return "b"
}
