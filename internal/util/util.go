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

// Package util contains small generic helpers shared across kestrel's
// packages, so each package doesn't need to reimplement ordering
// primitives for its own numeric types.
package util

// number is any of Go's built in integer and float types.
type number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~float32 | ~float64
}

// Max returns the larger of a and b.
func Max[T number](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// Min returns the smaller of a and b.
func Min[T number](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// Abs returns the absolute value of n.
func Abs[T number](n T) T {
	if n < 0 {
		return -n
	}
	return n
}

// Clamp restricts n to the closed interval [low, high].
func Clamp[T number](n, low, high T) T {
	return Min(Max(n, low), high)
}
