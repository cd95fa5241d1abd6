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

package flag

import "testing"

func TestButtonFlag(t *testing.T) {
	s := NewSchema()
	s.Button("infinite")

	values, err := s.Parse([]string{"infinite"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !values["infinite"].Set {
		t.Error("infinite flag should be set")
	}
}

func TestSingleFlagMissingArgErrors(t *testing.T) {
	s := NewSchema()
	s.Single("depth")

	if _, err := s.Parse([]string{"depth"}); err == nil {
		t.Error("Single flag with no argument should error")
	}
}

func TestArrayFlagCollectsFixedCount(t *testing.T) {
	s := NewSchema()
	s.Array("fen", 3)
	s.Button("extra") // the token after fen's three args parses as its own flag

	values, err := s.Parse([]string{"fen", "a", "b", "c", "extra"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	got, ok := values["fen"].Value.([]string)
	if !ok || len(got) != 3 {
		t.Fatalf("fen = %#v, want a 3-element []string", values["fen"].Value)
	}
}

func TestVariadicFlagConsumesRest(t *testing.T) {
	s := NewSchema()
	s.Variadic("moves")

	values, err := s.Parse([]string{"moves", "e2e4", "e7e5"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	got, ok := values["moves"].Value.([]string)
	if !ok || len(got) != 2 {
		t.Fatalf("moves = %#v, want [e2e4 e7e5]", values["moves"].Value)
	}
}

func TestUnknownFlagErrors(t *testing.T) {
	s := NewSchema()
	s.Button("infinite")

	if _, err := s.Parse([]string{"bogus"}); err == nil {
		t.Error("an unregistered flag name should error")
	}
}

func TestDuplicateFlagErrors(t *testing.T) {
	s := NewSchema()
	s.Button("ponder")

	if _, err := s.Parse([]string{"ponder", "ponder"}); err == nil {
		t.Error("setting the same flag twice should error")
	}
}
