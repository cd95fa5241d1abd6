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

package option

import "testing"

func TestSpinSetDefaultOnInitialize(t *testing.T) {
	var got int
	s := NewSchema()
	s.AddOption("Hash", &Spin{Default: 16, Min: 1, Max: 1024, Storage: func(n int) error {
		got = n
		return nil
	}})

	if err := s.SetDefaults(); err != nil {
		t.Fatalf("SetDefaults: %v", err)
	}
	if got != 16 {
		t.Errorf("got %d, want default 16", got)
	}
}

func TestSpinRejectsOutOfBounds(t *testing.T) {
	s := NewSchema()
	s.AddOption("Hash", &Spin{Default: 16, Min: 1, Max: 1024, Storage: func(int) error { return nil }})

	if err := s.SetOption("Hash", []string{"2048"}); err == nil {
		t.Error("SetOption should reject a value above Max")
	}
	if err := s.SetOption("Hash", []string{"0"}); err == nil {
		t.Error("SetOption should reject a value below Min")
	}
}

func TestSpinAppliesValidValue(t *testing.T) {
	var got int
	s := NewSchema()
	s.AddOption("Hash", &Spin{Default: 16, Min: 1, Max: 1024, Storage: func(n int) error {
		got = n
		return nil
	}})

	if err := s.SetOption("Hash", []string{"64"}); err != nil {
		t.Fatalf("SetOption: %v", err)
	}
	if got != 64 {
		t.Errorf("got %d, want 64", got)
	}
}

func TestCheckParsesBool(t *testing.T) {
	var got bool
	s := NewSchema()
	s.AddOption("Ponder", &Check{Default: false, Storage: func(b bool) error {
		got = b
		return nil
	}})

	if err := s.SetOption("Ponder", []string{"true"}); err != nil {
		t.Fatalf("SetOption: %v", err)
	}
	if !got {
		t.Error("Ponder should have been set to true")
	}
}

func TestSetOptionUnknownNameErrors(t *testing.T) {
	s := NewSchema()
	if err := s.SetOption("DoesNotExist", []string{"1"}); err == nil {
		t.Error("SetOption on an unregistered name should error")
	}
}

func TestButtonRunsPingOnSet(t *testing.T) {
	ran := false
	s := NewSchema()
	s.AddOption("Clear Hash", &Button{Ping: func() error {
		ran = true
		return nil
	}})

	if err := s.SetOption("Clear Hash", nil); err != nil {
		t.Fatalf("SetOption: %v", err)
	}
	if !ran {
		t.Error("Button's Ping should have run")
	}
}
