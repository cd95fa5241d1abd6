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

package book

import "testing"

func TestLookupKnownLine(t *testing.T) {
	reply, ok := Lookup("e2e4")
	if !ok {
		t.Fatal("Lookup(\"e2e4\"): no entry found")
	}

	found := false
	for _, want := range Moves["e2e4"] {
		if reply == want {
			found = true
		}
	}
	if !found {
		t.Errorf("Lookup(\"e2e4\") = %q, not among %v", reply, Moves["e2e4"])
	}
}

func TestLookupUnknownLine(t *testing.T) {
	if _, ok := Lookup("a2a3 a7a6 b2b3 b7b6"); ok {
		t.Error("Lookup of an unbooked line unexpectedly succeeded")
	}
}
