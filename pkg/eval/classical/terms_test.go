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

package classical

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kestrelchess/kestrel/pkg/eval"
)

func TestSaveLoadTermsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "terms.json")

	want := defaultTerms
	want.IsolatedPawn = S(-11, -16)

	if err := SaveTerms(path, want); err != nil {
		t.Fatalf("SaveTerms: %v", err)
	}

	saved := Terms
	defer func() { Terms = saved }()

	if err := LoadTerms(path); err != nil {
		t.Fatalf("LoadTerms: %v", err)
	}

	if Terms.IsolatedPawn != want.IsolatedPawn {
		t.Errorf("IsolatedPawn = %v, want %v", Terms.IsolatedPawn, want.IsolatedPawn)
	}
	if Terms.Material != want.Material {
		t.Errorf("Material = %v, want %v", Terms.Material, want.Material)
	}
}

func TestLoadTermsMissingFile(t *testing.T) {
	if err := LoadTerms(filepath.Join(t.TempDir(), "does-not-exist.json")); err == nil {
		os.Remove("does-not-exist.json") // in case Load somehow created it
		t.Fatal("LoadTerms with a missing file should return an error")
	}
}

func TestScoreMGEGRoundTrip(t *testing.T) {
	cases := []struct{ mg, eg eval.Eval }{
		{0, 0},
		{100, -50},
		{-320, 290},
		{900, 940},
	}

	for _, c := range cases {
		s := S(c.mg, c.eg)
		if got := s.MG(); got != c.mg {
			t.Errorf("S(%d, %d).MG() = %d, want %d", c.mg, c.eg, got, c.mg)
		}
		if got := s.EG(); got != c.eg {
			t.Errorf("S(%d, %d).EG() = %d, want %d", c.mg, c.eg, got, c.eg)
		}
	}
}

func TestScoreScale(t *testing.T) {
	s := S(100, 200).Scale(140)
	if s.MG() != 140 || s.EG() != 280 {
		t.Errorf("S(100,200).Scale(140) = (%d, %d), want (140, 280)", s.MG(), s.EG())
	}
}

func TestParametersCoverEveryField(t *testing.T) {
	set := defaultTerms

	params := set.Parameters()
	wantLen := len(set.Material) + len(set.PassedPawn) + 4 + len(set.CentralityWeight)
	if len(params) != wantLen {
		t.Errorf("len(Parameters()) = %d, want %d", len(params), wantLen)
	}

	// mutating through a returned pointer must mutate the set itself.
	*params[0] = S(12345, 0)
	if set.Material[0].MG() != 12345 {
		t.Error("Parameters() pointers do not alias the TermSet's own fields")
	}

	scalars := set.ScalarParameters()
	if len(scalars) != 1 {
		t.Fatalf("len(ScalarParameters()) = %d, want 1", len(scalars))
	}
	*scalars[0] = 77
	if set.PassedPawnNoRookBehindPct != 77 {
		t.Error("ScalarParameters() pointers do not alias the TermSet's own fields")
	}
}
