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

// Package timemanager implements the time budgeting strategies a search
// can use to decide, each time control, how long to keep searching.
package timemanager

import (
	"time"

	"github.com/kestrelchess/kestrel/pkg/piece"
)

// Manager decides how long a search is allowed to run.
type Manager interface {
	// GetDeadline calculates the optimal amount of time to use and
	// sets a deadline internally for the search's end.
	GetDeadline()

	// ExtendDeadline is called when the search wants to extend past
	// its current deadline, e.g. because the best move keeps
	// changing. An extension may be refused.
	ExtendDeadline()

	// Expired reports whether the search deadline has passed.
	Expired() bool
}

// Normal is the standard time manager, which budgets a fraction of the
// remaining clock (plus incremenet) using the wtime/btime/winc/binc/
// movestogo a GUI provides over UCI "go".
type Normal struct {
	Us piece.Color

	Time, Increment [piece.ColorN]int
	MovesToGo       int

	deadline time.Time
}

var _ Manager = (*Normal)(nil)

func (m *Normal) GetDeadline() {
	budget := m.Time[m.Us]
	if m.MovesToGo > 0 {
		budget /= m.MovesToGo
	} else {
		budget /= 20
	}
	budget += m.Increment[m.Us] / 2

	m.deadline = time.Now().Add(time.Duration(budget) * time.Millisecond)
}

func (m *Normal) ExtendDeadline() {
	m.deadline = m.deadline.Add((time.Duration(m.Time[m.Us]) * time.Millisecond) / 30)
}

func (m *Normal) Expired() bool {
	return time.Now().After(m.deadline)
}

// Movetime is the time manager used when the GUI fixes an exact time
// budget per move ("go movetime"). Its deadline can't be extended.
type Movetime struct {
	Duration int

	deadline time.Time
}

var _ Manager = (*Movetime)(nil)

func (m *Movetime) GetDeadline() {
	m.deadline = time.Now().Add(time.Duration(m.Duration) * time.Millisecond)
}

func (m *Movetime) ExtendDeadline() {
	// fixed budget, nothing to extend
}

func (m *Movetime) Expired() bool {
	return time.Now().After(m.deadline)
}

// Infinite never expires on its own; the search only stops when told
// to, as in UCI "go infinite" or during a "stop"-driven ponder.
type Infinite struct{}

var _ Manager = (*Infinite)(nil)

func (m *Infinite) GetDeadline()    {}
func (m *Infinite) ExtendDeadline() {}
func (m *Infinite) Expired() bool   { return false }
