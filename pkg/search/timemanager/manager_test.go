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

package timemanager

import (
	"testing"
	"time"

	"github.com/kestrelchess/kestrel/pkg/piece"
)

func TestInfiniteNeverExpires(t *testing.T) {
	m := &Infinite{}
	m.GetDeadline()
	if m.Expired() {
		t.Error("Infinite manager should never expire")
	}
}

func TestMovetimeExpiresAfterDuration(t *testing.T) {
	m := &Movetime{Duration: 5}
	m.GetDeadline()

	if m.Expired() {
		t.Error("Movetime manager should not expire immediately")
	}
	time.Sleep(20 * time.Millisecond)
	if !m.Expired() {
		t.Error("Movetime manager should have expired by now")
	}
}

func TestNormalBudgetsFractionOfRemainingTime(t *testing.T) {
	m := &Normal{
		Us:        piece.White,
		Time:      [piece.ColorN]int{piece.White: 20000},
		MovesToGo: 20,
	}
	m.GetDeadline()

	remaining := time.Until(m.deadline)
	if remaining <= 0 || remaining > time.Second {
		t.Errorf("deadline %v from now, want roughly 1s (20000ms / 20 moves)", remaining)
	}
}

func TestNormalExtendDeadlinePushesItForward(t *testing.T) {
	m := &Normal{
		Us:   piece.White,
		Time: [piece.ColorN]int{piece.White: 20000},
	}
	m.GetDeadline()
	before := m.deadline

	m.ExtendDeadline()
	if !m.deadline.After(before) {
		t.Error("ExtendDeadline should push the deadline later")
	}
}
