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

// Package option implements the UCI "setoption" surface: a schema of
// named, typed options (check/spin/button/string) each backed by a
// storage callback that applies the parsed value to the engine.
package option

import (
	"fmt"
	"strconv"
	"strings"
)

// NewSchema returns an empty option Schema.
func NewSchema() Schema {
	return Schema{options: make(map[string]Option)}
}

// Schema is the set of options an engine supports.
type Schema struct {
	options map[string]Option
}

// AddOption registers an option under name.
func (s *Schema) AddOption(name string, o Option) {
	s.options[name] = o
}

// SetDefaults applies every option's default value.
func (s *Schema) SetDefaults() error {
	for _, o := range s.options {
		if err := o.Initialize(); err != nil {
			return err
		}
	}
	return nil
}

// SetOption parses value and applies it to the option named name.
func (s *Schema) SetOption(name string, value []string) error {
	o, found := s.options[name]
	if !found {
		return fmt.Errorf("setoption: %q is not a valid option", name)
	}
	return o.Store(value)
}

// String formats every option in the schema as a UCI "option" line,
// one per option, ready to be sent in reply to "uci".
func (s *Schema) String() string {
	var str string
	for name, o := range s.options {
		str += fmt.Sprintf("option name %s type %s\n", name, o.Type())
	}
	return str
}

// Option is implemented by every supported UCI option kind.
type Option interface {
	Type() string
	Store([]string) error
	Initialize() error
}

// Check is a boolean option ("type check").
type Check struct {
	Default bool
	Storage func(bool) error
}

var _ Option = (*Check)(nil)

func (o *Check) Type() string {
	return fmt.Sprintf("check default %v", o.Default)
}

func (o *Check) Store(value []string) error {
	if len(value) != 1 {
		return fmt.Errorf("option check: expected 1 value, received %d", len(value))
	}
	b, err := strconv.ParseBool(value[0])
	if err != nil {
		return err
	}
	return o.Storage(b)
}

func (o *Check) Initialize() error {
	return o.Storage(o.Default)
}

// Spin is a bounded integer option ("type spin").
type Spin struct {
	Default  int
	Min, Max int
	Storage  func(int) error
}

var _ Option = (*Spin)(nil)

func (o *Spin) Type() string {
	return fmt.Sprintf("spin default %d min %d max %d", o.Default, o.Min, o.Max)
}

func (o *Spin) Store(value []string) error {
	if len(value) != 1 {
		return fmt.Errorf("option spin: expected 1 value, received %d", len(value))
	}
	n, err := strconv.Atoi(value[0])
	if err != nil {
		return err
	}
	if n < o.Min || n > o.Max {
		return fmt.Errorf("option spin: value out of bounds [%d, %d]", o.Min, o.Max)
	}
	return o.Storage(n)
}

func (o *Spin) Initialize() error {
	return o.Storage(o.Default)
}

// Button is an option with no value, whose Ping runs when set.
type Button struct {
	Ping func() error
}

var _ Option = (*Button)(nil)

func (o *Button) Type() string { return "button" }

func (o *Button) Store(value []string) error {
	if len(value) > 0 {
		return fmt.Errorf("option button: expected 0 values, received %d", len(value))
	}
	return o.Ping()
}

func (o *Button) Initialize() error { return nil }

// String is a free-text option ("type string").
type String struct {
	Default string
	Storage func(string) error
}

var _ Option = (*String)(nil)

func (o *String) Type() string {
	return fmt.Sprintf("string default %s", o.Default)
}

func (o *String) Store(value []string) error {
	return o.Storage(strings.Join(value, " "))
}

func (o *String) Initialize() error {
	return o.Storage(o.Default)
}
