// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package schema

import (
	"fmt"
	"log/slog"

	"github.com/vpercuoco/iodptools/pkg/errors"
	"github.com/vpercuoco/iodptools/pkg/table"
)

// Schema is an immutable, ordered set of column constraints with unique keys.
type Schema struct {
	name        string
	description string
	keys        []string
	byKey       map[string]ColumnConstraint
}

// Option is a functional option for configuring Schema instances.
type Option func(*Schema)

// WithDescription returns an Option that sets the schema description.
func WithDescription(description string) Option {
	return func(s *Schema) {
		s.description = description
	}
}

// NewSchema builds a schema from constraints in the given order.
// Duplicate keys fail with ErrCodeDuplicateKey; invalid types, checks or
// column patterns fail with ErrCodeInvalidRequest.
func NewSchema(name string, constraints []ColumnConstraint, opts ...Option) (*Schema, error) {
	s := newSchema(name, len(constraints), opts...)
	for _, c := range constraints {
		compiled, err := c.compile()
		if err != nil {
			return nil, errors.WrapWithContext(errors.ErrCodeInvalidRequest,
				fmt.Sprintf("schema %q: invalid constraint", name), err,
				map[string]any{"schema": name, "key": c.Key})
		}
		if _, dup := s.byKey[compiled.Key]; dup {
			return nil, errors.NewWithContext(errors.ErrCodeDuplicateKey,
				fmt.Sprintf("schema %q: duplicate column key %q", name, compiled.Key),
				map[string]any{"schema": name, "key": compiled.Key})
		}
		s.add(compiled)
	}
	return s, nil
}

// Extend returns a new schema holding base's constraints followed by additions.
//
// An addition with the same key as a base constraint fails with
// ErrCodeDuplicateKey unless it sets Override, in which case it replaces the
// base constraint in its original position. Override on a key the base does
// not have is rejected. Duplicate keys among the additions themselves also
// fail with ErrCodeDuplicateKey. base is not modified.
func Extend(base *Schema, name string, additions []ColumnConstraint, opts ...Option) (*Schema, error) {
	if base == nil {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "base schema cannot be nil")
	}

	s := newSchema(name, len(base.keys)+len(additions), opts...)
	for _, k := range base.keys {
		s.add(base.byKey[k].clone())
	}

	seen := make(map[string]bool, len(additions))
	overrides := 0
	for _, c := range additions {
		compiled, err := c.compile()
		if err != nil {
			return nil, errors.WrapWithContext(errors.ErrCodeInvalidRequest,
				fmt.Sprintf("schema %q: invalid constraint", name), err,
				map[string]any{"schema": name, "key": c.Key})
		}
		key := compiled.Key

		if seen[key] {
			return nil, errors.NewWithContext(errors.ErrCodeDuplicateKey,
				fmt.Sprintf("schema %q: column key %q added twice", name, key),
				map[string]any{"schema": name, "key": key})
		}
		seen[key] = true

		_, inBase := base.byKey[key]
		switch {
		case inBase && !compiled.Override:
			return nil, errors.NewWithContext(errors.ErrCodeDuplicateKey,
				fmt.Sprintf("schema %q: column key %q collides with base schema %q", name, key, base.name),
				map[string]any{"schema": name, "base": base.name, "key": key})
		case !inBase && compiled.Override:
			return nil, errors.NewWithContext(errors.ErrCodeInvalidRequest,
				fmt.Sprintf("schema %q: override of %q has no base constraint", name, key),
				map[string]any{"schema": name, "base": base.name, "key": key})
		case inBase:
			s.byKey[key] = compiled
			overrides++
		default:
			s.add(compiled)
		}
	}

	slog.Debug("schema extended",
		"schema", name,
		"base", base.name,
		"added", len(additions)-overrides,
		"overridden", overrides,
		"total", len(s.keys))

	return s, nil
}

// MustExtend is like Extend but panics on error.
func MustExtend(base *Schema, name string, additions []ColumnConstraint, opts ...Option) *Schema {
	s, err := Extend(base, name, additions, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

func newSchema(name string, size int, opts ...Option) *Schema {
	s := &Schema{
		name:  name,
		keys:  make([]string, 0, size),
		byKey: make(map[string]ColumnConstraint, size),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Schema) add(c ColumnConstraint) {
	s.keys = append(s.keys, c.Key)
	s.byKey[c.Key] = c
}

// Name returns the schema name, usually the report type.
func (s *Schema) Name() string {
	return s.name
}

// Description returns the schema description.
func (s *Schema) Description() string {
	return s.description
}

// Len returns the number of constraints.
func (s *Schema) Len() int {
	return len(s.keys)
}

// Keys returns the constraint keys in schema order.
func (s *Schema) Keys() []string {
	out := make([]string, len(s.keys))
	copy(out, s.keys)
	return out
}

// Get returns the constraint with the given key.
func (s *Schema) Get(key string) (ColumnConstraint, bool) {
	c, ok := s.byKey[table.NormalizeName(key)]
	if !ok {
		return ColumnConstraint{}, false
	}
	return c.clone(), true
}

// Constraints returns copies of all constraints in schema order.
func (s *Schema) Constraints() []ColumnConstraint {
	out := make([]ColumnConstraint, 0, len(s.keys))
	for _, k := range s.keys {
		out = append(out, s.byKey[k].clone())
	}
	return out
}
