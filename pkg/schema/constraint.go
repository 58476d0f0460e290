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
	"regexp"

	"github.com/vpercuoco/iodptools/pkg/errors"
	"github.com/vpercuoco/iodptools/pkg/table"
)

// ColumnConstraint describes the rules for one column, or for every column
// whose name matches Key when Regex is set.
type ColumnConstraint struct {
	// Key is the exact column name, or a pattern when Regex is true.
	Key string `json:"key" yaml:"key"`

	// Type is the expected semantic type of the column values.
	Type SemanticType `json:"type" yaml:"type"`

	// Checks are the value predicates applied to non-null cells.
	Checks []Check `json:"checks,omitempty" yaml:"checks,omitempty"`

	// Nullable allows empty cells. A nullable constraint may also match no column.
	Nullable bool `json:"nullable,omitempty" yaml:"nullable,omitempty"`

	// Coerce converts raw cells to Type before checks run.
	Coerce bool `json:"coerce,omitempty" yaml:"coerce,omitempty"`

	// Regex treats Key as a pattern matched from the start of column names.
	Regex bool `json:"regex,omitempty" yaml:"regex,omitempty"`

	// Override lets an Extend addition replace the base constraint with the same key.
	Override bool `json:"override,omitempty" yaml:"override,omitempty"`

	// Description is free text shown in catalog listings.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	column *regexp.Regexp
}

// compile normalizes the key and validates type, checks and column pattern.
func (c ColumnConstraint) compile() (ColumnConstraint, error) {
	out := c
	out.Key = table.NormalizeName(c.Key)
	if out.Key == "" {
		return c, errors.New(errors.ErrCodeInvalidRequest, "constraint key cannot be empty")
	}
	if !c.Type.IsValid() {
		return c, errors.NewWithContext(errors.ErrCodeInvalidRequest,
			fmt.Sprintf("constraint %q has unknown type %q", out.Key, c.Type),
			map[string]any{"key": out.Key, "type": c.Type, "validTypes": SupportedTypes()})
	}

	out.Checks = make([]Check, 0, len(c.Checks))
	for i, chk := range c.Checks {
		compiled, err := chk.compile(c.Type)
		if err != nil {
			return c, errors.WrapWithContext(errors.ErrCodeInvalidRequest,
				fmt.Sprintf("constraint %q has an invalid check", out.Key), err,
				map[string]any{"key": out.Key, "check": i})
		}
		out.Checks = append(out.Checks, compiled)
	}

	if c.Regex {
		re, err := regexp.Compile("^(?:" + out.Key + ")")
		if err != nil {
			return c, errors.WrapWithContext(errors.ErrCodeInvalidRequest,
				"invalid column pattern", err, map[string]any{"key": out.Key})
		}
		out.column = re
	}

	return out, nil
}

// Matches reports whether the constraint applies to the named column.
func (c ColumnConstraint) Matches(column string) bool {
	name := table.NormalizeName(column)
	if !c.Regex {
		return name == c.Key
	}
	if c.column == nil {
		re, err := regexp.Compile("^(?:" + c.Key + ")")
		if err != nil {
			return false
		}
		return re.MatchString(name)
	}
	return c.column.MatchString(name)
}

// Required reports whether a table must contain a column for the constraint.
func (c ColumnConstraint) Required() bool {
	return !c.Nullable
}

// clone returns a copy that shares no mutable state with c.
func (c ColumnConstraint) clone() ColumnConstraint {
	out := c
	out.Checks = make([]Check, len(c.Checks))
	for i, chk := range c.Checks {
		cp := chk
		cp.Min = copyFloat(chk.Min)
		cp.Max = copyFloat(chk.Max)
		cp.Value = copyFloat(chk.Value)
		cp.Values = append([]string(nil), chk.Values...)
		out.Checks[i] = cp
	}
	return out
}
