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
	"strconv"
	"strings"

	"github.com/vpercuoco/iodptools/pkg/errors"
)

// Check is a value predicate applied to every non-null cell of a column.
type Check struct {
	// Kind selects the predicate.
	Kind CheckKind `json:"kind" yaml:"kind"`

	// Min and Max bound in_range checks (inclusive).
	Min *float64 `json:"min,omitempty" yaml:"min,omitempty"`
	Max *float64 `json:"max,omitempty" yaml:"max,omitempty"`

	// Value is the operand of comparison checks.
	Value *float64 `json:"value,omitempty" yaml:"value,omitempty"`

	// Values is the allowed (isin) or forbidden (notin) set.
	Values []string `json:"values,omitempty" yaml:"values,omitempty"`

	// Pattern is the str_matches regular expression.
	Pattern string `json:"pattern,omitempty" yaml:"pattern,omitempty"`

	re      *regexp.Regexp
	numbers map[float64]struct{}
	texts   map[string]struct{}
}

// InRange returns an inclusive range check.
func InRange(lo, hi float64) Check {
	return Check{Kind: CheckInRange, Min: &lo, Max: &hi}
}

// Compare returns a comparison check such as gt or le against v.
func Compare(kind CheckKind, v float64) Check {
	return Check{Kind: kind, Value: &v}
}

// IsIn returns a set membership check.
func IsIn(values ...string) Check {
	return Check{Kind: CheckIsIn, Values: values}
}

// NotIn returns a set exclusion check.
func NotIn(values ...string) Check {
	return Check{Kind: CheckNotIn, Values: values}
}

// StrMatches returns a pattern check anchored at the start of the value.
func StrMatches(pattern string) Check {
	return Check{Kind: CheckStrMatches, Pattern: pattern}
}

// compile validates operands against the column type and prepares lookups.
func (c Check) compile(t SemanticType) (Check, error) {
	if !c.Kind.IsValid() {
		return c, errors.NewWithContext(errors.ErrCodeInvalidRequest,
			"unknown check kind", map[string]any{"kind": c.Kind})
	}
	if c.Kind.numeric() && !t.IsNumeric() {
		return c, errors.NewWithContext(errors.ErrCodeInvalidRequest,
			fmt.Sprintf("%s check requires a numeric column", c.Kind),
			map[string]any{"kind": c.Kind, "type": t})
	}

	out := c
	out.Min = copyFloat(c.Min)
	out.Max = copyFloat(c.Max)
	out.Value = copyFloat(c.Value)
	out.Values = append([]string(nil), c.Values...)

	switch c.Kind {
	case CheckInRange:
		if c.Min == nil || c.Max == nil {
			return c, errors.New(errors.ErrCodeInvalidRequest, "in_range check requires min and max")
		}
		if *c.Min > *c.Max {
			return c, errors.NewWithContext(errors.ErrCodeInvalidRequest,
				"in_range min exceeds max", map[string]any{"min": *c.Min, "max": *c.Max})
		}

	case CheckGT, CheckGE, CheckLT, CheckLE, CheckEQ, CheckNE:
		if c.Value == nil {
			return c, errors.NewWithContext(errors.ErrCodeInvalidRequest,
				fmt.Sprintf("%s check requires a value", c.Kind), nil)
		}

	case CheckIsIn, CheckNotIn:
		if len(c.Values) == 0 {
			return c, errors.NewWithContext(errors.ErrCodeInvalidRequest,
				fmt.Sprintf("%s check requires values", c.Kind), nil)
		}
		if t.IsNumeric() {
			out.numbers = make(map[float64]struct{}, len(c.Values))
			for _, s := range c.Values {
				f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
				if err != nil {
					return c, errors.WrapWithContext(errors.ErrCodeInvalidRequest,
						"set member is not numeric", err, map[string]any{"value": s})
				}
				out.numbers[f] = struct{}{}
			}
		} else {
			out.texts = make(map[string]struct{}, len(c.Values))
			for _, s := range c.Values {
				out.texts[s] = struct{}{}
			}
		}

	case CheckStrMatches:
		if c.Pattern == "" {
			return c, errors.New(errors.ErrCodeInvalidRequest, "str_matches check requires a pattern")
		}
		re, err := regexp.Compile("^(?:" + c.Pattern + ")")
		if err != nil {
			return c, errors.WrapWithContext(errors.ErrCodeInvalidRequest,
				"invalid str_matches pattern", err, map[string]any{"pattern": c.Pattern})
		}
		out.re = re
	}

	return out, nil
}

// Evaluate reports whether v satisfies the check.
// The check must belong to a constraint built by NewSchema or Extend.
func (c Check) Evaluate(v Value) bool {
	switch c.Kind {
	case CheckInRange:
		return v.Number >= *c.Min && v.Number <= *c.Max
	case CheckGT:
		return v.Number > *c.Value
	case CheckGE:
		return v.Number >= *c.Value
	case CheckLT:
		return v.Number < *c.Value
	case CheckLE:
		return v.Number <= *c.Value
	case CheckEQ:
		return v.Number == *c.Value
	case CheckNE:
		return v.Number != *c.Value
	case CheckIsIn:
		return c.member(v)
	case CheckNotIn:
		return !c.member(v)
	case CheckStrMatches:
		return c.re.MatchString(v.Text)
	default:
		return false
	}
}

func (c Check) member(v Value) bool {
	if c.numbers != nil {
		_, ok := c.numbers[v.Number]
		return ok
	}
	_, ok := c.texts[v.Text]
	return ok
}

// String renders the check the way it is reported on violations,
// e.g. "in_range(0, 200)" or "isin([H X F R])".
func (c Check) String() string {
	switch c.Kind {
	case CheckInRange:
		return fmt.Sprintf("in_range(%s, %s)", formatNumber(c.Min), formatNumber(c.Max))
	case CheckIsIn, CheckNotIn:
		return fmt.Sprintf("%s(%v)", c.Kind, c.Values)
	case CheckStrMatches:
		return fmt.Sprintf("str_matches(%q)", c.Pattern)
	default:
		return fmt.Sprintf("%s(%s)", c.Kind, formatNumber(c.Value))
	}
}

func formatNumber(f *float64) string {
	if f == nil {
		return "<nil>"
	}
	return strconv.FormatFloat(*f, 'g', -1, 64)
}

func copyFloat(f *float64) *float64 {
	if f == nil {
		return nil
	}
	v := *f
	return &v
}
