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

package validator

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/vpercuoco/iodptools/pkg/defaults"
	"github.com/vpercuoco/iodptools/pkg/errors"
	"github.com/vpercuoco/iodptools/pkg/header"
	"github.com/vpercuoco/iodptools/pkg/schema"
	"github.com/vpercuoco/iodptools/pkg/table"
)

const (
	checkColumnPresent = "column_in_dataframe"
	checkNotNullable   = "not_nullable"
)

// Validator evaluates schema constraints against tables.
// A Validator holds no per-run state and may be shared between goroutines.
type Validator struct {
	// Version is the tool version recorded in report headers.
	Version string
}

// Option is a functional option for configuring Validator instances.
type Option func(*Validator)

// WithVersion returns an Option that sets the Validator version string.
func WithVersion(version string) Option {
	return func(v *Validator) {
		v.Version = version
	}
}

// New creates a new Validator with the provided options.
func New(opts ...Option) *Validator {
	v := &Validator{}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Validate checks every row of t against s and returns the violations.
// The result is empty, never nil, when the table is clean.
func Validate(t *table.Table, s *schema.Schema) ([]Violation, error) {
	report, err := New().Validate(t, s)
	if err != nil {
		return nil, err
	}
	return report.Violations, nil
}

// resolution pairs a constraint with the table columns it applies to.
type resolution struct {
	constraint schema.ColumnConstraint
	columns    []int
}

// Validate evaluates every constraint of s against every matching column and
// row of t before returning. Per-cell problems are reported as violations;
// only a nil table, a nil schema or a table without columns is an error.
func (v *Validator) Validate(t *table.Table, s *schema.Schema) (*Report, error) {
	start := time.Now()

	if t == nil {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "table cannot be nil")
	}
	if s == nil {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "schema cannot be nil")
	}
	if t.NumColumns() == 0 {
		return nil, errors.NewWithContext(errors.ErrCodeInvalidRequest,
			"table has no columns", map[string]any{"schema": s.Name()})
	}

	report := NewReport()
	report.Init(header.KindValidationReport, defaults.APIVersion, v.Version)
	report.Schema = s.Name()
	report.Summary.Rows = t.NumRows()
	report.Summary.Columns = t.NumColumns()
	report.Summary.Constraints = s.Len()

	resolved := resolve(t, s)

	for _, res := range resolved {
		c := res.constraint
		if len(res.columns) == 0 {
			if c.Required() {
				report.add(Violation{
					Row:           NoRow,
					Column:        c.Key,
					ConstraintKey: c.Key,
					Kind:          FailureMissingColumn,
					Check:         checkColumnPresent,
					Value:         c.Key,
					Context:       ContextTable,
					Message:       fmt.Sprintf("column %q not in table", c.Key),
				})
			}
			continue
		}
		for _, col := range res.columns {
			report.Summary.Resolved++
			checkColumn(report, t, c, col)
		}
	}

	report.Summary.Duration = time.Since(start)
	report.Summary.Status = StatusPass
	if !report.Valid() {
		report.Summary.Status = StatusFail
	}

	validationsTotal.WithLabelValues(string(report.Summary.Status)).Inc()
	for kind, n := range report.Summary.ByKind {
		violationsTotal.WithLabelValues(string(kind)).Add(float64(n))
	}
	validationDuration.Observe(report.Summary.Duration.Seconds())

	slog.Debug("validation completed",
		"schema", report.Schema,
		"rows", report.Summary.Rows,
		"resolved", report.Summary.Resolved,
		"violations", report.Summary.Total,
		"status", report.Summary.Status,
		"duration", report.Summary.Duration)

	return report, nil
}

// resolve expands every constraint to the live columns it applies to,
// in schema order and then table column order.
func resolve(t *table.Table, s *schema.Schema) []resolution {
	columns := t.Columns()
	constraints := s.Constraints()
	out := make([]resolution, 0, len(constraints))

	for _, c := range constraints {
		res := resolution{constraint: c}
		if !c.Regex {
			if idx, ok := t.ColumnIndex(c.Key); ok {
				res.columns = []int{idx}
			}
		} else {
			for idx, name := range columns {
				if c.Matches(name) {
					res.columns = append(res.columns, idx)
				}
			}
		}
		slog.Debug("resolved constraint",
			"key", c.Key,
			"regex", c.Regex,
			"columns", len(res.columns))
		out = append(out, res)
	}
	return out
}

// checkColumn evaluates one constraint against one column, row by row.
func checkColumn(r *Report, t *table.Table, c schema.ColumnConstraint, col int) {
	name := t.Columns()[col]

	cell := func(row int, kind FailureKind, check, raw, msg string) {
		r.add(Violation{
			Row:           row,
			Column:        name,
			ConstraintKey: c.Key,
			Kind:          kind,
			Check:         check,
			Value:         raw,
			Context:       ContextCell,
			Message:       msg,
		})
	}

	values := make([]*schema.Value, t.NumRows())
	if c.Coerce {
		for row := range t.NumRows() {
			raw := t.Value(row, col)
			if table.IsNull(raw) {
				continue
			}
			val, err := schema.Coerce(raw, c.Type)
			if err != nil {
				continue
			}
			values[row] = &val
		}
	} else {
		checkDtype(r, t, c, col, values)
	}

	for row := range t.NumRows() {
		raw := t.Value(row, col)
		if table.IsNull(raw) {
			if c.Required() {
				cell(row, FailureNotNullable, checkNotNullable, raw, "null value in non-nullable column")
			}
			continue
		}

		val := values[row]
		if val == nil {
			if c.Coerce {
				cell(row, FailureTypeCoercion, fmt.Sprintf("coerce_dtype('%s')", c.Type), raw,
					fmt.Sprintf("cannot convert %q to %s", raw, c.Type))
			}
			continue
		}

		for _, chk := range c.Checks {
			if !chk.Evaluate(*val) {
				cell(row, FailureKind(chk.Kind.Reason()), chk.String(), raw,
					fmt.Sprintf("%q failed %s", raw, chk))
			}
		}
	}
}

// checkDtype types the cells of a column that is not coerced. Cells that do
// not hold the expected type are left nil in values and reported once, as a
// single table context violation for the column.
func checkDtype(r *Report, t *table.Table, c schema.ColumnConstraint, col int, values []*schema.Value) {
	bad := 0
	first := ""
	for row := range t.NumRows() {
		raw := t.Value(row, col)
		if table.IsNull(raw) {
			continue
		}
		val, err := schema.Coerce(raw, c.Type)
		if err != nil {
			if bad == 0 {
				first = raw
			}
			bad++
			continue
		}
		values[row] = &val
	}
	if bad == 0 {
		return
	}

	r.add(Violation{
		Row:           NoRow,
		Column:        t.Columns()[col],
		ConstraintKey: c.Key,
		Kind:          FailureWrongDtype,
		Check:         fmt.Sprintf("dtype('%s')", c.Type),
		Value:         first,
		Context:       ContextTable,
		Message:       fmt.Sprintf("%d value(s) are not %s", bad, c.Type),
	})
}
