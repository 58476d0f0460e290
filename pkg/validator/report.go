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
	"strconv"
	"time"

	"github.com/vpercuoco/iodptools/pkg/header"
)

// FailureKind classifies a violation.
type FailureKind string

const (
	// FailureMissingColumn means no table column satisfied a required constraint.
	FailureMissingColumn FailureKind = "missing_column"

	// FailureTypeCoercion means a cell could not be converted to the expected type.
	FailureTypeCoercion FailureKind = "type_coercion"

	// FailureWrongDtype means a column that is not coerced holds values of another type.
	FailureWrongDtype FailureKind = "wrong_dtype"

	// FailureNotNullable means a required cell is empty.
	FailureNotNullable FailureKind = "not_nullable"

	// FailureRange means a value fell outside an in_range check.
	FailureRange FailureKind = "range"

	// FailureSetMembership means a value failed an isin or notin check.
	FailureSetMembership FailureKind = "set_membership"

	// FailurePattern means a value failed a str_matches check.
	FailurePattern FailureKind = "pattern"

	// FailureComparison means a value failed a gt, ge, lt, le, eq or ne check.
	FailureComparison FailureKind = "comparison"
)

// FailureKinds returns every kind in reporting order.
func FailureKinds() []FailureKind {
	return []FailureKind{
		FailureMissingColumn,
		FailureWrongDtype,
		FailureTypeCoercion,
		FailureNotNullable,
		FailureRange,
		FailureSetMembership,
		FailurePattern,
		FailureComparison,
	}
}

// IsPredicate reports whether the kind comes from a value check.
func (k FailureKind) IsPredicate() bool {
	switch k {
	case FailureRange, FailureSetMembership, FailurePattern, FailureComparison:
		return true
	default:
		return false
	}
}

// Context tells whether a violation points at a single cell or at a whole column.
type Context string

const (
	// ContextCell violations have a row index and can be highlighted.
	ContextCell Context = "cell"

	// ContextTable violations concern a column as a whole.
	ContextTable Context = "table"
)

// NoRow is the row index of table context violations.
const NoRow = -1

// Violation is one failed check.
type Violation struct {
	// Row is the 0-based table row, or NoRow for table context violations.
	Row int `json:"row_index" yaml:"row_index"`

	// Column is the live column name, or the constraint key when the column is missing.
	Column string `json:"column_name" yaml:"column_name"`

	// ConstraintKey identifies the schema constraint that failed.
	ConstraintKey string `json:"constraint_key" yaml:"constraint_key"`

	// Kind is the failure reason.
	Kind FailureKind `json:"failure_kind" yaml:"failure_kind"`

	// Check names the failing check, e.g. "in_range(0, 200)" or "not_nullable".
	Check string `json:"check" yaml:"check"`

	// Value is the offending raw cell value.
	Value string `json:"offending_value" yaml:"offending_value"`

	// Context is cell or table.
	Context Context `json:"context" yaml:"context"`

	// Message is a human readable description.
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
}

// IsCell reports whether the violation points at a single cell.
func (v Violation) IsCell() bool {
	return v.Context == ContextCell && v.Row >= 0
}

func (v Violation) String() string {
	if !v.IsCell() {
		return fmt.Sprintf("%s: %s (%s)", v.Column, v.Kind, v.Check)
	}
	return fmt.Sprintf("row %d, %s: %s %q (%s)", v.Row, v.Column, v.Kind, v.Value, v.Check)
}

// Status represents the overall validation outcome.
type Status string

const (
	// StatusPass indicates no violations were found.
	StatusPass Status = "pass"

	// StatusFail indicates one or more violations were found.
	StatusFail Status = "fail"
)

// Report is the complete outcome of validating one table against one schema.
type Report struct {
	header.Header `json:",inline" yaml:",inline"`

	// Schema is the name of the schema the table was validated against.
	Schema string `json:"schema" yaml:"schema"`

	// Summary contains aggregate statistics.
	Summary Summary `json:"summary" yaml:"summary"`

	// Violations lists every failed check; empty but never nil when the table is clean.
	Violations []Violation `json:"violations" yaml:"violations"`
}

// Summary contains aggregate statistics about a validation run.
type Summary struct {
	// Rows is the number of table rows.
	Rows int `json:"rows" yaml:"rows"`

	// Columns is the number of table columns.
	Columns int `json:"columns" yaml:"columns"`

	// Constraints is the number of schema constraints.
	Constraints int `json:"constraints" yaml:"constraints"`

	// Resolved is the number of (constraint, column) pairs checked.
	Resolved int `json:"resolved" yaml:"resolved"`

	// Total is the number of violations.
	Total int `json:"total" yaml:"total"`

	// Cell and Table split Total by context.
	Cell  int `json:"cell" yaml:"cell"`
	Table int `json:"table" yaml:"table"`

	// ByKind counts violations per failure kind. Kinds with no violations are omitted.
	ByKind map[FailureKind]int `json:"byKind,omitempty" yaml:"byKind,omitempty"`

	// Status is the overall validation status.
	Status Status `json:"status" yaml:"status"`

	// Duration is how long the validation took.
	Duration time.Duration `json:"duration" yaml:"duration"`
}

// NewReport creates a Report with an initialized, empty violation list.
func NewReport() *Report {
	return &Report{
		Violations: make([]Violation, 0),
		Summary: Summary{
			ByKind: make(map[FailureKind]int),
		},
	}
}

// Valid reports whether the table passed every constraint.
func (r *Report) Valid() bool {
	return len(r.Violations) == 0
}

// TableHeader returns the table format column titles.
func (r *Report) TableHeader() []string {
	return []string{"ROW", "COLUMN", "CONSTRAINT", "KIND", "CHECK", "VALUE"}
}

// TableRows returns one table format line per violation.
func (r *Report) TableRows() [][]string {
	rows := make([][]string, 0, len(r.Violations))
	for _, v := range r.Violations {
		row := "-"
		if v.IsCell() {
			row = strconv.Itoa(v.Row)
		}
		rows = append(rows, []string{row, v.Column, v.ConstraintKey, string(v.Kind), v.Check, v.Value})
	}
	return rows
}

func (r *Report) add(v Violation) {
	r.Violations = append(r.Violations, v)
	r.Summary.Total++
	r.Summary.ByKind[v.Kind]++
	if v.IsCell() {
		r.Summary.Cell++
	} else {
		r.Summary.Table++
	}
}
