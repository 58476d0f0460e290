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

package highlight

import (
	"fmt"
	"log/slog"
	"regexp"
	"sort"
	"strings"

	"github.com/vpercuoco/iodptools/pkg/defaults"
	"github.com/vpercuoco/iodptools/pkg/errors"
	"github.com/vpercuoco/iodptools/pkg/table"
	"github.com/vpercuoco/iodptools/pkg/validator"
)

var hexColor = regexp.MustCompile(`^[0-9A-Fa-f]{6}$`)

// CellRef addresses one table cell by row index and column name.
type CellRef struct {
	Row    int    `json:"row" yaml:"row"`
	Column string `json:"column" yaml:"column"`
}

// AnnotatedTable is a table plus the set of cells marked for highlighting.
// It does not modify the underlying table.
type AnnotatedTable struct {
	table    *table.Table
	marks    map[CellRef][]string
	color    string
	sheet    string
	comments bool
}

// Option configures highlighting and export.
type Option func(*AnnotatedTable)

// WithColor sets the fill color of marked cells as six hex digits, e.g. "FF0000".
// A leading "#" is accepted.
func WithColor(hex string) Option {
	return func(a *AnnotatedTable) {
		a.color = strings.ToUpper(strings.TrimPrefix(strings.TrimSpace(hex), "#"))
	}
}

// WithSheetName sets the worksheet name used by Export.
func WithSheetName(name string) Option {
	return func(a *AnnotatedTable) {
		a.sheet = strings.TrimSpace(name)
	}
}

// WithComments toggles the cell comments listing violation reasons.
func WithComments(enabled bool) Option {
	return func(a *AnnotatedTable) {
		a.comments = enabled
	}
}

// Highlight marks the distinct (row, column) cells referenced by cell
// context violations. Table context violations, such as a missing column,
// mark nothing. Violations naming a column or row the table does not have
// are ignored. Calling Highlight again with the same violations yields the
// same marked set.
func Highlight(t *table.Table, violations []validator.Violation, opts ...Option) (*AnnotatedTable, error) {
	if t == nil {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "table cannot be nil")
	}

	a := &AnnotatedTable{
		table:    t,
		marks:    make(map[CellRef][]string),
		color:    defaults.HighlightColor,
		sheet:    defaults.SheetName,
		comments: defaults.CellComments,
	}
	for _, opt := range opts {
		opt(a)
	}

	if !hexColor.MatchString(a.color) {
		return nil, errors.NewWithContext(errors.ErrCodeInvalidRequest,
			fmt.Sprintf("invalid highlight color %q", a.color),
			map[string]any{"color": a.color})
	}
	if a.sheet == "" {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "sheet name cannot be empty")
	}

	skipped := 0
	for _, v := range violations {
		if !v.IsCell() {
			continue
		}
		if _, ok := t.ColumnIndex(v.Column); !ok || v.Row >= t.NumRows() {
			skipped++
			continue
		}
		ref := CellRef{Row: v.Row, Column: table.NormalizeName(v.Column)}
		a.addReason(ref, fmt.Sprintf("%s: %s", v.Kind, v.Check))
	}

	if skipped > 0 {
		slog.Warn("ignored violations outside the table", "count", skipped)
	}
	slog.Debug("table highlighted",
		"violations", len(violations),
		"marked", len(a.marks))

	return a, nil
}

func (a *AnnotatedTable) addReason(ref CellRef, reason string) {
	for _, r := range a.marks[ref] {
		if r == reason {
			return
		}
	}
	a.marks[ref] = append(a.marks[ref], reason)
}

// Table returns the underlying table.
func (a *AnnotatedTable) Table() *table.Table {
	return a.table
}

// Color returns the fill color of marked cells.
func (a *AnnotatedTable) Color() string {
	return a.color
}

// SheetName returns the worksheet name used by Export.
func (a *AnnotatedTable) SheetName() string {
	return a.sheet
}

// NumMarked returns the number of marked cells.
func (a *AnnotatedTable) NumMarked() int {
	return len(a.marks)
}

// IsMarked reports whether the cell at row and column is marked.
func (a *AnnotatedTable) IsMarked(row int, column string) bool {
	_, ok := a.marks[CellRef{Row: row, Column: table.NormalizeName(column)}]
	return ok
}

// Reasons returns the distinct violation reasons of a marked cell, in the
// order they were first seen.
func (a *AnnotatedTable) Reasons(row int, column string) []string {
	reasons := a.marks[CellRef{Row: row, Column: table.NormalizeName(column)}]
	out := make([]string, len(reasons))
	copy(out, reasons)
	return out
}

// Marked returns the marked cells sorted by row, then by table column order.
func (a *AnnotatedTable) Marked() []CellRef {
	out := make([]CellRef, 0, len(a.marks))
	for ref := range a.marks {
		out = append(out, ref)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		ci, _ := a.table.ColumnIndex(out[i].Column)
		cj, _ := a.table.ColumnIndex(out[j].Column)
		return ci < cj
	})
	return out
}
