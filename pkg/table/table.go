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

package table

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/vpercuoco/iodptools/pkg/defaults"
	"github.com/vpercuoco/iodptools/pkg/errors"
)

var nullSet = func() map[string]struct{} {
	m := make(map[string]struct{})
	for _, tok := range defaults.NullTokens() {
		m[tok] = struct{}{}
	}
	return m
}()

// Table is an immutable grid of raw cell values with named columns.
type Table struct {
	columns []string
	index   map[string]int
	rows    [][]string
}

// NormalizeName trims a column name and converts it to Unicode NFC.
func NormalizeName(name string) string {
	return norm.NFC.String(strings.TrimSpace(name))
}

// New builds a Table from a header and rows of raw cells.
// Every row must have exactly one cell per column and column names must be
// unique after normalization. The input slices are copied.
func New(columns []string, rows [][]string) (*Table, error) {
	t := &Table{
		columns: make([]string, len(columns)),
		index:   make(map[string]int, len(columns)),
		rows:    make([][]string, len(rows)),
	}

	for i, c := range columns {
		name := NormalizeName(c)
		if name == "" {
			return nil, errors.NewWithContext(errors.ErrCodeInvalidRequest,
				"column name cannot be empty", map[string]any{"position": i})
		}
		if prev, dup := t.index[name]; dup {
			return nil, errors.NewWithContext(errors.ErrCodeInvalidRequest,
				fmt.Sprintf("duplicate column name %q", name),
				map[string]any{"column": name, "positions": []int{prev, i}})
		}
		t.columns[i] = name
		t.index[name] = i
	}

	for r, row := range rows {
		if len(row) != len(columns) {
			return nil, errors.NewWithContext(errors.ErrCodeInvalidRequest,
				"row width does not match header",
				map[string]any{"row": r, "cells": len(row), "columns": len(columns)})
		}
		cp := make([]string, len(row))
		copy(cp, row)
		t.rows[r] = cp
	}

	return t, nil
}

// MustNew is like New but panics on error. Intended for tests and fixtures.
func MustNew(columns []string, rows [][]string) *Table {
	t, err := New(columns, rows)
	if err != nil {
		panic(err)
	}
	return t
}

// Columns returns a copy of the column names in table order.
func (t *Table) Columns() []string {
	out := make([]string, len(t.columns))
	copy(out, t.columns)
	return out
}

// NumColumns returns the number of columns.
func (t *Table) NumColumns() int {
	return len(t.columns)
}

// NumRows returns the number of data rows.
func (t *Table) NumRows() int {
	return len(t.rows)
}

// ColumnIndex returns the position of the named column.
func (t *Table) ColumnIndex(name string) (int, bool) {
	i, ok := t.index[NormalizeName(name)]
	return i, ok
}

// Value returns the raw cell at row and column position.
func (t *Table) Value(row, col int) string {
	return t.rows[row][col]
}

// Cell returns the raw cell at row in the named column.
func (t *Table) Cell(row int, column string) (string, bool) {
	c, ok := t.ColumnIndex(column)
	if !ok || row < 0 || row >= len(t.rows) {
		return "", false
	}
	return t.rows[row][c], true
}

// IsNull reports whether a raw cell value represents a missing value.
func IsNull(v string) bool {
	_, ok := nullSet[strings.TrimSpace(v)]
	return ok
}
