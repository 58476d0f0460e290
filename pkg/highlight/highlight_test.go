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
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/vpercuoco/iodptools/pkg/errors"
	"github.com/vpercuoco/iodptools/pkg/table"
	"github.com/vpercuoco/iodptools/pkg/validator"
)

func testTable(t *testing.T) *table.Table {
	t.Helper()
	tbl, err := table.New(
		[]string{"Core", "Offset (cm)", "Type", "Label identifier"},
		[][]string{
			{"1", "10", "H", "390-U1558A-1H"},
			{"2", "250", "Z", "390-U1558A-2H"},
			{"abc", "30", "H", "007"},
		},
	)
	require.NoError(t, err)
	return tbl
}

func testViolations() []validator.Violation {
	return []validator.Violation{
		{Row: 1, Column: "Offset (cm)", ConstraintKey: "Offset (cm)", Kind: validator.FailureRange,
			Check: "in_range(0, 200)", Value: "250", Context: validator.ContextCell},
		{Row: 1, Column: "Type", ConstraintKey: "Type", Kind: validator.FailureSetMembership,
			Check: "isin([H X F R])", Value: "Z", Context: validator.ContextCell},
		{Row: 2, Column: "Core", ConstraintKey: "Core", Kind: validator.FailureTypeCoercion,
			Check: "coerce_dtype('integer')", Value: "abc", Context: validator.ContextCell},
		{Row: 1, Column: "Offset (cm)", ConstraintKey: "Offset (cm)", Kind: validator.FailureComparison,
			Check: "le(200)", Value: "250", Context: validator.ContextCell},
		{Row: validator.NoRow, Column: "Instrument", ConstraintKey: "Instrument",
			Kind: validator.FailureMissingColumn, Context: validator.ContextTable},
	}
}

func TestHighlight_MarksCellViolations(t *testing.T) {
	a, err := Highlight(testTable(t), testViolations())
	require.NoError(t, err)

	assert.Equal(t, []CellRef{
		{Row: 1, Column: "Offset (cm)"},
		{Row: 1, Column: "Type"},
		{Row: 2, Column: "Core"},
	}, a.Marked())
	assert.Equal(t, 3, a.NumMarked())
	assert.True(t, a.IsMarked(2, "Core"))
	assert.False(t, a.IsMarked(0, "Core"))

	assert.Equal(t, []string{
		"range: in_range(0, 200)",
		"comparison: le(200)",
	}, a.Reasons(1, "Offset (cm)"))
	assert.Empty(t, a.Reasons(0, "Type"))
}

func TestHighlight_MissingColumnMarksNothing(t *testing.T) {
	missing := testViolations()[4:]
	a, err := Highlight(testTable(t), missing)
	require.NoError(t, err)
	assert.Equal(t, 0, a.NumMarked())
	assert.Empty(t, a.Marked())
}

func TestHighlight_WrongDtypeMarksNothing(t *testing.T) {
	a, err := Highlight(testTable(t), []validator.Violation{{
		Row: validator.NoRow, Column: "Core", ConstraintKey: "Core",
		Kind: validator.FailureWrongDtype, Value: "abc", Context: validator.ContextTable,
	}})
	require.NoError(t, err)
	assert.Equal(t, 0, a.NumMarked())
}

func TestHighlight_Idempotent(t *testing.T) {
	tbl := testTable(t)
	first, err := Highlight(tbl, testViolations())
	require.NoError(t, err)
	second, err := Highlight(tbl, testViolations())
	require.NoError(t, err)
	assert.Equal(t, first.Marked(), second.Marked())

	doubled := append(testViolations(), testViolations()...)
	third, err := Highlight(tbl, doubled)
	require.NoError(t, err)
	assert.Equal(t, first.Marked(), third.Marked())
	assert.Equal(t, first.Reasons(1, "Offset (cm)"), third.Reasons(1, "Offset (cm)"))
}

func TestHighlight_IgnoresCellsOutsideTable(t *testing.T) {
	a, err := Highlight(testTable(t), []validator.Violation{
		{Row: 9, Column: "Core", Kind: validator.FailureRange, Context: validator.ContextCell},
		{Row: 0, Column: "Nope", Kind: validator.FailureRange, Context: validator.ContextCell},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, a.NumMarked())
}

func TestHighlight_EmptyViolations(t *testing.T) {
	a, err := Highlight(testTable(t), []validator.Violation{})
	require.NoError(t, err)
	assert.Equal(t, 0, a.NumMarked())
	assert.NotNil(t, a.Marked())
}

func TestHighlight_Options(t *testing.T) {
	a, err := Highlight(testTable(t), nil, WithColor("#ffff00"), WithSheetName("MAD"), WithComments(false))
	require.NoError(t, err)
	assert.Equal(t, "FFFF00", a.Color())
	assert.Equal(t, "MAD", a.SheetName())

	tests := []struct {
		name string
		opt  Option
	}{
		{"bad color", WithColor("red")},
		{"short color", WithColor("FFF")},
		{"empty sheet", WithSheetName(" ")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Highlight(testTable(t), nil, tt.opt)
			assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidRequest))
		})
	}

	_, err = Highlight(nil, nil)
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidRequest))
}

func TestExport(t *testing.T) {
	a, err := Highlight(testTable(t), testViolations(), WithSheetName("Errors"))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "errors.xlsx")
	require.NoError(t, Export(a, path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Errors"}, f.GetSheetList())

	rows, err := f.GetRows("Errors")
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"Core", "Offset (cm)", "Type", "Label identifier"}, rows[0])
	assert.Equal(t, "250", rows[2][1])
	assert.Equal(t, "007", rows[3][3])

	markedStyle, err := f.GetCellStyle("Errors", "B3")
	require.NoError(t, err)
	style, err := f.GetStyle(markedStyle)
	require.NoError(t, err)
	require.NotEmpty(t, style.Fill.Color)
	assert.Equal(t, 1, style.Fill.Pattern)
	assert.True(t, strings.HasSuffix(strings.ToUpper(style.Fill.Color[0]), "FF0000"), style.Fill.Color[0])

	for _, cell := range []string{"C3", "A4"} {
		id, err := f.GetCellStyle("Errors", cell)
		require.NoError(t, err)
		assert.Equal(t, markedStyle, id, cell)
	}
	for _, cell := range []string{"A2", "B2", "C2", "D4"} {
		id, err := f.GetCellStyle("Errors", cell)
		require.NoError(t, err)
		assert.NotEqual(t, markedStyle, id, cell)
	}

	header, err := f.GetCellStyle("Errors", "A1")
	require.NoError(t, err)
	headerStyle, err := f.GetStyle(header)
	require.NoError(t, err)
	require.NotNil(t, headerStyle.Font)
	assert.True(t, headerStyle.Font.Bold)

	comments, err := f.GetComments("Errors")
	require.NoError(t, err)
	require.Len(t, comments, 3)
	cells := map[string]string{}
	for _, c := range comments {
		cells[c.Cell] = c.Text
		for _, run := range c.Paragraph {
			cells[c.Cell] += run.Text
		}
	}
	assert.Contains(t, cells["B3"], "range: in_range(0, 200)")
	assert.Contains(t, cells["B3"], "comparison: le(200)")
	assert.Contains(t, cells["A4"], "type_coercion")
}

func TestExport_NoComments(t *testing.T) {
	a, err := Highlight(testTable(t), testViolations(), WithComments(false))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "errors.XLSX")
	require.NoError(t, Export(a, path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	comments, err := f.GetComments("Sheet1")
	require.NoError(t, err)
	assert.Empty(t, comments)
}

func TestExport_RejectsOtherFormats(t *testing.T) {
	a, err := Highlight(testTable(t), testViolations())
	require.NoError(t, err)

	dir := t.TempDir()
	for _, name := range []string{"errors.csv", "errors.tsv", "errors.txt", "errors.xls", "errors"} {
		t.Run(name, func(t *testing.T) {
			err := Export(a, filepath.Join(dir, name))
			require.Error(t, err)
			assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidRequest))
		})
	}

	err = Export(nil, filepath.Join(dir, "errors.xlsx"))
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidRequest))
}

func TestExport_UnwritablePath(t *testing.T) {
	a, err := Highlight(testTable(t), nil)
	require.NoError(t, err)

	err = Export(a, filepath.Join(t.TempDir(), "missing", "errors.xlsx"))
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeInternal))
}

func TestNumber(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"250", true},
		{"-1.5", true},
		{"0", true},
		{"0.25", true},
		{" 12 ", true},
		{"123456789012345", true},
		{"1e3", false},
		{"1.50", false},
		{"+5", false},
		{"12345678901234567890", false},
		{"1234567890123456", false},
		{"007", false},
		{"0x10", false},
		{"NaN", false},
		{"Inf", false},
		{"", false},
		{"390-U1558A", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			_, got := number(tt.in)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExport_KeepsSpelling(t *testing.T) {
	raw := []string{"1.50", "1e3", "12345678901234567890", "+5", "42"}
	tbl, err := table.New([]string{"A", "B", "C", "D", "E"}, [][]string{raw})
	require.NoError(t, err)
	a, err := Highlight(tbl, nil)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "spelling.xlsx")
	require.NoError(t, Export(a, path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(a.SheetName())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, raw, rows[1])

	for cell, text := range map[string]bool{"A2": true, "C2": true, "E2": false} {
		typ, err := f.GetCellType(a.SheetName(), cell)
		require.NoError(t, err)
		assert.Equal(t, text, typ == excelize.CellTypeSharedString, cell)
	}
}

func TestExport_RejectsOversizedCell(t *testing.T) {
	long := strings.Repeat("x", excelize.TotalCellChars+1)
	tbl, err := table.New([]string{"Comment"}, [][]string{{"ok"}, {long}})
	require.NoError(t, err)
	a, err := Highlight(tbl, nil)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "long.xlsx")
	err = Export(a, path)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidRequest), err)
	assert.Contains(t, err.Error(), "A3")
	assert.NoFileExists(t, path)
}
