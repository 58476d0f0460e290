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
	"math"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"

	"github.com/vpercuoco/iodptools/pkg/defaults"
	"github.com/vpercuoco/iodptools/pkg/errors"
)

const (
	xlsxExt = ".xlsx"

	// maxSignificantDigits is the precision Excel keeps for numeric cells.
	maxSignificantDigits = 15
)

// Export writes the annotated table to an .xlsx workbook at path.
// The header row is bold and frozen, numeric cells whose spelling survives a
// round trip are stored as numbers and marked cells are filled with the
// highlight color. Every other cell keeps its raw text. A cell longer than
// Excel allows is rejected rather than truncated. Any other extension,
// including delimited text formats, is rejected because it cannot carry
// cell styling.
func Export(a *AnnotatedTable, path string) (err error) {
	start := time.Now()
	defer func() {
		outcome := "success"
		if err != nil {
			outcome = "error"
		}
		exportsTotal.WithLabelValues(outcome).Inc()
		exportDuration.Observe(time.Since(start).Seconds())
	}()

	if a == nil {
		return errors.New(errors.ErrCodeInvalidRequest, "annotated table cannot be nil")
	}
	path = strings.TrimSpace(path)
	if ext := filepath.Ext(path); !strings.EqualFold(ext, xlsxExt) {
		return errors.NewWithContext(errors.ErrCodeInvalidRequest,
			fmt.Sprintf("unsupported export format %q, only %s preserves highlighting", ext, xlsxExt),
			map[string]any{"path": path})
	}

	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); cerr != nil {
			slog.Warn("failed to close workbook", "error", cerr)
		}
	}()

	if err := a.checkCellLengths(); err != nil {
		return err
	}
	if err := a.writeSheet(f); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, "failed to build workbook", err)
	}
	if err := f.SaveAs(path); err != nil {
		return errors.WrapWithContext(errors.ErrCodeInternal, "failed to save workbook", err,
			map[string]any{"path": path})
	}

	slog.Info("exported highlighted table",
		"path", path,
		"rows", a.table.NumRows(),
		"marked", len(a.marks),
		"duration", time.Since(start))
	return nil
}

// checkCellLengths fails on the first header or cell excelize would truncate.
func (a *AnnotatedTable) checkCellLengths() error {
	tooLong := func(col, row int, v string) error {
		n := utf8.RuneCountInString(v)
		if n <= excelize.TotalCellChars {
			return nil
		}
		cell, _ := excelize.CoordinatesToCellName(col+1, row)
		return errors.NewWithContext(errors.ErrCodeInvalidRequest,
			fmt.Sprintf("cell %s has %d characters, the limit is %d", cell, n, excelize.TotalCellChars),
			map[string]any{"cell": cell, "length": n})
	}

	for c, name := range a.table.Columns() {
		if err := tooLong(c, 1, name); err != nil {
			return err
		}
	}
	for row := range a.table.NumRows() {
		for c := range a.table.NumColumns() {
			if err := tooLong(c, row+2, a.table.Value(row, c)); err != nil {
				return err
			}
		}
	}
	return nil
}

func (a *AnnotatedTable) writeSheet(f *excelize.File) error {
	sheet := a.sheet
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}
	fill, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{a.color}},
	})
	if err != nil {
		return fmt.Errorf("failed to create highlight style: %w", err)
	}

	columns := a.table.Columns()
	for c, name := range columns {
		cell, err := excelize.CoordinatesToCellName(c+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellStr(sheet, cell, name); err != nil {
			return err
		}
	}
	if len(columns) > 0 {
		last, err := excelize.CoordinatesToCellName(len(columns), 1)
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, "A1", last, bold); err != nil {
			return err
		}
		if err := f.SetPanes(sheet, &excelize.Panes{
			Freeze:      true,
			YSplit:      1,
			TopLeftCell: "A2",
			ActivePane:  "bottomLeft",
		}); err != nil {
			return err
		}
	}

	for row := range a.table.NumRows() {
		for c := range columns {
			cell, err := excelize.CoordinatesToCellName(c+1, row+2)
			if err != nil {
				return err
			}
			raw := a.table.Value(row, c)
			if n, ok := number(raw); ok {
				err = f.SetCellFloat(sheet, cell, n, -1, 64)
			} else {
				err = f.SetCellStr(sheet, cell, raw)
			}
			if err != nil {
				return err
			}
		}
	}

	for _, ref := range a.Marked() {
		c, _ := a.table.ColumnIndex(ref.Column)
		cell, err := excelize.CoordinatesToCellName(c+1, ref.Row+2)
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, cell, cell, fill); err != nil {
			return err
		}
		if !a.comments {
			continue
		}
		if err := f.AddComment(sheet, excelize.Comment{
			Author: defaults.CommentAuthor,
			Cell:   cell,
			Text:   strings.Join(a.marks[ref], "\n"),
		}); err != nil {
			return fmt.Errorf("failed to comment %s: %w", cell, err)
		}
	}
	return nil
}

// number reports whether raw is a finite decimal that Excel stores and shows
// with the same spelling. Leading zeros, plus signs, exponents, trailing zeros
// and values past Excel's precision stay text.
func number(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	if strconv.FormatFloat(n, 'f', -1, 64) != s {
		return 0, false
	}
	digits := strings.Trim(strings.NewReplacer("-", "", ".", "").Replace(s), "0")
	if len(digits) > maxSignificantDigits {
		return 0, false
	}
	return n, true
}
