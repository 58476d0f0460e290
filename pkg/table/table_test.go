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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vpercuoco/iodptools/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		columns []string
		rows    [][]string
		wantErr bool
	}{
		{
			name:    "valid table",
			columns: []string{"Exp", "Site", "Core"},
			rows:    [][]string{{"390", "U1556", "1"}, {"390", "U1556", "2"}},
		},
		{
			name:    "no rows",
			columns: []string{"Exp"},
		},
		{
			name: "no columns",
		},
		{
			name:    "duplicate column",
			columns: []string{"Core", "Core"},
			wantErr: true,
		},
		{
			name:    "duplicate after trimming",
			columns: []string{"Core", " Core "},
			wantErr: true,
		},
		{
			name:    "empty column name",
			columns: []string{"Exp", "  "},
			wantErr: true,
		},
		{
			name:    "ragged row",
			columns: []string{"Exp", "Site"},
			rows:    [][]string{{"390"}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl, err := New(tt.columns, tt.rows)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidRequest))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, len(tt.columns), tbl.NumColumns())
			assert.Equal(t, len(tt.rows), tbl.NumRows())
		})
	}
}

func TestNewCopiesInput(t *testing.T) {
	cols := []string{"Core"}
	rows := [][]string{{"1"}}
	tbl := MustNew(cols, rows)

	cols[0] = "Sect"
	rows[0][0] = "9"

	assert.Equal(t, []string{"Core"}, tbl.Columns())
	assert.Equal(t, "1", tbl.Value(0, 0))
}

func TestColumnNormalization(t *testing.T) {
	decomposed := "Cafe\u0301 (g)"
	composed := "Caf\u00e9 (g)"
	tbl := MustNew([]string{decomposed}, [][]string{{"1"}})

	idx, ok := tbl.ColumnIndex(composed)
	require.True(t, ok)
	assert.Equal(t, 0, idx)
	assert.Equal(t, composed, tbl.Columns()[0])
}

func TestCell(t *testing.T) {
	tbl := MustNew([]string{"Exp", "Core"}, [][]string{{"390", "1"}, {"390", "abc"}})

	v, ok := tbl.Cell(1, "Core")
	require.True(t, ok)
	assert.Equal(t, "abc", v)

	_, ok = tbl.Cell(2, "Core")
	assert.False(t, ok)
	_, ok = tbl.Cell(0, "Hole")
	assert.False(t, ok)
}

func TestIsNull(t *testing.T) {
	for _, v := range []string{"", "  ", "NaN", "nan", "NA", "N/A", "null", "None", "<NA>", " NaN "} {
		assert.True(t, IsNull(v), "expected %q to be null", v)
	}
	for _, v := range []string{"0", "abc", "na", "CC"} {
		assert.False(t, IsNull(v), "expected %q not to be null", v)
	}
}
