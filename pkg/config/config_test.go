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

package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vpercuoco/iodptools/pkg/catalog"
	"github.com/vpercuoco/iodptools/pkg/defaults"
	"github.com/vpercuoco/iodptools/pkg/errors"
	"github.com/vpercuoco/iodptools/pkg/highlight"
	"github.com/vpercuoco/iodptools/pkg/table"
)

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{})
	require.NoError(t, err)

	assert.Empty(t, cfg.SchemaDir)
	assert.Equal(t, defaults.HighlightColor, cfg.HighlightColor)
	assert.Equal(t, defaults.SheetName, cfg.SheetName)
	assert.Equal(t, defaults.CellComments, cfg.CellComments)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, slog.LevelInfo, cfg.Level())
	assert.Empty(t, cfg.CatalogOptions())
}

func TestLoadFrom_Overrides(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{
		"IODP_SCHEMA_DIR":      "/data/schemas",
		"IODP_HIGHLIGHT_COLOR": "#00ff00",
		"IODP_SHEET_NAME":      "MAD errors",
		"IODP_CELL_COMMENTS":   "false",
		"LOG_LEVEL":            "debug",
	})
	require.NoError(t, err)

	assert.Equal(t, "/data/schemas", cfg.SchemaDir)
	assert.Equal(t, "#00ff00", cfg.HighlightColor)
	assert.Equal(t, "MAD errors", cfg.SheetName)
	assert.False(t, cfg.CellComments)
	assert.Equal(t, slog.LevelDebug, cfg.Level())
	assert.Len(t, cfg.CatalogOptions(), 1)
}

func TestLoadFrom_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		environ map[string]string
	}{
		{"bad color", map[string]string{"IODP_HIGHLIGHT_COLOR": "red"}},
		{"empty sheet", map[string]string{"IODP_SHEET_NAME": "  "}},
		{"bad level", map[string]string{"LOG_LEVEL": "verbose"}},
		{"bad bool", map[string]string{"IODP_CELL_COMMENTS": "maybe"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadFrom(tt.environ)
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidRequest))
		})
	}
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("IODP_SHEET_NAME", "Results")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "Results", cfg.SheetName)
	assert.Equal(t, slog.LevelWarn, cfg.Level())
}

func TestHighlightOptions(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{
		"IODP_HIGHLIGHT_COLOR": "#ffff00",
		"IODP_SHEET_NAME":      "Errors",
	})
	require.NoError(t, err)

	tbl, err := table.New([]string{"Core"}, [][]string{{"1"}})
	require.NoError(t, err)

	a, err := highlight.Highlight(tbl, nil, cfg.HighlightOptions()...)
	require.NoError(t, err)
	assert.Equal(t, "FFFF00", a.Color())
	assert.Equal(t, "Errors", a.SheetName())
}

func TestCatalogOptions(t *testing.T) {
	dir := t.TempDir()
	content := `apiVersion: lore.iodp.tamu.edu/v1alpha1
kind: ReportCatalog
metadata:
  name: local
reports:
  - name: LOCAL
    columns:
      - {key: Reading, type: decimal, coerce: true}
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "local.yaml"), []byte(content), 0o600))

	cfg, err := LoadFrom(map[string]string{"IODP_SCHEMA_DIR": dir})
	require.NoError(t, err)

	cat, err := catalog.New(cfg.CatalogOptions()...)
	require.NoError(t, err)
	_, err = cat.SchemaFor("local")
	assert.NoError(t, err)
}
