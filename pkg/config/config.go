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
	"fmt"
	"log/slog"
	"os"
	"regexp"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/vpercuoco/iodptools/pkg/catalog"
	"github.com/vpercuoco/iodptools/pkg/errors"
	"github.com/vpercuoco/iodptools/pkg/highlight"
	"github.com/vpercuoco/iodptools/pkg/logging"
)

var hexColor = regexp.MustCompile(`^#?[0-9A-Fa-f]{6}$`)

// Config holds the settings read from the environment.
type Config struct {
	// SchemaDir is an external catalog directory layered over the embedded data.
	SchemaDir string `env:"IODP_SCHEMA_DIR"`

	// HighlightColor is the fill color of highlighted cells as six hex digits.
	// The default must equal defaults.HighlightColor.
	HighlightColor string `env:"IODP_HIGHLIGHT_COLOR" envDefault:"FF0000"`

	// SheetName is the worksheet name of exported workbooks.
	// The default must equal defaults.SheetName.
	SheetName string `env:"IODP_SHEET_NAME" envDefault:"Sheet1"`

	// CellComments adds violation reasons as comments on highlighted cells.
	// The default must equal defaults.CellComments.
	CellComments bool `env:"IODP_CELL_COMMENTS" envDefault:"true"`

	// LogLevel is one of debug, info, warn or error.
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load reads the configuration from the process environment. A .env file in
// the working directory is loaded first when present; variables already set
// in the environment take precedence over it.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("failed to load .env file", "error", err)
	}
	return parse(env.Options{})
}

// LoadFrom reads the configuration from the given variables only.
func LoadFrom(environ map[string]string) (*Config, error) {
	return parse(env.Options{Environment: environ})
}

func parse(opts env.Options) (*Config, error) {
	cfg, err := env.ParseAsWithOptions[Config](opts)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidRequest, "failed to parse configuration", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	slog.Debug("configuration loaded",
		"schema_dir", cfg.SchemaDir,
		"highlight_color", cfg.HighlightColor,
		"sheet", cfg.SheetName,
		"comments", cfg.CellComments,
		"log_level", cfg.LogLevel)
	return &cfg, nil
}

// Validate checks that every setting has a usable value.
func (c *Config) Validate() error {
	if !hexColor.MatchString(strings.TrimSpace(c.HighlightColor)) {
		return errors.NewWithContext(errors.ErrCodeInvalidRequest,
			fmt.Sprintf("invalid highlight color %q", c.HighlightColor),
			map[string]any{"env": "IODP_HIGHLIGHT_COLOR"})
	}
	if strings.TrimSpace(c.SheetName) == "" {
		return errors.NewWithContext(errors.ErrCodeInvalidRequest,
			"sheet name cannot be empty", map[string]any{"env": "IODP_SHEET_NAME"})
	}
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return errors.NewWithContext(errors.ErrCodeInvalidRequest,
			fmt.Sprintf("invalid log level %q", c.LogLevel),
			map[string]any{"env": logging.EnvLogLevel})
	}
	return nil
}

// Level returns the configured slog level.
func (c *Config) Level() slog.Level {
	return logging.ParseLogLevel(c.LogLevel)
}

// CatalogOptions returns the catalog options implied by the configuration.
func (c *Config) CatalogOptions() []catalog.Option {
	var opts []catalog.Option
	if dir := strings.TrimSpace(c.SchemaDir); dir != "" {
		opts = append(opts, catalog.WithDataDir(dir))
	}
	return opts
}

// HighlightOptions returns the highlight options implied by the configuration.
func (c *Config) HighlightOptions() []highlight.Option {
	return []highlight.Option{
		highlight.WithColor(c.HighlightColor),
		highlight.WithSheetName(c.SheetName),
		highlight.WithComments(c.CellComments),
	}
}
