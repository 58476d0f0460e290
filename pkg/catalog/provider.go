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

package catalog

import (
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vpercuoco/iodptools/pkg/defaults"
	"github.com/vpercuoco/iodptools/pkg/errors"
)

//go:embed data/*.yaml
var dataFS embed.FS

const (
	// sourceEmbedded is the source name for embedded files.
	sourceEmbedded = "embedded"

	// sourceExternal is the source name for external files.
	sourceExternal = "external"
)

// DataProvider abstracts access to catalog data files.
// This allows layering external directories over embedded data.
type DataProvider interface {
	// ReadFile reads a file by path (relative to the data directory).
	ReadFile(path string) ([]byte, error)

	// Files returns the relative paths of all YAML data files, sorted.
	Files() ([]string, error)

	// Source returns a description of where a file came from.
	Source(path string) string
}

// EmbeddedDataProvider wraps an embed.FS to implement DataProvider.
type EmbeddedDataProvider struct {
	fs     fs.FS
	prefix string
}

// NewEmbeddedDataProvider creates a provider from an embedded filesystem.
func NewEmbeddedDataProvider(efs fs.FS, prefix string) *EmbeddedDataProvider {
	return &EmbeddedDataProvider{
		fs:     efs,
		prefix: prefix,
	}
}

// DefaultDataProvider returns a provider over the data compiled into the binary.
func DefaultDataProvider() *EmbeddedDataProvider {
	return NewEmbeddedDataProvider(dataFS, "data")
}

// ReadFile reads a file from the embedded filesystem.
func (p *EmbeddedDataProvider) ReadFile(path string) ([]byte, error) {
	fullPath := p.prefix + "/" + path
	slog.Debug("reading file from embedded provider", "path", path, "fullPath", fullPath)
	return fs.ReadFile(p.fs, fullPath)
}

// Files lists the YAML files of the embedded filesystem.
func (p *EmbeddedDataProvider) Files() ([]string, error) {
	var files []string
	err := fs.WalkDir(p.fs, p.prefix, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isYAML(path) {
			return nil
		}
		files = append(files, strings.TrimPrefix(path, p.prefix+"/"))
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, "failed to walk embedded catalog data", err)
	}
	sort.Strings(files)
	return files, nil
}

// Source returns "embedded" for all paths.
func (p *EmbeddedDataProvider) Source(string) string {
	return sourceEmbedded
}

// LayeredProviderConfig configures the layered data provider.
type LayeredProviderConfig struct {
	// ExternalDir is the path to the external data directory.
	ExternalDir string

	// MaxFileSize is the maximum allowed file size in bytes (default: 10MB).
	MaxFileSize int64

	// AllowSymlinks allows symlinks in the external directory (default: false).
	AllowSymlinks bool
}

// LayeredDataProvider overlays an external directory on top of embedded data.
// An external file replaces the embedded file with the same relative path.
type LayeredDataProvider struct {
	embedded      DataProvider
	externalDir   string
	externalFiles map[string]bool
}

// NewLayeredDataProvider creates a provider that layers external data over embedded.
// Returns an error if:
// - External directory doesn't exist or is not a directory
// - Path traversal or a symlink (unless allowed) is detected
// - A file exceeds the size limit
func NewLayeredDataProvider(embedded DataProvider, config LayeredProviderConfig) (*LayeredDataProvider, error) {
	slog.Debug("creating layered data provider",
		"external_dir", config.ExternalDir,
		"max_file_size", config.MaxFileSize,
		"allow_symlinks", config.AllowSymlinks)

	if config.MaxFileSize == 0 {
		config.MaxFileSize = defaults.MaxDataFileSize
	}

	info, err := os.Stat(config.ExternalDir)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeNotFound,
			fmt.Sprintf("external data directory not found: %s", config.ExternalDir), err)
	}
	if !info.IsDir() {
		return nil, errors.New(errors.ErrCodeInvalidRequest,
			fmt.Sprintf("external data path is not a directory: %s", config.ExternalDir))
	}

	externalFiles := make(map[string]bool)
	err = filepath.WalkDir(config.ExternalDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		relPath, relErr := filepath.Rel(config.ExternalDir, path)
		if relErr != nil {
			return fmt.Errorf("failed to get relative path: %w", relErr)
		}
		if !filepath.IsLocal(relPath) {
			return errors.New(errors.ErrCodeInvalidRequest,
				fmt.Sprintf("path traversal detected: %s", relPath))
		}
		relPath = filepath.ToSlash(relPath)

		if !config.AllowSymlinks {
			info, lstatErr := os.Lstat(path)
			if lstatErr != nil {
				return fmt.Errorf("failed to stat file: %w", lstatErr)
			}
			if info.Mode()&os.ModeSymlink != 0 {
				return errors.New(errors.ErrCodeInvalidRequest,
					fmt.Sprintf("symlinks not allowed: %s", relPath))
			}
		}

		if !isYAML(relPath) {
			slog.Debug("ignoring non-YAML external file", "path", relPath)
			return nil
		}

		info, statErr := d.Info()
		if statErr != nil {
			return fmt.Errorf("failed to get file info: %w", statErr)
		}
		if info.Size() > config.MaxFileSize {
			return errors.New(errors.ErrCodeInvalidRequest,
				fmt.Sprintf("file too large (%d bytes, max %d): %s", info.Size(), config.MaxFileSize, relPath))
		}

		externalFiles[relPath] = true
		slog.Debug("discovered external file", "path", relPath, "size", info.Size())
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("layered data provider initialized",
		"external_dir", config.ExternalDir,
		"external_files", len(externalFiles))

	return &LayeredDataProvider{
		embedded:      embedded,
		externalDir:   config.ExternalDir,
		externalFiles: externalFiles,
	}, nil
}

// ReadFile reads a file, checking the external directory first.
func (p *LayeredDataProvider) ReadFile(path string) ([]byte, error) {
	if p.externalFiles[path] {
		data, err := os.ReadFile(filepath.Join(p.externalDir, filepath.FromSlash(path)))
		if err != nil {
			return nil, fmt.Errorf("failed to read external file %s: %w", path, err)
		}
		slog.Debug("read from external data directory", "path", path)
		return data, nil
	}
	slog.Debug("falling back to embedded data", "path", path)
	return p.embedded.ReadFile(path)
}

// Files returns the union of embedded and external files.
func (p *LayeredDataProvider) Files() ([]string, error) {
	embedded, err := p.embedded.Files()
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(embedded)+len(p.externalFiles))
	files := make([]string, 0, len(embedded)+len(p.externalFiles))
	for _, f := range embedded {
		seen[f] = true
		files = append(files, f)
	}
	for f := range p.externalFiles {
		if !seen[f] {
			files = append(files, f)
		}
	}
	sort.Strings(files)
	return files, nil
}

// Source returns "external" or "embedded" depending on where the file comes from.
func (p *LayeredDataProvider) Source(path string) string {
	if p.externalFiles[path] {
		return sourceExternal
	}
	return p.embedded.Source(path)
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
