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
	"bytes"
	"fmt"
	"log/slog"
	"path"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/text/cases"
	"gopkg.in/yaml.v3"

	"github.com/vpercuoco/iodptools/pkg/defaults"
	"github.com/vpercuoco/iodptools/pkg/errors"
	"github.com/vpercuoco/iodptools/pkg/header"
	"github.com/vpercuoco/iodptools/pkg/schema"
)

// Global catalog instance, built once from embedded data.
var (
	defaultCatalogOnce sync.Once
	cachedCatalog      *Catalog
	cachedCatalogErr   error
)

// Catalog holds the base schema and every registered report schema.
// A Catalog is immutable once built and safe for concurrent use.
type Catalog struct {
	base    *schema.Schema
	reports map[string]entry
	names   []string
}

type entry struct {
	schema *schema.Schema
	info   ReportInfo
}

// Option configures catalog construction.
type Option func(*options)

type options struct {
	provider      DataProvider
	dataDir       string
	maxFileSize   int64
	allowSymlinks bool
}

// WithDataProvider sets the provider catalog files are read from.
func WithDataProvider(p DataProvider) Option {
	return func(o *options) {
		o.provider = p
	}
}

// WithDataDir layers an external directory over the embedded data.
func WithDataDir(dir string) Option {
	return func(o *options) {
		o.dataDir = dir
	}
}

// WithMaxFileSize limits the size of external data files.
func WithMaxFileSize(n int64) Option {
	return func(o *options) {
		o.maxFileSize = n
	}
}

// WithAllowSymlinks permits symlinks in the external data directory.
func WithAllowSymlinks(allow bool) Option {
	return func(o *options) {
		o.allowSymlinks = allow
	}
}

// Default returns the process-wide catalog built from embedded data.
// The catalog is built on first use and cached; later calls return the same instance.
func Default() (*Catalog, error) {
	loaded := false
	defaultCatalogOnce.Do(func() {
		loaded = true
		catalogCacheMisses.Inc()
		cachedCatalog, cachedCatalogErr = New()
	})

	if !loaded && cachedCatalogErr == nil {
		catalogCacheHits.Inc()
	}
	if cachedCatalogErr != nil {
		return nil, cachedCatalogErr
	}
	if cachedCatalog == nil {
		return nil, errors.New(errors.ErrCodeInternal, "schema catalog not initialized")
	}
	return cachedCatalog, nil
}

// New builds a catalog from the configured data provider (embedded data by default).
// Any malformed file, duplicate report name or duplicate column key is fatal.
func New(opts ...Option) (*Catalog, error) {
	start := time.Now()
	defer func() {
		catalogBuildDuration.Observe(time.Since(start).Seconds())
	}()

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	provider := o.provider
	if provider == nil {
		provider = DefaultDataProvider()
	}
	if o.dataDir != "" {
		layered, err := NewLayeredDataProvider(provider, LayeredProviderConfig{
			ExternalDir:   o.dataDir,
			MaxFileSize:   o.maxFileSize,
			AllowSymlinks: o.allowSymlinks,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to layer data directory: %w", err)
		}
		provider = layered
	}

	base, err := loadBase(provider)
	if err != nil {
		return nil, err
	}

	files, err := provider.Files()
	if err != nil {
		return nil, err
	}

	c := &Catalog{
		base:    base,
		reports: make(map[string]entry),
	}
	for _, file := range files {
		if file == defaults.BaseSchemaFile {
			continue
		}
		if err := c.loadReports(provider, file); err != nil {
			return nil, err
		}
	}
	sort.Strings(c.names)

	slog.Debug("schema catalog built",
		"base_columns", base.Len(),
		"reports", len(c.names),
		"files", len(files),
		"duration", time.Since(start))

	return c, nil
}

func loadBase(p DataProvider) (*schema.Schema, error) {
	content, err := p.ReadFile(defaults.BaseSchemaFile)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal,
			fmt.Sprintf("%s not found", defaults.BaseSchemaFile), err)
	}

	var doc BaseFile
	if err := decode(content, &doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidRequest,
			fmt.Sprintf("failed to parse %s", defaults.BaseSchemaFile), err)
	}
	if err := checkHeader(defaults.BaseSchemaFile, doc.Header, header.KindBaseSchema); err != nil {
		return nil, err
	}

	name := doc.Name()
	if name == "" {
		name = "base"
	}
	base, err := schema.NewSchema(name, doc.Columns, schema.WithDescription(doc.Metadata[header.MetadataDescription]))
	if err != nil {
		return nil, fmt.Errorf("failed to build base schema: %w", err)
	}
	slog.Debug("loaded base schema", "source", p.Source(defaults.BaseSchemaFile), "columns", base.Len())
	return base, nil
}

func (c *Catalog) loadReports(p DataProvider, file string) error {
	content, err := p.ReadFile(file)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, fmt.Sprintf("failed to read %s", file), err)
	}

	var doc ReportFile
	if err := decode(content, &doc); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidRequest, fmt.Sprintf("failed to parse %s", file), err)
	}
	if err := checkHeader(file, doc.Header, header.KindReportCatalog); err != nil {
		return err
	}

	category := doc.Name()
	if category == "" {
		category = strings.TrimSuffix(path.Base(file), path.Ext(file))
	}
	source := p.Source(file)

	for _, def := range doc.Reports {
		name := strings.TrimSpace(def.Name)
		if name == "" {
			return errors.NewWithContext(errors.ErrCodeInvalidRequest,
				fmt.Sprintf("%s: report without a name", file),
				map[string]any{"file": file})
		}

		key := fold(name)
		if prev, dup := c.reports[key]; dup {
			return errors.NewWithContext(errors.ErrCodeDuplicateKey,
				fmt.Sprintf("report type %q defined twice", name),
				map[string]any{"report": name, "file": file, "previous": prev.info.Category})
		}

		s, err := schema.Extend(c.base, name, def.Columns, schema.WithDescription(def.Description))
		if err != nil {
			return fmt.Errorf("failed to build report %s from %s: %w", name, file, err)
		}

		c.reports[key] = entry{
			schema: s,
			info: ReportInfo{
				Name:        name,
				Category:    category,
				Description: def.Description,
				Source:      source,
				Columns:     len(def.Columns),
			},
		}
		c.names = append(c.names, name)
	}

	slog.Debug("loaded report catalog file",
		"file", file,
		"source", source,
		"category", category,
		"reports", len(doc.Reports))
	return nil
}

// decode parses a single YAML document, rejecting unknown fields.
func decode(content []byte, v any) error {
	dec := yaml.NewDecoder(bytes.NewReader(content))
	dec.KnownFields(true)
	return dec.Decode(v)
}

func checkHeader(file string, h header.Header, want header.Kind) error {
	if h.Kind != want {
		return errors.NewWithContext(errors.ErrCodeInvalidRequest,
			fmt.Sprintf("%s: unexpected kind %q, want %q", file, h.Kind, want),
			map[string]any{"file": file, "kind": h.Kind.String()})
	}
	if h.APIVersion != defaults.APIVersion {
		return errors.NewWithContext(errors.ErrCodeInvalidRequest,
			fmt.Sprintf("%s: unsupported apiVersion %q", file, h.APIVersion),
			map[string]any{"file": file, "apiVersion": h.APIVersion})
	}
	return nil
}

// fold returns the case-folded lookup key of a report type name.
// A Caser holds state, so a new one is created per call.
func fold(name string) string {
	return cases.Fold().String(strings.TrimSpace(name))
}

// BaseSchema returns the schema shared by every report type.
func (c *Catalog) BaseSchema() *schema.Schema {
	return c.base
}

// SchemaFor returns the schema registered for reportType.
// Lookup ignores case, so "mad" and "MAD" resolve to the same schema.
func (c *Catalog) SchemaFor(reportType string) (*schema.Schema, error) {
	e, ok := c.reports[fold(reportType)]
	if !ok {
		schemaLookups.WithLabelValues("unknown").Inc()
		return nil, errors.NewWithContext(errors.ErrCodeUnknownReportType,
			fmt.Sprintf("unknown report type %q", reportType),
			map[string]any{"reportType": reportType, "supported": c.ReportTypes()})
	}
	schemaLookups.WithLabelValues("found").Inc()
	return e.schema, nil
}

// ReportTypes returns the canonical names of all registered report types, sorted.
func (c *Catalog) ReportTypes() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// Describe returns catalog information about a report type.
func (c *Catalog) Describe(reportType string) (ReportInfo, error) {
	e, ok := c.reports[fold(reportType)]
	if !ok {
		return ReportInfo{}, errors.NewWithContext(errors.ErrCodeUnknownReportType,
			fmt.Sprintf("unknown report type %q", reportType),
			map[string]any{"reportType": reportType, "supported": c.ReportTypes()})
	}
	return e.info, nil
}
