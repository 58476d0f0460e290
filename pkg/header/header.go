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

package header

import (
	"time"

	"github.com/google/uuid"
)

// Kind represents the type of a catalog document or tool output.
type Kind string

// Valid Kind constants for all resource types.
const (
	KindBaseSchema       Kind = "BaseSchema"
	KindReportCatalog    Kind = "ReportCatalog"
	KindValidationReport Kind = "ValidationReport"
)

// Metadata keys set by Init.
const (
	MetadataName        = "name"
	MetadataDescription = "description"
	MetadataTimestamp   = "timestamp"
	MetadataVersion     = "version"
	MetadataRunID       = "runId"
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	return string(k)
}

// IsValid checks if the Kind is one of the recognized kinds.
func (k *Kind) IsValid() bool {
	switch *k {
	case KindBaseSchema, KindReportCatalog, KindValidationReport:
		return true
	default:
		return false
	}
}

// Option is a functional option for configuring Header instances.
type Option func(*Header)

// WithMetadata returns an Option that adds a metadata key-value pair to the Header.
// If the Metadata map is nil, it will be initialized.
func WithMetadata(key, value string) Option {
	return func(h *Header) {
		if h.Metadata == nil {
			h.Metadata = make(map[string]string)
		}
		h.Metadata[key] = value
	}
}

// WithKind returns an Option that sets the Kind field of the Header.
func WithKind(kind Kind) Option {
	return func(h *Header) {
		h.Kind = kind
	}
}

// WithAPIVersion returns an Option that sets the APIVersion field of the Header.
func WithAPIVersion(version string) Option {
	return func(h *Header) {
		h.APIVersion = version
	}
}

// New creates a new Header instance with the provided functional options.
// The Metadata map is initialized automatically.
func New(opts ...Option) *Header {
	s := &Header{
		Metadata: make(map[string]string),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Header carries the kind, API version and metadata of catalog files and reports.
type Header struct {
	// Kind is the type of the document.
	Kind Kind `json:"kind,omitempty" yaml:"kind,omitempty"`

	// APIVersion is the schema version of the document.
	APIVersion string `json:"apiVersion,omitempty" yaml:"apiVersion,omitempty"`

	// Metadata contains key-value pairs such as name, timestamp and run id.
	Metadata map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// Name returns the "name" metadata entry.
func (h *Header) Name() string {
	return h.Metadata[MetadataName]
}

// Init initializes the Header with the specified kind, apiVersion, and version.
// Metadata is reset to a UTC RFC3339 timestamp, a fresh run id, and the
// version when it is not empty.
func (h *Header) Init(kind Kind, apiVersion string, version string) {
	h.Kind = kind
	h.APIVersion = apiVersion
	h.Metadata = make(map[string]string)

	h.Metadata[MetadataTimestamp] = time.Now().UTC().Format(time.RFC3339)
	h.Metadata[MetadataRunID] = uuid.NewString()
	if version != "" {
		h.Metadata[MetadataVersion] = version
	}
}
