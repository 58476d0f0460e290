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
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestKind_IsValid(t *testing.T) {
	tests := []struct {
		kind Kind
		want bool
	}{
		{KindBaseSchema, true},
		{KindReportCatalog, true},
		{KindValidationReport, true},
		{Kind("Recipe"), false},
		{Kind(""), false},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			if got := tt.kind.IsValid(); got != tt.want {
				t.Errorf("IsValid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNew(t *testing.T) {
	h := New(
		WithKind(KindReportCatalog),
		WithAPIVersion("v1"),
		WithMetadata(MetadataName, "xray"),
	)
	if h.Kind != KindReportCatalog {
		t.Errorf("Kind = %q", h.Kind)
	}
	if h.APIVersion != "v1" {
		t.Errorf("APIVersion = %q", h.APIVersion)
	}
	if h.Name() != "xray" {
		t.Errorf("Name() = %q", h.Name())
	}
}

func TestInit(t *testing.T) {
	h := New(WithMetadata("stale", "x"))
	h.Init(KindValidationReport, "v1", "v0.1.0")

	if h.Kind != KindValidationReport {
		t.Errorf("Kind = %q", h.Kind)
	}
	if _, ok := h.Metadata["stale"]; ok {
		t.Error("Init() kept stale metadata")
	}
	if _, err := time.Parse(time.RFC3339, h.Metadata[MetadataTimestamp]); err != nil {
		t.Errorf("timestamp %q: %v", h.Metadata[MetadataTimestamp], err)
	}
	if _, err := uuid.Parse(h.Metadata[MetadataRunID]); err != nil {
		t.Errorf("runId %q: %v", h.Metadata[MetadataRunID], err)
	}
	if h.Metadata[MetadataVersion] != "v0.1.0" {
		t.Errorf("version = %q", h.Metadata[MetadataVersion])
	}

	other := &Header{}
	other.Init(KindValidationReport, "v1", "")
	if _, ok := other.Metadata[MetadataVersion]; ok {
		t.Error("Init() set empty version")
	}
	if other.Metadata[MetadataRunID] == h.Metadata[MetadataRunID] {
		t.Error("Init() reused run id")
	}
}
