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
	"github.com/vpercuoco/iodptools/pkg/header"
	"github.com/vpercuoco/iodptools/pkg/schema"
)

// BaseFile is the document stored in base.yaml.
type BaseFile struct {
	header.Header `json:",inline" yaml:",inline"`

	Columns []schema.ColumnConstraint `json:"columns" yaml:"columns"`
}

// ReportFile is a report category document.
type ReportFile struct {
	header.Header `json:",inline" yaml:",inline"`

	Reports []ReportDefinition `json:"reports" yaml:"reports"`
}

// ReportDefinition lists the columns a report type adds to the base schema.
type ReportDefinition struct {
	Name        string                    `json:"name" yaml:"name"`
	Description string                    `json:"description,omitempty" yaml:"description,omitempty"`
	Columns     []schema.ColumnConstraint `json:"columns" yaml:"columns"`
}

// ReportInfo describes a registered report type.
type ReportInfo struct {
	// Name is the canonical report type name, e.g. "SRM-SECT".
	Name string `json:"name" yaml:"name"`

	// Category is the name of the catalog file that defines the report.
	Category string `json:"category" yaml:"category"`

	// Description is a short human readable summary.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Source is "embedded" or "external".
	Source string `json:"source" yaml:"source"`

	// Columns is the number of constraints the report adds to the base.
	Columns int `json:"columns" yaml:"columns"`
}
