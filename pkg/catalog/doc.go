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

// Package catalog provides the schema catalog for LORE report types.
//
// # Overview
//
// The catalog holds one base schema, shared by every report type, and one
// derived schema per registered report type. Schema definitions are data,
// not code: they are embedded YAML files under data/, one file per report
// category, plus data/base.yaml for the base schema.
//
// # Data Files
//
// base.yaml:
//
//	apiVersion: lore.iodp.tamu.edu/v1alpha1
//	kind: BaseSchema
//	metadata:
//	  name: base
//	columns:
//	  - key: Core
//	    type: integer
//	    coerce: true
//
// Category files list report definitions whose columns extend the base:
//
//	apiVersion: lore.iodp.tamu.edu/v1alpha1
//	kind: ReportCatalog
//	metadata:
//	  name: physprops
//	reports:
//	  - name: GRA
//	    columns:
//	      - {key: Bulk density (GRA), type: decimal, coerce: true, checks: [{kind: gt, value: 0}]}
//
// YAML anchors and aliases share column blocks between near-identical
// reports such as SRM-SECT and SRM-DISC.
//
// # Usage
//
//	cat, err := catalog.Default()
//	if err != nil {
//	    return err
//	}
//	s, err := cat.SchemaFor("MAD")
//
// Report type lookup is case-insensitive. An unregistered name fails with
// errors.ErrCodeUnknownReportType. Any duplicate column key met while the
// catalog is built fails with errors.ErrCodeDuplicateKey.
//
// # External Data
//
// An external directory can be layered over the embedded data with
// WithDataDir. A file in the external directory replaces the embedded file
// with the same path; new files add report categories.
package catalog
