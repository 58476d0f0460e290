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

// Package schema defines column constraints and the schemas composed from them.
//
// # Overview
//
// A Schema is an ordered set of ColumnConstraint values keyed by column name
// or column name pattern. Report schemas are derived from a shared base
// schema with Extend, which adds report specific columns and refuses to let
// an addition silently shadow a base column.
//
// # Column Constraints
//
// Each constraint names its column either exactly or, when Regex is set, by a
// pattern matched against the start of live column names, so "Depth .+"
// covers "Depth CSF-A (m)" and "Depth CCSF (m)" alike. A constraint carries:
//
//   - Type: text, integer, decimal or categorical
//   - Checks: value predicates (in_range, gt, ge, lt, le, eq, ne, isin,
//     notin, str_matches)
//   - Nullable: whether empty cells are allowed; a nullable constraint is
//     also optional, it may match no column at all
//   - Coerce: whether raw cells are converted to Type before checking
//
// # Check Semantics
//
//   - in_range is inclusive on both ends
//   - str_matches is anchored at the start of the value only
//   - isin/notin compare numbers numerically for integer and decimal columns
//     and text exactly otherwise
//
// # Usage
//
//	base, err := schema.NewSchema("base", []schema.ColumnConstraint{
//	    {Key: "Core", Type: schema.TypeInteger, Coerce: true},
//	})
//	mad, err := schema.Extend(base, "MAD", []schema.ColumnConstraint{
//	    {Key: "Porosity (vol%)", Type: schema.TypeDecimal, Coerce: true,
//	        Checks: []schema.Check{schema.InRange(0, 100)}},
//	})
//
// Schemas are immutable once built and safe for concurrent use.
package schema
