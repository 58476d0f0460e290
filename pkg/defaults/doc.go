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

// Package defaults provides centralized configuration constants for iodptools.
//
// This package defines the API version stamped on reports, the highlight
// styling used by spreadsheet export, catalog data limits, and the null
// tokens recognized in raw table cells. Centralizing these values keeps the
// catalog, validator, highlight and config packages consistent.
//
// # Usage
//
//	import "github.com/vpercuoco/iodptools/pkg/defaults"
//
//	a, err := highlight.Highlight(tbl, violations, highlight.WithColor(defaults.HighlightColor))
package defaults
