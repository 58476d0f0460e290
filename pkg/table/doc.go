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

// Package table provides the in-memory tabular structure validated against
// report schemas.
//
// A Table is an ordered list of named columns and rows of raw string cells,
// exactly as a lab export delivers them. Loading tables from CSV or Excel
// files is the caller's concern; this package only holds and indexes them.
//
// Column names are trimmed and normalized to Unicode NFC on construction so
// that headers such as "Bulk density (g/cm³)" compare equal regardless of how
// the exporting tool composed the superscript. Row indices are 0-based.
//
// Tables are never modified by the validator or the highlighter.
package table
