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

package defaults

// API metadata stamped on serialized objects.
const (
	// APIVersion is the API version of catalog files and validation reports.
	APIVersion = "lore.iodp.tamu.edu/v1alpha1"
)

// Spreadsheet export defaults.
const (
	// HighlightColor is the RGB hex fill applied to cells with violations.
	HighlightColor = "FF0000"

	// SheetName is the worksheet name used for exported tables.
	SheetName = "Sheet1"

	// CellComments controls whether marked cells carry a comment listing
	// the failed checks.
	CellComments = true

	// CommentAuthor is the author recorded on cell comments.
	CommentAuthor = "iodptools"
)

// Catalog data limits.
const (
	// MaxDataFileSize is the maximum size of an external catalog file (10MB).
	MaxDataFileSize = 10 * 1024 * 1024

	// BaseSchemaFile is the catalog file holding the shared base schema.
	BaseSchemaFile = "base.yaml"
)

// nullTokens are raw cell spellings treated as missing values.
var nullTokens = []string{"", "NaN", "nan", "NA", "N/A", "null", "NULL", "None", "<NA>"}

// NullTokens returns the raw cell spellings treated as missing values.
func NullTokens() []string {
	out := make([]string, len(nullTokens))
	copy(out, nullTokens)
	return out
}
