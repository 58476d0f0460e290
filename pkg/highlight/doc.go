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

// Package highlight marks the cells named by validation violations and
// exports the marked table as a styled spreadsheet.
//
// Only cell context violations are highlighted. A missing column or a
// column of the wrong type has no single cell to mark, so it is left out.
//
//	violations, err := validator.Validate(tbl, s)
//	if err != nil {
//	    return err
//	}
//	annotated, err := highlight.Highlight(tbl, violations, highlight.WithColor("FFFF00"))
//	if err != nil {
//	    return err
//	}
//	if err := highlight.Export(annotated, "MAD_errors.xlsx"); err != nil {
//	    return err
//	}
//
// Export writes Office Open XML workbooks only. CSV and other delimited
// formats cannot store cell fills and are rejected with
// errors.ErrCodeInvalidRequest.
package highlight
