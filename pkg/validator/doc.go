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

// Package validator checks in-memory report tables against column schemas.
//
// # Overview
//
// Validation runs in two phases. First every constraint of the schema is
// resolved to the live columns it applies to: an exact key matches at most
// one column, a regex key matches every column whose name it matches from
// the start. Then each resolved (constraint, column) pair is checked row by
// row. Every constraint is evaluated against every row before Validate
// returns, so one call surfaces all problems.
//
// # Failure Kinds
//
//   - missing_column: a required constraint matched no column (table context)
//   - wrong_dtype: a column that is not coerced holds values of another type (table context)
//   - type_coercion: a cell could not be converted to the expected type
//   - not_nullable: a required cell is empty
//   - range, set_membership, pattern, comparison: a value check failed
//
// Cells that fail conversion are not checked further. Table context
// violations carry row index -1 and are never highlighted.
//
// # Usage
//
//	cat, err := catalog.Default()
//	if err != nil {
//	    return err
//	}
//	s, err := cat.SchemaFor("MAD")
//	if err != nil {
//	    return err
//	}
//	report, err := validator.New(validator.WithVersion(version)).Validate(tbl, s)
//	if err != nil {
//	    return err
//	}
//	for _, v := range report.Violations {
//	    fmt.Println(v)
//	}
//
// The package level Validate returns just the violation list. It is empty,
// never nil, when the table is clean.
//
// # Error Handling
//
// Only a nil table, a nil schema or a table without columns is an error
// (errors.ErrCodeInvalidRequest). Everything else is reported as data.
package validator
