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

package schema

// SemanticType is the expected type of the values in a column.
type SemanticType string

const (
	// TypeText holds free text. Coercion always succeeds.
	TypeText SemanticType = "text"

	// TypeInteger holds whole numbers.
	TypeInteger SemanticType = "integer"

	// TypeDecimal holds floating point numbers.
	TypeDecimal SemanticType = "decimal"

	// TypeCategorical holds one of a fixed set of labels.
	TypeCategorical SemanticType = "categorical"
)

// String returns the type name.
func (t SemanticType) String() string {
	return string(t)
}

// IsValid reports whether t is a known semantic type.
func (t SemanticType) IsValid() bool {
	switch t {
	case TypeText, TypeInteger, TypeDecimal, TypeCategorical:
		return true
	default:
		return false
	}
}

// IsNumeric reports whether values of t are numbers.
func (t SemanticType) IsNumeric() bool {
	return t == TypeInteger || t == TypeDecimal
}

// SupportedTypes returns all semantic type names.
func SupportedTypes() []string {
	return []string{
		string(TypeText),
		string(TypeInteger),
		string(TypeDecimal),
		string(TypeCategorical),
	}
}

// CheckKind identifies a value predicate.
type CheckKind string

const (
	// CheckInRange requires Min <= v <= Max.
	CheckInRange CheckKind = "in_range"

	// CheckGT requires v > Value.
	CheckGT CheckKind = "gt"

	// CheckGE requires v >= Value.
	CheckGE CheckKind = "ge"

	// CheckLT requires v < Value.
	CheckLT CheckKind = "lt"

	// CheckLE requires v <= Value.
	CheckLE CheckKind = "le"

	// CheckEQ requires v == Value.
	CheckEQ CheckKind = "eq"

	// CheckNE requires v != Value.
	CheckNE CheckKind = "ne"

	// CheckIsIn requires v to be one of Values.
	CheckIsIn CheckKind = "isin"

	// CheckNotIn requires v to be none of Values.
	CheckNotIn CheckKind = "notin"

	// CheckStrMatches requires v to match Pattern from its first character.
	CheckStrMatches CheckKind = "str_matches"
)

// Reason groups check kinds into the predicate families reported on violations.
type Reason string

const (
	// ReasonRange is reported by in_range checks.
	ReasonRange Reason = "range"

	// ReasonComparison is reported by gt, ge, lt, le, eq and ne checks.
	ReasonComparison Reason = "comparison"

	// ReasonSetMembership is reported by isin and notin checks.
	ReasonSetMembership Reason = "set_membership"

	// ReasonPattern is reported by str_matches checks.
	ReasonPattern Reason = "pattern"
)

// Reason returns the predicate family of the check kind.
func (k CheckKind) Reason() Reason {
	switch k {
	case CheckInRange:
		return ReasonRange
	case CheckIsIn, CheckNotIn:
		return ReasonSetMembership
	case CheckStrMatches:
		return ReasonPattern
	default:
		return ReasonComparison
	}
}

// IsValid reports whether k is a known check kind.
func (k CheckKind) IsValid() bool {
	switch k {
	case CheckInRange, CheckGT, CheckGE, CheckLT, CheckLE, CheckEQ, CheckNE,
		CheckIsIn, CheckNotIn, CheckStrMatches:
		return true
	default:
		return false
	}
}

// numeric reports whether the check compares numbers.
func (k CheckKind) numeric() bool {
	switch k {
	case CheckInRange, CheckGT, CheckGE, CheckLT, CheckLE, CheckEQ, CheckNE:
		return true
	default:
		return false
	}
}
