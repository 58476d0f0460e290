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

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/vpercuoco/iodptools/pkg/errors"
)

// Value is a raw cell converted to a semantic type.
type Value struct {
	// Type is the semantic type the cell was converted to.
	Type SemanticType

	// Text is the trimmed raw cell.
	Text string

	// Number holds the numeric value for integer and decimal types.
	Number float64
}

// String returns the trimmed text of the value.
func (v Value) String() string {
	return v.Text
}

// maxInt64Float is 2^63, the first float64 above the int64 range.
const maxInt64Float = 1 << 63

// Coerce converts a raw cell to t.
// Integers accept integral decimal spellings such as "3.0" or "1e2" that fit
// in an int64.
// Decimals reject NaN and infinities. Text and categorical always succeed.
func Coerce(raw string, t SemanticType) (Value, error) {
	s := strings.TrimSpace(raw)
	v := Value{Type: t, Text: s}

	switch t {
	case TypeText, TypeCategorical:
		return v, nil

	case TypeInteger:
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			v.Number = float64(i)
			return v, nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) ||
			f < math.MinInt64 || f >= maxInt64Float {
			return v, errors.NewWithContext(errors.ErrCodeInvalidRequest,
				fmt.Sprintf("cannot convert %q to integer", s),
				map[string]any{"value": s, "type": t})
		}
		v.Number = f
		return v, nil

	case TypeDecimal:
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return v, errors.NewWithContext(errors.ErrCodeInvalidRequest,
				fmt.Sprintf("cannot convert %q to decimal", s),
				map[string]any{"value": s, "type": t})
		}
		v.Number = f
		return v, nil

	default:
		return v, errors.NewWithContext(errors.ErrCodeInvalidRequest,
			"unknown semantic type", map[string]any{"type": t})
	}
}
