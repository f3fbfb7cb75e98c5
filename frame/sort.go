/*
 * Copyright 2025 The Tabular Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package frame

import (
	"sort"
	"strings"

	"github.com/spf13/cast"
)

// Compare orders two cell values ascending. nil sorts after every real
// value. Values that both read as numbers compare numerically, otherwise
// by their string form.
func Compare(a, b interface{}) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	}

	af, aerr := cast.ToFloat64E(a)
	bf, berr := cast.ToFloat64E(b)
	if aerr == nil && berr == nil {
		switch {
		case af < bf:
			return -1
		case af > bf:
			return 1
		default:
			return 0
		}
	}

	return strings.Compare(cast.ToString(a), cast.ToString(b))
}

// SortBy sorts the rows in place, ascending by each of cols in turn.
// Unknown columns read as nil and are therefore neutral. The sort is
// stable. Returns the frame for chaining.
func (f *Frame) SortBy(cols ...string) *Frame {
	if len(cols) == 0 {
		return f
	}
	sort.SliceStable(f.rows, func(i, j int) bool {
		for _, col := range cols {
			if c := Compare(f.rows[i][col], f.rows[j][col]); c != 0 {
				return c < 0
			}
		}
		return false
	})
	return f
}
