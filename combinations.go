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

package cubing

import "github.com/spf13/cast"

// NormalizeColumns coerces a column argument to an ordered list of names.
// Accepted shapes: nil (empty list), a single string, []string, or a slice
// of values cast to their string form.
func NormalizeColumns(spec interface{}) []string {
	switch v := spec.(type) {
	case nil:
		return []string{}
	case string:
		return []string{v}
	case []string:
		return append([]string(nil), v...)
	case []interface{}:
		cols := make([]string, len(v))
		for i, e := range v {
			cols[i] = cast.ToString(e)
		}
		return cols
	default:
		return []string{cast.ToString(v)}
	}
}

// DisjointColumns reports whether the three column groups are pairwise
// disjoint. A name repeated inside a single group also counts as an
// overlap.
func DisjointColumns(plain, cube, rollup []string) bool {
	seen := make(map[string]bool)
	for _, group := range [][]string{plain, cube, rollup} {
		for _, col := range group {
			if seen[col] {
				return false
			}
			seen[col] = true
		}
	}
	return true
}

// CubeCombinations enumerates every subset of cols: first the empty subset,
// then all subsets of size 1, 2, ... up to the full set. Elements keep
// their original relative order within each subset. 2^n subsets in total.
func CubeCombinations(cols []string) [][]string {
	var res [][]string
	for k := 0; k <= len(cols); k++ {
		res = append(res, combinations(cols, k)...)
	}
	return res
}

// RollupCombinations enumerates the n+1 prefixes of cols, from the empty
// prefix to the full list, modeling hierarchical drill-down.
func RollupCombinations(cols []string) [][]string {
	res := make([][]string, 0, len(cols)+1)
	for i := 0; i <= len(cols); i++ {
		res = append(res, append([]string{}, cols[:i]...))
	}
	return res
}

func combinations(cols []string, k int) [][]string {
	if k == 0 {
		return [][]string{{}}
	}
	var res [][]string
	for i := 0; i+k <= len(cols); i++ {
		for _, tail := range combinations(cols[i+1:], k-1) {
			comb := make([]string, 0, k)
			comb = append(comb, cols[i])
			comb = append(comb, tail...)
			res = append(res, comb)
		}
	}
	return res
}
