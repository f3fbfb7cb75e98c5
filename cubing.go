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

import (
	"errors"
	"fmt"

	"github.com/go-tabular/cubing/frame"
	"github.com/go-tabular/cubing/logger"
)

var (
	// ErrOverlappingColumns reports a column named in more than one of the
	// plain, cube and rollup groups, or twice within one group.
	ErrOverlappingColumns = errors.New("overlapping grouping columns")
	// ErrInvalidAggregation reports an aggregation argument that is neither
	// a single reduction name nor a column-to-reduction mapping.
	ErrInvalidAggregation = errors.New("invalid aggregation specification")
)

// GroupBy aggregates f over every grouping set implied by the three column
// roles and unions the results into one table.
//
// plainCols are grouped in every set. cubeCols contribute every subset
// (CUBE), rollupCols every prefix (ROLLUP); one aggregation pass runs per
// cube-subset x rollup-prefix pair. Grouping columns absent from a pass's
// set are folded: they appear in that pass's rows holding the fill
// sentinel, null by default. Column arguments accept nil, a single name or
// a list of names.
//
// The result carries the grouping columns (plain, cube, rollup, in declared
// order) followed by the value columns, sorted ascending by the grouping
// columns with null sentinels last. With asIndex the grouping columns
// become the table's composite row key.
//
// A fully folded row is the grand aggregate of the whole table. Within one
// grouping set, rows with a null in any of the set's key columns belong to
// no group and contribute only to coarser sets.
func GroupBy(f *frame.Frame, plainCols, cubeCols, rollupCols interface{}, agg AggSpec, fill FillSpec, asIndex bool) (*frame.Frame, error) {
	plain := NormalizeColumns(plainCols)
	cube := NormalizeColumns(cubeCols)
	rollup := NormalizeColumns(rollupCols)

	if !DisjointColumns(plain, cube, rollup) {
		return nil, fmt.Errorf("%w: plain=%v cube=%v rollup=%v", ErrOverlappingColumns, plain, cube, rollup)
	}

	groupCols := make([]string, 0, len(plain)+len(cube)+len(rollup))
	groupCols = append(groupCols, plain...)
	groupCols = append(groupCols, cube...)
	groupCols = append(groupCols, rollup...)
	for _, col := range groupCols {
		if !f.HasColumn(col) {
			return nil, fmt.Errorf("unknown column %q", col)
		}
	}

	fields, err := agg.resolve(f, groupCols)
	if err != nil {
		return nil, err
	}

	resultCols := append([]string(nil), groupCols...)
	for _, field := range fields {
		resultCols = append(resultCols, field.Column)
	}

	cubeCombs := CubeCombinations(cube)
	rollupCombs := RollupCombinations(rollup)
	logger.Debug("cubing: %d grouping sets over %d rows", len(cubeCombs)*len(rollupCombs), f.Len())

	var parts []*frame.Frame
	for _, cubeComb := range cubeCombs {
		for _, rollupComb := range rollupCombs {
			set := make([]string, 0, len(plain)+len(cubeComb)+len(rollupComb))
			set = append(set, plain...)
			set = append(set, cubeComb...)
			set = append(set, rollupComb...)

			var part *frame.Frame
			if len(set) == 0 {
				part, err = f.AggregateAll(fields)
			} else {
				part, err = f.GroupBy(set...).Agg(fields)
			}
			if err != nil {
				return nil, err
			}

			for _, folded := range foldedColumns(groupCols, set) {
				part, err = part.WithConstant(folded, fill.valueFor(folded), f.Type(folded))
				if err != nil {
					return nil, err
				}
			}

			part, err = part.Select(resultCols...)
			if err != nil {
				return nil, err
			}
			parts = append(parts, part)
		}
	}

	result, err := frame.Concat(parts...)
	if err != nil {
		return nil, err
	}
	result.SortBy(groupCols...)

	if asIndex && len(groupCols) > 0 {
		if err := result.SetIndex(groupCols...); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// foldedColumns returns the declared grouping columns missing from set,
// in declared order.
func foldedColumns(groupCols, set []string) []string {
	inSet := make(map[string]bool, len(set))
	for _, col := range set {
		inSet[col] = true
	}
	var folded []string
	for _, col := range groupCols {
		if !inSet[col] {
			folded = append(folded, col)
		}
	}
	return folded
}
