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
	"fmt"

	"github.com/go-tabular/cubing/aggregator"
	"github.com/go-tabular/cubing/frame"
)

// Agg binds one value column to a reduction.
type Agg struct {
	Column    string
	Reduction aggregator.AggregateType
}

type aggKind int

const (
	aggInvalid aggKind = iota
	aggUniform
	aggPerColumn
)

// AggSpec describes how value columns are reduced: one reduction applied
// uniformly to every non-grouping column, or an explicit per-column list.
// The zero value is invalid and rejected by GroupBy.
type AggSpec struct {
	kind      aggKind
	uniform   aggregator.AggregateType
	perColumn []Agg
}

// Uniform applies reduction to every column that is not a grouping column.
func Uniform(reduction aggregator.AggregateType) AggSpec {
	return AggSpec{kind: aggUniform, uniform: reduction}
}

// PerColumn reduces exactly the listed columns, in the given order.
func PerColumn(aggs ...Agg) AggSpec {
	return AggSpec{kind: aggPerColumn, perColumn: aggs}
}

// resolve turns the spec into concrete aggregation fields against f.
// For a uniform spec the value columns are every frame column outside
// groupCols, in frame order.
func (s AggSpec) resolve(f *frame.Frame, groupCols []string) ([]frame.AggField, error) {
	grouped := make(map[string]bool, len(groupCols))
	for _, col := range groupCols {
		grouped[col] = true
	}

	switch s.kind {
	case aggUniform:
		if _, ok := aggregator.Lookup(s.uniform); !ok {
			return nil, fmt.Errorf("%w: unknown reduction %q", ErrInvalidAggregation, s.uniform)
		}
		var fields []frame.AggField
		for _, col := range f.Columns() {
			if !grouped[col] {
				fields = append(fields, frame.AggField{Column: col, Reduction: s.uniform})
			}
		}
		return fields, nil

	case aggPerColumn:
		if len(s.perColumn) == 0 {
			return nil, fmt.Errorf("%w: empty per-column mapping", ErrInvalidAggregation)
		}
		seen := make(map[string]bool, len(s.perColumn))
		fields := make([]frame.AggField, 0, len(s.perColumn))
		for _, a := range s.perColumn {
			if grouped[a.Column] {
				return nil, fmt.Errorf("%w: column %q is a grouping column", ErrInvalidAggregation, a.Column)
			}
			if seen[a.Column] {
				return nil, fmt.Errorf("%w: column %q listed twice", ErrInvalidAggregation, a.Column)
			}
			seen[a.Column] = true
			if _, ok := aggregator.Lookup(a.Reduction); !ok {
				return nil, fmt.Errorf("%w: unknown reduction %q for column %q", ErrInvalidAggregation, a.Reduction, a.Column)
			}
			fields = append(fields, frame.AggField{Column: a.Column, Reduction: a.Reduction})
		}
		return fields, nil

	default:
		return nil, fmt.Errorf("%w: neither a reduction name nor a column mapping", ErrInvalidAggregation)
	}
}

type fillKind int

const (
	fillNull fillKind = iota
	fillUniform
	fillPerColumn
)

// FillSpec configures the sentinel written into a folded grouping column.
// The zero value fills every folded column with the null marker.
type FillSpec struct {
	kind      fillKind
	uniform   interface{}
	perColumn map[string]interface{}
}

// FillWith uses the same sentinel for every folded column.
func FillWith(value interface{}) FillSpec {
	return FillSpec{kind: fillUniform, uniform: value}
}

// FillValues maps folded column names to their sentinels; columns missing
// from the map fall back to the null marker.
func FillValues(values map[string]interface{}) FillSpec {
	return FillSpec{kind: fillPerColumn, perColumn: values}
}

func (s FillSpec) valueFor(col string) interface{} {
	switch s.kind {
	case fillUniform:
		return s.uniform
	case fillPerColumn:
		return s.perColumn[col]
	default:
		return nil
	}
}
