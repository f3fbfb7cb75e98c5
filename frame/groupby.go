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
	"fmt"
	"strings"

	"github.com/go-tabular/cubing/aggregator"
	"github.com/spf13/cast"
)

// AggField configures one reduction over one value column.
type AggField struct {
	Column    string
	Reduction aggregator.AggregateType
	As        string // output column name, defaults to Column
}

func (a AggField) alias() string {
	if a.As != "" {
		return a.As
	}
	return a.Column
}

// GroupBy holds a pending grouping of a frame by key columns.
type GroupBy struct {
	f    *Frame
	keys []string
}

// GroupBy groups the frame by the given key columns. The grouping is lazy;
// rows are consumed when Agg is called.
func (f *Frame) GroupBy(keys ...string) *GroupBy {
	return &GroupBy{f: f, keys: append([]string(nil), keys...)}
}

type groupState struct {
	keyValues []interface{}
	aggs      map[string]aggregator.AggregatorFunction
}

// Agg reduces every group to one row. Output columns are the key columns
// followed by the aggregation aliases, in the given order. Rows with a nil
// value in any key column belong to no group and are dropped; nil values in
// value columns are skipped by the accumulators. Group order is first-seen
// row order.
func (g *GroupBy) Agg(fields []AggField) (*Frame, error) {
	if len(g.keys) == 0 {
		return nil, fmt.Errorf("no grouping columns")
	}
	for _, key := range g.keys {
		if !g.f.HasColumn(key) {
			return nil, fmt.Errorf("unknown column %q", key)
		}
	}
	constructors, err := resolveFields(g.f, fields)
	if err != nil {
		return nil, err
	}

	groups := make(map[string]*groupState)
	var order []string

	for _, row := range g.f.rows {
		key, ok := groupKey(row, g.keys)
		if !ok {
			continue
		}
		state, exists := groups[key]
		if !exists {
			keyValues := make([]interface{}, len(g.keys))
			for i, k := range g.keys {
				keyValues[i] = row[k]
			}
			state = &groupState{
				keyValues: keyValues,
				aggs:      make(map[string]aggregator.AggregatorFunction, len(fields)),
			}
			for _, field := range fields {
				state.aggs[field.alias()] = constructors[field.alias()]()
			}
			groups[key] = state
			order = append(order, key)
		}
		for _, field := range fields {
			if v := row[field.Column]; v != nil {
				state.aggs[field.alias()].Add(v)
			}
		}
	}

	cols := append([]string(nil), g.keys...)
	for _, field := range fields {
		cols = append(cols, field.alias())
	}

	rows := make([]map[string]interface{}, 0, len(order))
	for _, key := range order {
		state := groups[key]
		row := make(map[string]interface{}, len(cols))
		for i, k := range g.keys {
			row[k] = state.keyValues[i]
		}
		for _, field := range fields {
			row[field.alias()] = state.aggs[field.alias()].Result()
		}
		rows = append(rows, row)
	}

	out := New(cols, rows)
	for _, key := range g.keys {
		out.types[key] = g.f.types[key]
	}
	return out, nil
}

// AggregateAll reduces the whole frame to a single row, as if grouped by
// nothing. This is the grand aggregate of the empty grouping set.
func (f *Frame) AggregateAll(fields []AggField) (*Frame, error) {
	constructors, err := resolveFields(f, fields)
	if err != nil {
		return nil, err
	}

	aggs := make(map[string]aggregator.AggregatorFunction, len(fields))
	cols := make([]string, 0, len(fields))
	for _, field := range fields {
		aggs[field.alias()] = constructors[field.alias()]()
		cols = append(cols, field.alias())
	}

	for _, row := range f.rows {
		for _, field := range fields {
			if v := row[field.Column]; v != nil {
				aggs[field.alias()].Add(v)
			}
		}
	}

	row := make(map[string]interface{}, len(fields))
	for _, field := range fields {
		row[field.alias()] = aggs[field.alias()].Result()
	}
	return New(cols, []map[string]interface{}{row}), nil
}

func resolveFields(f *Frame, fields []AggField) (map[string]func() aggregator.AggregatorFunction, error) {
	if len(fields) == 0 {
		return nil, fmt.Errorf("no aggregation fields")
	}
	constructors := make(map[string]func() aggregator.AggregatorFunction, len(fields))
	for _, field := range fields {
		if !f.HasColumn(field.Column) {
			return nil, fmt.Errorf("unknown column %q", field.Column)
		}
		constructor, ok := aggregator.Lookup(field.Reduction)
		if !ok {
			return nil, fmt.Errorf("unknown reduction %q for column %q", field.Reduction, field.Column)
		}
		constructors[field.alias()] = constructor
	}
	return constructors, nil
}

func groupKey(row map[string]interface{}, keys []string) (string, bool) {
	var b strings.Builder
	for _, key := range keys {
		v := row[key]
		if v == nil {
			return "", false
		}
		b.WriteString(cast.ToString(v))
		b.WriteByte(0x1f)
	}
	return b.String(), true
}
