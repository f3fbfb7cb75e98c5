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

// Package frame provides a small in-memory table with ordered, typed columns
// and the grouping, aggregation, union, sort and coercion primitives the
// cubing driver is built on. Rows are plain maps; a nil cell is the null
// marker and every column is nullable.
package frame

import (
	"fmt"
	"reflect"
	"sort"
)

// Frame is an ordered collection of named columns over a list of rows.
type Frame struct {
	cols  []string
	types map[string]Type
	rows  []map[string]interface{}
	index []string
}

// New builds a Frame with the given column order. Column types are inferred
// from the row values; cells missing from a row read as nil.
func New(columns []string, rows []map[string]interface{}) *Frame {
	f := &Frame{
		cols: append([]string(nil), columns...),
		rows: rows,
	}
	f.types = inferTypes(f.cols, rows)
	return f
}

// FromRecords builds a Frame from rows, with columns in sorted key order of
// the union of all row keys. Use New when the column order matters.
func FromRecords(rows []map[string]interface{}) *Frame {
	seen := make(map[string]bool)
	var cols []string
	for _, row := range rows {
		for col := range row {
			if !seen[col] {
				seen[col] = true
				cols = append(cols, col)
			}
		}
	}
	sort.Strings(cols)
	return New(cols, rows)
}

// Columns returns the column names in order.
func (f *Frame) Columns() []string {
	return append([]string(nil), f.cols...)
}

// Type returns the declared type of col, Any if the column is unknown.
func (f *Frame) Type(col string) Type {
	return f.types[col]
}

// Len returns the number of rows.
func (f *Frame) Len() int {
	return len(f.rows)
}

// Row returns the i-th row.
func (f *Frame) Row(i int) map[string]interface{} {
	return f.rows[i]
}

// Records returns all rows in order.
func (f *Frame) Records() []map[string]interface{} {
	return f.rows
}

// HasColumn reports whether col exists.
func (f *Frame) HasColumn(col string) bool {
	_, ok := f.types[col]
	return ok
}

// Column returns all values of col in row order.
func (f *Frame) Column(col string) ([]interface{}, error) {
	if !f.HasColumn(col) {
		return nil, fmt.Errorf("unknown column %q", col)
	}
	values := make([]interface{}, len(f.rows))
	for i, row := range f.rows {
		values[i] = row[col]
	}
	return values, nil
}

// Select returns a new Frame holding exactly cols, in that order, sharing
// the underlying row maps.
func (f *Frame) Select(cols ...string) (*Frame, error) {
	types := make(map[string]Type, len(cols))
	for _, col := range cols {
		if !f.HasColumn(col) {
			return nil, fmt.Errorf("unknown column %q", col)
		}
		types[col] = f.types[col]
	}
	return &Frame{
		cols:  append([]string(nil), cols...),
		types: types,
		rows:  f.rows,
	}, nil
}

// WithConstant returns a new Frame with col appended (or replaced) holding
// value in every row, declared as type t. A non-nil value is coerced to t;
// nil stays nil, the column keeping its declared type.
func (f *Frame) WithConstant(col string, value interface{}, t Type) (*Frame, error) {
	coerced, err := Coerce(value, t)
	if err != nil {
		return nil, fmt.Errorf("column %q: %w", col, err)
	}

	cols := f.cols
	if !f.HasColumn(col) {
		cols = append(f.Columns(), col)
	}
	types := make(map[string]Type, len(cols))
	for k, v := range f.types {
		types[k] = v
	}
	types[col] = t

	rows := make([]map[string]interface{}, len(f.rows))
	for i, row := range f.rows {
		copied := make(map[string]interface{}, len(row)+1)
		for k, v := range row {
			copied[k] = v
		}
		copied[col] = coerced
		rows[i] = copied
	}
	return &Frame{cols: append([]string(nil), cols...), types: types, rows: rows}, nil
}

// Index returns the index column names, empty when the frame is unindexed.
func (f *Frame) Index() []string {
	return append([]string(nil), f.index...)
}

// SetIndex promotes cols to the frame's composite row key and sorts by it.
func (f *Frame) SetIndex(cols ...string) error {
	for _, col := range cols {
		if !f.HasColumn(col) {
			return fmt.Errorf("unknown column %q", col)
		}
	}
	f.index = append([]string(nil), cols...)
	f.SortBy(cols...)
	return nil
}

// ResetIndex demotes the index columns back to ordinary columns.
func (f *Frame) ResetIndex() {
	f.index = nil
}

// IndexKey returns the i-th row's composite key, nil for unindexed frames.
func (f *Frame) IndexKey(i int) []interface{} {
	if len(f.index) == 0 {
		return nil
	}
	key := make([]interface{}, len(f.index))
	for j, col := range f.index {
		key[j] = f.rows[i][col]
	}
	return key
}

// Equal reports whether two frames have the same columns, in order, and the
// same rows, in order. Types and index are not compared.
func (f *Frame) Equal(other *Frame) bool {
	if other == nil || !reflect.DeepEqual(f.cols, other.cols) || len(f.rows) != len(other.rows) {
		return false
	}
	for i, row := range f.rows {
		for _, col := range f.cols {
			if !reflect.DeepEqual(row[col], other.rows[i][col]) {
				return false
			}
		}
	}
	return true
}

func inferTypes(cols []string, rows []map[string]interface{}) map[string]Type {
	types := make(map[string]Type, len(cols))
	for _, col := range cols {
		t := Any
		for _, row := range rows {
			v := row[col]
			if v == nil {
				continue
			}
			vt := TypeOf(v)
			if t == Any {
				t = vt
				continue
			}
			if t == vt {
				continue
			}
			if (t == Int && vt == Float) || (t == Float && vt == Int) {
				t = Float
				continue
			}
			t = Any
			break
		}
		types[col] = t
	}
	return types
}
