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

	"github.com/expr-lang/expr"
	"github.com/spf13/cast"
)

// Filter returns a new Frame keeping the rows for which condition evaluates
// to true. The expression sees the row's columns as variables, e.g.
// "price > 12 && category == 'cat2'".
func (f *Frame) Filter(condition string) (*Frame, error) {
	program, err := expr.Compile(condition, expr.Env(map[string]interface{}{}), expr.AllowUndefinedVariables())
	if err != nil {
		return nil, fmt.Errorf("compile %q: %w", condition, err)
	}

	var rows []map[string]interface{}
	for _, row := range f.rows {
		output, err := expr.Run(program, row)
		if err != nil {
			return nil, fmt.Errorf("evaluate %q: %w", condition, err)
		}
		keep, err := cast.ToBoolE(output)
		if err != nil {
			return nil, fmt.Errorf("condition %q is not boolean: %w", condition, err)
		}
		if keep {
			rows = append(rows, row)
		}
	}

	types := make(map[string]Type, len(f.types))
	for k, v := range f.types {
		types[k] = v
	}
	return &Frame{cols: f.Columns(), types: types, rows: rows}, nil
}

// Apply returns a new Frame with col derived by evaluating expression
// against each row, e.g. Apply("total", "price * quantity"). An existing
// column of the same name is replaced.
func (f *Frame) Apply(col, expression string) (*Frame, error) {
	program, err := expr.Compile(expression, expr.Env(map[string]interface{}{}), expr.AllowUndefinedVariables())
	if err != nil {
		return nil, fmt.Errorf("compile %q: %w", expression, err)
	}

	cols := f.cols
	if !f.HasColumn(col) {
		cols = append(f.Columns(), col)
	}

	rows := make([]map[string]interface{}, len(f.rows))
	for i, row := range f.rows {
		output, err := expr.Run(program, row)
		if err != nil {
			return nil, fmt.Errorf("evaluate %q: %w", expression, err)
		}
		copied := make(map[string]interface{}, len(row)+1)
		for k, v := range row {
			copied[k] = v
		}
		copied[col] = output
		rows[i] = copied
	}

	return New(append([]string(nil), cols...), rows), nil
}
