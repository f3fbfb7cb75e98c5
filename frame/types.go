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

	"github.com/spf13/cast"
)

// Type is the declared value type of a column. Every column is nullable:
// a nil cell is valid regardless of the declared type.
type Type int

const (
	// Any accepts values of any type, including mixed columns.
	Any Type = iota
	Bool
	Int
	Float
	String
)

func (t Type) String() string {
	switch t {
	case Bool:
		return "bool"
	case Int:
		return "int"
	case Float:
		return "float"
	case String:
		return "string"
	default:
		return "any"
	}
}

// TypeOf classifies a single value.
func TypeOf(v interface{}) Type {
	switch v.(type) {
	case bool:
		return Bool
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return Int
	case float32, float64:
		return Float
	case string:
		return String
	default:
		return Any
	}
}

// Coerce converts v to type t. nil passes through untouched.
func Coerce(v interface{}, t Type) (interface{}, error) {
	if v == nil {
		return nil, nil
	}
	switch t {
	case Bool:
		b, err := cast.ToBoolE(v)
		if err != nil {
			return nil, fmt.Errorf("cannot coerce %v to bool: %w", v, err)
		}
		return b, nil
	case Int:
		n, err := cast.ToIntE(v)
		if err != nil {
			return nil, fmt.Errorf("cannot coerce %v to int: %w", v, err)
		}
		return n, nil
	case Float:
		fv, err := cast.ToFloat64E(v)
		if err != nil {
			return nil, fmt.Errorf("cannot coerce %v to float: %w", v, err)
		}
		return fv, nil
	case String:
		s, err := cast.ToStringE(v)
		if err != nil {
			return nil, fmt.Errorf("cannot coerce %v to string: %w", v, err)
		}
		return s, nil
	default:
		return v, nil
	}
}

// CoerceColumn converts every value of col to type t in place and records t
// as the column's declared type.
func (f *Frame) CoerceColumn(col string, t Type) error {
	if !f.HasColumn(col) {
		return fmt.Errorf("unknown column %q", col)
	}
	for _, row := range f.rows {
		coerced, err := Coerce(row[col], t)
		if err != nil {
			return fmt.Errorf("column %q: %w", col, err)
		}
		row[col] = coerced
	}
	f.types[col] = t
	return nil
}
