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

import "fmt"

// Concat unions same-shaped frames row-wise. Every frame must carry the
// same columns in the same order as the first; rows keep their per-frame
// order, frames in argument order. Column types are merged, widening
// Int/Float pairs to Float and everything else that disagrees to Any.
func Concat(frames ...*Frame) (*Frame, error) {
	if len(frames) == 0 {
		return nil, fmt.Errorf("nothing to concatenate")
	}

	first := frames[0]
	total := 0
	for i, f := range frames {
		if err := sameColumns(first.cols, f.cols); err != nil {
			return nil, fmt.Errorf("frame %d: %w", i, err)
		}
		total += len(f.rows)
	}

	types := make(map[string]Type, len(first.cols))
	for _, col := range first.cols {
		t := first.types[col]
		for _, f := range frames[1:] {
			t = mergeTypes(t, f.types[col])
		}
		types[col] = t
	}

	rows := make([]map[string]interface{}, 0, total)
	for _, f := range frames {
		rows = append(rows, f.rows...)
	}

	return &Frame{cols: first.Columns(), types: types, rows: rows}, nil
}

func sameColumns(want, got []string) error {
	if len(want) != len(got) {
		return fmt.Errorf("column mismatch: want %v, got %v", want, got)
	}
	for i := range want {
		if want[i] != got[i] {
			return fmt.Errorf("column mismatch: want %v, got %v", want, got)
		}
	}
	return nil
}

func mergeTypes(a, b Type) Type {
	switch {
	case a == b:
		return a
	case (a == Int && b == Float) || (a == Float && b == Int):
		return Float
	default:
		return Any
	}
}
