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
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// FromCSV reads a comma-separated table whose first record is the header.
// Cells are parsed as int, then float, then kept as string; an empty cell
// is the null marker.
func FromCSV(r io.Reader) (*Frame, error) {
	reader := csv.NewReader(r)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("read csv: missing header")
	}

	header := records[0]
	rows := make([]map[string]interface{}, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(map[string]interface{}, len(header))
		for i, col := range header {
			row[col] = parseCell(record[i])
		}
		rows = append(rows, row)
	}

	f := New(header, rows)
	// a column mixing int and float cells infers as Float; widen the int
	// cells so the column holds one runtime type
	for _, col := range header {
		if f.Type(col) == Float {
			if err := f.CoerceColumn(col, Float); err != nil {
				return nil, err
			}
		}
	}
	return f, nil
}

func parseCell(s string) interface{} {
	if s == "" {
		return nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
