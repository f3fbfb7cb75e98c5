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
)

// String renders the frame as a bordered text table in column order,
// nil cells as NULL, followed by a row count.
func (f *Frame) String() string {
	var b strings.Builder

	colWidths := make([]int, len(f.cols))
	for i, col := range f.cols {
		colWidths[i] = len(col)
		for _, row := range f.rows {
			if w := len(cellString(row[col])); w > colWidths[i] {
				colWidths[i] = w
			}
		}
		if colWidths[i] < 4 {
			colWidths[i] = 4
		}
	}

	writeBorder(&b, colWidths)
	b.WriteString("|")
	for i, col := range f.cols {
		fmt.Fprintf(&b, " %-*s |", colWidths[i], col)
	}
	b.WriteString("\n")
	writeBorder(&b, colWidths)

	for _, row := range f.rows {
		b.WriteString("|")
		for i, col := range f.cols {
			fmt.Fprintf(&b, " %-*s |", colWidths[i], cellString(row[col]))
		}
		b.WriteString("\n")
	}

	writeBorder(&b, colWidths)
	fmt.Fprintf(&b, "(%d rows)\n", len(f.rows))
	return b.String()
}

// Print writes the rendered table to stdout.
func (f *Frame) Print() {
	fmt.Print(f.String())
}

func cellString(v interface{}) string {
	if v == nil {
		return "NULL"
	}
	return fmt.Sprintf("%v", v)
}

func writeBorder(b *strings.Builder, colWidths []int) {
	b.WriteString("+")
	for _, width := range colWidths {
		b.WriteString(strings.Repeat("-", width+2))
		b.WriteString("+")
	}
	b.WriteString("\n")
}
