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

/*
Package cubing adds SQL-style CUBE and ROLLUP semantics to group-by
aggregation over in-memory tables.

Given a table and three column roles, GroupBy aggregates once per grouping
set and unions the passes into a single table:

  - plain columns are part of every grouping set;
  - CUBE columns contribute every subset of themselves (2^n sets), the way
    CUBE(a, b) does in SQL;
  - ROLLUP columns contribute every prefix (n+1 sets), modeling
    hierarchical drill-down such as year -> year,quarter -> year,quarter,month.

A grouping column left out of a pass is "folded": its cells in that pass
hold a per-column sentinel (for example "TOTAL", or the null marker by
default), so subtotal and grand-total rows are distinguishable in the
unioned result.

# Example

	f, _ := frame.FromCSV(strings.NewReader(salesCSV))

	result, err := cubing.GroupBy(f,
		nil,                          // plain
		[]string{"category", "area"}, // cube
		"year",                       // rollup
		cubing.PerColumn(
			cubing.Agg{Column: "product", Reduction: aggregator.CountDistinct},
			cubing.Agg{Column: "price", Reduction: aggregator.Mean},
		),
		cubing.FillValues(map[string]interface{}{"category": "TOTAL"}),
		false,
	)
	if err != nil {
		// overlapping roles and malformed aggregation specs fail here,
		// before any aggregation work starts
	}
	result.Print()

The tabular engine itself lives in the frame subpackage: ordered typed
columns over row maps, with grouping, whole-table aggregation, row-wise
union, multi-column sort, type coercion, expression filters and derived
columns. Reductions (sum, count, avg/mean, min, max, stddev, median,
count_distinct/nunique, first, last) live in the aggregator subpackage and
are extensible through aggregator.Register.
*/
package cubing
