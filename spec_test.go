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
	"testing"

	"github.com/go-tabular/cubing/aggregator"
	"github.com/go-tabular/cubing/frame"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func specFrame() *frame.Frame {
	return frame.New(
		[]string{"category", "year", "product", "price"},
		[]map[string]interface{}{
			{"category": "cat1", "year": 1, "product": "prod1", "price": 10.0},
		},
	)
}

func TestUniformResolvesRemainingColumns(t *testing.T) {
	fields, err := Uniform(aggregator.Sum).resolve(specFrame(), []string{"category", "year"})
	require.NoError(t, err)

	assert.Equal(t, []frame.AggField{
		{Column: "product", Reduction: aggregator.Sum},
		{Column: "price", Reduction: aggregator.Sum},
	}, fields)
}

func TestUniformUnknownReduction(t *testing.T) {
	_, err := Uniform("no_such_reduction").resolve(specFrame(), []string{"category"})
	assert.ErrorIs(t, err, ErrInvalidAggregation)
}

func TestPerColumnResolvesInGivenOrder(t *testing.T) {
	fields, err := PerColumn(
		Agg{Column: "price", Reduction: aggregator.Mean},
		Agg{Column: "product", Reduction: aggregator.CountDistinct},
	).resolve(specFrame(), []string{"category", "year"})
	require.NoError(t, err)

	assert.Equal(t, []frame.AggField{
		{Column: "price", Reduction: aggregator.Mean},
		{Column: "product", Reduction: aggregator.CountDistinct},
	}, fields)
}

func TestPerColumnRejectsGroupingColumn(t *testing.T) {
	_, err := PerColumn(
		Agg{Column: "category", Reduction: aggregator.Count},
	).resolve(specFrame(), []string{"category"})
	assert.ErrorIs(t, err, ErrInvalidAggregation)
}

func TestPerColumnRejectsDuplicates(t *testing.T) {
	_, err := PerColumn(
		Agg{Column: "price", Reduction: aggregator.Sum},
		Agg{Column: "price", Reduction: aggregator.Mean},
	).resolve(specFrame(), nil)
	assert.ErrorIs(t, err, ErrInvalidAggregation)
}

func TestPerColumnRejectsUnknownReduction(t *testing.T) {
	_, err := PerColumn(
		Agg{Column: "price", Reduction: "no_such_reduction"},
	).resolve(specFrame(), nil)
	assert.ErrorIs(t, err, ErrInvalidAggregation)
}

func TestZeroAggSpecIsInvalid(t *testing.T) {
	_, err := AggSpec{}.resolve(specFrame(), nil)
	assert.ErrorIs(t, err, ErrInvalidAggregation)
}

func TestEmptyPerColumnIsInvalid(t *testing.T) {
	_, err := PerColumn().resolve(specFrame(), nil)
	assert.ErrorIs(t, err, ErrInvalidAggregation)
}

func TestFillSpecZeroValueIsNull(t *testing.T) {
	var fill FillSpec
	assert.Nil(t, fill.valueFor("category"))
	assert.Nil(t, fill.valueFor("anything"))
}

func TestFillWith(t *testing.T) {
	fill := FillWith("TOTAL")
	assert.Equal(t, "TOTAL", fill.valueFor("category"))
	assert.Equal(t, "TOTAL", fill.valueFor("area"), "uniform fill ignores the column name")
}

func TestFillValues(t *testing.T) {
	fill := FillValues(map[string]interface{}{"category": "TOTAL"})
	assert.Equal(t, "TOTAL", fill.valueFor("category"))
	assert.Nil(t, fill.valueFor("area"), "unlisted columns fall back to null")
}
