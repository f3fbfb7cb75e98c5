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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleFrame() *Frame {
	return New(
		[]string{"device", "temperature", "humidity"},
		[]map[string]interface{}{
			{"device": "aa", "temperature": 25.5, "humidity": 60},
			{"device": "bb", "temperature": 22.3, "humidity": 65},
			{"device": "aa", "temperature": 26.8, "humidity": nil},
		},
	)
}

func TestNewInfersTypes(t *testing.T) {
	f := sampleFrame()

	assert.Equal(t, []string{"device", "temperature", "humidity"}, f.Columns())
	assert.Equal(t, 3, f.Len())
	assert.Equal(t, String, f.Type("device"))
	assert.Equal(t, Float, f.Type("temperature"))
	assert.Equal(t, Int, f.Type("humidity"), "nil cells do not affect the inferred type")
}

func TestNewMixedNumericWidensToFloat(t *testing.T) {
	f := New([]string{"x"}, []map[string]interface{}{
		{"x": 1},
		{"x": 2.5},
	})
	assert.Equal(t, Float, f.Type("x"))
}

func TestNewMixedTypesFallBackToAny(t *testing.T) {
	f := New([]string{"x"}, []map[string]interface{}{
		{"x": 1},
		{"x": "two"},
	})
	assert.Equal(t, Any, f.Type("x"))
}

func TestFromRecordsSortsColumns(t *testing.T) {
	f := FromRecords([]map[string]interface{}{
		{"b": 1, "a": 2},
		{"c": 3},
	})
	assert.Equal(t, []string{"a", "b", "c"}, f.Columns())
	assert.Equal(t, 2, f.Len())
}

func TestColumn(t *testing.T) {
	f := sampleFrame()

	values, err := f.Column("device")
	require.NoError(t, err)
	assert.Equal(t, []interface{}{"aa", "bb", "aa"}, values)

	_, err = f.Column("missing")
	assert.Error(t, err)
}

func TestSelectReordersColumns(t *testing.T) {
	f := sampleFrame()

	out, err := f.Select("humidity", "device")
	require.NoError(t, err)
	assert.Equal(t, []string{"humidity", "device"}, out.Columns())
	assert.Equal(t, f.Len(), out.Len())
	assert.Equal(t, String, out.Type("device"))

	_, err = f.Select("device", "missing")
	assert.Error(t, err)
}

func TestWithConstant(t *testing.T) {
	f := sampleFrame()

	out, err := f.WithConstant("site", "TOTAL", String)
	require.NoError(t, err)
	assert.Equal(t, []string{"device", "temperature", "humidity", "site"}, out.Columns())
	assert.Equal(t, String, out.Type("site"))
	for i := 0; i < out.Len(); i++ {
		assert.Equal(t, "TOTAL", out.Row(i)["site"])
	}

	// the source frame is untouched
	assert.False(t, f.HasColumn("site"))
}

func TestWithConstantCoercesToDeclaredType(t *testing.T) {
	f := sampleFrame()

	out, err := f.WithConstant("year", "2024", Int)
	require.NoError(t, err)
	assert.Equal(t, 2024, out.Row(0)["year"])

	_, err = f.WithConstant("year", "not a number", Int)
	assert.Error(t, err)
}

func TestWithConstantNilKeepsDeclaredType(t *testing.T) {
	f := sampleFrame()

	out, err := f.WithConstant("year", nil, Int)
	require.NoError(t, err)
	assert.Equal(t, Int, out.Type("year"))
	assert.Nil(t, out.Row(0)["year"])
}

func TestSetIndex(t *testing.T) {
	f := sampleFrame()

	require.NoError(t, f.SetIndex("device", "temperature"))
	assert.Equal(t, []string{"device", "temperature"}, f.Index())
	assert.Equal(t, []interface{}{"aa", 25.5}, f.IndexKey(0))
	assert.Equal(t, []interface{}{"aa", 26.8}, f.IndexKey(1))
	assert.Equal(t, []interface{}{"bb", 22.3}, f.IndexKey(2))

	f.ResetIndex()
	assert.Empty(t, f.Index())
	assert.Nil(t, f.IndexKey(0))

	assert.Error(t, f.SetIndex("missing"))
}

func TestEqual(t *testing.T) {
	assert.True(t, sampleFrame().Equal(sampleFrame()))

	other := sampleFrame()
	other.rows[0]["temperature"] = 0.0
	assert.False(t, sampleFrame().Equal(other))

	assert.False(t, sampleFrame().Equal(nil))
}
