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

func TestTypeOf(t *testing.T) {
	assert.Equal(t, Bool, TypeOf(true))
	assert.Equal(t, Int, TypeOf(42))
	assert.Equal(t, Int, TypeOf(int64(42)))
	assert.Equal(t, Float, TypeOf(4.2))
	assert.Equal(t, String, TypeOf("x"))
	assert.Equal(t, Any, TypeOf([]int{1}))
}

func TestTypeString(t *testing.T) {
	assert.Equal(t, "bool", Bool.String())
	assert.Equal(t, "int", Int.String())
	assert.Equal(t, "float", Float.String())
	assert.Equal(t, "string", String.String())
	assert.Equal(t, "any", Any.String())
}

func TestCoerce(t *testing.T) {
	v, err := Coerce("42", Int)
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	v, err = Coerce(42, Float)
	require.NoError(t, err)
	assert.Equal(t, 42.0, v)

	v, err = Coerce(42, String)
	require.NoError(t, err)
	assert.Equal(t, "42", v)

	v, err = Coerce("true", Bool)
	require.NoError(t, err)
	assert.Equal(t, true, v)

	v, err = Coerce(nil, Int)
	require.NoError(t, err)
	assert.Nil(t, v, "nil passes through any coercion")

	v, err = Coerce([]int{1}, Any)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, v)

	_, err = Coerce("not a number", Int)
	assert.Error(t, err)
}

func TestCoerceColumn(t *testing.T) {
	f := New([]string{"year"}, []map[string]interface{}{
		{"year": "1"},
		{"year": nil},
		{"year": "3"},
	})

	require.NoError(t, f.CoerceColumn("year", Int))
	assert.Equal(t, Int, f.Type("year"))
	values, _ := f.Column("year")
	assert.Equal(t, []interface{}{1, nil, 3}, values)

	assert.Error(t, f.CoerceColumn("missing", Int))

	f2 := New([]string{"x"}, []map[string]interface{}{{"x": "abc"}})
	assert.Error(t, f2.CoerceColumn("x", Float))
}
