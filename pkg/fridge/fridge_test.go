// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package fridge

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pantryerrors "github.com/pantrykit/pantry/pkg/errors"
	"github.com/pantrykit/pantry/pkg/ingredient"
)

func dec(day int, year int) ingredient.Date {
	return ingredient.NewDate(year, time.December, day)
}

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []ingredient.Ingredient
	}{
		{
			name:  "single item",
			input: "cheese,2,slices,25/12/2014\n",
			want: []ingredient.Ingredient{
				ingredient.New("cheese", 2, ingredient.UnitSlices, dec(25, 2014)),
			},
		},
		{
			name:  "multiple items",
			input: "cheese,2,slices,25/12/2014\ncrackers,10,of,14/04/2014\n",
			want: []ingredient.Ingredient{
				ingredient.New("cheese", 2, ingredient.UnitSlices, dec(25, 2014)),
				ingredient.New("crackers", 10, ingredient.UnitOf, ingredient.NewDate(2014, time.April, 14)),
			},
		},
		{
			name:  "empty input",
			input: "",
			want:  []ingredient.Ingredient{},
		},
		{
			name:  "blank lines comments and spacing",
			input: "# name,quantity,unit,useBy\n\nbread, 10, slices, 25/12/2014\n",
			want: []ingredient.Ingredient{
				ingredient.New("bread", 10, ingredient.UnitSlices, dec(25, 2014)),
			},
		},
		{
			name:  "quoted name with comma",
			input: "\"salt, sea\",5,grams,1/1/2015\n",
			want: []ingredient.Ingredient{
				ingredient.New("salt, sea", 5, ingredient.UnitGrams, ingredient.NewDate(2015, time.January, 1)),
			},
		},
		{
			name:  "decomposed name is normalized",
			input: "jalapen\u0303o,3,pieces,25/12/2014\n",
			want: []ingredient.Ingredient{
				ingredient.New("jalape\u00f1o", 3, ingredient.UnitPieces, dec(25, 2014)),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantLine  int
		wantField Field
	}{
		{"invalid date", "bread,1,slices,25/12/2014\ncheese,2,slices,invalidDate\n", 2, FieldUseBy},
		{"invalid quantity", "cheese,two,slices,25/12/2014\n", 1, FieldQuantity},
		{"negative quantity", "cheese,-2,slices,25/12/2014\n", 1, FieldQuantity},
		{"unknown unit", "cheese,2,wedges,25/12/2014\n", 1, FieldUnit},
		{"too few fields", "cheese,2,slices\n", 1, FieldRow},
		{"too many fields", "cheese,2,slices,25/12/2014,extra\n", 1, FieldRow},
		{"empty name", " ,2,slices,25/12/2014\n", 1, FieldName},
		{"bare quote", "bread,1,slices,25/12/2014\nche\"ese,2,slices,25/12/2014\n", 2, FieldRow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input))
			require.Error(t, err)

			var le *LineError
			require.True(t, errors.As(err, &le), "expected LineError, got %T", err)
			assert.Equal(t, tt.wantLine, le.Line)
			assert.Equal(t, tt.wantField, le.Field)
		})
	}
}

func TestLoad(t *testing.T) {
	stock, err := Load(filepath.Join("testdata", "fridge.csv"))
	require.NoError(t, err)
	require.Len(t, stock, 5)
	assert.Equal(t, ingredient.New("bread", 10, ingredient.UnitSlices, dec(25, 2014)), stock[0])
	assert.Equal(t, ingredient.New("mixed salad", 150, ingredient.UnitGrams, dec(26, 2013)), stock[4])

	stock, err = Load(filepath.Join("testdata", "empty.csv"))
	require.NoError(t, err)
	assert.NotNil(t, stock)
	assert.Empty(t, stock)
}

func TestLoad_Errors(t *testing.T) {
	missing := filepath.Join("testdata", "missing.csv")

	tests := []struct {
		name       string
		path       string
		wantPrefix string
		wantIn     string
	}{
		{"missing file", missing, "File not found: " + missing, ""},
		{"bad date", filepath.Join("testdata", "baddate.csv"), "Error parsing date: ", "line 2"},
		{"bad unit", filepath.Join("testdata", "badunit.csv"), "Error reading file: " + filepath.Join("testdata", "badunit.csv"), "line 2"},
		{"directory", "testdata", "Error reading file: testdata", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.path)
			require.Error(t, err)
			assert.True(t, pantryerrors.IsCode(err, pantryerrors.ErrCodeInput))

			msg := pantryerrors.MessageOf(err)
			assert.True(t, strings.HasPrefix(msg, tt.wantPrefix), "message %q should start with %q", msg, tt.wantPrefix)
			assert.Contains(t, msg, tt.wantIn)
		})
	}
}
