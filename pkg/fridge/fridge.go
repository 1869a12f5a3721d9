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
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	pantryerrors "github.com/pantrykit/pantry/pkg/errors"
	"github.com/pantrykit/pantry/pkg/ingredient"
)

const fieldsPerRow = 4

// Field names a CSV column.
type Field string

const (
	FieldRow      Field = "row"
	FieldName     Field = "name"
	FieldQuantity Field = "quantity"
	FieldUnit     Field = "unit"
	FieldUseBy    Field = "useBy"
)

// LineError reports a malformed row.
type LineError struct {
	Line  int
	Field Field
	Err   error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %s: %v", e.Line, e.Field, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// Parse reads stock rows of the form name,quantity,unit,dd/MM/yyyy.
// Blank lines and lines starting with '#' are skipped; an empty input is
// empty stock. Names are trimmed and NFC-normalized.
func Parse(r io.Reader) ([]ingredient.Ingredient, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	stock := make([]ingredient.Ingredient, 0)
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return stock, nil
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				return nil, &LineError{Line: pe.Line, Field: FieldRow, Err: pe.Err}
			}
			return nil, err
		}
		line, _ := cr.FieldPos(0)

		item, err := parseRow(rec, line)
		if err != nil {
			return nil, err
		}
		stock = append(stock, item)
	}
}

func parseRow(rec []string, line int) (ingredient.Ingredient, error) {
	if len(rec) != fieldsPerRow {
		return ingredient.Ingredient{}, &LineError{
			Line:  line,
			Field: FieldRow,
			Err:   fmt.Errorf("expected %d fields (name,quantity,unit,useBy), got %d", fieldsPerRow, len(rec)),
		}
	}

	name := ingredient.NormalizeName(rec[0])
	if name == "" {
		return ingredient.Ingredient{}, &LineError{Line: line, Field: FieldName, Err: fmt.Errorf("name is empty")}
	}

	qty, err := ingredient.ParseQuantity(rec[1])
	if err != nil {
		return ingredient.Ingredient{}, &LineError{Line: line, Field: FieldQuantity, Err: err}
	}

	unit, err := ingredient.ParseUnit(rec[2])
	if err != nil {
		return ingredient.Ingredient{}, &LineError{Line: line, Field: FieldUnit, Err: err}
	}

	useBy, err := ingredient.ParseDate(rec[3])
	if err != nil {
		return ingredient.Ingredient{}, &LineError{Line: line, Field: FieldUseBy, Err: err}
	}

	return ingredient.New(name, qty, unit, useBy), nil
}

// Load reads the stock CSV at path. Failures are INPUT_ERROR structured
// errors: "File not found: <path>", "Error parsing date: <detail>" for a
// bad use-by date, and "Error reading file: <path>" for anything else.
func Load(path string) ([]ingredient.Ingredient, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, inputError("File not found: "+path, path, err, 0)
		}
		return nil, inputError("Error reading file: "+path, path, err, 0)
	}
	defer f.Close()

	stock, err := Parse(f)
	if err != nil {
		var le *LineError
		if !errors.As(err, &le) {
			return nil, inputError("Error reading file: "+path, path, err, 0)
		}
		if le.Field == FieldUseBy {
			return nil, inputError(fmt.Sprintf("Error parsing date: %s", le), path, err, le.Line)
		}
		return nil, inputError(fmt.Sprintf("Error reading file: %s: %s", path, le), path, err, le.Line)
	}

	slog.Debug("loaded stock", "path", path, "items", len(stock))
	return stock, nil
}

func inputError(msg, path string, cause error, line int) error {
	ctx := map[string]any{"path": path}
	if line > 0 {
		ctx["line"] = line
	}
	return pantryerrors.WrapWithContext(pantryerrors.ErrCodeInput, msg, cause, ctx)
}
