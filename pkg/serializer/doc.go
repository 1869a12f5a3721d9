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

// Package serializer encodes and decodes pantry data in multiple formats.
//
// # Supported Formats
//
// Text:
//   - The value's String() form on one line
//   - Used by the CLI to print just the chosen recipe name
//   - Write-only
//
// JSON:
//   - Machine-parseable, indented representation
//   - Recipe catalogs, API bodies, CLI output
//
// YAML:
//   - Human-readable with preserved structure
//   - Recipe catalogs and CLI output (gopkg.in/yaml.v3)
//
// Table:
//   - Flattened FIELD/VALUE listing for terminals
//   - Write-only
//
// # Usage - Encoding
//
//	writer := serializer.NewFileWriterOrStdout(serializer.FormatYAML, outputPath)
//	defer writer.Close()
//	if err := writer.Serialize(ctx, rec); err != nil {
//	    return err
//	}
//
// For HTTP responses:
//
//	serializer.RespondJSON(w, http.StatusOK, rec)
//
// # Usage - Decoding
//
//	catalog, err := serializer.FromFile[[]RecipeDoc]("recipes.json")
//
// Or with an explicit reader:
//
//	reader, err := serializer.NewReader(serializer.FormatYAML, strings.NewReader(doc))
//	if err != nil {
//	    return err
//	}
//	var v Catalog
//	err = reader.Deserialize(&v)
//
// # Format Detection
//
// File extension-based detection (query strings are ignored for URLs):
//   - .json → JSON
//   - .yaml, .yml → YAML
//   - .table → Table
//   - .txt → Text
//   - Other → JSON (default)
//
// # Error Handling
//
// FromFile returns *errors.StructuredError values: ErrCodeNotFound for a
// missing local file, ErrCodeUnavailable for a source that cannot be opened
// or fetched, ErrCodeInput for a document that cannot be decoded. Empty
// documents wrap io.EOF.
package serializer
