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

// Package fridge reads the ingredients currently in stock from CSV.
//
// Each row is name,quantity,unit,use-by with the date written dd/MM/yyyy:
//
//	bread,10,slices,25/12/2014
//	cheese,10,slices,25/12/2014
//	mixed salad,150,grams,26/12/2013
//
// Quantities are whole numbers, units must be one of
// ingredient.SupportedUnits, and dates are parsed strictly. A malformed row
// fails the whole load with a LineError naming the line and column.
package fridge
