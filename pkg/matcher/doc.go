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

// Package matcher finds the stock entry that should be used to satisfy a
// single recipe requirement.
//
// A stock entry is eligible when it has exactly the requirement's name, at
// least the required quantity, and has not expired on the evaluation date.
// Among eligible entries the one expiring soonest is chosen, since it is the
// one most in need of using. Entries without a recorded expiry never expire
// and are only chosen when no dated entry is eligible.
//
// Units are not compared by default. WithStrictUnits makes the unit part of
// the eligibility check.
package matcher
