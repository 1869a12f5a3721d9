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

package ingredient

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the day-first layout used by fridge inventories and the API.
const DateLayout = "02/01/2006"

// Date is a calendar day with no time-of-day or location component.
// The zero value is not a valid date; use Expiry to model an absent date.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate returns the normalized date for the given components, so
// NewDate(2014, 4, 31) yields 1 May 2014.
func NewDate(year int, month time.Month, day int) Date {
	return DateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf returns the calendar day of t in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// Today returns the current local calendar day.
func Today() Date {
	return DateOf(time.Now())
}

// ParseDate parses a dd/MM/yyyy string. Day and month may omit the leading zero.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2/1/2006", strings.TrimSpace(s))
	if err != nil {
		return Date{}, fmt.Errorf("unparseable date %q: expected dd/MM/yyyy", s)
	}
	return DateOf(t), nil
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool {
	return d == Date{}
}

// Compare returns -1 if d is before o, 1 if after, 0 if the same day.
func (d Date) Compare(o Date) int {
	switch {
	case d.Year != o.Year:
		return sign(d.Year - o.Year)
	case d.Month != o.Month:
		return sign(int(d.Month) - int(o.Month))
	default:
		return sign(d.Day - o.Day)
	}
}

// Before reports whether d is strictly before o.
func (d Date) Before(o Date) bool {
	return d.Compare(o) < 0
}

// Time returns midnight UTC of d.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// String formats d as dd/MM/yyyy.
func (d Date) String() string {
	return d.Time().Format(DateLayout)
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}

// Expiry is an optional use-by date. The zero value means "no expiry recorded".
type Expiry struct {
	date Date
	set  bool
}

// NoExpiry returns an absent expiry.
func NoExpiry() Expiry {
	return Expiry{}
}

// ExpiresOn returns an expiry set to d.
func ExpiresOn(d Date) Expiry {
	return Expiry{date: d, set: true}
}

// Date returns the expiry date and whether one is recorded.
func (e Expiry) Date() (Date, bool) {
	return e.date, e.set
}

// IsZero reports whether no expiry is recorded. Encoders use it to omit
// absent expiries.
func (e Expiry) IsZero() bool {
	return !e.set
}

// IsSet reports whether an expiry date is recorded.
func (e Expiry) IsSet() bool {
	return e.set
}

// ExpiredOn reports whether the item is past its use-by date on day d.
// An item with no expiry never expires. An item expiring on d is still usable.
func (e Expiry) ExpiredOn(d Date) bool {
	return e.set && e.date.Before(d)
}

// Compare orders expiries soonest first. An absent expiry sorts after every
// recorded date; two absent expiries are equal.
func (e Expiry) Compare(o Expiry) int {
	switch {
	case !e.set && !o.set:
		return 0
	case !e.set:
		return 1
	case !o.set:
		return -1
	default:
		return e.date.Compare(o.date)
	}
}

// String formats the expiry as dd/MM/yyyy, or "-" when absent.
func (e Expiry) String() string {
	if !e.set {
		return "-"
	}
	return e.date.String()
}

// MarshalText implements encoding.TextMarshaler. An absent expiry encodes as
// the empty string.
func (e Expiry) MarshalText() ([]byte, error) {
	if !e.set {
		return []byte{}, nil
	}
	return []byte(e.date.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The empty string decodes
// to an absent expiry.
func (e *Expiry) UnmarshalText(text []byte) error {
	s := strings.TrimSpace(string(text))
	if s == "" {
		*e = NoExpiry()
		return nil
	}
	d, err := ParseDate(s)
	if err != nil {
		return err
	}
	*e = ExpiresOn(d)
	return nil
}
