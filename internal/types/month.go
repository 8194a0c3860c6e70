// Package types implements special types for the bookkeeper backend.
package types

import (
	"database/sql"
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// Month is a calendar month in a specific year. It is the period over
// which budgets and spending are aggregated.
type Month time.Time

// NewMonth returns the Month for the year and month given.
func NewMonth(year int, month time.Month) Month {
	return Month(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC))
}

// MonthOf returns the Month a time instant falls in.
func MonthOf(t time.Time) Month {
	year, month, _ := t.Date()
	return Month(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC))
}

// ParseMonth parses a "YYYY-MM" string.
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Month{}, err
	}

	return MonthOf(t), nil
}

// String returns the month formatted as YYYY-MM.
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", time.Time(m).Year(), time.Time(m).Month())
}

// MarshalJSON implements the json.Marshaler interface.
func (m Month) MarshalJSON() ([]byte, error) {
	return time.Time(m).MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface.
// Accepted inputs are RFC3339 timestamps, "YYYY-MM-DD" dates and
// "YYYY-MM" months. Everything but the year and month is ignored.
func (m *Month) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`)
	if value == "" || value == "null" {
		return nil
	}

	for _, pattern := range []string{time.RFC3339, "2006-01-02", "2006-01"} {
		t, err := time.Parse(pattern, value)
		if err == nil {
			*m = MonthOf(t)
			return nil
		}
	}

	return fmt.Errorf("cannot parse %q as a month", value)
}

// UnmarshalParam implements gin's binding.BindUnmarshaler so that a
// month can be bound from a "YYYY-MM" request parameter.
func (m *Month) UnmarshalParam(p string) error {
	parsed, err := ParseMonth(p)
	if err != nil {
		return fmt.Errorf("cannot parse %q as a month", p)
	}

	*m = parsed
	return nil
}

// Scan reads the value from the database.
func (m *Month) Scan(value interface{}) error {
	nullTime := &sql.NullTime{}
	err := nullTime.Scan(value)
	*m = Month(nullTime.Time)
	return err
}

// Value returns the value for the SQL driver to write to the database.
func (m Month) Value() (driver.Value, error) {
	year, month, _ := time.Time(m).Date()
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC), nil
}

// GormDataType defines the data type used by gorm for the type.
func (Month) GormDataType() string {
	return "date"
}

// IsZero reports whether the month is the zero value.
func (m Month) IsZero() bool {
	return time.Time(m).IsZero()
}

// AddDate adds a specified amount of years and months.
func (m Month) AddDate(years, months int) Month {
	return Month(time.Time(m).AddDate(years, months, 0))
}

// Before reports whether the month instant m is before n.
func (m Month) Before(n Month) bool {
	return time.Time(m).Before(time.Time(n))
}

// After reports whether the month instant m is after n.
func (m Month) After(n Month) bool {
	return time.Time(m).After(time.Time(n))
}

// Equal reports whether m and n represent the same month.
func (m Month) Equal(n Month) bool {
	return time.Time(m).Equal(time.Time(n))
}

// Interval returns the half-open interval [start, next) covered by the
// month, for use in date range queries.
func (m Month) Interval() (start, next time.Time) {
	return time.Time(m), time.Time(m.AddDate(0, 1))
}
