package utils

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Date represents a calendar date
type Date struct {
	Year  int
	Month int
	Day   int
}

// ParseDate converts a yyyy-mm-dd formatted string into a Date struct
func ParseDate(dateStr string) (Date, error) {
	parts := strings.Split(dateStr, "-")
	if len(parts) != 3 {
		return Date{}, fmt.Errorf("invalid date format, expected yyyy-mm-dd")
	}

	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return Date{}, fmt.Errorf("invalid year: %v", err)
	}

	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return Date{}, fmt.Errorf("invalid month: %v", err)
	}

	day, err := strconv.Atoi(parts[2])
	if err != nil {
		return Date{}, fmt.Errorf("invalid day: %v", err)
	}

	if month < 1 || month > 12 {
		return Date{}, fmt.Errorf("month must be between 1 and 12")
	}

	if day < 1 || day > DaysInMonth(year, month) {
		return Date{}, fmt.Errorf("day %d is out of range for %d-%02d", day, year, month)
	}

	return Date{Year: year, Month: month, Day: day}, nil
}

// String renders the date back in yyyy-mm-dd form.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Before reports whether d is strictly earlier than other.
func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

// Next returns the following calendar day.
func (d Date) Next() Date {
	d.Day++
	if d.Day > DaysInMonth(d.Year, d.Month) {
		d.Day = 1
		d.Month++
		if d.Month > 12 {
			d.Month = 1
			d.Year++
		}
	}
	return d
}

// DaysInMonth returns the number of days in a given month
func DaysInMonth(year, month int) int {
	if month == 2 {
		// Check for leap year
		if (year%4 == 0 && year%100 != 0) || (year%400 == 0) {
			return 29
		}
		return 28
	}

	// Months with 30 days: April, June, September, November
	if month == 4 || month == 6 || month == 9 || month == 11 {
		return 30
	}

	// All other months have 31 days
	return 31
}

// DatesInRange lists every calendar day from start to end, both inclusive,
// in yyyy-mm-dd form.
func DatesInRange(start, end Date) ([]string, error) {
	if end.Before(start) {
		return nil, fmt.Errorf("end date must be >= start date")
	}

	var dates []string
	for d := start; !end.Before(d); d = d.Next() {
		dates = append(dates, d.String())
	}
	return dates, nil
}

// IsRangeFree reports whether none of bookedDates falls within the inclusive
// interval [start, end]. Entries that are not valid dates are ignored rather
// than treated as conflicts.
func IsRangeFree(bookedDates []string, start, end Date) bool {
	for _, s := range bookedDates {
		d, err := ParseDate(s)
		if err != nil {
			continue
		}
		if !d.Before(start) && !end.Before(d) {
			return false
		}
	}
	return true
}

// BlockRange returns the union of bookedDates with every calendar day from
// start to end inclusive. The result has set semantics (no duplicates, even
// if bookedDates already contained some of the range) and is sorted so that
// repeated calls produce identical stored values.
func BlockRange(bookedDates []string, start, end Date) ([]string, error) {
	rangeDates, err := DatesInRange(start, end)
	if err != nil {
		return nil, err
	}

	set := make(map[string]struct{}, len(bookedDates)+len(rangeDates))
	for _, s := range bookedDates {
		set[s] = struct{}{}
	}
	for _, s := range rangeDates {
		set[s] = struct{}{}
	}

	merged := make([]string, 0, len(set))
	for s := range set {
		merged = append(merged, s)
	}
	// yyyy-mm-dd sorts lexically in chronological order
	sort.Strings(merged)
	return merged, nil
}

// DedupDates collapses a raw date list to set semantics without touching
// range logic. Used by the admin calendar overwrite path.
func DedupDates(dates []string) []string {
	set := make(map[string]struct{}, len(dates))
	for _, s := range dates {
		set[s] = struct{}{}
	}
	out := make([]string, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
