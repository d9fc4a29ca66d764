package date

import (
	"fmt"
	"time"
)

// Month identifies a calendar month, the grouping key for monthly rollups.
type Month struct {
	y int
	m time.Month
}

// MonthOf returns the calendar month containing d.
func MonthOf(d Date) Month { return Month{y: d.y, m: d.m} }

// String formats the month as "2006-01".
func (m Month) String() string { return fmt.Sprintf("%04d-%02d", m.y, m.m) }

// Before reports whether the month m is before x.
func (m Month) Before(x Month) bool {
	if m.y != x.y {
		return m.y < x.y
	}
	return m.m < x.m
}

// First returns the first day of the month.
func (m Month) First() Date { return New(m.y, m.m, 1) }
