package utils

import (
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Calendar decides which dates count as working days. It is supplied by
// configuration; nothing infers it from the record set.
type Calendar struct {
	weekdays map[time.Weekday]bool
	holidays map[string]bool
}

var weekdayNames = map[string]time.Weekday{
	"sun": time.Sunday,
	"mon": time.Monday,
	"tue": time.Tuesday,
	"wed": time.Wednesday,
	"thu": time.Thursday,
	"fri": time.Friday,
	"sat": time.Saturday,
}

// NewCalendar builds a calendar from a comma list of weekday abbreviations
// ("Mon,Tue,Wed,Thu,Fri") and an optional comma list of holiday dates.
func NewCalendar(weekdays string, holidays string) (*Calendar, error) {
	c := &Calendar{
		weekdays: make(map[time.Weekday]bool),
		holidays: make(map[string]bool),
	}

	for _, name := range strings.Split(weekdays, ",") {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		day, ok := weekdayNames[name[:min(3, len(name))]]
		if !ok {
			return nil, fmt.Errorf("unknown weekday %q", name)
		}
		c.weekdays[day] = true
	}

	if len(c.weekdays) == 0 {
		return nil, fmt.Errorf("working day calendar has no weekdays")
	}

	for _, d := range strings.Split(holidays, ",") {
		d = strings.TrimSpace(d)
		if d == "" {
			continue
		}
		if _, err := time.Parse(dateLayout, d); err != nil {
			return nil, fmt.Errorf("bad holiday date %q: %w", d, err)
		}
		c.holidays[d] = true
	}

	return c, nil
}

// IsWorkingDay reports whether a date key falls on a configured weekday and
// is not a holiday.
func (c *Calendar) IsWorkingDay(date string) bool {
	t, err := time.Parse(dateLayout, date)
	if err != nil {
		return false
	}
	return c.weekdays[t.Weekday()] && !c.holidays[date]
}

// WorkingDays expands an inclusive [from, to] range into its working-day
// date keys, in order.
func (c *Calendar) WorkingDays(from, to string) ([]string, error) {
	start, err := time.Parse(dateLayout, from)
	if err != nil {
		return nil, fmt.Errorf("bad from date %q: %w", from, err)
	}
	end, err := time.Parse(dateLayout, to)
	if err != nil {
		return nil, fmt.Errorf("bad to date %q: %w", to, err)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("range end %s precedes start %s", to, from)
	}

	var days []string
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		key := d.Format(dateLayout)
		if c.IsWorkingDay(key) {
			days = append(days, key)
		}
	}
	return days, nil
}
