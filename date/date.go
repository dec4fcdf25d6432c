// Package date provides day-granularity dates and the recurring budget
// periods built on top of them.
package date

import (
	"encoding/json"
	"fmt"
	"time"
)

// DateFormat is the format used to represent dates as strings in ISO-8601 format.
const DateFormat = "2006-01-02"

const Day = 24 * time.Hour

// readFormats are the accepted input formats, tried in order. Short forms
// are day-first: "20/12" is the 20th of December, and the convention never
// changes.
var readFormats = []string{
	DateFormat,
	"2006-1-2", // permissive ISO, allows single-digit month/day
	"2/1/2006",
	"2/1/06",
	"2/1",
}

// Date represents a date with no lower than day granularity.
type Date struct {
	y int
	m time.Month
	d int
}

// New returns a normalized Date for the given year, month, and day.
func New(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.Time().Date()
	return d
}

// Today returns the current date.
func Today() Date { return New(time.Now().Date()) }

// Of truncates a timestamp to its date.
func Of(t time.Time) Date { return New(t.Date()) }

// Time returns a time.Time that is the canonical representation of that day
// (midnight UTC).
func (d Date) Time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// Year returns the year of the date.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.Time().Month() }

// Day returns the day of the month.
func (d Date) Day() int { return d.d }

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.Time().Before(x.Time()) }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.Time().After(x.Time()) }

// Add returns a new Date with the given number of days added.
func (d Date) Add(days int) Date { return New(d.y, d.m, d.d+days) }

// AddMonths returns a new Date with the given number of months added,
// normalized the time.Time way (Jan 31 + 1 month = Mar 2 or 3).
func (d Date) AddMonths(months int) Date { return New(d.y, d.m+time.Month(months), d.d) }

// AddYears returns a new Date with the given number of years added.
func (d Date) AddYears(years int) Date { return New(d.y+years, d.m, d.d) }

// Sub returns the number of whole days from x to d.
func (d Date) Sub(x Date) int { return int(d.Time().Sub(x.Time()) / Day) }

// String formats the date in its standard format.
func (d Date) String() string { return d.Time().Format(DateFormat) }

// Parse parses a Date from a string. It is lenient: it accepts the standard
// ISO form, and the day-first short forms used on the command surface
// ("20/12", "20/12/06", "20/12/2006"). A short form with no year is resolved
// against the current year.
func Parse(str string) (Date, error) {
	for _, layout := range readFormats {
		on, err := time.Parse(layout, str)
		if err != nil {
			continue
		}
		if on.Year() == 0 {
			// yearless short form
			return New(time.Now().Year(), on.Month(), on.Day()), nil
		}
		return New(on.Date()), nil
	}
	return Date{}, fmt.Errorf("invalid date %q want format %q or day-first \"20/12\"", str, DateFormat)
}

// MustParse is like Parse but panics on error.
func MustParse(str string) Date {
	d, err := Parse(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// UnmarshalJSON implements the json specific way to unmarshall a date from a json string.
func (j *Date) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	d, err := Parse(str)
	if err != nil {
		return err
	}
	*j = d
	return nil
}

func (j Date) MarshalJSON() ([]byte, error) {
	str := j.String()
	return json.Marshal(&str)
}

// check that a Date pointer is a valid json marshall/unmarshaller type.
var _ json.Marshaler = (*Date)(nil)
var _ json.Unmarshaler = (*Date)(nil)
