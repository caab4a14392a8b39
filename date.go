package morningscraper

import (
	"encoding/json"
	"fmt"
	"time"
)

// DateFormat is the format used to represent dates as strings in ISO-8601 format.
const DateFormat = "2006-01-02" // write date format

// PageDateFormat is the day-first format Morningstar UK pages use.
const PageDateFormat = "02/01/2006"

// Date represents a date with day-level granularity.
type Date struct {
	y int        // year
	m time.Month // month
	d int        // day
}

// NewDate returns a normalized Date for the given year, month, and day.
func NewDate(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// String format the date in ISO-8601.
func (d Date) String() string { return d.time().Format(DateFormat) }

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// ParsePageDate parses a date as displayed on the pages, i.e. "DD/MM/YYYY".
// The input is used verbatim, surrounding spaces are an error.
func ParsePageDate(str string) (Date, error) {
	on, err := time.Parse(PageDateFormat, str)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q want format DD/MM/YYYY: %w", str, err)
	}
	return NewDate(on.Date()), nil
}

func (j Date) MarshalJSON() ([]byte, error) {
	str := j.String()
	return json.Marshal(&str)
}

// check that a Date is a valid json marshaller type.
var _ json.Marshaler = Date{}
