package services

import (
	"time"

	"cloud.google.com/go/civil"
)

// monthBounds returns the first and last calendar day of a month. The zero
// day of the following month resolves to the correct last day, leap
// Februaries included.
func monthBounds(year, month int) (civil.Date, civil.Date) {
	start := civil.Date{Year: year, Month: time.Month(month), Day: 1}
	end := civil.DateOf(time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC))
	return start, end
}
