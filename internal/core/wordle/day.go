// Package wordle recognises shared Wordle results and scores them
package wordle

import (
	"strconv"
	"time"
)

// Epoch is the calendar date of puzzle day 0
var Epoch = time.Date(2021, time.June, 19, 0, 0, 0, 0, time.UTC)

// Day is a puzzle number counted from Epoch
type Day int

// DayOf returns the puzzle day for the calendar date t falls on in its own zone
func DayOf(t time.Time) Day {
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return Day(d.Sub(Epoch) / (24 * time.Hour))
}

// Date returns the calendar date of the puzzle at midnight UTC
func (d Day) Date() time.Time { return Epoch.AddDate(0, 0, int(d)) }

// ISODate renders the calendar date as yyyy-mm-dd
func (d Day) ISODate() string { return d.Date().Format(time.DateOnly) }

func (d Day) String() string { return strconv.Itoa(int(d)) }
