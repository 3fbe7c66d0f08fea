package models

import (
	"fmt"
	"strconv"
	"strings"

	dErrors "recruit/pkg/domain-errors"
)

// Weekday is a day of the teaching week, stored as a three-letter code.
type Weekday string

const (
	Monday    Weekday = "MON"
	Tuesday   Weekday = "TUE"
	Wednesday Weekday = "WED"
	Thursday  Weekday = "THU"
	Friday    Weekday = "FRI"
	Saturday  Weekday = "SAT"
	Sunday    Weekday = "SUN"
)

var weekdayNames = map[string]Weekday{
	"MON": Monday, "MONDAY": Monday,
	"TUE": Tuesday, "TUESDAY": Tuesday,
	"WED": Wednesday, "WEDNESDAY": Wednesday,
	"THU": Thursday, "THURSDAY": Thursday,
	"FRI": Friday, "FRIDAY": Friday,
	"SAT": Saturday, "SATURDAY": Saturday,
	"SUN": Sunday, "SUNDAY": Sunday,
}

// ParseWeekday accepts short or long English day names in any case.
func ParseWeekday(s string) (Weekday, error) {
	d, ok := weekdayNames[strings.ToUpper(strings.TrimSpace(s))]
	if !ok {
		return "", dErrors.New(dErrors.CodeValidation, "invalid day of week: "+s)
	}
	return d, nil
}

func (d Weekday) IsValid() bool {
	_, ok := weekdayNames[string(d)]
	return ok && len(d) == 3
}

// ClockTime is a wall-clock time of day in minutes after midnight.
type ClockTime int

// ParseClockTime accepts "HH:MM" and the "HH:MM:SS" form PostgreSQL returns
// for TIME columns. Seconds must be zero.
func ParseClockTime(s string) (ClockTime, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, dErrors.New(dErrors.CodeValidation, "invalid time of day: "+s)
	}
	if !isDigits(parts[0], 1, 2) || !isDigits(parts[1], 2, 2) {
		return 0, dErrors.New(dErrors.CodeValidation, "invalid time of day: "+s)
	}
	h, _ := strconv.Atoi(parts[0])
	m, _ := strconv.Atoi(parts[1])
	if h > 23 || m > 59 {
		return 0, dErrors.New(dErrors.CodeValidation, "invalid time of day: "+s)
	}
	if len(parts) == 3 && parts[2] != "00" {
		return 0, dErrors.New(dErrors.CodeValidation, "invalid time of day: "+s)
	}
	return ClockTime(h*60 + m), nil
}

// isDigits reports whether s is between lo and hi ASCII digits long.
// Signs and spaces are rejected.
func isDigits(s string, lo, hi int) bool {
	if len(s) < lo || len(s) > hi {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func (t ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

// ScheduleSlot is a weekly availability window.
//
// Invariants:
//   - Day is one of the seven weekday codes
//   - Start is strictly before End, both within the same day
type ScheduleSlot struct {
	Day   Weekday
	Start ClockTime
	End   ClockTime
}

// Validate checks the slot invariants.
func (s ScheduleSlot) Validate() error {
	if !s.Day.IsValid() {
		return dErrors.New(dErrors.CodeValidation, "invalid day of week: "+string(s.Day))
	}
	if s.Start < 0 || s.End > 24*60 {
		return dErrors.New(dErrors.CodeValidation, "schedule slot is outside the day")
	}
	if s.Start >= s.End {
		return dErrors.New(dErrors.CodeValidation,
			fmt.Sprintf("schedule slot start %s must be before end %s", s.Start, s.End))
	}
	return nil
}
