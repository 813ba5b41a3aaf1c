package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAccountAge(t *testing.T) {
	date := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		name string
		dob  time.Time
		at   time.Time
		want int
	}{
		{"day before the birthday", date(2000, time.June, 15), date(2018, time.June, 14), 17},
		{"on the birthday", date(2000, time.June, 15), date(2018, time.June, 15), 18},
		{"day after the birthday", date(2000, time.June, 15), date(2018, time.June, 16), 18},
		{"born after Feb 29 of a leap year, on the birthday", date(2008, time.March, 1), date(2026, time.March, 1), 18},
		{"born on Feb 29, on Mar 1 of a common year", date(2008, time.February, 29), date(2026, time.March, 1), 18},
		{"born on Feb 29, on Feb 28 of a common year", date(2008, time.February, 29), date(2026, time.February, 28), 17},
		{"evaluated in a leap year before the birthday", date(2007, time.December, 31), date(2024, time.December, 30), 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &Account{DateOfBirth: tt.dob}
			assert.Equal(t, tt.want, a.Age(tt.at))
		})
	}
}
