package leaderboard

import (
	"fmt"
	"time"

	"github.com/octofit/api-go/models"
)

// Timeframe is the reporting window a leaderboard covers.
type Timeframe string

const (
	Daily   Timeframe = models.TimeframeDaily
	Weekly  Timeframe = models.TimeframeWeekly
	Monthly Timeframe = models.TimeframeMonthly
	AllTime Timeframe = models.TimeframeAllTime
)

// Timeframes lists every timeframe a team gets a leaderboard for.
var Timeframes = []Timeframe{Daily, Weekly, Monthly, AllTime}

// ParseTimeframe validates a timeframe string from user input.
func ParseTimeframe(s string) (Timeframe, error) {
	switch Timeframe(s) {
	case Daily, Weekly, Monthly, AllTime:
		return Timeframe(s), nil
	}
	return "", fmt.Errorf("invalid timeframe %q", s)
}

// WindowStart returns the inclusive lower bound of the timeframe's
// window relative to now: midnight today for daily, start of the
// current week (Sunday) for weekly, the first of the current month for
// monthly. All-time returns the zero time, meaning no lower bound.
func (tf Timeframe) WindowStart(now time.Time) time.Time {
	switch tf {
	case Daily:
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	case Weekly:
		startOfWeek := now.AddDate(0, 0, -int(now.Weekday()))
		return time.Date(startOfWeek.Year(), startOfWeek.Month(), startOfWeek.Day(), 0, 0, 0, 0, now.Location())
	case Monthly:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	default:
		return time.Time{}
	}
}
