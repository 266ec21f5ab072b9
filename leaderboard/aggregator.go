// Package leaderboard implements the aggregation, ranking and
// materialization pipeline that turns raw activity records into
// persisted per-team leaderboards.
package leaderboard

import (
	"time"

	"github.com/octofit/api-go/models"
)

// ActivitySource supplies one user's activities within a window. A zero
// since means no lower bound.
type ActivitySource interface {
	ByUserSince(userID uint, since time.Time) ([]models.Activity, error)
}

// Totals holds one team member's aggregated numbers for a timeframe.
type Totals struct {
	User            models.User
	TotalCalories   int
	TotalDistance   float64
	TotalActivities int
}

type Aggregator struct {
	activities ActivitySource
}

func NewAggregator(activities ActivitySource) *Aggregator {
	return &Aggregator{activities: activities}
}

// TeamTotals computes the totals triple for every member, including
// members with no activities in the window (all-zero totals). Absent
// calories or distance values count as 0 in the sums; the activity
// still counts toward total_activities.
func (a *Aggregator) TeamTotals(members []models.User, tf Timeframe) ([]Totals, error) {
	since := tf.WindowStart(time.Now())

	totals := make([]Totals, 0, len(members))
	for _, member := range members {
		activities, err := a.activities.ByUserSince(member.ID, since)
		if err != nil {
			return nil, err
		}

		t := Totals{User: member, TotalActivities: len(activities)}
		for _, activity := range activities {
			if activity.CaloriesBurned != nil {
				t.TotalCalories += *activity.CaloriesBurned
			}
			if activity.DistanceKm != nil {
				t.TotalDistance += *activity.DistanceKm
			}
		}
		totals = append(totals, t)
	}
	return totals, nil
}
