package leaderboard

import (
	"fmt"
	"sync"

	"github.com/octofit/api-go/models"
	"github.com/prometheus/client_golang/prometheus"
)

// MemberSource lists the users belonging to a team.
type MemberSource interface {
	Members(teamID uint) ([]models.User, error)
}

// Sink persists the derived leaderboard state.
type Sink interface {
	GetOrCreate(teamID uint, timeframe string) (*models.Leaderboard, error)
	UpsertEntry(entry *models.LeaderboardEntry) error
	// PruneEntries removes entries whose user is not in keepUserIDs,
	// so users removed from the team drop off the board and ranks stay
	// contiguous 1..N with N the member count.
	PruneEntries(leaderboardID uint, keepUserIDs []uint) error
}

// Materializer runs the aggregate → rank → upsert pipeline for a team
// and timeframe. Refreshes for the same (team, timeframe) serialize on
// a keyed mutex so concurrent triggers cannot interleave entry writes.
// Rerunning with an unchanged activity set is idempotent.
type Materializer struct {
	members    MemberSource
	aggregator *Aggregator
	sink       Sink

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewMaterializer(members MemberSource, aggregator *Aggregator, sink Sink) *Materializer {
	return &Materializer{
		members:    members,
		aggregator: aggregator,
		sink:       sink,
		locks:      make(map[string]*sync.Mutex),
	}
}

func (m *Materializer) lockFor(teamID uint, tf Timeframe) *sync.Mutex {
	key := fmt.Sprintf("%d/%s", teamID, tf)
	m.mu.Lock()
	defer m.mu.Unlock()
	lock, ok := m.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		m.locks[key] = lock
	}
	return lock
}

// Refresh recomputes and persists the leaderboard for one (team,
// timeframe) pair.
func (m *Materializer) Refresh(teamID uint, tf Timeframe) error {
	lock := m.lockFor(teamID, tf)
	lock.Lock()
	defer lock.Unlock()

	timer := prometheus.NewTimer(refreshDuration)
	defer timer.ObserveDuration()

	if err := m.refresh(teamID, tf); err != nil {
		refreshRuns.WithLabelValues("error").Inc()
		return err
	}
	refreshRuns.WithLabelValues("success").Inc()
	return nil
}

func (m *Materializer) refresh(teamID uint, tf Timeframe) error {
	members, err := m.members.Members(teamID)
	if err != nil {
		return fmt.Errorf("listing team %d members: %w", teamID, err)
	}

	board, err := m.sink.GetOrCreate(teamID, string(tf))
	if err != nil {
		return fmt.Errorf("getting %s leaderboard for team %d: %w", tf, teamID, err)
	}

	totals, err := m.aggregator.TeamTotals(members, tf)
	if err != nil {
		return fmt.Errorf("aggregating team %d totals: %w", teamID, err)
	}

	keep := make([]uint, 0, len(totals))
	for _, ranked := range Rank(totals) {
		entry := models.LeaderboardEntry{
			LeaderboardID:   board.ID,
			UserID:          ranked.User.ID,
			TotalCalories:   ranked.TotalCalories,
			TotalDistance:   ranked.TotalDistance,
			TotalActivities: ranked.TotalActivities,
			Rank:            ranked.Rank,
		}
		if err := m.sink.UpsertEntry(&entry); err != nil {
			return fmt.Errorf("upserting entry for user %d: %w", ranked.User.ID, err)
		}
		keep = append(keep, ranked.User.ID)
	}

	if err := m.sink.PruneEntries(board.ID, keep); err != nil {
		return fmt.Errorf("pruning entries for leaderboard %d: %w", board.ID, err)
	}
	return nil
}

// RefreshAll refreshes every timeframe for one team.
func (m *Materializer) RefreshAll(teamID uint) error {
	for _, tf := range Timeframes {
		if err := m.Refresh(teamID, tf); err != nil {
			return err
		}
	}
	return nil
}
