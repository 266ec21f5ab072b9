package leaderboard

import (
	"fmt"
	"testing"
	"time"

	"github.com/octofit/api-go/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMembers struct {
	members map[uint][]models.User
}

func (f *fakeMembers) Members(teamID uint) ([]models.User, error) {
	return f.members[teamID], nil
}

type entryKey struct {
	boardID uint
	userID  uint
}

// fakeSink stores boards and entries in memory with the same keyed
// upsert semantics as the database-backed store.
type fakeSink struct {
	nextBoardID uint
	nextEntryID uint
	boards      map[string]*models.Leaderboard
	entries     map[entryKey]*models.LeaderboardEntry
	upserts     int
}

func newFakeSink() *fakeSink {
	return &fakeSink{
		boards:  make(map[string]*models.Leaderboard),
		entries: make(map[entryKey]*models.LeaderboardEntry),
	}
}

func (f *fakeSink) GetOrCreate(teamID uint, timeframe string) (*models.Leaderboard, error) {
	key := fmt.Sprintf("%d/%s", teamID, timeframe)
	if board, ok := f.boards[key]; ok {
		return board, nil
	}
	f.nextBoardID++
	board := &models.Leaderboard{ID: f.nextBoardID, TeamID: teamID, Timeframe: timeframe}
	f.boards[key] = board
	return board, nil
}

func (f *fakeSink) UpsertEntry(entry *models.LeaderboardEntry) error {
	f.upserts++
	key := entryKey{boardID: entry.LeaderboardID, userID: entry.UserID}
	if existing, ok := f.entries[key]; ok {
		existing.TotalCalories = entry.TotalCalories
		existing.TotalDistance = entry.TotalDistance
		existing.TotalActivities = entry.TotalActivities
		existing.Rank = entry.Rank
		return nil
	}
	f.nextEntryID++
	stored := *entry
	stored.ID = f.nextEntryID
	f.entries[key] = &stored
	return nil
}

func (f *fakeSink) PruneEntries(leaderboardID uint, keepUserIDs []uint) error {
	keep := make(map[uint]bool, len(keepUserIDs))
	for _, id := range keepUserIDs {
		keep[id] = true
	}
	for key := range f.entries {
		if key.boardID == leaderboardID && !keep[key.userID] {
			delete(f.entries, key)
		}
	}
	return nil
}

func (f *fakeSink) boardEntries(boardID uint) []*models.LeaderboardEntry {
	var out []*models.LeaderboardEntry
	for key, entry := range f.entries {
		if key.boardID == boardID {
			out = append(out, entry)
		}
	}
	return out
}

func newTestMaterializer(members *fakeMembers, activities *fakeActivities, sink *fakeSink) *Materializer {
	return NewMaterializer(members, NewAggregator(activities), sink)
}

func TestRefreshCreatesOneBoardAndRankedEntries(t *testing.T) {
	members := &fakeMembers{members: map[uint][]models.User{
		1: {{ID: 10, Username: "alice"}, {ID: 11, Username: "bob"}, {ID: 12, Username: "carol"}},
	}}
	activities := &fakeActivities{byUser: map[uint][]models.Activity{
		10: {activity(time.Now(), intPtr(800), floatPtr(5))},
		11: {activity(time.Now(), intPtr(500), nil)},
	}}
	sink := newFakeSink()
	materializer := newTestMaterializer(members, activities, sink)

	require.NoError(t, materializer.Refresh(1, AllTime))

	require.Len(t, sink.boards, 1)
	entries := sink.boardEntries(1)
	require.Len(t, entries, 3)

	byRank := make(map[int]*models.LeaderboardEntry)
	for _, entry := range entries {
		byRank[entry.Rank] = entry
	}
	// Ranks form a contiguous 1..N range.
	for rank := 1; rank <= 3; rank++ {
		require.Contains(t, byRank, rank)
	}
	assert.Equal(t, uint(10), byRank[1].UserID)
	assert.Equal(t, uint(11), byRank[2].UserID)
	assert.Equal(t, uint(12), byRank[3].UserID)
	assert.Zero(t, byRank[3].TotalCalories)
}

func TestRefreshIsIdempotent(t *testing.T) {
	members := &fakeMembers{members: map[uint][]models.User{
		1: {{ID: 10, Username: "alice"}, {ID: 11, Username: "bob"}},
	}}
	activities := &fakeActivities{byUser: map[uint][]models.Activity{
		10: {activity(time.Now(), intPtr(400), floatPtr(3))},
	}}
	sink := newFakeSink()
	materializer := newTestMaterializer(members, activities, sink)

	require.NoError(t, materializer.Refresh(1, AllTime))
	firstEntries := make(map[entryKey]models.LeaderboardEntry)
	for key, entry := range sink.entries {
		firstEntries[key] = *entry
	}

	require.NoError(t, materializer.Refresh(1, AllTime))

	require.Len(t, sink.boards, 1, "rerun must not create a duplicate leaderboard")
	require.Len(t, sink.entries, len(firstEntries), "rerun must not create duplicate entries")
	for key, entry := range sink.entries {
		assert.Equal(t, firstEntries[key], *entry)
	}
}

func TestRefreshPicksUpNewActivity(t *testing.T) {
	members := &fakeMembers{members: map[uint][]models.User{
		1: {{ID: 10, Username: "alice"}},
	}}
	activities := &fakeActivities{byUser: map[uint][]models.Activity{
		10: {activity(time.Now(), intPtr(500), nil)},
	}}
	sink := newFakeSink()
	materializer := newTestMaterializer(members, activities, sink)

	require.NoError(t, materializer.Refresh(1, AllTime))
	before := sink.entries[entryKey{boardID: 1, userID: 10}]
	require.Equal(t, 500, before.TotalCalories)
	require.Equal(t, 1, before.TotalActivities)

	created := activity(time.Now(), intPtr(300), nil)
	created.DurationMinutes = 45
	activities.byUser[10] = append(activities.byUser[10], created)

	require.NoError(t, materializer.Refresh(1, AllTime))
	after := sink.entries[entryKey{boardID: 1, userID: 10}]
	assert.Equal(t, 800, after.TotalCalories)
	assert.Equal(t, 2, after.TotalActivities)
}

func TestRefreshPrunesDepartedMembers(t *testing.T) {
	members := &fakeMembers{members: map[uint][]models.User{
		1: {{ID: 10, Username: "alice"}, {ID: 11, Username: "bob"}},
	}}
	activities := &fakeActivities{byUser: map[uint][]models.Activity{}}
	sink := newFakeSink()
	materializer := newTestMaterializer(members, activities, sink)

	require.NoError(t, materializer.Refresh(1, AllTime))
	require.Len(t, sink.boardEntries(1), 2)

	members.members[1] = members.members[1][:1]
	require.NoError(t, materializer.Refresh(1, AllTime))

	entries := sink.boardEntries(1)
	require.Len(t, entries, 1)
	assert.Equal(t, uint(10), entries[0].UserID)
	assert.Equal(t, 1, entries[0].Rank)
}

func TestRefreshAllCoversEveryTimeframe(t *testing.T) {
	members := &fakeMembers{members: map[uint][]models.User{
		1: {{ID: 10, Username: "alice"}},
	}}
	activities := &fakeActivities{byUser: map[uint][]models.Activity{}}
	sink := newFakeSink()
	materializer := newTestMaterializer(members, activities, sink)

	require.NoError(t, materializer.RefreshAll(1))

	require.Len(t, sink.boards, len(Timeframes))
	for _, tf := range Timeframes {
		_, ok := sink.boards[fmt.Sprintf("1/%s", tf)]
		assert.True(t, ok, "missing %s leaderboard", tf)
	}
}
