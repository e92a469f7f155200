package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"
	_ "time/tzdata"

	"checkin/config"
	"checkin/internal/domain/entity"
	"checkin/internal/domain/geofence"
	"checkin/internal/domain/repository"
)

// fixedNow is 09:00 in Amsterdam on 2025-03-14.
var fixedNow = time.Date(2025, 3, 14, 8, 0, 0, 0, time.UTC)

var today = time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Geofence: &config.GeofenceConfig{
			Latitude:     geofence.DefaultLatitude,
			Longitude:    geofence.DefaultLongitude,
			RadiusMeters: geofence.DefaultRadiusMeters,
		},
		CheckIn:     &config.CheckInConfig{Timezone: "Europe/Amsterdam"},
		Leaderboard: &config.LeaderboardConfig{HistoryDays: 30, MaxHistoryDays: 90, CacheTTL: time.Minute},
		Session:     &config.SessionConfig{StateTTL: 10 * time.Minute},
	}
}

func ptr[T any](v T) *T {
	return &v
}

// memoryCheckInRepo enforces (user, date) uniqueness atomically, like the
// storage unique index, so concurrent CheckIn calls can be raced against it.
type memoryCheckInRepo struct {
	mu     sync.Mutex
	nextID int64
	rows   []*entity.CheckIn
	users  map[string]*entity.User
}

func newMemoryCheckInRepo(users ...*entity.User) *memoryCheckInRepo {
	repo := &memoryCheckInRepo{users: make(map[string]*entity.User)}
	for _, u := range users {
		repo.users[u.ID] = u
	}

	return repo
}

func (r *memoryCheckInRepo) Create(_ context.Context, checkIn *entity.CheckIn) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, row := range r.rows {
		if row.UserID == checkIn.UserID && row.Date.Equal(checkIn.Date) {
			return repository.ErrCheckInAlreadyExists
		}
	}
	r.nextID++
	checkIn.ID = r.nextID
	stored := *checkIn
	r.rows = append(r.rows, &stored)

	return nil
}

func (r *memoryCheckInRepo) FindByID(_ context.Context, id int64) (*entity.CheckIn, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, row := range r.rows {
		if row.ID == id {
			found := *row

			return &found, nil
		}
	}

	return nil, repository.ErrCheckInNotFound
}

func (r *memoryCheckInRepo) FindByUserAndDate(_ context.Context, userID string, date time.Time) (*entity.CheckIn, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, row := range r.rows {
		if row.UserID == userID && row.Date.Equal(date) {
			found := *row

			return &found, nil
		}
	}

	return nil, repository.ErrCheckInNotFound
}

func (r *memoryCheckInRepo) entry(row *entity.CheckIn, withPhoto bool) *entity.CheckInEntry {
	e := &entity.CheckInEntry{
		CheckInID:   row.ID,
		UserID:      row.UserID,
		Date:        row.Date,
		CheckInTime: row.CheckInTime,
	}
	if u, ok := r.users[row.UserID]; ok {
		e.UserName = u.Name
		e.UserPicture = u.Picture
	}
	if withPhoto {
		e.Photo = row.Photo
	}

	return e
}

func (r *memoryCheckInRepo) ListEntriesByDate(_ context.Context, date time.Time, withPhoto bool) ([]*entity.CheckInEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entries := []*entity.CheckInEntry{}
	for _, row := range r.rows {
		if row.Date.Equal(date) {
			entries = append(entries, r.entry(row, withPhoto))
		}
	}

	return entries, nil
}

func (r *memoryCheckInRepo) ListRecentDates(_ context.Context, limit int) ([]time.Time, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	seen := map[time.Time]bool{}
	dates := []time.Time{}
	for _, row := range r.rows {
		if !seen[row.Date] {
			seen[row.Date] = true
			dates = append(dates, row.Date)
		}
	}
	for i := range dates {
		for j := i + 1; j < len(dates); j++ {
			if dates[j].After(dates[i]) {
				dates[i], dates[j] = dates[j], dates[i]
			}
		}
	}
	if len(dates) > limit {
		dates = dates[:limit]
	}

	return dates, nil
}

func (r *memoryCheckInRepo) ListEntriesByDates(_ context.Context, dates []time.Time) ([]*entity.CheckInEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	wanted := map[time.Time]bool{}
	for _, d := range dates {
		wanted[d] = true
	}

	entries := []*entity.CheckInEntry{}
	for _, row := range r.rows {
		if wanted[row.Date] {
			entries = append(entries, r.entry(row, false))
		}
	}

	return entries, nil
}
