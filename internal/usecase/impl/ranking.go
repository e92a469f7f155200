package impl

import (
	"cmp"
	"slices"
	"time"

	"checkin/internal/domain/entity"
)

// compareEntries orders by check-in time, then by insertion sequence.
func compareEntries(a, b *entity.CheckInEntry) int {
	if c := a.CheckInTime.Compare(b.CheckInTime); c != 0 {
		return c
	}

	return cmp.Compare(a.CheckInID, b.CheckInID)
}

// rankEntries assigns contiguous 1-based ranks, earliest check-in first.
// counts may be nil.
func rankEntries(entries []*entity.CheckInEntry, counts map[int64]entity.ReactionCount) []*entity.LeaderboardEntry {
	sorted := slices.Clone(entries)
	slices.SortStableFunc(sorted, compareEntries)

	ranked := make([]*entity.LeaderboardEntry, 0, len(sorted))
	for i, e := range sorted {
		count := counts[e.CheckInID]
		ranked = append(ranked, &entity.LeaderboardEntry{
			Rank:        i + 1,
			CheckInID:   e.CheckInID,
			UserID:      e.UserID,
			Name:        e.UserName,
			Picture:     e.UserPicture,
			CheckInTime: e.CheckInTime,
			Photo:       e.Photo,
			Likes:       count.Likes,
			Dislikes:    count.Dislikes,
		})
	}

	return ranked
}

// groupByDate buckets entries under each of dates, keeping dates distinct and
// newest first. Dates without entries are dropped.
func groupByDate(dates []time.Time, entries []*entity.CheckInEntry) []*entity.Leaderboard {
	byDate := make(map[string][]*entity.CheckInEntry, len(dates))
	for _, e := range entries {
		key := entity.FormatDate(e.Date)
		byDate[key] = append(byDate[key], e)
	}

	ordered := slices.Clone(dates)
	slices.SortFunc(ordered, func(a, b time.Time) int { return b.Compare(a) })
	ordered = slices.CompactFunc(ordered, func(a, b time.Time) bool { return a.Equal(b) })

	boards := make([]*entity.Leaderboard, 0, len(ordered))
	for _, d := range ordered {
		rows := byDate[entity.FormatDate(d)]
		if len(rows) == 0 {
			continue
		}
		boards = append(boards, &entity.Leaderboard{Date: d, Entries: rankEntries(rows, nil)})
	}

	return boards
}

// clampDays applies the default window and bounds it to [1, maxDays].
func clampDays(days, defaultDays, maxDays int) int {
	if days <= 0 {
		days = defaultDays
	}

	return max(1, min(days, maxDays))
}
