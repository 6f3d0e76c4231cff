package reminder

import (
	"sort"
	"time"

	"github.com/jailbreak-0/iou-tracker/internal/models"
)

// UpcomingWindow is how far ahead the dashboard projection looks.
const UpcomingWindow = 7 * 24 * time.Hour

// UpcomingEntry pairs a record with its projected fire time.
type UpcomingEntry struct {
	Record models.DebtRecord `json:"record"`
	FireAt time.Time         `json:"fireAt"`
}

// Upcoming projects the candidate fire time for every unsettled record,
// keeps those within [now, now+7d] and sorts ascending by fire time.
// Read-only: stored state is never touched.
func Upcoming(records []models.DebtRecord, policy models.ReminderPolicy, now time.Time) []UpcomingEntry {
	end := now.Add(UpcomingWindow)

	var entries []UpcomingEntry
	for _, rec := range records {
		candidate, ok := NextFireTime(rec, policy, now)
		if !ok {
			continue
		}
		if candidate.Before(now) || candidate.After(end) {
			continue
		}
		entries = append(entries, UpcomingEntry{Record: rec, FireAt: candidate})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].FireAt.Before(entries[j].FireAt)
	})
	return entries
}
