package vacation

import "time"

// EffectiveStatus derives the status shown for a vacation at the given
// instant. A stored "completed" is sticky and always wins. A vacation
// planned for the current month reads as in progress. A past-dated
// vacation left "pending" stays pending, respecting an operator who
// reopened it.
func EffectiveStatus(v Vacation, now time.Time) string {
	if v.Status == StatusCompleted {
		return StatusCompleted
	}
	if v.PlannedYear == now.Year() && v.PlannedMonth == int(now.Month()) {
		return StatusInProgress
	}
	return StatusPending
}

// DaysUntilStart counts whole days from today to the first day of the
// planned month. Zero means the vacation starts today; negative means
// the start date has passed.
func DaysUntilStart(v Vacation, now time.Time) int {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	start := time.Date(v.PlannedYear, time.Month(v.PlannedMonth), 1, 0, 0, 0, 0, now.Location())
	return int(start.Sub(today).Hours() / 24)
}

// DueForReminder reports whether a reminder should fire now: the start
// is at most NotificationDaysBefore days ahead and has not passed, and
// the vacation is not completed.
func DueForReminder(v Vacation, now time.Time) (int, bool) {
	if v.Status == StatusCompleted {
		return 0, false
	}
	days := DaysUntilStart(v, now)
	if days < 0 || days > v.NotificationDaysBefore {
		return days, false
	}
	return days, true
}
