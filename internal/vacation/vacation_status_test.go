package vacation_test

import (
	"testing"
	"time"

	"sicservitium/internal/vacation"

	"github.com/stretchr/testify/assert"
)

var june15 = time.Date(2026, time.June, 15, 10, 0, 0, 0, time.UTC)

func TestEffectiveStatus(t *testing.T) {
	t.Run("completed is sticky whatever the dates say", func(t *testing.T) {
		v := vacation.Vacation{PlannedMonth: 6, PlannedYear: 2026, Status: vacation.StatusCompleted}
		assert.Equal(t, vacation.StatusCompleted, vacation.EffectiveStatus(v, june15))

		v.PlannedYear = 2030
		assert.Equal(t, vacation.StatusCompleted, vacation.EffectiveStatus(v, june15))
	})

	t.Run("current month reads as in progress", func(t *testing.T) {
		v := vacation.Vacation{PlannedMonth: 6, PlannedYear: 2026, Status: vacation.StatusPending}
		assert.Equal(t, vacation.StatusInProgress, vacation.EffectiveStatus(v, june15))
	})

	t.Run("future months stay pending", func(t *testing.T) {
		v := vacation.Vacation{PlannedMonth: 7, PlannedYear: 2026, Status: vacation.StatusPending}
		assert.Equal(t, vacation.StatusPending, vacation.EffectiveStatus(v, june15))
	})

	t.Run("a reopened past vacation stays pending", func(t *testing.T) {
		v := vacation.Vacation{PlannedMonth: 1, PlannedYear: 2026, Status: vacation.StatusPending}
		assert.Equal(t, vacation.StatusPending, vacation.EffectiveStatus(v, june15))
	})
}

func TestDaysUntilStart(t *testing.T) {
	v := vacation.Vacation{PlannedMonth: 7, PlannedYear: 2026}
	assert.Equal(t, 16, vacation.DaysUntilStart(v, june15))

	v = vacation.Vacation{PlannedMonth: 6, PlannedYear: 2026}
	assert.Equal(t, -14, vacation.DaysUntilStart(v, june15))

	firstOfJuly := time.Date(2026, time.July, 1, 8, 0, 0, 0, time.UTC)
	v = vacation.Vacation{PlannedMonth: 7, PlannedYear: 2026}
	assert.Equal(t, 0, vacation.DaysUntilStart(v, firstOfJuly))
}

func TestDueForReminder(t *testing.T) {
	t.Run("inside the window", func(t *testing.T) {
		v := vacation.Vacation{PlannedMonth: 7, PlannedYear: 2026, NotificationDaysBefore: 30, Status: vacation.StatusPending}
		days, due := vacation.DueForReminder(v, june15)
		assert.True(t, due)
		assert.Equal(t, 16, days)
	})

	t.Run("start too far ahead", func(t *testing.T) {
		v := vacation.Vacation{PlannedMonth: 7, PlannedYear: 2026, NotificationDaysBefore: 10, Status: vacation.StatusPending}
		_, due := vacation.DueForReminder(v, june15)
		assert.False(t, due)
	})

	t.Run("start already passed", func(t *testing.T) {
		v := vacation.Vacation{PlannedMonth: 6, PlannedYear: 2026, NotificationDaysBefore: 30, Status: vacation.StatusPending}
		_, due := vacation.DueForReminder(v, june15)
		assert.False(t, due)
	})

	t.Run("completed never reminds", func(t *testing.T) {
		v := vacation.Vacation{PlannedMonth: 7, PlannedYear: 2026, NotificationDaysBefore: 30, Status: vacation.StatusCompleted}
		_, due := vacation.DueForReminder(v, june15)
		assert.False(t, due)
	})
}
