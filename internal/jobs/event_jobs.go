package jobs

import (
	"context"
	"time"

	"velvetden-backend/internal/logger"
)

const jobTimeout = 5 * time.Minute

// MarkPastEvents clears the upcoming flag on events whose date has passed
// so they stop showing on the landing page.
func (jr *JobRunner) MarkPastEvents() {
	jr.runWithRecovery("MarkPastEvents", func() {
		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		defer cancel()

		changed, err := jr.events.MarkPastEvents(ctx, time.Now().UTC())
		if err != nil {
			logger.Error("Failed to mark past events", "error", err)
			return
		}
		logger.Info("Marked past events", "count", changed)
	})
}

// SendEventReminders mails everyone with a booked space on an event that
// starts within the next 24 hours.
func (jr *JobRunner) SendEventReminders() {
	jr.runWithRecovery("SendEventReminders", func() {
		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		defer cancel()

		now := time.Now().UTC()
		reminders, err := jr.spaces.ListRemindersBetween(ctx, now, now.Add(24*time.Hour))
		if err != nil {
			logger.Error("Failed to load reminder bookings", "error", err)
			return
		}

		sent := 0
		for _, rem := range reminders {
			err := jr.emails.SendEventReminder(ctx, rem.Email, rem.FirstName, rem.City, rem.DateTime, rem.SpaceName)
			if err != nil {
				logger.Error("Failed to send event reminder", "email", rem.Email, "error", err)
				continue
			}
			sent++
		}
		logger.Info("Event reminders sent", "sent", sent, "total", len(reminders))
	})
}
