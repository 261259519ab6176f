package jobs

import (
	"context"

	"lankadrive-backend/internal/domain"
	"lankadrive-backend/internal/logger"
)

// SendPendingInquiryReminders nudges the admin when booking inquiries are
// sitting unreviewed.
func (jr *JobRunner) SendPendingInquiryReminders() {
	jr.runWithRecovery("SendPendingInquiryReminders", func() {
		ctx := context.Background()

		count, err := jr.store.BookingRepository.CountByStatus(ctx, domain.BookingStatusPending)
		if err != nil {
			logger.Error("Failed to count pending bookings", "error", err)
			return
		}
		if count == 0 {
			logger.Debug("No pending inquiries, skipping reminder")
			return
		}

		adminEmail := jr.config.Email.AdminEmail
		if adminEmail == "" {
			logger.Warn("No admin email configured, skipping reminder", "pending_count", count)
			return
		}

		if err := jr.emailSvc.SendPendingInquiryReminder(ctx, adminEmail, count); err != nil {
			logger.Error("Failed to send pending inquiry reminder", "error", err)
			return
		}

		logger.Info("Sent pending inquiry reminder", "pending_count", count)
	})
}
