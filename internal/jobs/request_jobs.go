package jobs

import (
	"context"
	"time"

	"equiprent-backend/internal/domain"
	"equiprent-backend/internal/logger"
)

// CompleteExpiredRequests marks approved rental requests as completed once
// their rental period has ended, and emails the requester.
func (jr *JobRunner) CompleteExpiredRequests() {
	jr.runWithRecovery("CompleteExpiredRequests", func() {
		ctx := context.Background()
		today := time.Now().Format("2006-01-02")

		expired, err := jr.store.RequestRepository.ListExpiredApproved(ctx, today)
		if err != nil {
			logger.Error("Failed to list expired approved requests", "error", err)
			return
		}

		// Completion goes through the request service so the requester
		// email and the financial-inspector notifications fire exactly as
		// they do for an interactive completion. Reviewer 0 marks the
		// system as the actor.
		count := 0
		for _, req := range expired {
			if _, err := jr.services.Request.Complete(ctx, 0, req.ID); err != nil {
				logger.Error("Failed to complete expired request", "request_id", req.ID, "error", err)
				continue
			}
			count++
			logger.Debug("Completed expired request", "request_id", req.ID, "reference", req.Reference)
		}

		logger.Info("Marked expired requests as completed", "count", count)
	})
}

// SendPendingReminders emails every equipment inspector when rental requests
// are sitting in the pending queue.
func (jr *JobRunner) SendPendingReminders() {
	jr.runWithRecovery("SendPendingReminders", func() {
		ctx := context.Background()

		pending, err := jr.store.RequestRepository.CountByStatus(ctx, domain.RequestStatusPending)
		if err != nil {
			logger.Error("Failed to count pending requests", "error", err)
			return
		}
		if pending == 0 {
			logger.Info("No pending requests, skipping reminders")
			return
		}

		inspectors, err := jr.store.UserRepository.ListByRole(ctx, domain.RoleEquipmentInspector)
		if err != nil {
			logger.Error("Failed to list equipment inspectors", "error", err)
			return
		}

		for _, insp := range inspectors {
			if err := jr.services.Email.SendPendingReminder(ctx, insp.Email, insp.Name, pending); err != nil {
				logger.Error("Failed to send pending reminder", "user_id", insp.ID, "error", err)
			}
		}

		logger.Info("Sent pending request reminders", "pending", pending, "inspectors", len(inspectors))
	})
}
