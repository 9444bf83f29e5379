package jobs

import (
	"context"
	"time"

	"github.com/Kayan-Code-Dev/erp-bahaa-eldin-sub004/internal/booking"
	"github.com/Kayan-Code-Dev/erp-bahaa-eldin-sub004/internal/domain"
	"github.com/Kayan-Code-Dev/erp-bahaa-eldin-sub004/internal/logger"
)

// MarkOverdueRents flips active rents past their return date to OVERDUE and
// mails an overdue notice to the client. Overdue rents still block the
// garment and still gate order finishing.
func (jr *JobRunner) MarkOverdueRents() {
	jr.runWithRecovery("MarkOverdueRents", func() {
		ctx := context.Background()
		today := booking.Day(time.Now())

		overdue, err := jr.store.Repos().Rents.MarkOverdue(ctx, today)
		if err != nil {
			logger.Error("Failed to mark overdue rents", "error", err)
			return
		}

		for _, rt := range overdue {
			jr.notifyClient(ctx, rt, jr.emailSvc.SendOverdueNotice)
		}
		logger.Info("Marked rents as overdue", "count", len(overdue))
	})
}

// SendReturnReminders mails clients whose rentals are due back tomorrow.
func (jr *JobRunner) SendReturnReminders() {
	jr.runWithRecovery("SendReturnReminders", func() {
		ctx := context.Background()
		tomorrow := booking.Day(time.Now()).AddDate(0, 0, 1)

		due, err := jr.store.Repos().Rents.ListActiveDueOn(ctx, tomorrow)
		if err != nil {
			logger.Error("Failed to list rents due for return", "error", err)
			return
		}

		for _, rt := range due {
			jr.notifyClient(ctx, rt, jr.emailSvc.SendReturnReminder)
		}
		logger.Info("Sent return reminders", "count", len(due))
	})
}

type rentNotifier func(ctx context.Context, to, clientName, clothCode string, returnDate time.Time) error

func (jr *JobRunner) notifyClient(ctx context.Context, rt domain.Rent, send rentNotifier) {
	r := jr.store.Repos()
	order, err := r.Orders.GetByID(ctx, rt.OrderID)
	if err != nil {
		logger.Error("Failed to load order for rent notification", "rent_id", rt.ID, "error", err)
		return
	}
	client, err := r.Clients.GetByID(ctx, order.ClientID)
	if err != nil || client.Email == "" {
		return
	}
	cloth, err := r.Cloths.GetByID(ctx, rt.ClothID)
	if err != nil {
		logger.Error("Failed to load garment for rent notification", "rent_id", rt.ID, "error", err)
		return
	}
	if err := send(ctx, client.Email, client.Name, cloth.Code, rt.ReturnDate); err != nil {
		logger.Warn("Failed to send rent notification", "rent_id", rt.ID, "error", err)
	}
}
