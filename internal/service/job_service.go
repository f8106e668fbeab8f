package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"frontdesk/internal/db"
	"frontdesk/internal/store"
)

const notificationRetention = 30 * 24 * time.Hour

// JobService runs the scheduled housekeeping pass: flag reservations still
// checked in past their checkout date and purge stale read notifications. It
// never mutates reservation status; the lifecycle transition table stays the
// only mutator.
type JobService struct {
	Reservations store.ReservationStore
	Guests       store.GuestStore
	Notifier     *NotifyService

	now func() time.Time
}

func NewJobService(stores *store.Stores, notifier *NotifyService) *JobService {
	return &JobService{
		Reservations: stores.Reservations,
		Guests:       stores.Guests,
		Notifier:     notifier,
		now:          time.Now,
	}
}

// FlagOverdueCheckouts files a warning notification for every reservation
// still checked in after its checkout date.
func (s *JobService) FlagOverdueCheckouts(ctx context.Context) (int, error) {
	reservations, err := s.Reservations.GetAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("housekeeping: listing reservations: %w", err)
	}

	flagged := 0
	now := s.now()
	for _, res := range reservations {
		if res.Status != db.ReservationCheckedIn || !res.CheckOut.Before(now) {
			continue
		}
		guest, err := s.Guests.GetByID(ctx, res.GuestID)
		if err != nil {
			log.Printf("housekeeping: guest %s for reservation %s: %v", res.GuestID, res.ID, err)
			continue
		}
		s.Notifier.OverdueCheckout(ctx, res, *guest)
		flagged++
	}
	if flagged > 0 {
		log.Printf("housekeeping: flagged %d overdue checkout(s)", flagged)
	}
	return flagged, nil
}

// PurgeReadNotifications deletes read notifications older than the retention
// window.
func (s *JobService) PurgeReadNotifications(ctx context.Context) (int, error) {
	if s.Notifier == nil {
		return 0, nil
	}
	notifications, err := s.Notifier.Notifications.GetAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("housekeeping: listing notifications: %w", err)
	}

	cutoff := s.now().Add(-notificationRetention)
	purged := 0
	for _, n := range notifications {
		if !n.Read || n.CreatedAt.After(cutoff) {
			continue
		}
		if err := s.Notifier.Notifications.Delete(ctx, n.ID); err != nil {
			log.Printf("housekeeping: deleting notification %s: %v", n.ID, err)
			continue
		}
		purged++
	}
	return purged, nil
}

// Run executes the full housekeeping pass; wired to the cron schedule.
func (s *JobService) Run() {
	ctx := context.Background()
	if _, err := s.FlagOverdueCheckouts(ctx); err != nil {
		log.Printf("housekeeping: %v", err)
	}
	if _, err := s.PurgeReadNotifications(ctx); err != nil {
		log.Printf("housekeeping: %v", err)
	}
}
