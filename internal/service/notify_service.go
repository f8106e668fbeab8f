package service

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"frontdesk/internal/db"
	"frontdesk/internal/entities"
	"frontdesk/internal/store"
	"frontdesk/internal/utils"
)

// NotifyService records in-app notifications for front-desk events and, when a
// sender is configured, messages the guest. All delivery is fire-and-forget:
// a failed notification never fails the operation that triggered it.
type NotifyService struct {
	Notifications store.NotificationStore
	Sender        *SenderService
}

func NewNotifyService(stores *store.Stores, sender *SenderService) *NotifyService {
	return &NotifyService{Notifications: stores.Notifications, Sender: sender}
}

func (s *NotifyService) record(ctx context.Context, kind, message string) {
	if s == nil {
		return
	}
	if _, err := s.Notifications.Create(ctx, db.Notification{Type: kind, Message: message}); err != nil {
		log.Printf("recording notification: %v", err)
	}
}

func roomNumbers(rooms []db.Room) string {
	numbers := make([]string, 0, len(rooms))
	for _, room := range rooms {
		numbers = append(numbers, room.Number)
	}
	return strings.Join(numbers, ", ")
}

func (s *NotifyService) ReservationCreated(ctx context.Context, res db.Reservation, guest db.Guest, rooms []db.Room, bd entities.PaymentBreakdown) {
	if s == nil {
		return
	}
	s.record(ctx, db.NotificationSuccess,
		fmt.Sprintf("Reservation created for %s, room(s) %s, total $%.2f", guest.FullName(), roomNumbers(rooms), bd.Total))
	s.sendGuestMessages(res, guest, rooms, "confirmed")
}

func (s *NotifyService) GuestCheckedIn(ctx context.Context, res db.Reservation, guest db.Guest, rooms []db.Room) {
	if s == nil {
		return
	}
	s.record(ctx, db.NotificationSuccess,
		fmt.Sprintf("%s checked in to room(s) %s", guest.FullName(), roomNumbers(rooms)))
	s.sendGuestMessages(res, guest, rooms, "checked in")
}

func (s *NotifyService) GuestCheckedOut(ctx context.Context, res db.Reservation, guest db.Guest, rooms []db.Room) {
	if s == nil {
		return
	}
	s.record(ctx, db.NotificationInfo,
		fmt.Sprintf("%s checked out of room(s) %s; rooms sent to cleaning", guest.FullName(), roomNumbers(rooms)))
}

func (s *NotifyService) ReservationCancelled(ctx context.Context, res db.Reservation, guest db.Guest) {
	if s == nil {
		return
	}
	s.record(ctx, db.NotificationWarning,
		fmt.Sprintf("Reservation %s for %s was cancelled", res.ID, guest.FullName()))
	s.sendGuestMessages(res, guest, nil, "cancelled")
}

func (s *NotifyService) OverdueCheckout(ctx context.Context, res db.Reservation, guest db.Guest) {
	if s == nil {
		return
	}
	s.record(ctx, db.NotificationWarning,
		fmt.Sprintf("Checkout overdue: %s was due to leave on %s", guest.FullName(), res.CheckOut.Format(utils.DateLayout)))
}

func (s *NotifyService) sendGuestMessages(res db.Reservation, guest db.Guest, rooms []db.Room, status string) {
	if s.Sender == nil {
		return
	}
	data := entities.ReservationEmailData{
		GuestName:         guest.FullName(),
		ReservationID:     res.ID,
		RoomNumbers:       roomNumbers(rooms),
		CheckInFormatted:  res.CheckIn.Format("02 Jan 2006"),
		CheckOutFormatted: res.CheckOut.Format("02 Jan 2006"),
		Nights:            utils.Nights(res.CheckIn, res.CheckOut),
		Total:             res.TotalAmount,
		Status:            status,
		CurrentYear:       time.Now().Year(),
	}

	subject := fmt.Sprintf("Your reservation is %s - %s", status, res.ID)
	plainBody := fmt.Sprintf(
		"Hello %s,\n\nYour reservation is %s.\n\n"+
			"Reservation: %s\n"+
			"Room(s): %s\n"+
			"Check-in: %s\n"+
			"Check-out: %s (%d nights)\n"+
			"Total: $%.2f\n\n"+
			"Thank you for staying with us.",
		data.GuestName, status, data.ReservationID, data.RoomNumbers,
		data.CheckInFormatted, data.CheckOutFormatted, data.Nights, data.Total,
	)

	var htmlBody string
	tmplPath := filepath.Join("internal", "templates", "reservation_email.html")
	tmpl, err := template.ParseFiles(tmplPath)
	if err != nil {
		log.Printf("parsing email template %s: %v", tmplPath, err)
	} else {
		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, data); err != nil {
			log.Printf("executing email template for reservation %s: %v", res.ID, err)
		}
		htmlBody = buf.String()
	}
	if htmlBody == "" {
		htmlBody = "<p>" + template.HTMLEscapeString(plainBody) + "</p>"
	}

	go func() {
		if err := s.Sender.SendEmail(guest.Email, data.GuestName, subject, plainBody, htmlBody); err != nil {
			log.Printf("email for reservation %s not sent: %v", res.ID, err)
		}
	}()
	if guest.Phone != "" {
		sms := fmt.Sprintf("Reservation %s is %s. Check-in: %s. Details in your email.",
			data.ReservationID, status, data.CheckInFormatted)
		go func() {
			if err := s.Sender.SendSMS(guest.Phone, sms); err != nil {
				log.Printf("SMS for reservation %s not sent: %v", res.ID, err)
			}
		}()
	}
}

// ListNotifications returns notifications newest first plus the unread count.
func (s *NotifyService) ListNotifications(ctx context.Context) (*entities.NotificationsList, error) {
	notifications, err := s.Notifications.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing notifications: %w", err)
	}
	sort.SliceStable(notifications, func(i, j int) bool {
		return notifications[i].CreatedAt.After(notifications[j].CreatedAt)
	})
	unread := 0
	for _, n := range notifications {
		if !n.Read {
			unread++
		}
	}
	return &entities.NotificationsList{Unread: unread, Notifications: notifications}, nil
}

func (s *NotifyService) MarkRead(ctx context.Context, id string) (*db.Notification, error) {
	n, err := s.Notifications.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	updated := *n
	updated.Read = true
	return s.Notifications.Update(ctx, id, updated)
}

func (s *NotifyService) MarkAllRead(ctx context.Context) error {
	notifications, err := s.Notifications.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("listing notifications: %w", err)
	}
	for _, n := range notifications {
		if n.Read {
			continue
		}
		n.Read = true
		if _, err := s.Notifications.Update(ctx, n.ID, n); err != nil {
			return fmt.Errorf("marking notification %s read: %w", n.ID, err)
		}
	}
	return nil
}

func (s *NotifyService) DeleteNotification(ctx context.Context, id string) error {
	return s.Notifications.Delete(ctx, id)
}
