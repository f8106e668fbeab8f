package service

import (
	"context"
	"fmt"

	"frontdesk/internal/db"
	"frontdesk/internal/entities"
	"frontdesk/internal/store"
)

type GuestService struct {
	Guests store.GuestStore
}

func NewGuestService(stores *store.Stores) *GuestService {
	return &GuestService{Guests: stores.Guests}
}

func (s *GuestService) List(ctx context.Context) ([]db.Guest, error) {
	return s.Guests.GetAll(ctx)
}

func (s *GuestService) Get(ctx context.Context, id string) (*db.Guest, error) {
	return s.Guests.GetByID(ctx, id)
}

func guestFromRequest(in entities.GuestRequest) db.Guest {
	return db.Guest{
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		Email:       in.Email,
		Phone:       in.Phone,
		IDDocument:  in.IDDocument,
		Address:     in.Address,
		Preferences: in.Preferences,
		GuestType:   in.GuestType,
	}
}

func (s *GuestService) Create(ctx context.Context, in entities.GuestRequest) (*db.Guest, error) {
	guest, err := s.Guests.Create(ctx, guestFromRequest(in))
	if err != nil {
		return nil, fmt.Errorf("creating guest: %w", err)
	}
	return guest, nil
}

func (s *GuestService) Update(ctx context.Context, id string, in entities.GuestRequest) (*db.Guest, error) {
	if _, err := s.Guests.GetByID(ctx, id); err != nil {
		return nil, err
	}
	guest, err := s.Guests.Update(ctx, id, guestFromRequest(in))
	if err != nil {
		return nil, fmt.Errorf("updating guest: %w", err)
	}
	return guest, nil
}

func (s *GuestService) Delete(ctx context.Context, id string) error {
	return s.Guests.Delete(ctx, id)
}
