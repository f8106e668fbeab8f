package service

import (
	"context"
	"fmt"

	"frontdesk/internal/db"
	apperr "frontdesk/internal/errors"
	"frontdesk/internal/store"
)

type ProfileService struct {
	Profile store.ProfileStore
}

func NewProfileService(stores *store.Stores) *ProfileService {
	return &ProfileService{Profile: stores.Profile}
}

func (s *ProfileService) Get(ctx context.Context) (*db.StaffProfile, error) {
	return s.Profile.Get(ctx)
}

func (s *ProfileService) Update(ctx context.Context, in db.StaffProfile) (*db.StaffProfile, error) {
	if in.FirstName == "" || in.LastName == "" {
		return nil, apperr.NewValidation("first and last name are required")
	}
	if in.Email == "" {
		return nil, apperr.NewValidation("email is required")
	}
	existing, err := s.Profile.Get(ctx)
	if err != nil {
		return nil, err
	}
	in.ID = existing.ID
	profile, err := s.Profile.Update(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("updating profile: %w", err)
	}
	return profile, nil
}
