package profile

import (
	"context"

	"github.com/medichat/medichat-client/internal/domain"
	apperrors "github.com/medichat/medichat-client/internal/errors"
	"github.com/medichat/medichat-client/internal/logger"
)

var validGenders = map[string]bool{"male": true, "female": true, "other": true}

var validCommunication = map[string]bool{"Email": true, "SMS": true, "Call": true}

// Service fetches and saves the medical profile wholesale. The record is
// owned by the backend; the client only validates the fields the setup form
// requires before posting.
type Service struct {
	gateway domain.Gateway
}

func NewService(gateway domain.Gateway) *Service {
	return &Service{gateway: gateway}
}

func (s *Service) Fetch(ctx context.Context) (*domain.Profile, error) {
	return s.gateway.GetProfile(ctx)
}

func (s *Service) Save(ctx context.Context, p *domain.Profile) error {
	if err := Validate(p); err != nil {
		return err
	}
	if err := s.gateway.SaveProfile(ctx, p); err != nil {
		return err
	}
	logger.Info("Profile saved")
	return nil
}

// Validate rejects profiles the backend would refuse, without a network
// call.
func Validate(p *domain.Profile) error {
	if p == nil {
		return apperrors.NewValidationError("Profile is required")
	}
	if p.PersonalInformation.FullName == "" {
		return apperrors.NewValidationError("Full name is required")
	}
	if !validGenders[p.PersonalInformation.Gender] {
		return apperrors.NewValidationError("Invalid gender. Must be 'male', 'female', or 'other'")
	}
	if pc := p.ConsentPreferences.PreferredCommunication; pc != "" && !validCommunication[pc] {
		return apperrors.NewValidationError("Preferred communication must be 'Email', 'SMS', or 'Call'")
	}
	return nil
}
