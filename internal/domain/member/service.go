package member

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

func (s *Service) List(ctx context.Context) ([]Member, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id string) (*Member, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, input CreateMemberInput) (*Member, error) {
	fullName := strings.TrimSpace(input.FullName)
	email := strings.TrimSpace(input.Email)
	phone := strings.TrimSpace(input.Phone)

	if fullName == "" {
		return nil, fmt.Errorf("%w: full_name is required", ErrValidation)
	}
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", ErrValidation)
	}
	if phone == "" {
		return nil, fmt.Errorf("%w: phone is required", ErrValidation)
	}

	exists, err := s.repo.ExistsByEmailOrPhone(ctx, email, phone)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateMember
	}

	status := input.Status
	if status == "" {
		status = StatusActive
	}
	if status != StatusActive && status != StatusInactive {
		return nil, fmt.Errorf("%w: status must be %q or %q", ErrValidation, StatusActive, StatusInactive)
	}

	startDate := input.StartDate
	if startDate.IsZero() {
		startDate = s.now().UTC().Truncate(24 * time.Hour)
	}

	m := Member{
		ID:        uuid.NewString(),
		FullName:  fullName,
		Email:     email,
		Phone:     phone,
		StartDate: startDate,
		EndDate:   input.EndDate,
		Status:    status,
	}

	if err := s.repo.Create(ctx, &m); err != nil {
		return nil, err
	}

	return &m, nil
}

func (s *Service) Update(ctx context.Context, input UpdateMemberInput) (*Member, error) {
	m, err := s.repo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.FullName != nil {
		if strings.TrimSpace(*input.FullName) == "" {
			return nil, fmt.Errorf("%w: full_name cannot be empty", ErrValidation)
		}
		m.FullName = strings.TrimSpace(*input.FullName)
	}
	if input.Email != nil {
		if strings.TrimSpace(*input.Email) == "" {
			return nil, fmt.Errorf("%w: email cannot be empty", ErrValidation)
		}
		m.Email = strings.TrimSpace(*input.Email)
	}
	if input.Phone != nil {
		if strings.TrimSpace(*input.Phone) == "" {
			return nil, fmt.Errorf("%w: phone cannot be empty", ErrValidation)
		}
		m.Phone = strings.TrimSpace(*input.Phone)
	}
	if input.Status != nil {
		if *input.Status != StatusActive && *input.Status != StatusInactive {
			return nil, fmt.Errorf("%w: status must be %q or %q", ErrValidation, StatusActive, StatusInactive)
		}
		m.Status = *input.Status
	}
	if input.EndDate != nil {
		m.EndDate = input.EndDate
	}
	m.UpdatedAt = s.now().UTC()

	if err := s.repo.Update(ctx, m); err != nil {
		return nil, err
	}

	return m, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	hasPayments, err := s.repo.HasPayments(ctx, id)
	if err != nil {
		return err
	}
	if hasPayments {
		return ErrMemberHasPayments
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrMemberNotFound
	}
	return nil
}
