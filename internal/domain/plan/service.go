package plan

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

func (s *Service) List(ctx context.Context) ([]Plan, error) {
	return s.repo.List(ctx)
}

func (s *Service) Create(ctx context.Context, input CreatePlanInput) (*Plan, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if input.Price < 0 {
		return nil, fmt.Errorf("%w: price must be non-negative", ErrValidation)
	}
	if input.DurationDays <= 0 {
		return nil, fmt.Errorf("%w: duration_days must be positive", ErrValidation)
	}

	exists, err := s.repo.ExistsByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicatePlan
	}

	p := Plan{
		ID:           uuid.NewString(),
		Name:         name,
		Price:        input.Price,
		DurationDays: input.DurationDays,
		Features:     strings.TrimSpace(input.Features),
	}

	if err := s.repo.Create(ctx, &p); err != nil {
		return nil, err
	}

	return &p, nil
}

func (s *Service) Update(ctx context.Context, input UpdatePlanInput) (*Plan, error) {
	p, err := s.repo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: name cannot be empty", ErrValidation)
		}
		if name != p.Name {
			exists, err := s.repo.ExistsByName(ctx, name)
			if err != nil {
				return nil, err
			}
			if exists {
				return nil, ErrDuplicatePlan
			}
		}
		p.Name = name
	}
	if input.Price != nil {
		if *input.Price < 0 {
			return nil, fmt.Errorf("%w: price must be non-negative", ErrValidation)
		}
		p.Price = *input.Price
	}
	if input.DurationDays != nil {
		if *input.DurationDays <= 0 {
			return nil, fmt.Errorf("%w: duration_days must be positive", ErrValidation)
		}
		p.DurationDays = *input.DurationDays
	}
	if input.Features != nil {
		p.Features = strings.TrimSpace(*input.Features)
	}
	p.UpdatedAt = s.now().UTC()

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrPlanNotFound
	}
	return nil
}
