package payment

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"gymdesk/internal/domain/member"
)

// Service is the membership ledger: recording a payment and extending the
// member's expiry happen in one all-or-nothing transaction. The operation is
// not idempotent; retrying a call whose outcome is unknown can double-extend.
type Service struct {
	repo           Repository
	allowedMethods map[string]struct{}
	now            func() time.Time
}

// NewService builds the ledger. allowedMethods, when non-empty, restricts
// payment methods; otherwise any method string is stored verbatim.
func NewService(repo Repository, allowedMethods []string) *Service {
	var allowed map[string]struct{}
	if len(allowedMethods) > 0 {
		allowed = make(map[string]struct{}, len(allowedMethods))
		for _, m := range allowedMethods {
			allowed[strings.TrimSpace(m)] = struct{}{}
		}
	}
	return &Service{repo: repo, allowedMethods: allowed, now: time.Now}
}

// RecordPayment persists the payment and recomputes the member's end date.
// Either both writes commit or neither does.
func (s *Service) RecordPayment(ctx context.Context, input RecordPaymentInput) (*RecordPaymentResult, error) {
	if strings.TrimSpace(input.MemberID) == "" {
		return nil, fmt.Errorf("%w: member_id is required", ErrValidation)
	}
	if input.ExtensionDays <= 0 {
		return nil, fmt.Errorf("%w: duration_days must be positive", ErrValidation)
	}
	if input.Amount < 0 {
		return nil, fmt.Errorf("%w: amount must be non-negative", ErrValidation)
	}

	method := strings.TrimSpace(input.Method)
	if method == "" {
		method = MethodCash
	}
	if s.allowedMethods != nil {
		if _, ok := s.allowedMethods[method]; !ok {
			return nil, ErrUnknownMethod
		}
	}

	var result RecordPaymentResult

	err := s.repo.Transaction(ctx, func(tx Repository) error {
		currentEnd, err := tx.LockMemberEndDate(ctx, input.MemberID)
		if err != nil {
			return err
		}

		now := s.now()
		newEnd := ExtendEndDate(currentEnd, now, input.ExtensionDays)

		p := Payment{
			ID:                uuid.NewString(),
			MemberID:          input.MemberID,
			Amount:            input.Amount,
			PaymentMethod:     method,
			DurationExtension: input.ExtensionDays,
			Remarks:           strings.TrimSpace(input.Remarks),
			PaymentDate:       now.UTC(),
		}
		if err := tx.CreatePayment(ctx, &p); err != nil {
			return err
		}

		// Reactivates unconditionally, matching the payment contract.
		if err := tx.UpdateMemberExpiry(ctx, input.MemberID, newEnd, member.StatusActive); err != nil {
			return err
		}

		result = RecordPaymentResult{PaymentID: p.ID, NewEndDate: newEnd}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// History lists payments joined with member name/email, newest first.
// memberID filters to a single member when non-empty.
func (s *Service) History(ctx context.Context, memberID string) ([]HistoryEntry, error) {
	return s.repo.History(ctx, strings.TrimSpace(memberID))
}

// TotalRevenue sums all recorded payment amounts.
func (s *Service) TotalRevenue(ctx context.Context) (float64, error) {
	return s.repo.TotalRevenue(ctx)
}
