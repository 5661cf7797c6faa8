package payment

import (
	"context"
	"time"
)

type Repository interface {
	// Transaction runs fn against a repository bound to a single database
	// transaction. If fn returns an error every write made inside it is
	// rolled back; the transaction handle is released on every exit path.
	Transaction(ctx context.Context, fn func(Repository) error) error

	// LockMemberEndDate reads the member's current end date and locks the row
	// until the surrounding transaction ends, so the read-extend-write
	// sequence cannot lose a concurrent extension. Returns ErrMemberNotFound
	// when no such member exists.
	LockMemberEndDate(ctx context.Context, memberID string) (*time.Time, error)

	CreatePayment(ctx context.Context, payment *Payment) error

	// UpdateMemberExpiry sets the member's end_date and stored status.
	UpdateMemberExpiry(ctx context.Context, memberID string, endDate time.Time, status string) error

	// History returns payments joined with member name/email, newest first,
	// optionally filtered to one member (empty memberID means all).
	History(ctx context.Context, memberID string) ([]HistoryEntry, error)

	// TotalRevenue sums all payment amounts; zero when none exist.
	TotalRevenue(ctx context.Context) (float64, error)
}
