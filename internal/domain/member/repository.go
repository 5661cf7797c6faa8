package member

import "context"

type Repository interface {
	List(ctx context.Context) ([]Member, error)
	GetByID(ctx context.Context, id string) (*Member, error)
	ExistsByEmailOrPhone(ctx context.Context, email, phone string) (bool, error)
	Create(ctx context.Context, member *Member) error
	Update(ctx context.Context, member *Member) error
	Delete(ctx context.Context, id string) (bool, error)

	// HasPayments reports whether any payment row references the member.
	// Deletion is refused while history exists; the payments FK enforces the
	// same rule at the store.
	HasPayments(ctx context.Context, memberID string) (bool, error)
}
