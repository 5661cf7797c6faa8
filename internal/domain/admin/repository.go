package admin

import "context"

type Repository interface {
	GetByEmail(ctx context.Context, email string) (*Admin, error)
	Create(ctx context.Context, admin *Admin) error
}
