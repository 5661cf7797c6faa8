package admin

import (
	"context"
	"errors"

	"gorm.io/gorm"

	admindomain "gymdesk/internal/domain/admin"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*admindomain.Admin, error) {
	var a admindomain.Admin
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&a).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, admindomain.ErrAdminNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *PostgresRepository) Create(ctx context.Context, a *admindomain.Admin) error {
	return r.db.WithContext(ctx).Create(a).Error
}
