package member

import (
	"context"
	"errors"

	"gorm.io/gorm"

	memberdomain "gymdesk/internal/domain/member"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context) ([]memberdomain.Member, error) {
	var items []memberdomain.Member
	if err := r.db.WithContext(ctx).
		Order("created_at desc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*memberdomain.Member, error) {
	var m memberdomain.Member
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, memberdomain.ErrMemberNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (r *PostgresRepository) ExistsByEmailOrPhone(ctx context.Context, email, phone string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&memberdomain.Member{}).
		Where("email = ? OR phone = ?", email, phone).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *PostgresRepository) Create(ctx context.Context, m *memberdomain.Member) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *PostgresRepository) Update(ctx context.Context, m *memberdomain.Member) error {
	return r.db.WithContext(ctx).
		Model(&memberdomain.Member{}).
		Where("id = ?", m.ID).
		Updates(map[string]interface{}{
			"full_name":  m.FullName,
			"email":      m.Email,
			"phone":      m.Phone,
			"status":     m.Status,
			"end_date":   m.EndDate,
			"updated_at": m.UpdatedAt,
		}).Error
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&memberdomain.Member{}, "id = ?", id)
	return result.RowsAffected > 0, result.Error
}

func (r *PostgresRepository) HasPayments(ctx context.Context, memberID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Table("payments").
		Where("member_id = ?", memberID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
