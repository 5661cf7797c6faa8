package plan

import (
	"context"
	"errors"

	"gorm.io/gorm"

	plandomain "gymdesk/internal/domain/plan"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context) ([]plandomain.Plan, error) {
	var items []plandomain.Plan
	if err := r.db.WithContext(ctx).
		Order("price asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*plandomain.Plan, error) {
	var p plandomain.Plan
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, plandomain.ErrPlanNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *PostgresRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&plandomain.Plan{}).
		Where("name = ?", name).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *PostgresRepository) Create(ctx context.Context, p *plandomain.Plan) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PostgresRepository) Update(ctx context.Context, p *plandomain.Plan) error {
	return r.db.WithContext(ctx).
		Model(&plandomain.Plan{}).
		Where("id = ?", p.ID).
		Updates(map[string]interface{}{
			"name":          p.Name,
			"price":         p.Price,
			"duration_days": p.DurationDays,
			"features":      p.Features,
			"updated_at":    p.UpdatedAt,
		}).Error
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&plandomain.Plan{}, "id = ?", id)
	return result.RowsAffected > 0, result.Error
}
