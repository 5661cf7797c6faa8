package payment

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	memberdomain "gymdesk/internal/domain/member"
	paymentdomain "gymdesk/internal/domain/payment"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Transaction(ctx context.Context, fn func(paymentdomain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&PostgresRepository{db: tx})
	})
}

// LockMemberEndDate holds a FOR UPDATE lock on the member row for the rest of
// the transaction, serializing concurrent extensions of the same member.
func (r *PostgresRepository) LockMemberEndDate(ctx context.Context, memberID string) (*time.Time, error) {
	var m memberdomain.Member
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("id", "end_date").
		Where("id = ?", memberID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, paymentdomain.ErrMemberNotFound
		}
		return nil, err
	}
	return m.EndDate, nil
}

func (r *PostgresRepository) CreatePayment(ctx context.Context, p *paymentdomain.Payment) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PostgresRepository) UpdateMemberExpiry(ctx context.Context, memberID string, endDate time.Time, status string) error {
	result := r.db.WithContext(ctx).
		Model(&memberdomain.Member{}).
		Where("id = ?", memberID).
		Updates(map[string]interface{}{
			"end_date":   endDate,
			"status":     status,
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return paymentdomain.ErrMemberNotFound
	}
	return nil
}

func (r *PostgresRepository) History(ctx context.Context, memberID string) ([]paymentdomain.HistoryEntry, error) {
	query := r.db.WithContext(ctx).
		Table("payments p").
		Select("p.*, m.full_name AS member_name, m.email AS member_email").
		Joins("JOIN members m ON m.id = p.member_id")

	if memberID != "" {
		query = query.Where("p.member_id = ?", memberID)
	}

	var entries []paymentdomain.HistoryEntry
	if err := query.Order("p.payment_date desc").Scan(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *PostgresRepository) TotalRevenue(ctx context.Context) (float64, error) {
	var row struct {
		Total float64 `gorm:"column:total"`
	}
	if err := r.db.WithContext(ctx).
		Raw("SELECT COALESCE(SUM(amount), 0) AS total FROM payments").
		Scan(&row).Error; err != nil {
		return 0, err
	}
	return row.Total, nil
}
