package plan

import "time"

// Plan is a price/duration template. Nothing ties a plan to a member or a
// payment; the admin enters the extension length per payment.
type Plan struct {
	ID           string    `gorm:"type:uuid;primaryKey" json:"id"`
	Name         string    `gorm:"uniqueIndex;not null" json:"name"`
	Price        float64   `gorm:"type:numeric(10,2);not null" json:"price"`
	DurationDays int       `gorm:"not null" json:"duration_days"`
	Features     string    `gorm:"not null;default:''" json:"features"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type CreatePlanInput struct {
	Name         string
	Price        float64
	DurationDays int
	Features     string
}

// UpdatePlanInput is a partial update: nil fields keep their stored value.
type UpdatePlanInput struct {
	ID           string
	Name         *string
	Price        *float64
	DurationDays *int
	Features     *string
}
