package member

import "time"

// Stored status values. "expired" is never stored; it is derived on read from
// end_date so the two can't drift apart.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
	StatusExpired  = "expired"
)

// Member is a gym member. EndDate is nil until the first payment or a manual
// edit sets one.
type Member struct {
	ID        string     `gorm:"type:uuid;primaryKey" json:"id"`
	FullName  string     `gorm:"not null" json:"full_name"`
	Email     string     `gorm:"uniqueIndex;not null" json:"email"`
	Phone     string     `gorm:"uniqueIndex;not null" json:"phone"`
	StartDate time.Time  `gorm:"type:date;not null" json:"start_date"`
	EndDate   *time.Time `gorm:"type:date" json:"end_date"`
	Status    string     `gorm:"not null;default:active" json:"-"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

// EffectiveStatus reports the member's status as of now. A member the admin
// marked inactive stays inactive; an active member whose end date has passed
// (or was never set) reads as expired.
func (m *Member) EffectiveStatus(now time.Time) string {
	if m.Status == StatusInactive {
		return StatusInactive
	}
	if m.EndDate == nil || m.EndDate.Before(now) {
		return StatusExpired
	}
	return StatusActive
}

// CreateMemberInput carries the fields accepted when registering a member.
type CreateMemberInput struct {
	FullName  string
	Email     string
	Phone     string
	StartDate time.Time
	EndDate   *time.Time
	Status    string
}

// UpdateMemberInput is a partial update: nil fields keep their stored value.
type UpdateMemberInput struct {
	ID       string
	FullName *string
	Email    *string
	Phone    *string
	Status   *string
	EndDate  *time.Time
}
