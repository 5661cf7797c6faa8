package payment

import "time"

// Recognized payment methods. Storage is free-form; the list only applies when
// the service is configured with a strict allow-list.
const (
	MethodCash     = "Cash"
	MethodCard     = "Card"
	MethodTransfer = "Online Transfer"
)

// Payment is immutable once inserted: no update or delete path exists.
type Payment struct {
	ID                string    `gorm:"type:uuid;primaryKey" json:"id"`
	MemberID          string    `gorm:"type:uuid;index;not null" json:"member_id"`
	Amount            float64   `gorm:"type:numeric(10,2);not null" json:"amount"`
	PaymentMethod     string    `gorm:"not null;default:Cash" json:"payment_method"`
	DurationExtension int       `gorm:"not null" json:"duration_extension"`
	Remarks           string    `gorm:"not null;default:''" json:"remarks"`
	PaymentDate       time.Time `gorm:"autoCreateTime" json:"payment_date"`
}

// HistoryEntry is a payment joined with the paying member's name and email.
type HistoryEntry struct {
	ID                string    `gorm:"column:id" json:"id"`
	MemberID          string    `gorm:"column:member_id" json:"member_id"`
	Amount            float64   `gorm:"column:amount" json:"amount"`
	PaymentMethod     string    `gorm:"column:payment_method" json:"payment_method"`
	DurationExtension int       `gorm:"column:duration_extension" json:"duration_extension"`
	Remarks           string    `gorm:"column:remarks" json:"remarks"`
	PaymentDate       time.Time `gorm:"column:payment_date" json:"payment_date"`
	MemberName        string    `gorm:"column:member_name" json:"full_name"`
	MemberEmail       string    `gorm:"column:member_email" json:"email"`
}

type RecordPaymentInput struct {
	MemberID      string
	Amount        float64
	Method        string
	ExtensionDays int
	Remarks       string
}

// RecordPaymentResult reports the outcome of a committed ledger transition.
type RecordPaymentResult struct {
	PaymentID  string
	NewEndDate time.Time
}
