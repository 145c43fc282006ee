package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind represents the category of a transaction
type TransactionKind string

const (
	TransactionKindIncome    TransactionKind = "income"
	TransactionKindExpense   TransactionKind = "expense"
	TransactionKindLending   TransactionKind = "lending"
	TransactionKindBorrowing TransactionKind = "borrowing"
)

// Valid reports whether k is one of the four supported kinds.
func (k TransactionKind) Valid() bool {
	switch k {
	case TransactionKindIncome, TransactionKindExpense,
		TransactionKindLending, TransactionKindBorrowing:
		return true
	}
	return false
}

// Transaction represents a single financial event owned by one user.
// BorrowerEmail, ReminderCount, and LastReminderSentAt are only meaningful
// when Kind is borrowing; for other kinds BorrowerEmail is NULL and the
// reminder fields stay at their zero values.
type Transaction struct {
	Base
	UserID        string          `gorm:"type:uuid;not null;index" json:"user_id"`
	Kind          TransactionKind `gorm:"not null" json:"kind"`
	Amount        decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"amount"`
	Description   string          `gorm:"not null" json:"description"`
	Date          time.Time       `gorm:"not null" json:"date"`
	BorrowerEmail *string         `json:"borrower_email,omitempty"`

	ReminderCount      int        `gorm:"not null;default:0" json:"reminder_count"`
	LastReminderSentAt *time.Time `json:"last_reminder_sent_at,omitempty"`
}
