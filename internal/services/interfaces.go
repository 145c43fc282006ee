package services

import (
	"time"

	"github.com/shopspring/decimal"

	"fintrack/internal/models"
	"fintrack/internal/pagination"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(email, password, firstName, lastName string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
}

// TransactionFilter holds optional filter parameters for listing transactions.
type TransactionFilter struct {
	Kind     *models.TransactionKind
	FromDate *time.Time
	ToDate   *time.Time
}

// Summary aggregates a user's transactions by kind. Balance is
// income - expense + borrowing - lending: money borrowed is cash in hand,
// money lent is cash out the door.
type Summary struct {
	TotalIncome   decimal.Decimal `json:"total_income"`
	TotalExpense  decimal.Decimal `json:"total_expense"`
	TotalLent     decimal.Decimal `json:"total_lent"`
	TotalBorrowed decimal.Decimal `json:"total_borrowed"`
	Balance       decimal.Decimal `json:"balance"`
}

// TransactionServicer defines the contract for transaction-related business logic.
// Every operation takes the owner's user id and never touches rows belonging
// to anyone else.
type TransactionServicer interface {
	CreateTransaction(userID string, kind models.TransactionKind, amount decimal.Decimal, description string, date time.Time, borrowerEmail string) (*models.Transaction, error)
	GetUserTransactions(userID string, page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error)
	GetTransactionByID(userID, transactionID string) (*models.Transaction, error)
	UpdateTransaction(userID, transactionID string, kind models.TransactionKind, amount decimal.Decimal, description string, date time.Time) (*models.Transaction, error)
	DeleteTransaction(userID, transactionID string) error
	GetSummary(userID string) (*Summary, error)
}

// ReminderResult reports the outcome of a successful reminder send.
type ReminderResult struct {
	ReminderCount int
	MessageID     string
}

// ReminderServicer defines the contract for sending borrower reminders.
type ReminderServicer interface {
	SendReminder(userID, transactionID, borrowerEmail string) (*ReminderResult, error)
}
