package services

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/pagination"
)

// validate is used for field-level checks outside of request binding,
// such as borrower email addresses arriving through the create payload.
var validate = validator.New()

// transactionService handles transaction-related business logic.
type transactionService struct {
	db *gorm.DB
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB) TransactionServicer {
	return &transactionService{db: db}
}

// CreateTransaction creates a new transaction owned by the given user.
// For borrowing transactions a non-empty borrower email must be a valid
// address; an empty one is stored as the empty string so a reminder can be
// addressed later. For every other kind the borrower email is discarded and
// stored as NULL.
func (s *transactionService) CreateTransaction(
	userID string,
	kind models.TransactionKind,
	amount decimal.Decimal,
	description string,
	date time.Time,
	borrowerEmail string,
) (*models.Transaction, error) {
	if err := validateTransactionFields(kind, amount, description, date); err != nil {
		return nil, err
	}

	transaction := &models.Transaction{
		UserID:      userID,
		Kind:        kind,
		Amount:      amount,
		Description: strings.TrimSpace(description),
		Date:        date,
	}

	if kind == models.TransactionKindBorrowing {
		if borrowerEmail != "" {
			if err := validate.Var(borrowerEmail, "email"); err != nil {
				return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid borrower email")
			}
		}
		transaction.BorrowerEmail = &borrowerEmail
	}

	if err := s.db.Create(transaction).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return transaction, nil
}

// GetUserTransactions retrieves a paginated, filtered list of the user's
// transactions, most recent event first.
func (s *transactionService) GetUserTransactions(userID string, page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error) {
	page.Defaults()

	base := s.db.Model(&models.Transaction{}).Where("user_id = ?", userID)
	if filter.Kind != nil {
		base = base.Where("kind = ?", *filter.Kind)
	}
	if filter.FromDate != nil {
		base = base.Where("date >= ?", *filter.FromDate)
	}
	if filter.ToDate != nil {
		base = base.Where("date <= ?", *filter.ToDate)
	}

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var transactions []models.Transaction
	if err := base.Scopes(pagination.Paginate(page)).
		Order("date DESC").
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(transactions, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetTransactionByID retrieves a transaction by ID for a specific user.
// A row owned by someone else reports not-found, not forbidden.
func (s *transactionService) GetTransactionByID(userID, transactionID string) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := s.db.Where("id = ? AND user_id = ?", transactionID, userID).First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &transaction, nil
}

// UpdateTransaction rewrites the kind, amount, description, and date of an
// existing transaction. Partial updates are not supported: all four fields
// are replaced together. Borrower email and reminder bookkeeping are left
// untouched.
func (s *transactionService) UpdateTransaction(
	userID, transactionID string,
	kind models.TransactionKind,
	amount decimal.Decimal,
	description string,
	date time.Time,
) (*models.Transaction, error) {
	if err := validateTransactionFields(kind, amount, description, date); err != nil {
		return nil, err
	}

	transaction, err := s.GetTransactionByID(userID, transactionID)
	if err != nil {
		return nil, err
	}

	transaction.Kind = kind
	transaction.Amount = amount
	transaction.Description = strings.TrimSpace(description)
	transaction.Date = date

	if err := s.db.Save(transaction).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return transaction, nil
}

// DeleteTransaction permanently deletes a transaction. The delete is
// filtered by id AND owner, so a guessed id belonging to another user
// reports not-found and removes nothing.
func (s *transactionService) DeleteTransaction(userID, transactionID string) error {
	result := s.db.Where("id = ? AND user_id = ?", transactionID, userID).Delete(&models.Transaction{})
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrTransactionNotFound
	}
	return nil
}

// GetSummary computes per-kind totals and the running balance for a user.
// Sums are computed in decimal arithmetic rather than in SQL so the result
// is exact regardless of how the database stores numerics.
func (s *transactionService) GetSummary(userID string) (*Summary, error) {
	var rows []struct {
		Kind   models.TransactionKind
		Amount decimal.Decimal
	}
	if err := s.db.Model(&models.Transaction{}).
		Select("kind, amount").
		Where("user_id = ?", userID).
		Find(&rows).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	summary := &Summary{}
	for _, row := range rows {
		switch row.Kind {
		case models.TransactionKindIncome:
			summary.TotalIncome = summary.TotalIncome.Add(row.Amount)
		case models.TransactionKindExpense:
			summary.TotalExpense = summary.TotalExpense.Add(row.Amount)
		case models.TransactionKindLending:
			summary.TotalLent = summary.TotalLent.Add(row.Amount)
		case models.TransactionKindBorrowing:
			summary.TotalBorrowed = summary.TotalBorrowed.Add(row.Amount)
		}
	}
	summary.Balance = summary.TotalIncome.
		Sub(summary.TotalExpense).
		Add(summary.TotalBorrowed).
		Sub(summary.TotalLent)

	return summary, nil
}

func validateTransactionFields(kind models.TransactionKind, amount decimal.Decimal, description string, date time.Time) error {
	if !kind.Valid() {
		return apperrors.ErrInvalidTransactionKind
	}
	if !amount.IsPositive() {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}
	if strings.TrimSpace(description) == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "description is required")
	}
	if date.IsZero() {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "date is required")
	}
	return nil
}
