package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/logger"
	"fintrack/internal/mailer"
	"fintrack/internal/models"
	"fintrack/internal/uuid"
)

// reminderService sends borrower reminder emails and records that a
// reminder went out.
type reminderService struct {
	db          *gorm.DB
	userService UserServicer
	mail        mailer.Mailer
}

// NewReminderService creates a new ReminderServicer.
func NewReminderService(db *gorm.DB, userService UserServicer, mail mailer.Mailer) ReminderServicer {
	return &reminderService{db: db, userService: userService, mail: mail}
}

// SendReminder emails the borrower of a borrowing transaction and bumps the
// transaction's reminder count. The send is attempted at most once: transport
// failure is reported to the caller without retry and leaves the count
// untouched. If recording the send fails after the email went out, the
// failure is logged and swallowed so the caller is not pushed into sending
// a duplicate.
func (s *reminderService) SendReminder(userID, transactionID, borrowerEmail string) (*ReminderResult, error) {
	if !uuid.IsValid(transactionID) {
		return nil, apperrors.ErrInvalidTransactionID
	}
	if borrowerEmail == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "borrower email is required")
	}

	transaction, err := s.getBorrowingTransaction(userID, transactionID)
	if err != nil {
		return nil, err
	}

	lender, err := s.userService.GetUserByID(userID)
	if err != nil {
		return nil, err
	}

	email := mailer.ReminderEmail{
		BorrowerName:  "Borrower", // no borrower accounts exist, only an address
		LenderName:    lender.DisplayName(),
		Amount:        transaction.Amount,
		BorrowDate:    transaction.Date.Format("02/01/2006"),
		Description:   transaction.Description,
		TransactionID: transaction.ID,
	}

	body, err := email.HTML()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	messageID, err := s.mail.Send(borrowerEmail, email.Subject(), body)
	if err != nil {
		appErr := apperrors.WithMessage(apperrors.ErrEmailDeliveryFailed, "Failed to send email: "+err.Error())
		appErr.Internal = err
		return nil, appErr
	}

	s.recordReminderSent(userID, transaction)

	return &ReminderResult{
		ReminderCount: transaction.ReminderCount + 1,
		MessageID:     messageID,
	}, nil
}

func (s *reminderService) getBorrowingTransaction(userID, transactionID string) (*models.Transaction, error) {
	var transaction models.Transaction
	err := s.db.Where("id = ? AND user_id = ?", transactionID, userID).First(&transaction).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if transaction.Kind != models.TransactionKindBorrowing {
		return nil, apperrors.ErrNotBorrowingTransaction
	}
	return &transaction, nil
}

// recordReminderSent increments the reminder count and stamps the send time.
// The increment is a SQL expression so concurrent sends for the same
// transaction cannot under-count each other.
func (s *reminderService) recordReminderSent(userID string, transaction *models.Transaction) {
	now := time.Now()
	err := s.db.Model(&models.Transaction{}).
		Where("id = ? AND user_id = ?", transaction.ID, userID).
		Updates(map[string]interface{}{
			"reminder_count":        gorm.Expr("reminder_count + ?", 1),
			"last_reminder_sent_at": now,
		}).Error
	if err != nil {
		// Email already went out; re-sending would be worse than a stale counter.
		logger.Get().Errorw("failed to record reminder send",
			"error", err,
			"transaction_id", transaction.ID,
			"user_id", userID,
		)
	}
}
