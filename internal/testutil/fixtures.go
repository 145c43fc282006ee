package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"fintrack/internal/models"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestUserWithEmail creates a user with the given email.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:    email,
		Password: string(hash),
		IsActive: true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestTransaction creates a transaction of the given kind and amount.
func CreateTestTransaction(t *testing.T, db *gorm.DB, userID string, kind models.TransactionKind, amount string) *models.Transaction {
	t.Helper()

	transaction := &models.Transaction{
		UserID:      userID,
		Kind:        kind,
		Amount:      decimal.RequireFromString(amount),
		Description: fmt.Sprintf("Test transaction %d", nextID()),
		Date:        time.Now(),
	}
	if err := db.Create(transaction).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return transaction
}

// CreateTestBorrowing creates a borrowing transaction with a borrower email.
func CreateTestBorrowing(t *testing.T, db *gorm.DB, userID, borrowerEmail, amount string) *models.Transaction {
	t.Helper()

	transaction := &models.Transaction{
		UserID:        userID,
		Kind:          models.TransactionKindBorrowing,
		Amount:        decimal.RequireFromString(amount),
		Description:   fmt.Sprintf("Test borrowing %d", nextID()),
		Date:          time.Now(),
		BorrowerEmail: &borrowerEmail,
	}
	if err := db.Create(transaction).Error; err != nil {
		t.Fatalf("failed to create test borrowing: %v", err)
	}
	return transaction
}
