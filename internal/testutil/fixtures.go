package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"balanza/internal/models"

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

// CreateTestBusiness creates a business with the given user as OWNER.
func CreateTestBusiness(t *testing.T, db *gorm.DB, ownerID string) *models.Business {
	t.Helper()

	business := &models.Business{
		Name: fmt.Sprintf("Test Business %d", nextID()),
	}
	if err := db.Create(business).Error; err != nil {
		t.Fatalf("failed to create test business: %v", err)
	}

	member := &models.BusinessMember{
		BusinessID: business.ID,
		UserID:     ownerID,
		Role:       models.RoleOwner,
	}
	if err := db.Create(member).Error; err != nil {
		t.Fatalf("failed to create test business membership: %v", err)
	}
	return business
}

// CreateTestFund creates a cash fund with a zero balance projection row.
func CreateTestFund(t *testing.T, db *gorm.DB, businessID string) *models.Fund {
	t.Helper()

	fund := &models.Fund{
		BusinessID: businessID,
		Name:       fmt.Sprintf("Test Fund %d", nextID()),
		FundType:   models.FundTypeCash,
		Currency:   "COP",
		IsActive:   true,
	}
	if err := db.Create(fund).Error; err != nil {
		t.Fatalf("failed to create test fund: %v", err)
	}

	balance := &models.Balance{
		BusinessID: businessID,
		EntityType: models.EntityTypeFund,
		EntityID:   fund.ID,
		Balance:    0,
		Currency:   fund.Currency,
	}
	if err := db.Create(balance).Error; err != nil {
		t.Fatalf("failed to create test fund balance row: %v", err)
	}
	return fund
}

// CreateTestCard creates a card with the given credit limit, fully available.
func CreateTestCard(t *testing.T, db *gorm.DB, businessID string, creditLimit int64) *models.Card {
	t.Helper()

	card := &models.Card{
		BusinessID:  businessID,
		Name:        fmt.Sprintf("Test Card %d", nextID()),
		CreditLimit: creditLimit,
		ClosingDay:  15,
		DueDay:      30,
		Currency:    "COP",
		IsActive:    true,
	}
	if err := db.Create(card).Error; err != nil {
		t.Fatalf("failed to create test card: %v", err)
	}

	balance := &models.Balance{
		BusinessID: businessID,
		EntityType: models.EntityTypeCard,
		EntityID:   card.ID,
		Balance:    0,
		Currency:   card.Currency,
	}
	if err := db.Create(balance).Error; err != nil {
		t.Fatalf("failed to create test card balance row: %v", err)
	}
	return card
}

// CreateTestOverlimitCard creates a card allowed to spend past its limit by
// the given allowance.
func CreateTestOverlimitCard(t *testing.T, db *gorm.DB, businessID string, creditLimit, overlimitLimit int64) *models.Card {
	t.Helper()

	card := &models.Card{
		BusinessID:     businessID,
		Name:           fmt.Sprintf("Test Overlimit Card %d", nextID()),
		CreditLimit:    creditLimit,
		ClosingDay:     15,
		DueDay:         30,
		AllowOverlimit: true,
		OverlimitLimit: overlimitLimit,
		Currency:       "COP",
		IsActive:       true,
	}
	if err := db.Create(card).Error; err != nil {
		t.Fatalf("failed to create test overlimit card: %v", err)
	}

	balance := &models.Balance{
		BusinessID: businessID,
		EntityType: models.EntityTypeCard,
		EntityID:   card.ID,
		Balance:    0,
		Currency:   card.Currency,
	}
	if err := db.Create(balance).Error; err != nil {
		t.Fatalf("failed to create test card balance row: %v", err)
	}
	return card
}

// CreateTestCategory creates a category for the given business.
func CreateTestCategory(t *testing.T, db *gorm.DB, businessID string) *models.Category {
	t.Helper()

	category := &models.Category{
		BusinessID: businessID,
		Name:       fmt.Sprintf("Test Category %d", nextID()),
		Color:      "#3b82f6",
	}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}
	return category
}
