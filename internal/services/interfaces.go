package services

import (
	"time"

	"gorm.io/gorm"

	"balanza/internal/models"
	"balanza/internal/pagination"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(email, password, fullName string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
	StoreRefreshTokenHash(userID, tokenHash string) error
	GetRefreshTokenHash(userID string) (string, error)
}

// BusinessServicer defines the contract for tenant management.
type BusinessServicer interface {
	CreateBusiness(userID, name string) (*models.Business, error)
	GetUserBusinesses(userID string) ([]models.Business, error)
	GetMembership(businessID, userID string) (*models.BusinessMember, error)
	AddMember(businessID, ownerID, userID string, role models.BusinessRole) (*models.BusinessMember, error)
}

// FundUpdateFields holds optional fields for updating a fund.
type FundUpdateFields struct {
	Name     *string
	IsActive *bool
}

// FundServicer is the fund side of the entity registry: scoped lookups that
// expose the fund's latest known balance, plus the management surface.
type FundServicer interface {
	CreateFund(businessID, name string, fundType models.FundType, currency string) (*models.Fund, error)
	GetFund(businessID, fundID string) (*models.Fund, error)
	GetBusinessFunds(businessID string, page pagination.PageRequest) (*pagination.PageResponse[models.Fund], error)
	UpdateFund(businessID, fundID string, fields FundUpdateFields) (*models.Fund, error)
}

// CardInput holds the fields for creating a card.
type CardInput struct {
	Name           string
	LastFour       string
	CreditLimit    int64
	ClosingDay     int
	DueDay         int
	AllowOverlimit bool
	OverlimitLimit int64
	Currency       string
}

// CardUpdateFields holds optional fields for updating a card.
type CardUpdateFields struct {
	Name           *string
	LastFour       *string
	ClosingDay     *int
	DueDay         *int
	AllowOverlimit *bool
	OverlimitLimit *int64
	IsActive       *bool
}

// CardServicer is the card side of the entity registry.
type CardServicer interface {
	CreateCard(businessID string, input CardInput) (*models.Card, error)
	GetCard(businessID, cardID string) (*models.Card, error)
	GetBusinessCards(businessID string, page pagination.PageRequest) (*pagination.PageResponse[models.Card], error)
	UpdateCard(businessID, cardID string, fields CardUpdateFields) (*models.Card, error)
}

// CategoryServicer defines the contract for category-related business logic.
type CategoryServicer interface {
	CreateCategory(businessID, name, color, icon string, parentID *string) (*models.Category, error)
	GetBusinessCategories(businessID string, page pagination.PageRequest) (*pagination.PageResponse[models.Category], error)
	GetCategoryByID(businessID, categoryID string) (*models.Category, error)
	UpdateCategory(businessID, categoryID string, name, color, icon string, parentID *string) (*models.Category, error)
	DeleteCategory(businessID, categoryID string) error
}

// LedgerServicer applies computed legs to entity balances and serves the
// derived balance projection. ApplyLegs must be called inside the same
// database transaction that persists the owning transaction and its legs.
type LedgerServicer interface {
	ApplyLegs(tx *gorm.DB, businessID string, legs []models.TransactionLeg) (*ApplyResult, error)
	GetBalances(businessID string) ([]models.Balance, error)
	GetEntityBalance(businessID string, entityType models.EntityType, entityID string) (int64, error)
	Recompute(businessID string, entityType models.EntityType, entityID string) (*models.Balance, error)
}

// ApplyResult carries the final state of every entity touched by an apply.
type ApplyResult struct {
	Balances []models.Balance
	Cards    []models.Card
}

// TransactionInput is the transaction submission request shape.
type TransactionInput struct {
	Type        models.TransactionType
	Amount      int64
	Currency    string
	Description string
	Reference   string
	CategoryID  *string
	FundID      *string
	CardID      *string
}

// TransactionFilter holds optional filter parameters for listing transactions.
type TransactionFilter struct {
	FromDate   *time.Time
	ToDate     *time.Time
	Type       *models.TransactionType
	CategoryID *string
	FundID     *string
	CardID     *string
}

// TransactionResult is the outcome of a successful submission: the applied
// transaction plus the final balances of all touched entities.
type TransactionResult struct {
	Transaction *models.Transaction `json:"transaction"`
	Balances    []models.Balance    `json:"balances"`
}

// TransactionServicer defines the contract for the transaction submission
// boundary.
type TransactionServicer interface {
	CreateTransaction(userID, businessID string, input TransactionInput) (*TransactionResult, error)
	GetBusinessTransactions(businessID string, page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error)
	GetTransactionByID(businessID, transactionID string) (*models.Transaction, error)
}

// DashboardStats aggregates the figures shown on the finance dashboard.
type DashboardStats struct {
	TotalIncome        int64                `json:"total_income"`
	TotalExpense       int64                `json:"total_expense"`
	Net                int64                `json:"net"`
	FundsTotal         int64                `json:"funds_total"`
	CardsDebt          int64                `json:"cards_debt"`
	RecentTransactions []models.Transaction `json:"recent_transactions"`
}

// DashboardServicer defines the contract for dashboard aggregation.
type DashboardServicer interface {
	GetStats(businessID string) (*DashboardStats, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(userID, businessID, action, resourceType, resourceID, ipAddress string, changes map[string]interface{})
}
