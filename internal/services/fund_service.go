package services

import (
	"errors"

	"gorm.io/gorm"

	"balanza/internal/config"
	apperrors "balanza/internal/errors"
	"balanza/internal/models"
	"balanza/internal/pagination"
)

// fundService handles fund-related business logic.
type fundService struct {
	db     *gorm.DB
	ledger LedgerServicer
}

// NewFundService creates a new FundServicer.
func NewFundService(db *gorm.DB, ledger LedgerServicer) FundServicer {
	return &fundService{db: db, ledger: ledger}
}

// CreateFund creates a new fund for a business. The fund's balance
// projection row is created at zero in the same transaction so the ledger
// apply step always finds a row to fold legs into.
func (s *fundService) CreateFund(businessID, name string, fundType models.FundType, currency string) (*models.Fund, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "fund name is required")
	}

	switch fundType {
	case models.FundTypeCash, models.FundTypeBank, models.FundTypeWallet:
	default:
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "fund type must be CASH, BANK or WALLET")
	}

	if currency == "" {
		currency = config.Get().DefaultCurrency
	}

	fund := &models.Fund{
		BusinessID: businessID,
		Name:       name,
		FundType:   fundType,
		Currency:   currency,
		IsActive:   true,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(fund).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		row := &models.Balance{
			BusinessID: businessID,
			EntityType: models.EntityTypeFund,
			EntityID:   fund.ID,
			Balance:    0,
			Currency:   currency,
		}
		if err := tx.Create(row).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return fund, nil
}

// GetFund retrieves an active fund by ID scoped to a business, with its
// current derived balance populated.
func (s *fundService) GetFund(businessID, fundID string) (*models.Fund, error) {
	var fund models.Fund
	if err := s.db.Where("id = ? AND business_id = ? AND is_active = ?", fundID, businessID, true).
		First(&fund).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrFundNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	balance, err := s.ledger.GetEntityBalance(businessID, models.EntityTypeFund, fund.ID)
	if err != nil {
		return nil, err
	}
	fund.Balance = balance

	return &fund, nil
}

// GetBusinessFunds retrieves a paginated list of active funds with balances.
func (s *fundService) GetBusinessFunds(businessID string, page pagination.PageRequest) (*pagination.PageResponse[models.Fund], error) {
	page.Defaults()

	base := s.db.Model(&models.Fund{}).Where("business_id = ? AND is_active = ?", businessID, true)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var funds []models.Fund
	if err := base.Scopes(pagination.Paginate(page)).Order("name").Find(&funds).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if err := s.enrichBalances(businessID, funds); err != nil {
		return nil, err
	}

	result := pagination.NewPageResponse(funds, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// UpdateFund updates a fund's mutable fields. Funds are never deleted;
// deactivation hides them from the registry and blocks new transactions.
func (s *fundService) UpdateFund(businessID, fundID string, fields FundUpdateFields) (*models.Fund, error) {
	fund, err := s.GetFund(businessID, fundID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if fields.Name != nil && *fields.Name != "" {
		updates["name"] = *fields.Name
	}
	if fields.IsActive != nil {
		updates["is_active"] = *fields.IsActive
	}

	if len(updates) > 0 {
		if err := s.db.Model(fund).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := s.db.Where("id = ?", fund.ID).First(fund).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return fund, nil
}

// enrichBalances fills in derived balances for a slice of funds in one query.
func (s *fundService) enrichBalances(businessID string, funds []models.Fund) error {
	if len(funds) == 0 {
		return nil
	}

	ids := make([]string, 0, len(funds))
	for i := range funds {
		ids = append(ids, funds[i].ID)
	}

	var rows []models.Balance
	if err := s.db.Where("business_id = ? AND entity_type = ? AND entity_id IN ?",
		businessID, models.EntityTypeFund, ids).Find(&rows).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	byEntity := make(map[string]int64, len(rows))
	for _, row := range rows {
		byEntity[row.EntityID] = row.Balance
	}
	for i := range funds {
		funds[i].Balance = byEntity[funds[i].ID]
	}
	return nil
}
