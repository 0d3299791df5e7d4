package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "balanza/internal/errors"
	"balanza/internal/events"
	"balanza/internal/models"
	"balanza/internal/pagination"
)

// transactionService is the transaction submission boundary: it validates a
// request, computes its legs, applies everything atomically through the
// ledger, and notifies realtime subscribers on success.
type transactionService struct {
	db          *gorm.DB
	fundService FundServicer
	cardService CardServicer
	ledger      LedgerServicer
	hub         *events.Hub
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB, fundService FundServicer, cardService CardServicer, ledger LedgerServicer, hub *events.Hub) TransactionServicer {
	return &transactionService{
		db:          db,
		fundService: fundService,
		cardService: cardService,
		ledger:      ledger,
		hub:         hub,
	}
}

// CreateTransaction submits a transaction. The flow is
// validate -> compute legs -> apply, where apply persists the transaction,
// all of its legs, and every balance update as one atomic unit. A failure at
// any point leaves no record and no balance change; only a fully applied
// transaction is ever observable, and only applied transactions produce
// realtime events.
func (s *transactionService) CreateTransaction(userID, businessID string, input TransactionInput) (*TransactionResult, error) {
	if err := s.validate(businessID, &input); err != nil {
		return nil, err
	}

	legs, err := ComputeLegs(input.Type, input.Amount, input.FundID, input.CardID, input.Currency)
	if err != nil {
		return nil, err
	}

	transaction := &models.Transaction{
		BusinessID:  businessID,
		Type:        input.Type,
		Amount:      input.Amount,
		Currency:    input.Currency,
		Description: input.Description,
		Reference:   input.Reference,
		CategoryID:  input.CategoryID,
		FundID:      input.FundID,
		CardID:      input.CardID,
		CreatedBy:   userID,
		Status:      models.StatusApplied,
	}

	var applied *ApplyResult
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(transaction).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrPersistenceFailure, err)
		}

		for i := range legs {
			legs[i].TransactionID = transaction.ID
		}
		if err := tx.Create(&legs).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrPersistenceFailure, err)
		}

		var applyErr error
		applied, applyErr = s.ledger.ApplyLegs(tx, businessID, legs)
		return applyErr
	})
	if err != nil {
		return nil, err
	}

	transaction.Legs = legs
	s.hub.NotifyApplied(transaction, applied.Balances, applied.Cards)

	return &TransactionResult{Transaction: transaction, Balances: applied.Balances}, nil
}

// validate enforces the structural rules for a submission, in order: amount,
// type, per-type entity requirements, category ownership. It fills in the
// business default currency when the request omits one. Pure besides
// registry reads; nothing is written.
func (s *transactionService) validate(businessID string, input *TransactionInput) error {
	if input.Amount <= 0 {
		return apperrors.ErrInvalidAmount
	}

	needsFund, needsCard, err := requiredEntities(input.Type)
	if err != nil {
		return err
	}

	if needsFund {
		if input.FundID == nil || *input.FundID == "" {
			return apperrors.WithMessage(apperrors.ErrMissingEntity, string(input.Type)+" requires a fund")
		}
		fund, err := s.fundService.GetFund(businessID, *input.FundID)
		if err != nil {
			return err
		}
		if input.Currency == "" {
			input.Currency = fund.Currency
		}
	} else {
		input.FundID = nil
	}

	if needsCard {
		if input.CardID == nil || *input.CardID == "" {
			return apperrors.WithMessage(apperrors.ErrMissingEntity, string(input.Type)+" requires a card")
		}
		card, err := s.cardService.GetCard(businessID, *input.CardID)
		if err != nil {
			return err
		}
		if input.Currency == "" {
			input.Currency = card.Currency
		}
	} else {
		input.CardID = nil
	}

	if input.CategoryID != nil && *input.CategoryID != "" {
		var count int64
		if err := s.db.Model(&models.Category{}).
			Where("id = ? AND business_id = ?", *input.CategoryID, businessID).
			Count(&count).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if count == 0 {
			return apperrors.ErrCategoryNotFound
		}
	} else {
		input.CategoryID = nil
	}

	return nil
}

// GetBusinessTransactions retrieves a paginated, filtered list of
// transactions for a business, newest first.
func (s *transactionService) GetBusinessTransactions(businessID string, page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error) {
	page.Defaults()

	base := s.db.Model(&models.Transaction{}).Where("business_id = ?", businessID)
	base = applyTransactionFilters(base, filter)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var transactions []models.Transaction
	if err := base.Scopes(pagination.Paginate(page)).
		Order("created_at DESC").
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(transactions, page.Page, page.PageSize, totalItems)
	return &result, nil
}

func applyTransactionFilters(q *gorm.DB, f TransactionFilter) *gorm.DB {
	if f.FromDate != nil {
		q = q.Where("created_at >= ?", *f.FromDate)
	}
	if f.ToDate != nil {
		q = q.Where("created_at <= ?", *f.ToDate)
	}
	if f.Type != nil {
		q = q.Where("type = ?", *f.Type)
	}
	if f.CategoryID != nil {
		q = q.Where("category_id = ?", *f.CategoryID)
	}
	if f.FundID != nil {
		q = q.Where("fund_id = ?", *f.FundID)
	}
	if f.CardID != nil {
		q = q.Where("card_id = ?", *f.CardID)
	}
	return q
}

// GetTransactionByID retrieves a transaction with its legs.
func (s *transactionService) GetTransactionByID(businessID, transactionID string) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := s.db.Preload("Legs").
		Where("id = ? AND business_id = ?", transactionID, businessID).
		First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &transaction, nil
}
