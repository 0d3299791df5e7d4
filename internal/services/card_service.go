package services

import (
	"errors"

	"gorm.io/gorm"

	"balanza/internal/config"
	apperrors "balanza/internal/errors"
	"balanza/internal/models"
	"balanza/internal/pagination"
)

// cardService handles card-related business logic.
type cardService struct {
	db *gorm.DB
}

// NewCardService creates a new CardServicer.
func NewCardService(db *gorm.DB) CardServicer {
	return &cardService{db: db}
}

// CreateCard creates a new card for a business. A new card starts with all
// of its credit available, and its balance projection row starts at zero.
func (s *cardService) CreateCard(businessID string, input CardInput) (*models.Card, error) {
	if input.Name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "card name is required")
	}
	if input.CreditLimit <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "credit limit must be greater than zero")
	}
	if input.ClosingDay < 1 || input.ClosingDay > 31 || input.DueDay < 1 || input.DueDay > 31 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "closing and due days must be between 1 and 31")
	}
	if input.OverlimitLimit < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "overlimit limit cannot be negative")
	}

	currency := input.Currency
	if currency == "" {
		currency = config.Get().DefaultCurrency
	}

	card := &models.Card{
		BusinessID:      businessID,
		Name:            input.Name,
		LastFour:        input.LastFour,
		CreditLimit:     input.CreditLimit,
		AvailableCredit: input.CreditLimit,
		ClosingDay:      input.ClosingDay,
		DueDay:          input.DueDay,
		AllowOverlimit:  input.AllowOverlimit,
		OverlimitLimit:  input.OverlimitLimit,
		Currency:        currency,
		IsActive:        true,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(card).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		row := &models.Balance{
			BusinessID: businessID,
			EntityType: models.EntityTypeCard,
			EntityID:   card.ID,
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

	return card, nil
}

// GetCard retrieves an active card by ID scoped to a business.
func (s *cardService) GetCard(businessID, cardID string) (*models.Card, error) {
	var card models.Card
	if err := s.db.Where("id = ? AND business_id = ? AND is_active = ?", cardID, businessID, true).
		First(&card).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCardNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &card, nil
}

// GetBusinessCards retrieves a paginated list of active cards.
func (s *cardService) GetBusinessCards(businessID string, page pagination.PageRequest) (*pagination.PageResponse[models.Card], error) {
	page.Defaults()

	base := s.db.Model(&models.Card{}).Where("business_id = ? AND is_active = ?", businessID, true)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var cards []models.Card
	if err := base.Scopes(pagination.Paginate(page)).Order("name").Find(&cards).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(cards, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// UpdateCard updates a card's descriptive fields and overlimit policy.
// Credit limit and available credit are not editable here: available credit
// moves only through the ledger, and the limit anchors its invariant.
func (s *cardService) UpdateCard(businessID, cardID string, fields CardUpdateFields) (*models.Card, error) {
	card, err := s.GetCard(businessID, cardID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if fields.Name != nil && *fields.Name != "" {
		updates["name"] = *fields.Name
	}
	if fields.LastFour != nil {
		updates["last_four"] = *fields.LastFour
	}
	if fields.ClosingDay != nil {
		if *fields.ClosingDay < 1 || *fields.ClosingDay > 31 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "closing day must be between 1 and 31")
		}
		updates["closing_day"] = *fields.ClosingDay
	}
	if fields.DueDay != nil {
		if *fields.DueDay < 1 || *fields.DueDay > 31 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "due day must be between 1 and 31")
		}
		updates["due_day"] = *fields.DueDay
	}
	if fields.AllowOverlimit != nil {
		updates["allow_overlimit"] = *fields.AllowOverlimit
		if !*fields.AllowOverlimit {
			updates["overlimit_limit"] = int64(0)
		}
	}
	if fields.OverlimitLimit != nil {
		if *fields.OverlimitLimit < 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "overlimit limit cannot be negative")
		}
		updates["overlimit_limit"] = *fields.OverlimitLimit
	}
	if fields.IsActive != nil {
		updates["is_active"] = *fields.IsActive
	}

	if len(updates) > 0 {
		if err := s.db.Model(card).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := s.db.Where("id = ?", card.ID).First(card).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return card, nil
}
