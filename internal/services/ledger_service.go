package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "balanza/internal/errors"
	"balanza/internal/models"
)

// ledgerService applies signed legs to entity balances and serves the
// derived balance projection.
type ledgerService struct {
	db *gorm.DB
}

// NewLedgerService creates a new LedgerServicer.
func NewLedgerService(db *gorm.DB) LedgerServicer {
	return &ledgerService{db: db}
}

// ApplyLegs applies every leg to its entity inside the caller's database
// transaction. Each read-modify-write happens as a single SQL UPDATE with an
// expression, so concurrent applies against the same entity serialize at the
// storage layer and no update is lost. Card legs are guarded by the card's
// credit floor in the WHERE clause: a charge that would break the floor
// matches no row and the whole transaction rolls back.
func (s *ledgerService) ApplyLegs(tx *gorm.DB, businessID string, legs []models.TransactionLeg) (*ApplyResult, error) {
	result := &ApplyResult{}

	for i := range legs {
		leg := &legs[i]
		switch leg.EntityType {
		case models.EntityTypeCard:
			if err := s.applyCardLeg(tx, businessID, leg); err != nil {
				return nil, err
			}
		case models.EntityTypeFund:
			// Funds have no floor; the balance row absorbs the delta directly.
		}

		if err := s.applyBalanceDelta(tx, businessID, leg); err != nil {
			return nil, err
		}
	}

	// Read back the final state of every touched entity.
	seen := make(map[string]bool)
	for i := range legs {
		leg := &legs[i]
		key := string(leg.EntityType) + ":" + leg.EntityID
		if seen[key] {
			continue
		}
		seen[key] = true

		var balance models.Balance
		if err := tx.Where("business_id = ? AND entity_type = ? AND entity_id = ?",
			businessID, leg.EntityType, leg.EntityID).First(&balance).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrPersistenceFailure, err)
		}
		result.Balances = append(result.Balances, balance)

		if leg.EntityType == models.EntityTypeCard {
			var card models.Card
			if err := tx.Where("id = ? AND business_id = ?", leg.EntityID, businessID).First(&card).Error; err != nil {
				return nil, apperrors.Wrap(apperrors.ErrPersistenceFailure, err)
			}
			result.Cards = append(result.Cards, card)
		}
	}

	return result, nil
}

// applyCardLeg moves a card's available credit by the leg's signed amount.
// The floor predicate lives in the WHERE clause: when allow_overlimit is off
// available credit may not go below zero, otherwise not below
// -overlimit_limit. A zero-row update means the floor would be broken.
func (s *ledgerService) applyCardLeg(tx *gorm.DB, businessID string, leg *models.TransactionLeg) error {
	res := tx.Model(&models.Card{}).
		Where("id = ? AND business_id = ? AND is_active = ?", leg.EntityID, businessID, true).
		Where("available_credit + ? >= CASE WHEN allow_overlimit THEN -overlimit_limit ELSE 0 END", leg.SignedAmount).
		Update("available_credit", gorm.Expr("available_credit + ?", leg.SignedAmount))
	if res.Error != nil {
		return apperrors.Wrap(apperrors.ErrPersistenceFailure, res.Error)
	}
	if res.RowsAffected > 0 {
		return nil
	}

	// Nothing matched: distinguish a missing card from a floor violation.
	var card models.Card
	err := tx.Where("id = ? AND business_id = ? AND is_active = ?", leg.EntityID, businessID, true).First(&card).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.ErrCardNotFound
	}
	if err != nil {
		return apperrors.Wrap(apperrors.ErrPersistenceFailure, err)
	}
	if card.AllowOverlimit {
		return apperrors.ErrOverlimitExceeded
	}
	return apperrors.ErrCreditLimitExceeded
}

// applyBalanceDelta folds one leg into the balance projection row for its
// entity, creating the row if the entity predates the projection.
func (s *ledgerService) applyBalanceDelta(tx *gorm.DB, businessID string, leg *models.TransactionLeg) error {
	res := tx.Model(&models.Balance{}).
		Where("business_id = ? AND entity_type = ? AND entity_id = ?", businessID, leg.EntityType, leg.EntityID).
		Updates(map[string]interface{}{
			"balance":    gorm.Expr("balance + ?", leg.SignedAmount),
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return apperrors.Wrap(apperrors.ErrPersistenceFailure, res.Error)
	}
	if res.RowsAffected > 0 {
		return nil
	}

	row := &models.Balance{
		BusinessID: businessID,
		EntityType: leg.EntityType,
		EntityID:   leg.EntityID,
		Balance:    leg.SignedAmount,
		Currency:   leg.Currency,
	}
	if err := tx.Create(row).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrPersistenceFailure, err)
	}
	return nil
}

// GetBalances lists the balance projection for a business.
func (s *ledgerService) GetBalances(businessID string) ([]models.Balance, error) {
	var balances []models.Balance
	if err := s.db.Where("business_id = ?", businessID).
		Order("entity_type, entity_id").
		Find(&balances).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return balances, nil
}

// GetEntityBalance returns the current derived balance of one entity.
// Entities with no balance row yet are reported as zero.
func (s *ledgerService) GetEntityBalance(businessID string, entityType models.EntityType, entityID string) (int64, error) {
	var balance models.Balance
	err := s.db.Where("business_id = ? AND entity_type = ? AND entity_id = ?",
		businessID, entityType, entityID).First(&balance).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return balance.Balance, nil
}

// Recompute replays the leg log for one entity and rewrites its projection
// row, repairing any drift. For cards it also restores available_credit to
// credit_limit plus the replayed sum, since a card's available credit is by
// definition its limit less everything charged and not yet paid.
func (s *ledgerService) Recompute(businessID string, entityType models.EntityType, entityID string) (*models.Balance, error) {
	var repaired models.Balance
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var sum int64
		if err := tx.Model(&models.TransactionLeg{}).
			Joins("JOIN transactions ON transactions.id = transaction_legs.transaction_id").
			Where("transactions.business_id = ? AND transaction_legs.entity_type = ? AND transaction_legs.entity_id = ?",
				businessID, entityType, entityID).
			Select("COALESCE(SUM(transaction_legs.signed_amount), 0)").
			Scan(&sum).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrPersistenceFailure, err)
		}

		res := tx.Model(&models.Balance{}).
			Where("business_id = ? AND entity_type = ? AND entity_id = ?", businessID, entityType, entityID).
			Updates(map[string]interface{}{"balance": sum, "updated_at": time.Now()})
		if res.Error != nil {
			return apperrors.Wrap(apperrors.ErrPersistenceFailure, res.Error)
		}
		if res.RowsAffected == 0 {
			row := &models.Balance{
				BusinessID: businessID,
				EntityType: entityType,
				EntityID:   entityID,
				Balance:    sum,
			}
			if err := tx.Create(row).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrPersistenceFailure, err)
			}
		}

		if entityType == models.EntityTypeCard {
			if err := tx.Model(&models.Card{}).
				Where("id = ? AND business_id = ?", entityID, businessID).
				Update("available_credit", gorm.Expr("credit_limit + ?", sum)).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrPersistenceFailure, err)
			}
		}

		return tx.Where("business_id = ? AND entity_type = ? AND entity_id = ?",
			businessID, entityType, entityID).First(&repaired).Error
	})
	if err != nil {
		return nil, err
	}
	return &repaired, nil
}
