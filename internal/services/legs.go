package services

import (
	apperrors "balanza/internal/errors"
	"balanza/internal/models"
)

// ComputeLegs deterministically maps a validated transaction to the ordered
// list of signed entity deltas it produces. The sign convention is uniform
// across entity types: a positive signed amount increases a fund's balance or
// a card's available credit, a negative one decreases it. A card charge is
// therefore a negative card leg, and a card payment a positive one.
//
//	INCOME        fund +amount
//	EXPENSE       fund -amount
//	TRANSFER      fund -amount  (source only; no destination is modeled)
//	CARD_CHARGE   card -amount
//	CARD_PAYMENT  fund -amount, card +amount
//
// The result is never empty and never contains a zero-amount leg; callers
// must have validated amount > 0 and the presence of the required entity
// references beforehand.
func ComputeLegs(txType models.TransactionType, amount int64, fundID, cardID *string, currency string) ([]models.TransactionLeg, error) {
	fundLeg := func(signed int64) models.TransactionLeg {
		return models.TransactionLeg{
			EntityType:   models.EntityTypeFund,
			EntityID:     *fundID,
			SignedAmount: signed,
			Currency:     currency,
		}
	}
	cardLeg := func(signed int64) models.TransactionLeg {
		return models.TransactionLeg{
			EntityType:   models.EntityTypeCard,
			EntityID:     *cardID,
			SignedAmount: signed,
			Currency:     currency,
		}
	}

	switch txType {
	case models.TransactionTypeIncome:
		return []models.TransactionLeg{fundLeg(amount)}, nil
	case models.TransactionTypeExpense, models.TransactionTypeTransfer:
		return []models.TransactionLeg{fundLeg(-amount)}, nil
	case models.TransactionTypeCardCharge:
		return []models.TransactionLeg{cardLeg(-amount)}, nil
	case models.TransactionTypeCardPayment:
		return []models.TransactionLeg{fundLeg(-amount), cardLeg(amount)}, nil
	default:
		return nil, apperrors.ErrInvalidType
	}
}

// requiredEntities reports which entity references a transaction type needs.
func requiredEntities(txType models.TransactionType) (needsFund, needsCard bool, err error) {
	switch txType {
	case models.TransactionTypeIncome, models.TransactionTypeExpense, models.TransactionTypeTransfer:
		return true, false, nil
	case models.TransactionTypeCardCharge:
		return false, true, nil
	case models.TransactionTypeCardPayment:
		return true, true, nil
	default:
		return false, false, apperrors.ErrInvalidType
	}
}
