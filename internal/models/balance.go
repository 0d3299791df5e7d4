package models

import (
	"time"

	"balanza/internal/uuid"

	"gorm.io/gorm"
)

// Balance is the materialized running total of all legs for one entity,
// keyed by (business, entity type, entity id). It is a derived cache over the
// append-only leg log: the ledger mutates it in lockstep with leg creation,
// and it must always be reconstructible by replaying legs from zero.
// No Base embed, no soft deletes.
type Balance struct {
	ID         string     `gorm:"type:uuid;primaryKey" json:"-"`
	BusinessID string     `gorm:"type:uuid;not null;uniqueIndex:uq_balances_entity" json:"business_id"`
	EntityType EntityType `gorm:"not null;uniqueIndex:uq_balances_entity" json:"entity_type"`
	EntityID   string     `gorm:"type:uuid;not null;uniqueIndex:uq_balances_entity" json:"entity_id"`
	Balance    int64      `gorm:"type:bigint;not null;default:0" json:"balance"`
	Currency   string     `gorm:"not null;default:'COP'" json:"currency"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// BeforeCreate hook generates a UUIDv7 for new records
func (b *Balance) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.New()
	}
	return nil
}
