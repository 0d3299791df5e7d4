package models

import "gorm.io/gorm"

// Card is a revolving-credit account tracked by available credit against a
// limit. AvailableCredit is authoritative and mutated only by the ledger
// apply step; it may go below zero only when AllowOverlimit is set, and then
// never below -OverlimitLimit.
type Card struct {
	Base
	BusinessID      string `gorm:"type:uuid;not null;index" json:"business_id"`
	Name            string `gorm:"not null" json:"name"`
	LastFour        string `gorm:"size:4" json:"last_four,omitempty"`
	CreditLimit     int64  `gorm:"type:bigint;not null" json:"credit_limit"`
	AvailableCredit int64  `gorm:"type:bigint;not null" json:"available_credit"`
	ClosingDay      int    `gorm:"not null" json:"closing_day"`
	DueDay          int    `gorm:"not null" json:"due_day"`
	AllowOverlimit  bool   `gorm:"default:false" json:"allow_overlimit"`
	OverlimitLimit  int64  `gorm:"type:bigint;not null;default:0" json:"overlimit_limit"`
	Currency        string `gorm:"not null;default:'COP'" json:"currency"`
	IsActive        bool   `gorm:"default:true" json:"is_active"`

	Business Business `gorm:"foreignKey:BusinessID" json:"business,omitempty"`
}

// BeforeCreate hook starts a new card with all of its credit available.
func (c *Card) BeforeCreate(tx *gorm.DB) error {
	if err := c.Base.BeforeCreate(tx); err != nil {
		return err
	}
	if c.AvailableCredit == 0 {
		c.AvailableCredit = c.CreditLimit
	}
	if !c.AllowOverlimit {
		c.OverlimitLimit = 0
	}
	return nil
}

// CreditFloor returns the lowest available credit this card may reach.
func (c *Card) CreditFloor() int64 {
	if c.AllowOverlimit {
		return -c.OverlimitLimit
	}
	return 0
}
