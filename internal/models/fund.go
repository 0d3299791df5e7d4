package models

// FundType represents the kind of cash-like account a fund is
type FundType string

const (
	FundTypeCash   FundType = "CASH"
	FundTypeBank   FundType = "BANK"
	FundTypeWallet FundType = "WALLET"
)

// Fund is a cash-like account (cash box, bank account, digital wallet).
// Its balance is derived from the leg log and served from the balances
// projection; the Balance field here is populated at query time only.
type Fund struct {
	Base
	BusinessID string   `gorm:"type:uuid;not null;index" json:"business_id"`
	Name       string   `gorm:"not null" json:"name"`
	FundType   FundType `gorm:"not null" json:"fund_type"`
	Currency   string   `gorm:"not null;default:'COP'" json:"currency"`
	IsActive   bool     `gorm:"default:true" json:"is_active"`
	Balance    int64    `gorm:"-" json:"balance"` // Populated from the balances projection

	Business Business `gorm:"foreignKey:BusinessID" json:"business,omitempty"`
}
