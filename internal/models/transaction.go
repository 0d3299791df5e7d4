package models

// TransactionType represents the financial meaning of a transaction
type TransactionType string

const (
	TransactionTypeExpense     TransactionType = "EXPENSE"
	TransactionTypeIncome      TransactionType = "INCOME"
	TransactionTypeTransfer    TransactionType = "TRANSFER"
	TransactionTypeCardCharge  TransactionType = "CARD_CHARGE"
	TransactionTypeCardPayment TransactionType = "CARD_PAYMENT"
)

// TransactionStatus tracks a transaction through its lifecycle. Only applied
// transactions are ever persisted: a rejected or failed submission leaves no
// record. The status column exists so the stored state is explicit.
type TransactionStatus string

const (
	StatusPending   TransactionStatus = "PENDING"
	StatusValidated TransactionStatus = "VALIDATED"
	StatusApplied   TransactionStatus = "APPLIED"
	StatusRejected  TransactionStatus = "REJECTED"
	StatusFailed    TransactionStatus = "FAILED"
)

// Transaction is an immutable financial event. Once applied, neither the
// transaction nor its legs are ever edited or deleted; corrections are
// entered as compensating transactions.
type Transaction struct {
	Base
	BusinessID  string            `gorm:"type:uuid;not null;index" json:"business_id"`
	Type        TransactionType   `gorm:"not null" json:"type"`
	Amount      int64             `gorm:"type:bigint;not null" json:"amount"`
	Currency    string            `gorm:"not null;default:'COP'" json:"currency"`
	Description string            `json:"description,omitempty"`
	Reference   string            `json:"reference,omitempty"`
	CategoryID  *string           `gorm:"type:uuid" json:"category_id,omitempty"`
	FundID      *string           `gorm:"type:uuid" json:"fund_id,omitempty"`
	CardID      *string           `gorm:"type:uuid" json:"card_id,omitempty"`
	CreatedBy   string            `gorm:"type:uuid;not null" json:"created_by"`
	Status      TransactionStatus `gorm:"not null;default:'APPLIED'" json:"status"`

	Category *Category        `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Fund     *Fund            `gorm:"foreignKey:FundID" json:"fund,omitempty"`
	Card     *Card            `gorm:"foreignKey:CardID" json:"card,omitempty"`
	Legs     []TransactionLeg `gorm:"foreignKey:TransactionID" json:"legs,omitempty"`
}

// EntityType identifies which kind of account a leg or balance refers to.
type EntityType string

const (
	EntityTypeFund EntityType = "FUND"
	EntityTypeCard EntityType = "CARD"
)

// TransactionLeg is one signed delta applied to exactly one entity as a
// consequence of a transaction. A positive signed amount increases a fund's
// balance or a card's available credit; a negative one decreases it. Legs are
// owned exclusively by their transaction and created atomically with it.
type TransactionLeg struct {
	Base
	TransactionID string     `gorm:"type:uuid;not null;index" json:"transaction_id"`
	EntityType    EntityType `gorm:"not null" json:"entity_type"`
	EntityID      string     `gorm:"type:uuid;not null" json:"entity_id"`
	SignedAmount  int64      `gorm:"type:bigint;not null" json:"signed_amount"`
	Currency      string     `gorm:"not null;default:'COP'" json:"currency"`

	Transaction Transaction `gorm:"foreignKey:TransactionID" json:"transaction,omitempty"`
}
