package models

// BusinessRole represents a member's permission level within a business.
type BusinessRole string

const (
	RoleOwner  BusinessRole = "OWNER"
	RoleAdmin  BusinessRole = "ADMIN"
	RoleMember BusinessRole = "MEMBER"
	RoleViewer BusinessRole = "VIEWER"
)

// Business is the tenant boundary. It exclusively owns all funds, cards,
// categories and transactions created under it; its id is never reused.
type Business struct {
	Base
	Name string `gorm:"not null" json:"name"`

	Members      []BusinessMember `gorm:"foreignKey:BusinessID" json:"members,omitempty"`
	Funds        []Fund           `gorm:"foreignKey:BusinessID" json:"funds,omitempty"`
	Cards        []Card           `gorm:"foreignKey:BusinessID" json:"cards,omitempty"`
	Categories   []Category       `gorm:"foreignKey:BusinessID" json:"categories,omitempty"`
	Transactions []Transaction    `gorm:"foreignKey:BusinessID" json:"transactions,omitempty"`
}

// BusinessMember links a user to a business with a role.
type BusinessMember struct {
	Base
	BusinessID string       `gorm:"type:uuid;not null;uniqueIndex:uq_member_business_user" json:"business_id"`
	UserID     string       `gorm:"type:uuid;not null;uniqueIndex:uq_member_business_user" json:"user_id"`
	Role       BusinessRole `gorm:"not null" json:"role"`

	Business Business `gorm:"foreignKey:BusinessID" json:"business,omitempty"`
	User     User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
