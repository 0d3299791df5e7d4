package models

// Category is a descriptive label for transactions, optionally nested one
// level under a parent of the same business. Carries no balance semantics.
type Category struct {
	Base
	BusinessID string  `gorm:"type:uuid;not null;index" json:"business_id"`
	Name       string  `gorm:"not null" json:"name"`
	Color      string  `json:"color"`
	Icon       string  `json:"icon,omitempty"`
	ParentID   *string `gorm:"type:uuid" json:"parent_id,omitempty"`

	Parent   *Category  `gorm:"foreignKey:ParentID" json:"parent,omitempty"`
	Children []Category `gorm:"foreignKey:ParentID" json:"children,omitempty"`
	Business Business   `gorm:"foreignKey:BusinessID" json:"business,omitempty"`
}
