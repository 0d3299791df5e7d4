package models

import "time"

// User represents an authenticated person. Access to ledger data is always
// granted through a business membership, never directly on the user.
type User struct {
	Base
	Email            string     `gorm:"uniqueIndex;not null" json:"email"`
	Password         string     `gorm:"not null" json:"-"`
	FullName         string     `json:"full_name"`
	IsActive         bool       `gorm:"default:true" json:"is_active"`
	RefreshTokenHash string     `gorm:"size:64" json:"-"`
	LastLoginAt      *time.Time `json:"last_login_at,omitempty"`

	Memberships []BusinessMember `gorm:"foreignKey:UserID" json:"memberships,omitempty"`
}
