package entities

import (
	"github.com/google/uuid"
)

type Account struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name     string    `gorm:"column:account;size:64;not null;uniqueIndex" json:"account"`
	Password string    `gorm:"not null" json:"-"`
	Role     string    `gorm:"size:16;not null;default:user;check:chk_accounts_role,role IN ('user','admin')" json:"role"`

	Profile *Profile `gorm:"foreignKey:AccountID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Timestamp
}

// Profile is the display identity of an account, one-to-one.
type Profile struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	AccountID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"account_id"`
	FirstName string    `gorm:"size:64;not null" json:"first_name"`
	LastName  string    `gorm:"size:64;not null" json:"last_name"`
	Photo     string    `gorm:"type:text" json:"photo,omitempty"`
	Bio       string    `gorm:"type:text" json:"bio,omitempty"`

	Timestamp
}
