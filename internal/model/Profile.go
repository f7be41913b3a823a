package model

import (
	"time"

	"github.com/SeakMengs/WorkshopHub/internal/constant"
)

// Profile extends a user with the institute metadata collected at
// registration. A user has at most one profile.
type Profile struct {
	BaseModel
	Title                string            `gorm:"type:varchar(32)" json:"title" form:"title"`
	Institute            string            `gorm:"type:varchar(150);not null" json:"institute" form:"institute" binding:"required"`
	Department           string            `gorm:"type:varchar(150);not null" json:"department" form:"department" binding:"required"`
	PhoneNumber          string            `gorm:"type:varchar(10);not null" json:"phoneNumber" form:"phoneNumber" binding:"required,len=10,numeric"`
	Position             constant.Position `gorm:"type:varchar(32);default:coordinator" json:"position" form:"position" binding:"omitempty,oneof=coordinator instructor"`
	HowDidYouHearAboutUs string            `gorm:"type:varchar(255)" json:"howDidYouHearAboutUs" form:"howDidYouHearAboutUs"`
	Location             string            `gorm:"type:varchar(255)" json:"location" form:"location"`
	State                string            `gorm:"type:varchar(255);default:IN-MH" json:"state" form:"state"`
	IsEmailVerified      bool              `gorm:"type:boolean;default:false" json:"isEmailVerified"`
	ActivationKey        string            `gorm:"type:varchar(255)" json:"-"`
	KeyExpiryTime        *time.Time        `gorm:"type:timestamptz" json:"-"`

	UserID string `gorm:"type:text;not null;uniqueIndex" json:"userId"`
	User   User   `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

func (p Profile) TableName() string {
	return "profiles"
}

func (p Profile) StateName() string {
	return constant.StateName(p.State)
}
