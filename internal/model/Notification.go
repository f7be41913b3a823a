package model

import "github.com/SeakMengs/WorkshopHub/internal/constant"

type Notification struct {
	BaseModel
	Type    constant.NotificationType `gorm:"type:varchar(50);not null" json:"type"`
	Title   string                    `gorm:"type:varchar(200);not null" json:"title"`
	Message string                    `gorm:"type:text;not null" json:"message"`
	IsRead  bool                      `gorm:"type:boolean;default:false" json:"isRead"`

	UserID            string    `gorm:"type:text;not null;index" json:"userId"`
	User              User      `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	RelatedWorkshopID *string   `gorm:"type:text" json:"relatedWorkshopId"`
	RelatedWorkshop   *Workshop `gorm:"foreignKey:RelatedWorkshopID;constraint:OnDelete:CASCADE" json:"relatedWorkshop,omitempty"`
}

func (n Notification) TableName() string {
	return "notifications"
}
