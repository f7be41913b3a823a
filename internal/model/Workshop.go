package model

import (
	"time"

	"github.com/SeakMengs/WorkshopHub/internal/constant"
)

// Workshop is a booked instance of a workshop type. The uuid primary key is
// assigned once in BeforeCreate and never rewritten.
type Workshop struct {
	BaseModel
	Date        time.Time               `gorm:"type:date;not null" json:"date" form:"date" binding:"required" time_format:"2006-01-02"`
	Status      constant.WorkshopStatus `gorm:"type:int;default:0" json:"status"`
	TncAccepted bool                    `gorm:"type:boolean;not null" json:"tncAccepted" form:"tncAccepted"`

	CoordinatorID string  `gorm:"type:text;not null" json:"coordinatorId"`
	Coordinator   User    `gorm:"constraint:OnDelete:CASCADE" json:"coordinator,omitempty"`
	InstructorID  *string `gorm:"type:text" json:"instructorId"`
	Instructor    *User   `gorm:"foreignKey:InstructorID;constraint:OnDelete:CASCADE" json:"instructor,omitempty"`

	WorkshopTypeID string       `gorm:"type:text;not null" json:"workshopTypeId" form:"workshopTypeId" binding:"required"`
	WorkshopType   WorkshopType `gorm:"constraint:OnDelete:CASCADE" json:"workshopType,omitempty"`

	Schedule *WorkshopSchedule `gorm:"constraint:OnDelete:CASCADE" json:"schedule,omitempty"`
}

func (w Workshop) TableName() string {
	return "workshops"
}

func (w Workshop) StatusLabel() string {
	return w.Status.Label()
}
