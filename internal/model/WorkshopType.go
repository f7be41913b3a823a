package model

import (
	"fmt"

	"github.com/SeakMengs/WorkshopHub/internal/constant"
)

// WorkshopType is a reusable template an admin curates; coordinators book
// workshop instances against it.
type WorkshopType struct {
	BaseModel
	Name        string `gorm:"type:varchar(120);not null" json:"name" form:"name" binding:"required"`
	Description string `gorm:"type:text;not null" json:"description" form:"description" binding:"required"`
	// Duration in days
	Duration             uint                     `gorm:"type:int;not null" json:"duration" form:"duration" binding:"required,gte=1"`
	TermsAndConditions   string                   `gorm:"type:text;not null" json:"termsAndConditions" form:"termsAndConditions" binding:"required"`
	DifficultyLevel      constant.DifficultyLevel `gorm:"type:varchar(20);default:beginner" json:"difficultyLevel" form:"difficultyLevel" binding:"omitempty,oneof=beginner intermediate advanced"`
	Prerequisites        string                   `gorm:"type:text" json:"prerequisites" form:"prerequisites"`
	LearningOutcomes     string                   `gorm:"type:text" json:"learningOutcomes" form:"learningOutcomes"`
	MaterialsProvided    string                   `gorm:"type:text" json:"materialsProvided" form:"materialsProvided"`
	CertificationOffered bool                     `gorm:"type:boolean;default:false" json:"certificationOffered" form:"certificationOffered"`

	CategoryID *string           `gorm:"type:text" json:"categoryId" form:"categoryId"`
	Category   *WorkshopCategory `gorm:"constraint:OnDelete:SET NULL" json:"category,omitempty"`
}

func (wt WorkshopType) TableName() string {
	return "workshop_types"
}

func (wt WorkshopType) String() string {
	return fmt.Sprintf("%s for %d day(s)", wt.Name, wt.Duration)
}
