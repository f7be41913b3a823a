package model

type WorkshopCategory struct {
	BaseModel
	Name        string `gorm:"type:varchar(100);not null" json:"name" form:"name" binding:"required"`
	Description string `gorm:"type:text;not null" json:"description" form:"description" binding:"required"`
	// FontAwesome icon class
	Icon string `gorm:"type:varchar(50)" json:"icon" form:"icon"`
	// Hex color code
	Color string `gorm:"type:varchar(7);default:#007bff" json:"color" form:"color" binding:"omitempty,hexcolor"`
}

func (wc WorkshopCategory) TableName() string {
	return "workshop_categories"
}
