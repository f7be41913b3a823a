package model

type Comment struct {
	BaseModel
	Comment string `gorm:"type:text;not null" json:"comment" form:"comment" binding:"required"`
	Public  bool   `gorm:"type:boolean;default:true" json:"public" form:"public"`

	AuthorID   string   `gorm:"type:text;not null" json:"authorId"`
	Author     User     `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"author,omitempty"`
	WorkshopID string   `gorm:"type:text;not null;index" json:"workshopId"`
	Workshop   Workshop `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

func (c Comment) TableName() string {
	return "comments"
}
