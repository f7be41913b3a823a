package model

// Banner holds raw markup displayed on the homepage when active.
type Banner struct {
	BaseModel
	Title  string `gorm:"type:varchar(500);not null" json:"title" form:"title" binding:"required"`
	Html   string `gorm:"type:text;not null" json:"html" form:"html" binding:"required"`
	Active bool   `gorm:"type:boolean;default:false" json:"active" form:"active"`
}

func (b Banner) TableName() string {
	return "banners"
}
