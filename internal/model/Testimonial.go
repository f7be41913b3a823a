package model

// Testimonial is standalone, admin-curated content shown on the public site.
type Testimonial struct {
	BaseModel
	Name       string `gorm:"type:varchar(150);not null" json:"name" form:"name" binding:"required"`
	Institute  string `gorm:"type:varchar(255);not null" json:"institute" form:"institute" binding:"required"`
	Department string `gorm:"type:varchar(150);not null" json:"department" form:"department" binding:"required"`
	Message    string `gorm:"type:text;not null" json:"message" form:"message" binding:"required"`
}

func (t Testimonial) TableName() string {
	return "testimonials"
}
