package model

// WorkshopRating holds one user's 1-5 score for a workshop. The composite
// unique index makes the storage layer reject a second rating for the same
// (workshop, user) pair, including under concurrent inserts.
type WorkshopRating struct {
	BaseModel
	Rating   int    `gorm:"type:int;not null" json:"rating" form:"rating" binding:"required,gte=1,lte=5"`
	Feedback string `gorm:"type:text" json:"feedback" form:"feedback"`

	WorkshopID string   `gorm:"type:text;not null;uniqueIndex:idx_rating_workshop_user" json:"workshopId"`
	Workshop   Workshop `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	UserID     string   `gorm:"type:text;not null;uniqueIndex:idx_rating_workshop_user" json:"userId"`
	User       User     `gorm:"constraint:OnDelete:CASCADE" json:"user,omitempty"`
}

func (wr WorkshopRating) TableName() string {
	return "workshop_ratings"
}
