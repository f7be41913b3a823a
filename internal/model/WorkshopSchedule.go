package model

type WorkshopSchedule struct {
	BaseModel
	StartTime string `gorm:"type:time;not null" json:"startTime" form:"startTime" binding:"required,datetime=15:04"`
	EndTime   string `gorm:"type:time;not null" json:"endTime" form:"endTime" binding:"required,datetime=15:04"`
	// Break duration in minutes
	BreakDuration     int    `gorm:"type:int;default:15" json:"breakDuration" form:"breakDuration" binding:"omitempty,gte=0"`
	MaxParticipants   uint   `gorm:"type:int;default:30" json:"maxParticipants" form:"maxParticipants" binding:"omitempty,gte=1"`
	VenueDetails      string `gorm:"type:text" json:"venueDetails" form:"venueDetails"`
	EquipmentRequired string `gorm:"type:text" json:"equipmentRequired" form:"equipmentRequired"`

	WorkshopID string   `gorm:"type:text;not null;uniqueIndex" json:"workshopId"`
	Workshop   Workshop `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

func (ws WorkshopSchedule) TableName() string {
	return "workshop_schedules"
}
