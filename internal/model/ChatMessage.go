package model

// ChatMessage is one message between a coordinator and an instructor, scoped
// to a workshop. Conversations read oldest first.
type ChatMessage struct {
	BaseModel
	Message string `gorm:"type:text;not null" json:"message" form:"message" binding:"required"`
	IsRead  bool   `gorm:"type:boolean;default:false" json:"isRead"`

	SenderID   string   `gorm:"type:text;not null;index" json:"senderId"`
	Sender     User     `gorm:"foreignKey:SenderID;constraint:OnDelete:CASCADE" json:"sender,omitempty"`
	ReceiverID string   `gorm:"type:text;not null;index" json:"receiverId"`
	Receiver   User     `gorm:"foreignKey:ReceiverID;constraint:OnDelete:CASCADE" json:"receiver,omitempty"`
	WorkshopID string   `gorm:"type:text;not null;index" json:"workshopId"`
	Workshop   Workshop `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

func (cm ChatMessage) TableName() string {
	return "chat_messages"
}
