package repository

import (
	"context"

	"github.com/SeakMengs/WorkshopHub/internal/constant"
	"github.com/SeakMengs/WorkshopHub/internal/model"
	"gorm.io/gorm"
)

type ChatRepository struct {
	*baseRepository
}

// Send appends a message to a workshop conversation. Messages start unread.
func (cr *ChatRepository) Send(ctx context.Context, tx *gorm.DB, message *model.ChatMessage) (*model.ChatMessage, error) {
	cr.logger.Debugf("Send chat message from %s to %s on workshop %s \n", message.SenderID, message.ReceiverID, message.WorkshopID)

	message.IsRead = false

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Model(&model.ChatMessage{}).Create(message).Error; err != nil {
		return nil, err
	}

	return message, nil
}

// MarkRead flips the read flag. Marking an already-read message again is a
// no-op.
func (cr *ChatRepository) MarkRead(ctx context.Context, tx *gorm.DB, messageId string) error {
	cr.logger.Debugf("Mark chat message read: %s \n", messageId)

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return db.WithContext(ctx).Model(&model.ChatMessage{}).
		Where("id = ?", messageId).
		Update("is_read", true).Error
}

// Conversation returns the messages exchanged between two users on one
// workshop, oldest first.
func (cr ChatRepository) Conversation(ctx context.Context, tx *gorm.DB, workshopId, userA, userB string) ([]model.ChatMessage, error) {
	cr.logger.Debugf("Get conversation on workshop %s between %s and %s \n", workshopId, userA, userB)

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var messages []model.ChatMessage
	err := db.WithContext(ctx).Model(&model.ChatMessage{}).
		Preload("Sender").
		Preload("Receiver").
		Where("workshop_id = ?", workshopId).
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)", userA, userB, userB, userA).
		Order("created_at ASC").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}

	return messages, nil
}

func (cr ChatRepository) UnreadCount(ctx context.Context, tx *gorm.DB, receiverId string) (int64, error) {
	cr.logger.Debugf("Count unread chat messages for user: %s \n", receiverId)

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var count int64
	err := db.WithContext(ctx).Model(&model.ChatMessage{}).
		Where("receiver_id = ? AND is_read = false", receiverId).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}
