package repository

import (
	"context"

	"github.com/SeakMengs/WorkshopHub/internal/apperror"
	"github.com/SeakMengs/WorkshopHub/internal/constant"
	"github.com/SeakMengs/WorkshopHub/internal/model"
	"gorm.io/gorm"
)

type NotificationRepository struct {
	*baseRepository
}

// Notify appends a notification for a user. The workshop reference is
// optional.
func (nr *NotificationRepository) Notify(ctx context.Context, tx *gorm.DB, userId string, notificationType constant.NotificationType, title, message string, relatedWorkshopId *string) (*model.Notification, error) {
	nr.logger.Debugf("Notify user %s with type %s \n", userId, notificationType)

	if !notificationType.Valid() {
		return nil, apperror.NewValidationError("type", "unknown notification type")
	}

	notification := &model.Notification{
		UserID:            userId,
		Type:              notificationType,
		Title:             title,
		Message:           message,
		RelatedWorkshopID: relatedWorkshopId,
		IsRead:            false,
	}

	db := nr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Model(&model.Notification{}).Create(notification).Error; err != nil {
		return nil, err
	}

	return notification, nil
}

// MarkRead is idempotent; re-marking a read notification changes nothing.
func (nr *NotificationRepository) MarkRead(ctx context.Context, tx *gorm.DB, notificationId string) error {
	nr.logger.Debugf("Mark notification read: %s \n", notificationId)

	db := nr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return db.WithContext(ctx).Model(&model.Notification{}).
		Where("id = ?", notificationId).
		Update("is_read", true).Error
}

// ListForUser returns a user's notifications newest first.
func (nr NotificationRepository) ListForUser(ctx context.Context, tx *gorm.DB, userId string, page, pageSize uint) ([]model.Notification, int64, error) {
	nr.logger.Debugf("List notifications for user: %s \n", userId)

	db := nr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	query := db.WithContext(ctx).Model(&model.Notification{}).Where("user_id = ?", userId)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var notifications []model.Notification
	err := query.Order("created_at DESC").
		Offset(int((page - 1) * pageSize)).Limit(int(pageSize)).
		Find(&notifications).Error
	if err != nil {
		return nil, 0, err
	}

	return notifications, total, nil
}

func (nr NotificationRepository) UnreadCount(ctx context.Context, tx *gorm.DB, userId string) (int64, error) {
	nr.logger.Debugf("Count unread notifications for user: %s \n", userId)

	db := nr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var count int64
	err := db.WithContext(ctx).Model(&model.Notification{}).
		Where("user_id = ? AND is_read = false", userId).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}
