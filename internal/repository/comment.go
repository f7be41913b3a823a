package repository

import (
	"context"

	"github.com/SeakMengs/WorkshopHub/internal/constant"
	"github.com/SeakMengs/WorkshopHub/internal/model"
	"gorm.io/gorm"
)

type CommentRepository struct {
	*baseRepository
}

func (cr *CommentRepository) Create(ctx context.Context, tx *gorm.DB, comment *model.Comment) (*model.Comment, error) {
	cr.logger.Debugf("Create comment by %s on workshop %s \n", comment.AuthorID, comment.WorkshopID)

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Model(&model.Comment{}).Create(comment).Error; err != nil {
		return nil, err
	}

	return comment, nil
}

// ListForWorkshop returns comments oldest first. When publicOnly is set,
// private comments are filtered out.
func (cr CommentRepository) ListForWorkshop(ctx context.Context, tx *gorm.DB, workshopId string, publicOnly bool) ([]model.Comment, error) {
	cr.logger.Debugf("List comments for workshop: %s (publicOnly: %v) \n", workshopId, publicOnly)

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	query := db.WithContext(ctx).Model(&model.Comment{}).
		Preload("Author").
		Where("workshop_id = ?", workshopId)

	if publicOnly {
		query = query.Where("public = true")
	}

	var comments []model.Comment
	if err := query.Order("created_at ASC").Find(&comments).Error; err != nil {
		return nil, err
	}

	return comments, nil
}
