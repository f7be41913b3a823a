package repository

import (
	"context"
	"errors"

	"github.com/SeakMengs/WorkshopHub/internal/apperror"
	"github.com/SeakMengs/WorkshopHub/internal/constant"
	"github.com/SeakMengs/WorkshopHub/internal/model"
	"gorm.io/gorm"
)

type WorkshopCategoryRepository struct {
	*baseRepository
}

func (wcr *WorkshopCategoryRepository) Create(ctx context.Context, tx *gorm.DB, category *model.WorkshopCategory) (*model.WorkshopCategory, error) {
	wcr.logger.Debugf("Create workshop category: %s \n", category.Name)

	db := wcr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Model(&model.WorkshopCategory{}).Create(category).Error; err != nil {
		return nil, err
	}

	return category, nil
}

func (wcr WorkshopCategoryRepository) GetById(ctx context.Context, tx *gorm.DB, categoryId string) (*model.WorkshopCategory, error) {
	wcr.logger.Debugf("Get workshop category by id: %s \n", categoryId)

	db := wcr.getDB(tx)
	var category *model.WorkshopCategory

	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	err := db.WithContext(ctx).Model(&model.WorkshopCategory{}).
		Where(&model.WorkshopCategory{BaseModel: model.BaseModel{ID: categoryId}}).
		First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrNotFound
		}
		return nil, err
	}

	return category, nil
}

func (wcr WorkshopCategoryRepository) List(ctx context.Context, tx *gorm.DB) ([]model.WorkshopCategory, error) {
	wcr.logger.Debugf("List workshop categories \n")

	db := wcr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var categories []model.WorkshopCategory
	if err := db.WithContext(ctx).Model(&model.WorkshopCategory{}).Order("name ASC").Find(&categories).Error; err != nil {
		return nil, err
	}

	return categories, nil
}
