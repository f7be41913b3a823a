package repository

import (
	"context"
	"errors"

	"github.com/SeakMengs/WorkshopHub/internal/apperror"
	"github.com/SeakMengs/WorkshopHub/internal/constant"
	"github.com/SeakMengs/WorkshopHub/internal/model"
	"gorm.io/gorm"
)

type WorkshopTypeRepository struct {
	*baseRepository
}

// WorkshopTypeUsage pairs a workshop type with how many workshops were booked
// against it, for the dashboard's top-types panel.
type WorkshopTypeUsage struct {
	model.WorkshopType
	WorkshopCount int64 `json:"workshopCount"`
}

func (wtr *WorkshopTypeRepository) Create(ctx context.Context, tx *gorm.DB, workshopType *model.WorkshopType) (*model.WorkshopType, error) {
	wtr.logger.Debugf("Create workshop type: %s \n", workshopType.Name)

	if workshopType.Duration < 1 {
		return nil, apperror.NewValidationError("duration", "duration must be at least 1 day")
	}

	db := wtr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Model(&model.WorkshopType{}).Create(workshopType).Error; err != nil {
		return nil, err
	}

	return workshopType, nil
}

func (wtr WorkshopTypeRepository) GetById(ctx context.Context, tx *gorm.DB, workshopTypeId string) (*model.WorkshopType, error) {
	wtr.logger.Debugf("Get workshop type by id: %s \n", workshopTypeId)

	db := wtr.getDB(tx)
	var workshopType *model.WorkshopType

	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	err := db.WithContext(ctx).Model(&model.WorkshopType{}).
		Preload("Category").
		Where(&model.WorkshopType{BaseModel: model.BaseModel{ID: workshopTypeId}}).
		First(&workshopType).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrNotFound
		}
		return nil, err
	}

	return workshopType, nil
}

func (wtr WorkshopTypeRepository) List(ctx context.Context, tx *gorm.DB) ([]model.WorkshopType, error) {
	wtr.logger.Debugf("List workshop types \n")

	db := wtr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var workshopTypes []model.WorkshopType
	if err := db.WithContext(ctx).Model(&model.WorkshopType{}).Preload("Category").Order("name ASC").Find(&workshopTypes).Error; err != nil {
		return nil, err
	}

	return workshopTypes, nil
}

func (wtr *WorkshopTypeRepository) Update(ctx context.Context, tx *gorm.DB, workshopType *model.WorkshopType) error {
	wtr.logger.Debugf("Update workshop type: %s \n", workshopType.ID)

	if workshopType.Duration < 1 {
		return apperror.NewValidationError("duration", "duration must be at least 1 day")
	}

	db := wtr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return db.WithContext(ctx).Model(&model.WorkshopType{}).Where("id = ?", workshopType.ID).Updates(workshopType).Error
}

// TopByUsage returns the workshop types with the most bookings, most used
// first.
func (wtr WorkshopTypeRepository) TopByUsage(ctx context.Context, tx *gorm.DB, limit int) ([]WorkshopTypeUsage, error) {
	wtr.logger.Debugf("Get top %d workshop types by usage \n", limit)

	db := wtr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var usages []WorkshopTypeUsage
	err := db.WithContext(ctx).Model(&model.WorkshopType{}).
		Select("workshop_types.*, COUNT(workshops.id) AS workshop_count").
		Joins("LEFT JOIN workshops ON workshops.workshop_type_id = workshop_types.id").
		Group("workshop_types.id").
		Order("workshop_count DESC").
		Limit(limit).
		Scan(&usages).Error
	if err != nil {
		return nil, err
	}

	return usages, nil
}
