package repository

import (
	"context"

	"github.com/SeakMengs/WorkshopHub/internal/constant"
	"github.com/SeakMengs/WorkshopHub/internal/model"
	"gorm.io/gorm"
)

type BannerRepository struct {
	*baseRepository
}

func (br *BannerRepository) Create(ctx context.Context, tx *gorm.DB, banner *model.Banner) (*model.Banner, error) {
	br.logger.Debugf("Create banner: %s \n", banner.Title)

	db := br.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Model(&model.Banner{}).Create(banner).Error; err != nil {
		return nil, err
	}

	return banner, nil
}

// ListActive returns banners flagged for homepage display.
func (br BannerRepository) ListActive(ctx context.Context, tx *gorm.DB) ([]model.Banner, error) {
	br.logger.Debugf("List active banners \n")

	db := br.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var banners []model.Banner
	if err := db.WithContext(ctx).Model(&model.Banner{}).Where("active = true").Order("created_at DESC").Find(&banners).Error; err != nil {
		return nil, err
	}

	return banners, nil
}

func (br *BannerRepository) SetActive(ctx context.Context, tx *gorm.DB, bannerId string, active bool) error {
	br.logger.Debugf("Set banner %s active: %v \n", bannerId, active)

	db := br.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return db.WithContext(ctx).Model(&model.Banner{}).Where("id = ?", bannerId).Update("active", active).Error
}
