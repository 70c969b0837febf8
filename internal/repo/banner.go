package repo

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kitlab/jersey-shop/internal/models"
)

func (r *GormRepo) GetBanner(ctx context.Context, id uuid.UUID) (*models.Banner, error) {
	var banner models.Banner
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&banner).Error; err != nil {
		return nil, err
	}
	return &banner, nil
}

func (r *GormRepo) ListBanners(ctx context.Context) ([]models.Banner, error) {
	items := []models.Banner{}
	if err := r.DB.WithContext(ctx).Order("created_at DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) CreateBanner(ctx context.Context, banner *models.Banner) (*models.Banner, error) {
	if err := r.DB.WithContext(ctx).Create(banner).Error; err != nil {
		return nil, err
	}
	return banner, nil
}

func (r *GormRepo) SaveBanner(ctx context.Context, banner *models.Banner) error {
	return r.DB.WithContext(ctx).Save(banner).Error
}

func (r *GormRepo) DeleteBanner(ctx context.Context, id uuid.UUID) (*models.Banner, error) {
	var banner models.Banner
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&banner).Error; err != nil {
		return nil, err
	}

	res := r.DB.WithContext(ctx).Delete(&models.Banner{}, "id = ?", id)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &banner, nil
}
