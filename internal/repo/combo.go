package repo

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kitlab/jersey-shop/internal/models"
)

func (r *GormRepo) GetCombo(ctx context.Context, id uuid.UUID) (*models.ComboProduct, error) {
	var combo models.ComboProduct
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&combo).Error; err != nil {
		return nil, err
	}
	return &combo, nil
}

func (r *GormRepo) ListCombos(ctx context.Context) ([]models.ComboProduct, error) {
	items := []models.ComboProduct{}
	if err := r.DB.WithContext(ctx).Order("created_at DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) CreateCombo(ctx context.Context, combo *models.ComboProduct) (*models.ComboProduct, error) {
	if err := r.DB.WithContext(ctx).Create(combo).Error; err != nil {
		return nil, err
	}
	return combo, nil
}

func (r *GormRepo) SaveCombo(ctx context.Context, combo *models.ComboProduct) error {
	return r.DB.WithContext(ctx).Save(combo).Error
}

func (r *GormRepo) DeleteCombo(ctx context.Context, id uuid.UUID) (*models.ComboProduct, error) {
	var combo models.ComboProduct
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&combo).Error; err != nil {
		return nil, err
	}

	res := r.DB.WithContext(ctx).Delete(&models.ComboProduct{}, "id = ?", id)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &combo, nil
}
