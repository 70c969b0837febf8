package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/kitlab/jersey-shop/internal/models"
	"github.com/kitlab/jersey-shop/internal/repo"
	"github.com/kitlab/jersey-shop/internal/transport"
)

type ComboService struct {
	Repo *repo.GormRepo
}

func (s *ComboService) GetCombo(ctx context.Context, id uuid.UUID) (*models.ComboProduct, error) {
	return s.Repo.GetCombo(ctx, id)
}

func (s *ComboService) ListCombos(ctx context.Context) ([]models.ComboProduct, error) {
	return s.Repo.ListCombos(ctx)
}

func (s *ComboService) CreateCombo(ctx context.Context, req transport.CreateComboRequest) (*models.ComboProduct, error) {
	for _, f := range []struct{ name, value string }{
		{"name", req.Name},
		{"model", req.Model},
		{"description", req.Description},
	} {
		if f.value == "" {
			return nil, fmt.Errorf("%w: %s is required", ErrValidation, f.name)
		}
	}
	if req.Price == nil {
		return nil, fmt.Errorf("%w: price is required", ErrValidation)
	}
	if req.Price.Float() < 0 {
		return nil, fmt.Errorf("%w: price must be >= 0", ErrValidation)
	}
	if len(req.Images) == 0 {
		return nil, fmt.Errorf("%w: images must not be empty", ErrValidation)
	}
	for _, img := range req.Images {
		if img == "" {
			return nil, fmt.Errorf("%w: image url must not be empty", ErrValidation)
		}
	}

	combo := &models.ComboProduct{
		Name:        req.Name,
		Model:       req.Model,
		Price:       req.Price.Float(),
		Description: req.Description,
		Images:      models.StringList(req.Images),
	}
	if req.Discount != nil {
		if req.Discount.Float() < 0 {
			return nil, fmt.Errorf("%w: discount must be >= 0", ErrValidation)
		}
		combo.Discount = req.Discount.Float()
	}

	return s.Repo.CreateCombo(ctx, combo)
}

func (s *ComboService) UpdateCombo(ctx context.Context, req transport.UpdateComboRequest, id uuid.UUID) (*models.ComboProduct, error) {
	combo, err := s.Repo.GetCombo(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		combo.Name = *req.Name
	}
	if req.Model != nil {
		combo.Model = *req.Model
	}
	if req.Price != nil {
		if req.Price.Float() < 0 {
			return nil, fmt.Errorf("%w: price must be >= 0", ErrValidation)
		}
		combo.Price = req.Price.Float()
	}
	if req.Discount != nil {
		if req.Discount.Float() < 0 {
			return nil, fmt.Errorf("%w: discount must be >= 0", ErrValidation)
		}
		combo.Discount = req.Discount.Float()
	}
	if req.Description != nil {
		combo.Description = *req.Description
	}
	if req.Images != nil {
		if len(req.Images) == 0 {
			return nil, fmt.Errorf("%w: images must not be empty", ErrValidation)
		}
		combo.Images = models.StringList(req.Images)
	}

	if err := s.Repo.SaveCombo(ctx, combo); err != nil {
		return nil, err
	}
	return combo, nil
}

func (s *ComboService) DeleteCombo(ctx context.Context, id uuid.UUID) (*models.ComboProduct, error) {
	return s.Repo.DeleteCombo(ctx, id)
}
