package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/kitlab/jersey-shop/internal/models"
	"github.com/kitlab/jersey-shop/internal/repo"
	"github.com/kitlab/jersey-shop/internal/transport"
)

type CatalogService struct {
	Repo *repo.GormRepo
}

func (s *CatalogService) GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	return s.Repo.GetProduct(ctx, id)
}

func (s *CatalogService) ListProducts(ctx context.Context, category string) ([]models.Product, error) {
	return s.Repo.ListProducts(ctx, category)
}

func (s *CatalogService) CreateProduct(ctx context.Context, req transport.CreateProductRequest) (*models.Product, error) {
	for _, f := range []struct{ name, value string }{
		{"name", req.Name},
		{"model", req.Model},
		{"image", req.Image},
		{"description", req.Description},
		{"category", req.Category},
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
	if !models.ValidCategory(req.Category) {
		return nil, fmt.Errorf("%w: unknown category %q", ErrValidation, req.Category)
	}

	prod := &models.Product{
		Name:        req.Name,
		Model:       req.Model,
		Price:       req.Price.Float(),
		Image:       req.Image,
		Description: req.Description,
		Category:    req.Category,
	}
	if req.Discount != nil {
		if req.Discount.Float() < 0 {
			return nil, fmt.Errorf("%w: discount must be >= 0", ErrValidation)
		}
		prod.Discount = req.Discount.Float()
	}

	return s.Repo.CreateProduct(ctx, prod)
}

func (s *CatalogService) UpdateProduct(ctx context.Context, req transport.UpdateProductRequest, id uuid.UUID) (*models.Product, error) {
	prod, err := s.Repo.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		prod.Name = *req.Name
	}
	if req.Model != nil {
		prod.Model = *req.Model
	}
	if req.Price != nil {
		if req.Price.Float() < 0 {
			return nil, fmt.Errorf("%w: price must be >= 0", ErrValidation)
		}
		prod.Price = req.Price.Float()
	}
	if req.Discount != nil {
		if req.Discount.Float() < 0 {
			return nil, fmt.Errorf("%w: discount must be >= 0", ErrValidation)
		}
		prod.Discount = req.Discount.Float()
	}
	if req.Image != nil {
		prod.Image = *req.Image
	}
	if req.Description != nil {
		prod.Description = *req.Description
	}
	if req.Category != nil {
		if !models.ValidCategory(*req.Category) {
			return nil, fmt.Errorf("%w: unknown category %q", ErrValidation, *req.Category)
		}
		prod.Category = *req.Category
	}

	if err := s.Repo.SaveProduct(ctx, prod); err != nil {
		return nil, err
	}
	return prod, nil
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	return s.Repo.DeleteProduct(ctx, id)
}
