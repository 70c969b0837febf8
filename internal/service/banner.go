package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/kitlab/jersey-shop/internal/models"
	"github.com/kitlab/jersey-shop/internal/repo"
	"github.com/kitlab/jersey-shop/internal/transport"
)

type BannerService struct {
	Repo *repo.GormRepo
}

func (s *BannerService) GetBanner(ctx context.Context, id uuid.UUID) (*models.Banner, error) {
	return s.Repo.GetBanner(ctx, id)
}

func (s *BannerService) ListBanners(ctx context.Context) ([]models.Banner, error) {
	return s.Repo.ListBanners(ctx)
}

func (s *BannerService) CreateBanner(ctx context.Context, req transport.CreateBannerRequest) (*models.Banner, error) {
	if req.Image == "" {
		return nil, fmt.Errorf("%w: image is required", ErrValidation)
	}
	if req.Caption == "" {
		return nil, fmt.Errorf("%w: caption is required", ErrValidation)
	}

	return s.Repo.CreateBanner(ctx, &models.Banner{
		Image:   req.Image,
		Caption: req.Caption,
	})
}

func (s *BannerService) UpdateBanner(ctx context.Context, req transport.UpdateBannerRequest, id uuid.UUID) (*models.Banner, error) {
	banner, err := s.Repo.GetBanner(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Image != nil {
		if *req.Image == "" {
			return nil, fmt.Errorf("%w: image must not be empty", ErrValidation)
		}
		banner.Image = *req.Image
	}
	if req.Caption != nil {
		if *req.Caption == "" {
			return nil, fmt.Errorf("%w: caption must not be empty", ErrValidation)
		}
		banner.Caption = *req.Caption
	}

	if err := s.Repo.SaveBanner(ctx, banner); err != nil {
		return nil, err
	}
	return banner, nil
}

func (s *BannerService) DeleteBanner(ctx context.Context, id uuid.UUID) (*models.Banner, error) {
	return s.Repo.DeleteBanner(ctx, id)
}
