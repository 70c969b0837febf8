package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/kitlab/jersey-shop/internal/models"
	"github.com/kitlab/jersey-shop/internal/repo"
	"github.com/kitlab/jersey-shop/internal/transport"
)

type OrderService struct {
	Repo *repo.GormRepo
}

func (s *OrderService) PlaceOrder(ctx context.Context, req transport.CreateOrderRequest) (*models.Order, error) {
	for _, f := range []struct{ name, value string }{
		{"productId", req.ProductID},
		{"productName", req.ProductName},
		{"buyerName", req.BuyerName},
		{"buyerEmail", req.BuyerEmail},
		{"phone", req.Phone},
		{"address", req.Address},
	} {
		if f.value == "" {
			return nil, fmt.Errorf("%w: %s is required", ErrValidation, f.name)
		}
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return nil, fmt.Errorf("%w: productId is not a valid id", ErrValidation)
	}
	if req.Quantity == nil {
		return nil, fmt.Errorf("%w: quantity is required", ErrValidation)
	}
	if req.Quantity.Float() < 1 {
		return nil, fmt.Errorf("%w: quantity must be >= 1", ErrValidation)
	}
	if req.TotalPrice == nil {
		return nil, fmt.Errorf("%w: totalPrice is required", ErrValidation)
	}
	if req.TotalPrice.Float() < 0 {
		return nil, fmt.Errorf("%w: totalPrice must be >= 0", ErrValidation)
	}

	orderedBy := req.OrderedBy
	if orderedBy == "" {
		orderedBy = models.OrderedByWebsite
	}
	if !models.ValidOrderChannel(orderedBy) {
		return nil, fmt.Errorf("%w: unknown order channel %q", ErrValidation, orderedBy)
	}

	order := &models.Order{
		ProductID:   productID,
		ProductName: req.ProductName,
		Quantity:    int(req.Quantity.Float()),
		TotalPrice:  req.TotalPrice.Float(),
		BuyerName:   req.BuyerName,
		BuyerEmail:  req.BuyerEmail,
		Phone:       req.Phone,
		Address:     req.Address,
		Status:      models.OrderStatusPending,
		OrderedBy:   orderedBy,
	}

	return s.Repo.CreateOrder(ctx, order)
}

func (s *OrderService) ListOrders(ctx context.Context) ([]models.Order, error) {
	return s.Repo.ListOrders(ctx)
}

// ListMyOrders returns ErrNotFound when the buyer has no orders. The
// storefront relies on the 404, so an empty result is not a success here
// even though every other list endpoint returns an empty array.
func (s *OrderService) ListMyOrders(ctx context.Context, email string) ([]models.Order, error) {
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", ErrValidation)
	}

	orders, err := s.Repo.ListOrdersByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, fmt.Errorf("%w: no orders for %s", ErrNotFound, email)
	}
	return orders, nil
}

// PatchOrder updates status and/or transactionId when present in the
// request. Status values outside the known set are rejected; transitions
// between valid statuses are not constrained.
func (s *OrderService) PatchOrder(ctx context.Context, req transport.PatchOrderRequest, id uuid.UUID) (*models.Order, error) {
	order, err := s.Repo.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Status != nil {
		if !models.ValidOrderStatus(*req.Status) {
			return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, *req.Status)
		}
		order.Status = *req.Status
	}
	if req.TransactionID != nil {
		order.TransactionID = req.TransactionID
	}

	if err := s.Repo.SaveOrder(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}
