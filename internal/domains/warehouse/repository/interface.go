package repository

import (
	"context"

	"bookong/internal/domains/warehouse/model"
)

// Repository is the warehouse persistence contract. Writes are durable
// and visible to subsequent reads on return.
type Repository interface {
	Create(ctx context.Context, wh *model.Warehouse) error
	GetByID(ctx context.Context, id int64) (*model.Warehouse, error)
	List(ctx context.Context, order model.ListOrder) ([]model.Warehouse, error)
	ListWithBookCount(ctx context.Context) ([]model.WarehouseWithCount, error)
	Count(ctx context.Context) (int, error)

	// Delete removes the warehouse and its books in one transaction.
	Delete(ctx context.Context, id int64) error
}
