package service

import (
	"context"

	"bookong/internal/domains/warehouse/model"
)

type WarehouseServiceInterface interface {
	Create(ctx context.Context, req model.CreateWarehouseRequest) (*model.Warehouse, error)
	Get(ctx context.Context, id int64) (*model.Warehouse, error)
	List(ctx context.Context, order model.ListOrder) ([]model.Warehouse, error)
	ListWithBookCount(ctx context.Context) ([]model.WarehouseWithCount, error)
	Delete(ctx context.Context, id int64) error
}
