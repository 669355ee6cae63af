package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"bookong/internal/domains/warehouse/model"
	"bookong/internal/domains/warehouse/repository"
)

type warehouseService struct {
	repo repository.Repository
}

func NewWarehouseService(repo repository.Repository) WarehouseServiceInterface {
	return &warehouseService{repo: repo}
}

func (s *warehouseService) Create(ctx context.Context, req model.CreateWarehouseRequest) (*model.Warehouse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	wh := &model.Warehouse{
		Name:     req.Name,
		Location: req.Location,
	}
	if err := s.repo.Create(ctx, wh); err != nil {
		return nil, err
	}

	log.Info().
		Int64("warehouse_id", wh.ID).
		Str("name", wh.Name).
		Msg("Created warehouse")

	return wh, nil
}

func (s *warehouseService) Get(ctx context.Context, id int64) (*model.Warehouse, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *warehouseService) List(ctx context.Context, order model.ListOrder) ([]model.Warehouse, error) {
	return s.repo.List(ctx, order)
}

func (s *warehouseService) ListWithBookCount(ctx context.Context) ([]model.WarehouseWithCount, error) {
	return s.repo.ListWithBookCount(ctx)
}

func (s *warehouseService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	log.Info().Int64("warehouse_id", id).Msg("Deleted warehouse and its books")
	return nil
}
