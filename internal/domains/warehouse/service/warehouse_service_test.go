package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookong/internal/domains/warehouse/model"
)

type fakeRepo struct {
	warehouses map[int64]*model.Warehouse
	nextID     int64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{warehouses: make(map[int64]*model.Warehouse)}
}

func (r *fakeRepo) Create(_ context.Context, wh *model.Warehouse) error {
	for _, existing := range r.warehouses {
		if existing.Name == wh.Name {
			return model.ErrNameTaken
		}
	}
	r.nextID++
	wh.ID = r.nextID
	r.warehouses[wh.ID] = wh
	return nil
}

func (r *fakeRepo) GetByID(_ context.Context, id int64) (*model.Warehouse, error) {
	wh, ok := r.warehouses[id]
	if !ok {
		return nil, model.ErrWarehouseNotFound
	}
	return wh, nil
}

func (r *fakeRepo) List(_ context.Context, _ model.ListOrder) ([]model.Warehouse, error) {
	out := make([]model.Warehouse, 0, len(r.warehouses))
	for _, wh := range r.warehouses {
		out = append(out, *wh)
	}
	return out, nil
}

func (r *fakeRepo) ListWithBookCount(_ context.Context) ([]model.WarehouseWithCount, error) {
	out := make([]model.WarehouseWithCount, 0, len(r.warehouses))
	for _, wh := range r.warehouses {
		out = append(out, model.WarehouseWithCount{Warehouse: *wh})
	}
	return out, nil
}

func (r *fakeRepo) Count(_ context.Context) (int, error) {
	return len(r.warehouses), nil
}

func (r *fakeRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.warehouses[id]; !ok {
		return model.ErrWarehouseNotFound
	}
	delete(r.warehouses, id)
	return nil
}

func TestCreateWarehouse(t *testing.T) {
	svc := NewWarehouseService(newFakeRepo())

	wh, err := svc.Create(context.Background(), model.CreateWarehouseRequest{
		Name:     "Main Warehouse",
		Location: "Hanoi",
	})
	require.NoError(t, err)
	assert.NotZero(t, wh.ID)
	assert.Equal(t, "Main Warehouse", wh.Name)
}

func TestCreateWarehouseValidation(t *testing.T) {
	svc := NewWarehouseService(newFakeRepo())

	cases := []struct {
		name string
		req  model.CreateWarehouseRequest
	}{
		{"missing name", model.CreateWarehouseRequest{Location: "Hanoi"}},
		{"short name", model.CreateWarehouseRequest{Name: "A", Location: "Hanoi"}},
		{"missing location", model.CreateWarehouseRequest{Name: "Main"}},
		{"short location", model.CreateWarehouseRequest{Name: "Main", Location: "B"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tc.req)
			assert.Error(t, err)
		})
	}
}

func TestCreateWarehouseDuplicateName(t *testing.T) {
	svc := NewWarehouseService(newFakeRepo())

	req := model.CreateWarehouseRequest{Name: "Main Warehouse", Location: "Hanoi"}
	_, err := svc.Create(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, model.ErrNameTaken)
}

func TestDeleteWarehouse(t *testing.T) {
	repo := newFakeRepo()
	svc := NewWarehouseService(repo)

	wh, err := svc.Create(context.Background(), model.CreateWarehouseRequest{
		Name:     "Disposable",
		Location: "Somewhere",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), wh.ID))

	_, err = svc.Get(context.Background(), wh.ID)
	assert.ErrorIs(t, err, model.ErrWarehouseNotFound)

	assert.ErrorIs(t, svc.Delete(context.Background(), wh.ID), model.ErrWarehouseNotFound)
}
