package model

import (
	"time"

	warehouseModel "bookong/internal/domains/warehouse/model"
)

// Book entity (maps the books table). Every book belongs to exactly
// one warehouse; the association is by foreign key and lookup only.
type Book struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Author      string    `json:"author"`
	ISBN        *string   `json:"isbn,omitempty"`
	IsAvailable bool      `json:"isAvailable"`
	WarehouseID int64     `json:"warehouseId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	// Warehouse is populated by queries that include the association.
	Warehouse *warehouseModel.Warehouse `json:"warehouse,omitempty"`
}
