package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Warehouse entity (maps the warehouses table). Warehouses own books
// by foreign key only; deleting a warehouse cascades to its books.
type Warehouse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Location  string    `json:"location"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// WarehouseWithCount annotates a warehouse with the number of books it
// holds, for the warehouse listing.
type WarehouseWithCount struct {
	Warehouse
	BookCount int `json:"bookCount"`
}

type CreateWarehouseRequest struct {
	Name     string `json:"name" form:"name"`
	Location string `json:"location" form:"location"`
}

func (r CreateWarehouseRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(2, 100).Error("name must be 2-100 characters"),
		),
		validation.Field(&r.Location,
			validation.Required.Error("location is required"),
			validation.Length(2, 200).Error("location must be 2-200 characters"),
		),
	)
}

// ListOrder selects the sort order for warehouse listings.
type ListOrder string

const (
	OrderByNameAsc       ListOrder = "name_asc"
	OrderByCreatedAtDesc ListOrder = "created_desc"
)
