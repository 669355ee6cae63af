package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type CreateBookRequest struct {
	Title       string `json:"title" form:"title"`
	Author      string `json:"author" form:"author"`
	ISBN        string `json:"isbn" form:"isbn"`
	WarehouseID int64  `json:"warehouseId" form:"warehouseId"`
	IsAvailable *bool  `json:"isAvailable" form:"isAvailable"`
}

func (r CreateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, 255).Error("title must be 1-255 characters"),
		),
		validation.Field(&r.Author,
			validation.Required.Error("author is required"),
			validation.Length(1, 255).Error("author must be 1-255 characters"),
		),
		validation.Field(&r.ISBN,
			validation.Length(10, 17).Error("isbn must be 10-17 characters"),
		),
		validation.Field(&r.WarehouseID,
			validation.Required.Error("warehouseId is required"),
			validation.Min(int64(1)).Error("warehouseId must be a positive id"),
		),
	)
}

// ISBNPtr returns the ISBN as a nullable column value. An empty cell
// in the form or the import file means "no ISBN", not an empty string,
// so the uniqueness constraint only applies to real values.
func (r CreateBookRequest) ISBNPtr() *string {
	if r.ISBN == "" {
		return nil
	}
	isbn := r.ISBN
	return &isbn
}

// ListBooksQuery selects the listing sort order.
type ListBooksQuery struct {
	OrderBy string `form:"orderBy"` // "created_desc" (default) or "title_asc"
}

// CountFilter narrows CountBooks; nil Available counts everything.
type CountFilter struct {
	Available *bool
}

// BookDetail is the book page view data: the record plus its QR label
// rendered as a data URL.
type BookDetail struct {
	Book      *Book  `json:"book"`
	QRPayload string `json:"qrPayload"`
	QRDataURL string `json:"qrCodeUrl"`
}
