package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"bookong/internal/domains/book/model"
	"bookong/internal/domains/book/service"
	"bookong/internal/infrastructure/qr"
	warehouseModel "bookong/internal/domains/warehouse/model"
	warehouseService "bookong/internal/domains/warehouse/service"
	"bookong/internal/shared/response"
)

type BookHandler struct {
	service    service.BookServiceInterface
	warehouses warehouseService.WarehouseServiceInterface
}

func NewBookHandler(svc service.BookServiceInterface, warehouses warehouseService.WarehouseServiceInterface) *BookHandler {
	return &BookHandler{
		service:    svc,
		warehouses: warehouses,
	}
}

// List - GET /books
// Newest first, each book with its warehouse.
func (h *BookHandler) List(c *gin.Context) {
	var query model.ListBooksQuery
	_ = c.ShouldBindQuery(&query)

	books, err := h.service.List(c.Request.Context(), query)
	if err != nil {
		response.InternalServerError(c, "Error fetching books")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"title": "Books",
		"books": books,
	})
}

// AddForm - GET /books/add
// The add form needs the warehouse choices, ordered by name.
func (h *BookHandler) AddForm(c *gin.Context) {
	warehouses, err := h.warehouses.List(c.Request.Context(), warehouseModel.OrderByNameAsc)
	if err != nil {
		response.InternalServerError(c, "Error loading form")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"title":      "Add New Book",
		"warehouses": warehouses,
	})
}

// Add - POST /books/add
func (h *BookHandler) Add(c *gin.Context) {
	var req model.CreateBookRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "Title, author, and warehouse are required")
		return
	}

	book, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		var vErrs validation.Errors
		switch {
		case errors.As(err, &vErrs):
			response.ErrorWithDetails(c, http.StatusUnprocessableEntity,
				"VALIDATION_ERROR", "Error adding book", vErrs)
		case errors.Is(err, warehouseModel.ErrWarehouseNotFound):
			response.UnprocessableEntity(c, fmt.Sprintf("Error adding book: Warehouse ID %d not found", req.WarehouseID))
		case errors.Is(err, model.ErrISBNTaken):
			response.UnprocessableEntity(c, "Error adding book: isbn already exists")
		default:
			response.InternalServerError(c, "Error adding book")
		}
		return
	}

	response.Success(c, http.StatusCreated, book)
}

// Detail - GET /books/:id
// The book record plus its QR label as a data URL for the view.
func (h *BookHandler) Detail(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.NotFound(c, "Book not found")
		return
	}

	book, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrBookNotFound) {
			response.NotFound(c, "Book not found")
			return
		}
		response.InternalServerError(c, "Error fetching book details")
		return
	}

	payload := qr.BookPayload(book.ID)
	dataURL, err := qr.EncodeDataURL(payload)
	if err != nil {
		log.Error().Err(err).Int64("book_id", book.ID).Msg("Failed to encode QR code")
		response.InternalServerError(c, "Error fetching book details")
		return
	}

	response.Success(c, http.StatusOK, model.BookDetail{
		Book:      book,
		QRPayload: payload,
		QRDataURL: dataURL,
	})
}

// QRCode - GET /books/:id/qrcode
// The same label as Detail, served directly as a PNG.
func (h *BookHandler) QRCode(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.NotFound(c, "Book not found")
		return
	}

	book, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrBookNotFound) {
			response.NotFound(c, "Book not found")
			return
		}
		response.InternalServerError(c, "Error fetching book details")
		return
	}

	png, err := qr.EncodePNG(qr.BookPayload(book.ID))
	if err != nil {
		response.InternalServerError(c, "Error generating QR code")
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}

// Export - GET /books/export
// Streams the catalog as an .xlsx download.
func (h *BookHandler) Export(c *gin.Context) {
	var query model.ListBooksQuery
	_ = c.ShouldBindQuery(&query)

	f, err := h.service.ExportBooks(c.Request.Context(), query)
	if err != nil {
		response.InternalServerError(c, "Error exporting books")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="books.xlsx"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := f.Write(c.Writer); err != nil {
		log.Error().Err(err).Msg("Failed to write export file")
	}
}
