package handler

import (
	"errors"
	"net/http"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gin-gonic/gin"

	"bookong/internal/domains/warehouse/model"
	"bookong/internal/domains/warehouse/service"
	"bookong/internal/shared/response"
)

type WarehouseHandler struct {
	service service.WarehouseServiceInterface
}

func NewWarehouseHandler(service service.WarehouseServiceInterface) *WarehouseHandler {
	return &WarehouseHandler{service: service}
}

// List - GET /warehouses
// Each warehouse is annotated with its book count, ordered by name.
func (h *WarehouseHandler) List(c *gin.Context) {
	warehouses, err := h.service.ListWithBookCount(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, "Error fetching warehouses")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"title":      "Warehouses",
		"warehouses": warehouses,
	})
}

// AddForm - GET /warehouses/add
func (h *WarehouseHandler) AddForm(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{
		"title": "Add New Warehouse",
	})
}

// Add - POST /warehouses/add
func (h *WarehouseHandler) Add(c *gin.Context) {
	var req model.CreateWarehouseRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "Name and location are required")
		return
	}

	wh, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		var vErrs validation.Errors
		switch {
		case errors.As(err, &vErrs):
			response.ErrorWithDetails(c, http.StatusUnprocessableEntity,
				"VALIDATION_ERROR", "Error adding warehouse", vErrs)
		case errors.Is(err, model.ErrNameTaken):
			response.UnprocessableEntity(c, "Error adding warehouse: name already exists")
		default:
			response.InternalServerError(c, "Error adding warehouse")
		}
		return
	}

	response.Success(c, http.StatusCreated, wh)
}

// Delete - DELETE /warehouses/:id
// Removing a warehouse removes every book stored in it.
func (h *WarehouseHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid warehouse id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, model.ErrWarehouseNotFound) {
			response.NotFound(c, "Warehouse not found")
			return
		}
		response.InternalServerError(c, "Error deleting warehouse")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": id})
}
