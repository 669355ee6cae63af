package handler

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"bookong/internal/domains/book/service"
	"bookong/internal/shared/middleware"
	"bookong/internal/shared/response"
)

// uploadField matches the import form's file input.
const uploadField = "excelFile"

type ImportHandler struct {
	service service.ImportServiceInterface
}

func NewImportHandler(svc service.ImportServiceInterface) *ImportHandler {
	return &ImportHandler{service: svc}
}

// Form - GET /books/import
func (h *ImportHandler) Form(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{
		"title":       "Import Books from Excel",
		"field":       uploadField,
		"accept":      []string{".xlsx", ".xls"},
		"templateUrl": "/books/import/template",
	})
}

// Template - GET /books/import/template
// A blank spreadsheet with the expected header row.
func (h *ImportHandler) Template(c *gin.Context) {
	f := service.ImportTemplate()

	c.Header("Content-Disposition", `attachment; filename="book-import-template.xlsx"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := f.Write(c.Writer); err != nil {
		log.Error().Err(err).Msg("Failed to write template file")
	}
}

// Import - POST /books/import
// Accepts a multipart spreadsheet upload, spools it to a temp file and
// hands it to the import pipeline. The extension is checked before any
// parsing happens.
func (h *ImportHandler) Import(c *gin.Context) {
	file, err := c.FormFile(uploadField)
	if err != nil {
		response.BadRequest(c, "Please select an Excel file to upload")
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext != ".xlsx" && ext != ".xls" {
		response.BadRequest(c, "Only Excel files are allowed")
		return
	}

	tempPath := filepath.Join(os.TempDir(), "excel-"+uuid.New().String()+ext)
	if err := c.SaveUploadedFile(file, tempPath); err != nil {
		log.Error().Err(err).Msg("Failed to save uploaded file")
		response.InternalServerError(c, "Error importing books")
		return
	}

	username := ""
	if sess := middleware.CurrentSession(c); sess != nil {
		username = sess.Username
	}
	log.Info().
		Str("username", username).
		Str("file_name", file.Filename).
		Int64("file_size", file.Size).
		Msg("Received book import request")

	report, err := h.service.ImportBooks(c.Request.Context(), tempPath)
	if err != nil {
		if errors.Is(err, service.ErrParseFailed) {
			response.BadRequest(c, "Error importing books: the file is not a valid spreadsheet")
			return
		}
		log.Error().Err(err).Msg("Book import failed")
		response.InternalServerError(c, "Error importing books")
		return
	}

	response.Success(c, http.StatusOK, report)
}
