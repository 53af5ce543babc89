package handler

import (
	"path/filepath"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sangkips/receipts-api/internal/application/service"
	"github.com/sangkips/receipts-api/internal/presentation/http/dto/request"
	"github.com/sangkips/receipts-api/internal/presentation/http/dto/response"
	"github.com/sangkips/receipts-api/pkg/pagination"
)

// ReceiptHandler handles receipt-related HTTP requests
type ReceiptHandler struct {
	receiptService *service.ReceiptService
	exportService  *service.ExportService
}

// NewReceiptHandler creates a new receipt handler
func NewReceiptHandler(receiptService *service.ReceiptService, exportService *service.ExportService) *ReceiptHandler {
	return &ReceiptHandler{
		receiptService: receiptService,
		exportService:  exportService,
	}
}

// List handles listing receipts, newest first. Accepts an optional
// ?date=YYYY-MM-DD calendar-day filter and optional page/per_page pagination.
func (h *ReceiptHandler) List(c *gin.Context) {
	var filterDate *time.Time
	if v := c.Query("date"); v != "" {
		d, err := time.ParseInLocation("2006-01-02", v, time.Local)
		if err != nil {
			response.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
			return
		}
		filterDate = &d
	}

	// Paginated listing only when the client asks for it; the default
	// returns the full list like the filter does.
	if filterDate == nil && (c.Query("page") != "" || c.Query("per_page") != "") {
		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
		perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

		params := &pagination.PaginationParams{
			Page:    page,
			PerPage: perPage,
		}

		result, err := h.receiptService.ListReceiptsPage(c.Request.Context(), params)
		if err != nil {
			response.Error(c, err)
			return
		}

		response.SuccessWithPagination(c, 200, "Receipts retrieved successfully", result)
		return
	}

	receipts, err := h.receiptService.ListReceipts(c.Request.Context(), filterDate)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipts retrieved successfully", receipts)
}

// Create handles creating a receipt
func (h *ReceiptHandler) Create(c *gin.Context) {
	var req request.CreateReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.CreateReceiptInput{
		CustomerName: req.CustomerName,
	}
	for _, item := range req.Items {
		input.Items = append(input.Items, service.LineItemInput{
			ID:          item.ID,
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		})
	}

	receipt, err := h.receiptService.CreateReceipt(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Receipt created successfully", receipt)
}

// Get handles getting a single receipt
func (h *ReceiptHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		response.BadRequest(c, "Invalid receipt ID")
		return
	}

	receipt, err := h.receiptService.GetReceipt(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt retrieved successfully", receipt)
}

// Delete handles deleting a receipt
func (h *ReceiptHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		response.BadRequest(c, "Invalid receipt ID")
		return
	}

	if err := h.receiptService.DeleteReceipt(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// ExportPDF renders the receipt as a PDF and sends it as a download
func (h *ReceiptHandler) ExportPDF(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		response.BadRequest(c, "Invalid receipt ID")
		return
	}

	path, err := h.exportService.ReceiptPDF(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.FileAttachment(path, filepath.Base(path))
}

// ExportHTML renders the receipt as a standalone HTML page
func (h *ReceiptHandler) ExportHTML(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		response.BadRequest(c, "Invalid receipt ID")
		return
	}

	html, err := h.exportService.ReceiptHTML(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Data(200, "text/html; charset=utf-8", html)
}
