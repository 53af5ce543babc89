package handler

import (
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/receipts-api/internal/application/service"
	"github.com/sangkips/receipts-api/internal/presentation/http/dto/response"
)

// ReportHandler handles report and export HTTP requests
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// Summary returns totals and counts for the day, week, month and all-time buckets
func (h *ReportHandler) Summary(c *gin.Context) {
	summary, err := h.reportService.GetSummary(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Report summary retrieved successfully", summary)
}

// Get returns the receipts and totals for one period bucket
func (h *ReportHandler) Get(c *gin.Context) {
	period, err := service.ParsePeriod(c.Query("period"))
	if err != nil {
		response.Error(c, err)
		return
	}

	report, err := h.reportService.GetReport(c.Request.Context(), period)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Report retrieved successfully", report)
}

// ExportCSV writes the period's receipts to the CSV export file and sends it
func (h *ReportHandler) ExportCSV(c *gin.Context) {
	period, err := service.ParsePeriod(c.Query("period"))
	if err != nil {
		response.Error(c, err)
		return
	}

	path, err := h.reportService.ExportCSV(c.Request.Context(), period)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.FileAttachment(path, filepath.Base(path))
}

// ExportPDF renders the period report as a PDF and sends it
func (h *ReportHandler) ExportPDF(c *gin.Context) {
	period, err := service.ParsePeriod(c.Query("period"))
	if err != nil {
		response.Error(c, err)
		return
	}

	path, err := h.reportService.ExportPDF(c.Request.Context(), period)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.FileAttachment(path, filepath.Base(path))
}

// ExportXLSX writes the period's receipts to the XLSX export file and sends it
func (h *ReportHandler) ExportXLSX(c *gin.Context) {
	period, err := service.ParsePeriod(c.Query("period"))
	if err != nil {
		response.Error(c, err)
		return
	}

	path, err := h.reportService.ExportXLSX(c.Request.Context(), period)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.FileAttachment(path, filepath.Base(path))
}
