package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sangkips/receipts-api/internal/domain/entity"
	"github.com/sangkips/receipts-api/internal/domain/repository"
	"github.com/sangkips/receipts-api/pkg/apperror"
	"github.com/sangkips/receipts-api/pkg/render"
	"github.com/sangkips/receipts-api/pkg/storage"
	"github.com/xuri/excelize/v2"
)

const (
	csvExportName  = "receipts_export.csv"
	xlsxExportName = "receipts_export.xlsx"
	csvHeader      = "Date,Time,Receipt Number,Customer Name,Total Amount\n"
)

// ReportService aggregates receipts into time-bucketed reports and exports
// them as CSV, PDF or XLSX files in the durable export directory.
type ReportService struct {
	receiptRepo repository.ReceiptRepository
	store       *storage.Store
	renderer    *render.PDFRenderer
	now         func() time.Time
}

// NewReportService creates a new report service
func NewReportService(receiptRepo repository.ReceiptRepository, store *storage.Store, renderer *render.PDFRenderer) *ReportService {
	return &ReportService{
		receiptRepo: receiptRepo,
		store:       store,
		renderer:    renderer,
		now:         time.Now,
	}
}

// ReportSummary holds the always-visible dashboard totals, computed with
// the same bucket boundaries as the period reports.
type ReportSummary struct {
	TodayTotal float64 `json:"today_total"`
	TodayCount int     `json:"today_count"`
	WeekTotal  float64 `json:"week_total"`
	WeekCount  int     `json:"week_count"`
	MonthTotal float64 `json:"month_total"`
	MonthCount int     `json:"month_count"`
	Total      float64 `json:"total"`
	Count      int     `json:"count"`
}

// Report represents the receipts of one bucket with their aggregates.
type Report struct {
	Period      Period           `json:"period"`
	Label       string           `json:"label"`
	Count       int              `json:"count"`
	TotalAmount float64          `json:"total_amount"`
	Receipts    []entity.Receipt `json:"receipts"`
}

// GetSummary computes today/week/month totals over all receipts.
func (s *ReportService) GetSummary(ctx context.Context) (*ReportSummary, error) {
	receipts, err := s.receiptRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	dayStart, _ := PeriodDay.Start(now)
	weekStart, _ := PeriodWeek.Start(now)
	monthStart, _ := PeriodMonth.Start(now)

	summary := &ReportSummary{}
	for _, r := range receipts {
		summary.Total += r.TotalAmount
		summary.Count++
		if r.CreatedAt >= dayStart.UnixMilli() {
			summary.TodayTotal += r.TotalAmount
			summary.TodayCount++
		}
		if r.CreatedAt >= weekStart.UnixMilli() {
			summary.WeekTotal += r.TotalAmount
			summary.WeekCount++
		}
		if r.CreatedAt >= monthStart.UnixMilli() {
			summary.MonthTotal += r.TotalAmount
			summary.MonthCount++
		}
	}
	return summary, nil
}

// GetReport returns the receipts and aggregates for one bucket.
func (s *ReportService) GetReport(ctx context.Context, period Period) (*Report, error) {
	receipts, err := s.bucket(ctx, period)
	if err != nil {
		return nil, err
	}

	report := &Report{
		Period:   period,
		Label:    period.Label(),
		Count:    len(receipts),
		Receipts: receipts,
	}
	for _, r := range receipts {
		report.TotalAmount += r.TotalAmount
	}
	return report, nil
}

// ExportCSV writes the bucket to the fixed receipts_export.csv file,
// overwriting any previous export, and returns the file path.
func (s *ReportService) ExportCSV(ctx context.Context, period Period) (string, error) {
	receipts, err := s.bucket(ctx, period)
	if err != nil {
		return "", err
	}
	if len(receipts) == 0 {
		return "", apperror.ErrNoExportData
	}
	return s.store.WriteExport(csvExportName, []byte(buildCSV(receipts)))
}

// buildCSV renders receipts as CSV with every field double-quoted and
// amounts formatted to two decimal places.
func buildCSV(receipts []entity.Receipt) string {
	var b strings.Builder
	b.WriteString(csvHeader)
	for _, r := range receipts {
		d := r.CreatedTime()
		fmt.Fprintf(&b, "\"%s\",\"%s\",\"%d\",\"%s\",\"%.2f\"\n",
			d.Format("1/2/2006"),
			d.Format("3:04:05 PM"),
			r.ReceiptNumber,
			r.CustomerName,
			r.TotalAmount,
		)
	}
	return b.String()
}

// ExportPDF renders the bucket as a PDF report in the export directory and
// returns the file path.
func (s *ReportService) ExportPDF(ctx context.Context, period Period) (string, error) {
	receipts, err := s.bucket(ctx, period)
	if err != nil {
		return "", err
	}
	if len(receipts) == 0 {
		return "", apperror.ErrNoExportData
	}

	doc := &render.ReportDocument{
		Title:       "Receipts Report",
		GeneratedAt: s.now(),
		PeriodLabel: period.Label(),
		Count:       len(receipts),
	}
	for _, r := range receipts {
		doc.TotalAmount += r.TotalAmount
		doc.Rows = append(doc.Rows, render.ReportRow{
			Date:          r.CreatedTime(),
			ReceiptNumber: r.ReceiptNumber,
			CustomerName:  r.CustomerName,
			Amount:        r.TotalAmount,
		})
	}

	data, err := s.renderer.RenderReport(doc)
	if err != nil {
		return "", err
	}
	name := fmt.Sprintf("receipts_report_%s_%d.pdf", period, s.now().UnixMilli())
	return s.store.WriteExport(name, data)
}

// ExportXLSX writes the bucket to the fixed receipts_export.xlsx workbook,
// overwriting any previous export, and returns the file path.
func (s *ReportService) ExportXLSX(ctx context.Context, period Period) (string, error) {
	receipts, err := s.bucket(ctx, period)
	if err != nil {
		return "", err
	}
	if len(receipts) == 0 {
		return "", apperror.ErrNoExportData
	}

	f := excelize.NewFile()
	defer f.Close()
	const sheet = "Receipts"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Date", "Time", "Receipt Number", "Customer Name", "Total Amount"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return "", err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return "", err
		}
	}
	for i, r := range receipts {
		d := r.CreatedTime()
		values := []interface{}{
			d.Format("1/2/2006"),
			d.Format("3:04:05 PM"),
			r.ReceiptNumber,
			r.CustomerName,
			r.TotalAmount,
		}
		for j, v := range values {
			cell, err := excelize.CoordinatesToCellName(j+1, i+2)
			if err != nil {
				return "", err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return "", err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return "", fmt.Errorf("write xlsx: %w", err)
	}
	return s.store.WriteExport(xlsxExportName, buf.Bytes())
}

// bucket loads the receipts for one period, newest first.
func (s *ReportService) bucket(ctx context.Context, period Period) ([]entity.Receipt, error) {
	start, ok := period.Start(s.now())
	if !ok {
		return s.receiptRepo.List(ctx)
	}
	return s.receiptRepo.ListSince(ctx, start.UnixMilli())
}
