package handler_test

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/receipts-api/internal/application/service"
	"github.com/sangkips/receipts-api/internal/config"
	"github.com/sangkips/receipts-api/internal/infrastructure/database"
	infraRepo "github.com/sangkips/receipts-api/internal/infrastructure/repository"
	"github.com/sangkips/receipts-api/internal/presentation/http/handler"
	"github.com/sangkips/receipts-api/internal/presentation/http/routes"
	"github.com/sangkips/receipts-api/pkg/render"
	"github.com/sangkips/receipts-api/pkg/storage"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		App: config.AppConfig{Name: "receipts-api-test", Env: "test", Port: "0"},
		Storage: config.StorageConfig{
			UploadMaxSize: 1 << 20,
		},
		RateLimit: config.RateLimitConfig{Requests: 1000, Duration: 1},
	}

	db, err := database.NewSQLiteDB(&config.DatabaseConfig{
		Path: "file:" + t.Name() + "?mode=memory&cache=shared",
	})
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	store, err := storage.New(t.TempDir(), filepath.Join(t.TempDir(), "exports"))
	if err != nil {
		t.Fatalf("storage: %v", err)
	}
	renderer := render.NewPDFRenderer()

	receiptRepo := infraRepo.NewReceiptRepository(db)
	settingsRepo := infraRepo.NewSettingsRepository(db)

	receiptService := service.NewReceiptService(receiptRepo, settingsRepo)
	settingsService := service.NewSettingsService(settingsRepo, store)
	reportService := service.NewReportService(receiptRepo, store, renderer)
	exportService := service.NewExportService(receiptRepo, store, renderer)

	return routes.Setup(&routes.Handlers{
		Receipt:  handler.NewReceiptHandler(receiptService, exportService),
		Report:   handler.NewReportHandler(reportService),
		Settings: handler.NewSettingsHandler(settingsService, &cfg.Storage),
	}, &routes.Deps{Cfg: cfg})
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var envelope struct {
		Success bool                   `json:"success"`
		Data    map[string]interface{} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode response: %v\nbody: %s", err, w.Body.String())
	}
	if !envelope.Success {
		t.Fatalf("expected success response, got: %s", w.Body.String())
	}
	return envelope.Data
}

func createReceipt(t *testing.T, router *gin.Engine) map[string]interface{} {
	t.Helper()

	w := doJSON(t, router, http.MethodPost, "/api/v1/receipts", map[string]interface{}{
		"customer_name": "Jane Doe",
		"items": []map[string]string{
			{"description": "Coffee", "quantity": "2", "unit_price": "3.50"},
		},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body: %s", w.Code, w.Body.String())
	}
	return decodeData(t, w)
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/health", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}

func TestCreateAndGetReceipt(t *testing.T) {
	router := newTestRouter(t)

	created := createReceipt(t, router)
	if created["receipt_number"].(float64) != 1 {
		t.Errorf("receipt_number = %v, want 1", created["receipt_number"])
	}
	if created["total_amount"].(float64) != 7 {
		t.Errorf("total_amount = %v, want 7", created["total_amount"])
	}

	id := created["id"].(string)
	w := doJSON(t, router, http.MethodGet, "/api/v1/receipts/"+id, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get status = %d, body: %s", w.Code, w.Body.String())
	}
	got := decodeData(t, w)
	if got["customer_name"] != "Jane Doe" {
		t.Errorf("customer_name = %v", got["customer_name"])
	}
	items, ok := got["items"].([]interface{})
	if !ok || len(items) != 1 {
		t.Errorf("items = %v, want 1 decoded item", got["items"])
	}
}

func TestCreateReceiptRejectsInvalid(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/receipts", map[string]interface{}{
		"customer_name": "",
	})
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422, body: %s", w.Code, w.Body.String())
	}

	// Nothing was stored.
	list := doJSON(t, router, http.MethodGet, "/api/v1/receipts", nil)
	var envelope struct {
		Data []interface{} `json:"data"`
	}
	if err := json.Unmarshal(list.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(envelope.Data) != 0 {
		t.Errorf("receipts = %d, want 0", len(envelope.Data))
	}
}

func TestGetReceiptInvalidID(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/receipts/not-a-uuid", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}

	w = doJSON(t, router, http.MethodGet, "/api/v1/receipts/6b1e6a0e-0000-4000-8000-000000000000", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestDeleteReceipt(t *testing.T) {
	router := newTestRouter(t)

	id := createReceipt(t, router)["id"].(string)

	w := doJSON(t, router, http.MethodDelete, "/api/v1/receipts/"+id, nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d, want 204", w.Code)
	}

	w = doJSON(t, router, http.MethodGet, "/api/v1/receipts/"+id, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("status after delete = %d, want 404", w.Code)
	}
}

func TestListReceiptsInvalidDate(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/receipts?date=03-05-2025", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestReceiptHTMLEndpoint(t *testing.T) {
	router := newTestRouter(t)

	id := createReceipt(t, router)["id"].(string)

	w := doJSON(t, router, http.MethodGet, "/api/v1/receipts/"+id+"/html", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body: %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Errorf("content type = %q", ct)
	}
	if !bytes.Contains(w.Body.Bytes(), []byte("Jane Doe")) {
		t.Error("html missing customer name")
	}
}

func TestReceiptPDFEndpoint(t *testing.T) {
	router := newTestRouter(t)

	id := createReceipt(t, router)["id"].(string)

	w := doJSON(t, router, http.MethodGet, "/api/v1/receipts/"+id+"/pdf", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body: %s", w.Code, w.Body.String())
	}
	if cd := w.Header().Get("Content-Disposition"); cd == "" {
		t.Error("missing Content-Disposition header")
	}
	if !bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")) {
		t.Error("response is not a PDF document")
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/settings", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get status = %d", w.Code)
	}
	if got := decodeData(t, w)["business_name"]; got != "" {
		t.Errorf("initial business_name = %v, want empty", got)
	}

	w = doJSON(t, router, http.MethodPut, "/api/v1/settings", map[string]string{
		"business_name":    "Acme Traders",
		"business_address": "12 Market St",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("put status = %d, body: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, router, http.MethodGet, "/api/v1/settings", nil)
	if got := decodeData(t, w)["business_name"]; got != "Acme Traders" {
		t.Errorf("business_name = %v, want Acme Traders", got)
	}
}

func TestSaveSignatureEndpoint(t *testing.T) {
	router := newTestRouter(t)

	encoded := base64.StdEncoding.EncodeToString([]byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A})
	w := doJSON(t, router, http.MethodPost, "/api/v1/settings/signature", map[string]string{
		"data": "data:image/png;base64," + encoded,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body: %s", w.Code, w.Body.String())
	}
	if uri := decodeData(t, w)["signature_uri"]; uri == "" {
		t.Error("missing signature_uri")
	}

	w = doJSON(t, router, http.MethodPost, "/api/v1/settings/signature", map[string]string{})
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestUploadLogoEndpoint(t *testing.T) {
	router := newTestRouter(t)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("logo", "logo.png")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write([]byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/settings/logo", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body: %s", w.Code, w.Body.String())
	}
	if uri := decodeData(t, w)["logo_uri"]; uri == "" {
		t.Error("missing logo_uri")
	}

	// No file at all is a 400.
	req = httptest.NewRequest(http.MethodPost, "/api/v1/settings/logo", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestReportSummaryEndpoint(t *testing.T) {
	router := newTestRouter(t)

	createReceipt(t, router)

	w := doJSON(t, router, http.MethodGet, "/api/v1/reports/summary", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body: %s", w.Code, w.Body.String())
	}
	data := decodeData(t, w)
	if data["today_count"].(float64) != 1 {
		t.Errorf("today_count = %v, want 1", data["today_count"])
	}
	if data["total"].(float64) != 7 {
		t.Errorf("total = %v, want 7", data["total"])
	}
}

func TestReportEndpointInvalidPeriod(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/reports?period=year", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestExportCSVEndpoint(t *testing.T) {
	router := newTestRouter(t)

	// Empty bucket yields a 404 notice, not a file.
	w := doJSON(t, router, http.MethodGet, "/api/v1/reports/export/csv?period=day", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("empty export status = %d, want 404", w.Code)
	}

	createReceipt(t, router)

	w = doJSON(t, router, http.MethodGet, "/api/v1/reports/export/csv?period=day", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body: %s", w.Code, w.Body.String())
	}
	if !bytes.HasPrefix(w.Body.Bytes(), []byte("Date,Time,Receipt Number,Customer Name,Total Amount\n")) {
		t.Errorf("unexpected csv header: %s", w.Body.String())
	}
	if !bytes.Contains(w.Body.Bytes(), []byte(`"Jane Doe"`)) {
		t.Error("csv missing quoted customer name")
	}
}
