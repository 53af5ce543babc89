package handler

import (
	"io"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/receipts-api/internal/application/service"
	"github.com/sangkips/receipts-api/internal/config"
	"github.com/sangkips/receipts-api/internal/presentation/http/dto/request"
	"github.com/sangkips/receipts-api/internal/presentation/http/dto/response"
)

// SettingsHandler handles business settings HTTP requests
type SettingsHandler struct {
	settingsService *service.SettingsService
	uploadMaxSize   int64
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsService *service.SettingsService, cfg *config.StorageConfig) *SettingsHandler {
	return &SettingsHandler{
		settingsService: settingsService,
		uploadMaxSize:   cfg.UploadMaxSize,
	}
}

// Get handles getting the business settings
func (h *SettingsHandler) Get(c *gin.Context) {
	settings, err := h.settingsService.GetSettings(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Settings retrieved successfully", settings)
}

// Update handles saving the business settings
func (h *SettingsHandler) Update(c *gin.Context) {
	var req request.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	settings, err := h.settingsService.SaveSettings(c.Request.Context(), &service.UpdateSettingsInput{
		BusinessName:    req.BusinessName,
		BusinessAddress: req.BusinessAddress,
		LogoURI:         req.LogoURI,
		SignatureURI:    req.SignatureURI,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Settings saved successfully", settings)
}

// UploadLogo handles a multipart logo image upload. The returned URI must be
// saved onto the settings for it to take effect.
func (h *SettingsHandler) UploadLogo(c *gin.Context) {
	file, err := c.FormFile("logo")
	if err != nil {
		response.BadRequest(c, "Logo file is required")
		return
	}
	if file.Size > h.uploadMaxSize {
		response.BadRequest(c, "Logo file is too large")
		return
	}

	f, err := file.Open()
	if err != nil {
		response.Error(c, err)
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		response.Error(c, err)
		return
	}

	uri, err := h.settingsService.SaveLogo(c.Request.Context(), file.Filename, data)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Logo uploaded successfully", gin.H{"logo_uri": uri})
}

// SaveSignature handles a drawn signature posted as base64 PNG data
func (h *SettingsHandler) SaveSignature(c *gin.Context) {
	var req request.SaveSignatureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Signature data is required")
		return
	}

	uri, err := h.settingsService.SaveSignature(c.Request.Context(), req.Data)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Signature saved successfully", gin.H{"signature_uri": uri})
}
