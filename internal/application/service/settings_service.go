package service

import (
	"context"
	"encoding/base64"
	"path/filepath"
	"strings"

	"github.com/sangkips/receipts-api/internal/domain/entity"
	"github.com/sangkips/receipts-api/internal/domain/repository"
	"github.com/sangkips/receipts-api/pkg/apperror"
	"github.com/sangkips/receipts-api/pkg/storage"
)

// SettingsService handles the singleton business settings and the capture
// of branding assets (logo uploads, drawn signatures).
type SettingsService struct {
	settingsRepo repository.SettingsRepository
	store        *storage.Store
}

// NewSettingsService creates a new settings service
func NewSettingsService(settingsRepo repository.SettingsRepository, store *storage.Store) *SettingsService {
	return &SettingsService{
		settingsRepo: settingsRepo,
		store:        store,
	}
}

// GetSettings returns the settings row, or zero-value fields when no row
// exists yet. The row is only created on first save.
func (s *SettingsService) GetSettings(ctx context.Context) (*entity.BusinessSettings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		return &entity.BusinessSettings{}, nil
	}
	return settings, nil
}

// UpdateSettingsInput represents the input for saving settings
type UpdateSettingsInput struct {
	BusinessName    string
	BusinessAddress string
	LogoURI         string
	SignatureURI    string
}

// SaveSettings updates the settings row in place, inserting it on first
// save. Replaced logo/signature files are not deleted.
func (s *SettingsService) SaveSettings(ctx context.Context, input *UpdateSettingsInput) (*entity.BusinessSettings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	exists := settings != nil
	if !exists {
		settings = &entity.BusinessSettings{}
	}
	settings.BusinessName = input.BusinessName
	settings.BusinessAddress = input.BusinessAddress
	settings.LogoURI = input.LogoURI
	settings.SignatureURI = input.SignatureURI

	if exists {
		err = s.settingsRepo.Update(ctx, settings)
	} else {
		err = s.settingsRepo.Create(ctx, settings)
	}
	if err != nil {
		return nil, err
	}
	return settings, nil
}

// SaveLogo stores an uploaded logo image as a durable asset and returns its
// URI. The URI only takes effect once saved onto the settings row.
func (s *SettingsService) SaveLogo(ctx context.Context, filename string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", apperror.NewBadRequestError("Logo file is empty")
	}
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".png", ".jpg", ".jpeg", ".gif":
	default:
		return "", apperror.NewBadRequestError("Logo must be a PNG, JPEG or GIF image")
	}
	return s.store.SaveAsset("logo", ext, data)
}

// SaveSignature rasterizes a drawn signature (base64 PNG, with or without a
// data-URL prefix) to a timestamped file and returns its URI.
func (s *SettingsService) SaveSignature(ctx context.Context, encoded string) (string, error) {
	encoded = strings.TrimSpace(encoded)
	if i := strings.Index(encoded, ";base64,"); i >= 0 {
		encoded = encoded[i+len(";base64,"):]
	}
	if encoded == "" {
		return "", apperror.NewBadRequestError("Signature data is required")
	}
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", apperror.NewBadRequestError("Signature data is not valid base64")
	}
	return s.store.SaveAsset("signature", ".png", data)
}
