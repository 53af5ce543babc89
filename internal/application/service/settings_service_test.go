package service

import (
	"context"
	"encoding/base64"
	"os"
	"path/filepath"
	"testing"

	"github.com/sangkips/receipts-api/internal/domain/entity"
	"github.com/sangkips/receipts-api/internal/domain/repository"
	"github.com/sangkips/receipts-api/pkg/storage"
)

// A 1x1 transparent PNG.
var tinyPNG = []byte{
	0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A,
	0x00, 0x00, 0x00, 0x0D, 0x49, 0x48, 0x44, 0x52,
	0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1F, 0x15, 0xC4,
	0x89, 0x00, 0x00, 0x00, 0x0F, 0x49, 0x44, 0x41,
	0x54, 0x78, 0xDA, 0x62, 0x00, 0x01, 0x40, 0x00,
	0x00, 0x00, 0xFF, 0xFF, 0x00, 0x05, 0x00, 0x01,
	0xEF, 0x83, 0xF4, 0x2F, 0x00, 0x00, 0x00, 0x00,
	0x49, 0x45, 0x4E, 0x44, 0xAE, 0x42, 0x60, 0x82,
}

func newSettingsService(t *testing.T) (*SettingsService, repository.SettingsRepository, *storage.Store) {
	t.Helper()

	_, settingsRepo := newTestRepos(t)
	store, err := storage.New(t.TempDir(), filepath.Join(t.TempDir(), "exports"))
	if err != nil {
		t.Fatalf("storage: %v", err)
	}
	return NewSettingsService(settingsRepo, store), settingsRepo, store
}

func TestGetSettingsBeforeFirstSave(t *testing.T) {
	svc, settingsRepo, _ := newSettingsService(t)
	ctx := context.Background()

	settings, err := svc.GetSettings(ctx)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if settings.BusinessName != "" || settings.LogoURI != "" {
		t.Errorf("expected zero-value settings, got %+v", settings)
	}

	// Reading must not create the row.
	stored, err := settingsRepo.Get(ctx)
	if err != nil {
		t.Fatalf("repo get: %v", err)
	}
	if stored != nil {
		t.Error("read created a settings row")
	}
}

func TestSaveSettingsUpsertsSingletonRow(t *testing.T) {
	svc, settingsRepo, _ := newSettingsService(t)
	ctx := context.Background()

	first, err := svc.SaveSettings(ctx, &UpdateSettingsInput{
		BusinessName:    "Acme Traders",
		BusinessAddress: "12 Market St",
	})
	if err != nil {
		t.Fatalf("first save: %v", err)
	}
	if first.ID != entity.SettingsRowID {
		t.Errorf("row id = %d, want %d", first.ID, entity.SettingsRowID)
	}

	second, err := svc.SaveSettings(ctx, &UpdateSettingsInput{
		BusinessName: "Acme Traders Ltd",
	})
	if err != nil {
		t.Fatalf("second save: %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("save created a second row: %d vs %d", second.ID, first.ID)
	}

	stored, err := settingsRepo.Get(ctx)
	if err != nil {
		t.Fatalf("repo get: %v", err)
	}
	if stored.BusinessName != "Acme Traders Ltd" {
		t.Errorf("name = %q, want updated name", stored.BusinessName)
	}
	// A full save replaces every field, including clearing the address.
	if stored.BusinessAddress != "" {
		t.Errorf("address = %q, want cleared", stored.BusinessAddress)
	}
}

func TestSaveLogo(t *testing.T) {
	svc, _, _ := newSettingsService(t)
	ctx := context.Background()

	uri, err := svc.SaveLogo(ctx, "logo.PNG", tinyPNG)
	if err != nil {
		t.Fatalf("save logo: %v", err)
	}

	data, err := os.ReadFile(uri)
	if err != nil {
		t.Fatalf("read logo: %v", err)
	}
	if len(data) != len(tinyPNG) {
		t.Errorf("logo bytes = %d, want %d", len(data), len(tinyPNG))
	}

	if _, err := svc.SaveLogo(ctx, "logo.svg", tinyPNG); err == nil {
		t.Error("expected rejection of unsupported extension")
	}
	if _, err := svc.SaveLogo(ctx, "logo.png", nil); err == nil {
		t.Error("expected rejection of empty file")
	}
}

func TestSaveSignature(t *testing.T) {
	svc, _, _ := newSettingsService(t)
	ctx := context.Background()

	encoded := base64.StdEncoding.EncodeToString(tinyPNG)

	tests := []struct {
		name string
		data string
	}{
		{"bare base64", encoded},
		{"data url", "data:image/png;base64," + encoded},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uri, err := svc.SaveSignature(ctx, tt.data)
			if err != nil {
				t.Fatalf("save signature: %v", err)
			}
			if filepath.Ext(uri) != ".png" {
				t.Errorf("signature ext = %s, want .png", filepath.Ext(uri))
			}
			data, err := os.ReadFile(uri)
			if err != nil {
				t.Fatalf("read signature: %v", err)
			}
			if len(data) != len(tinyPNG) {
				t.Errorf("signature bytes = %d, want %d", len(data), len(tinyPNG))
			}
		})
	}

	if _, err := svc.SaveSignature(ctx, "not base64!!"); err == nil {
		t.Error("expected rejection of invalid base64")
	}
	if _, err := svc.SaveSignature(ctx, "  "); err == nil {
		t.Error("expected rejection of empty data")
	}
}
