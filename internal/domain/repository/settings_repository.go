package repository

import (
	"context"

	"github.com/sangkips/receipts-api/internal/domain/entity"
)

// SettingsRepository defines the interface for the singleton business
// settings row. Get returns nil (no error) when the row does not exist yet.
type SettingsRepository interface {
	Get(ctx context.Context) (*entity.BusinessSettings, error)
	Create(ctx context.Context, settings *entity.BusinessSettings) error
	Update(ctx context.Context, settings *entity.BusinessSettings) error
}
