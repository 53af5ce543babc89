package repository

import (
	"context"

	"github.com/sangkips/receipts-api/internal/domain/entity"
	"github.com/sangkips/receipts-api/internal/domain/repository"
	"gorm.io/gorm"
)

type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository creates a new settings repository
func NewSettingsRepository(db *gorm.DB) repository.SettingsRepository {
	return &settingsRepository{db: db}
}

// Get retrieves the singleton settings row
func (r *settingsRepository) Get(ctx context.Context) (*entity.BusinessSettings, error) {
	var settings entity.BusinessSettings
	err := r.db.WithContext(ctx).Where("id = ?", entity.SettingsRowID).First(&settings).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &settings, nil
}

// Create inserts the settings row with the fixed singleton ID
func (r *settingsRepository) Create(ctx context.Context, settings *entity.BusinessSettings) error {
	settings.ID = entity.SettingsRowID
	return r.db.WithContext(ctx).Create(settings).Error
}

// Update updates the existing settings row in place
func (r *settingsRepository) Update(ctx context.Context, settings *entity.BusinessSettings) error {
	settings.ID = entity.SettingsRowID
	return r.db.WithContext(ctx).Save(settings).Error
}
