package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"storefront/internal/cache"
	"storefront/internal/model"
	"storefront/internal/repository"
)

const (
	settingsCacheKey = "settings:all"
	settingsCacheTTL = 5 * time.Minute
)

// SettingsService handles the flat key/value store configuration.
type SettingsService interface {
	// Get returns the settings table flattened into one map. Absent keys are
	// simply missing; defaults live in the consuming client.
	Get(ctx context.Context) (map[string]string, error)
	// Update upserts every submitted pair in one transaction.
	Update(ctx context.Context, values map[string]string) error
}

type settingsService struct {
	settingRepo repository.SettingRepository
	cache       *cache.Client
}

// NewSettingsService creates a new settings service.
func NewSettingsService(settingRepo repository.SettingRepository, cache *cache.Client) SettingsService {
	return &settingsService{
		settingRepo: settingRepo,
		cache:       cache,
	}
}

func (s *settingsService) Get(ctx context.Context) (map[string]string, error) {
	if data, _ := s.cache.Get(ctx, settingsCacheKey); data != nil {
		var cached map[string]string
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	rows, err := s.settingRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list settings: %w", err)
	}

	settings := make(map[string]string, len(rows))
	for _, row := range rows {
		settings[row.Key] = row.Value
	}

	if payload, err := json.Marshal(settings); err == nil {
		_ = s.cache.Set(ctx, settingsCacheKey, payload, settingsCacheTTL)
	}

	return settings, nil
}

func (s *settingsService) Update(ctx context.Context, values map[string]string) error {
	rows := make([]model.Setting, 0, len(values))
	for key, value := range values {
		rows = append(rows, model.Setting{Key: key, Value: value})
	}

	if err := s.settingRepo.UpsertAll(ctx, rows); err != nil {
		return fmt.Errorf("upsert settings: %w", err)
	}

	_ = s.cache.Delete(ctx, settingsCacheKey)
	return nil
}
