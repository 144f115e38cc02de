package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"storefront/internal/model"
)

// MockSettingRepository is a mock implementation of SettingRepository.
type MockSettingRepository struct {
	mock.Mock
}

func (m *MockSettingRepository) List(ctx context.Context) ([]model.Setting, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Setting), args.Error(1)
}

func (m *MockSettingRepository) UpsertAll(ctx context.Context, settings []model.Setting) error {
	args := m.Called(ctx, settings)
	return args.Error(0)
}

func TestSettingsService_Get(t *testing.T) {
	t.Run("rows flattened into one map", func(t *testing.T) {
		mockSetting := new(MockSettingRepository)
		mockSetting.On("List", mock.Anything).Return([]model.Setting{
			{Key: "store_name", Value: "Storefront"},
			{Key: "maintenance_mode", Value: "0"},
		}, nil)

		service := NewSettingsService(mockSetting, nil)
		settings, err := service.Get(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, map[string]string{
			"store_name":       "Storefront",
			"maintenance_mode": "0",
		}, settings)
		mockSetting.AssertExpectations(t)
	})

	t.Run("empty table yields empty map", func(t *testing.T) {
		mockSetting := new(MockSettingRepository)
		mockSetting.On("List", mock.Anything).Return([]model.Setting{}, nil)

		service := NewSettingsService(mockSetting, nil)
		settings, err := service.Get(context.Background())

		assert.NoError(t, err)
		assert.Empty(t, settings)
	})
}

func TestSettingsService_Update(t *testing.T) {
	mockSetting := new(MockSettingRepository)
	mockSetting.On("UpsertAll", mock.Anything, mock.MatchedBy(func(rows []model.Setting) bool {
		if len(rows) != 2 {
			return false
		}
		byKey := make(map[string]string, len(rows))
		for _, row := range rows {
			byKey[row.Key] = row.Value
		}
		return byKey["store_name"] == "New Name" && byKey["maintenance_mode"] == "1"
	})).Return(nil)

	service := NewSettingsService(mockSetting, nil)
	err := service.Update(context.Background(), map[string]string{
		"store_name":       "New Name",
		"maintenance_mode": "1",
	})

	assert.NoError(t, err)
	mockSetting.AssertExpectations(t)
}
