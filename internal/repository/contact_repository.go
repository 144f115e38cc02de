package repository

import (
	"context"

	"gorm.io/gorm"

	"storefront/internal/model"
)

// ContactRepository defines contact-message persistence operations.
type ContactRepository interface {
	Create(ctx context.Context, message *model.ContactMessage) error
	List(ctx context.Context) ([]model.ContactMessage, error)
}

type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository builds a GORM-backed repository.
func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{db: db}
}

func (r *contactRepository) Create(ctx context.Context, message *model.ContactMessage) error {
	return r.db.WithContext(ctx).Create(message).Error
}

func (r *contactRepository) List(ctx context.Context) ([]model.ContactMessage, error) {
	var messages []model.ContactMessage
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}
