package service

import (
	"context"
	"fmt"

	"storefront/internal/model"
	"storefront/internal/repository"
)

// ContactService handles contact-form submissions.
type ContactService interface {
	Submit(ctx context.Context, name, email, subject, message string) (*model.ContactMessage, error)
	ListMessages(ctx context.Context) ([]model.ContactMessage, error)
}

type contactService struct {
	contactRepo repository.ContactRepository
}

// NewContactService creates a new contact service.
func NewContactService(contactRepo repository.ContactRepository) ContactService {
	return &contactService{contactRepo: contactRepo}
}

func (s *contactService) Submit(ctx context.Context, name, email, subject, message string) (*model.ContactMessage, error) {
	msg := &model.ContactMessage{
		Name:    name,
		Email:   email,
		Subject: subject,
		Message: message,
	}
	if err := s.contactRepo.Create(ctx, msg); err != nil {
		return nil, fmt.Errorf("create contact message: %w", err)
	}
	return msg, nil
}

func (s *contactService) ListMessages(ctx context.Context) ([]model.ContactMessage, error) {
	return s.contactRepo.List(ctx)
}
