package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"shopdesk/internal/model"
	"shopdesk/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type inquiryService struct {
	inquiryRepo repository.InquiryRepository
	logger      zerolog.Logger
}

// NewInquiryService creates a new inquiry service.
func NewInquiryService(inquiryRepo repository.InquiryRepository, logger zerolog.Logger) InquiryService {
	return &inquiryService{
		inquiryRepo: inquiryRepo,
		logger:      logger.With().Str("service", "inquiry").Logger(),
	}
}

// Create stores a storefront contact inquiry.
func (s *inquiryService) Create(ctx context.Context, req *model.InquiryRequest) (*model.Inquiry, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, model.NewValidationError("Name is required")
	}
	if strings.TrimSpace(req.Message) == "" {
		return nil, model.NewValidationError("Message is required")
	}

	inquiry := &model.Inquiry{
		ID:        uuid.New(),
		Name:      strings.TrimSpace(req.Name),
		Email:     strings.TrimSpace(req.Email),
		Message:   strings.TrimSpace(req.Message),
		CreatedAt: time.Now().UTC(),
	}

	if err := s.inquiryRepo.Create(ctx, inquiry); err != nil {
		return nil, fmt.Errorf("failed to create inquiry: %w", err)
	}

	s.logger.Info().Str("inquiry_id", inquiry.ID.String()).Msg("inquiry submitted")
	return inquiry, nil
}

// GetAll returns all submitted inquiries.
func (s *inquiryService) GetAll(ctx context.Context) ([]model.Inquiry, error) {
	inquiries, err := s.inquiryRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get inquiries: %w", err)
	}
	return inquiries, nil
}
