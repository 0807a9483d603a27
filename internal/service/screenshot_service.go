package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/tyonekura/koibumi/internal/domain"
	"github.com/tyonekura/koibumi/internal/vision"
)

// partnerRepository is the subset of store.PartnerStore that
// ScreenshotService requires.
type partnerRepository interface {
	FindOrCreate(ctx context.Context, userID, name string, createdAt time.Time) (*domain.Partner, error)
}

// captureRepository is the subset of store.CaptureStore that
// ScreenshotService requires.
type captureRepository interface {
	Append(ctx context.Context, partnerID string, kind domain.ScreenType, recognizedText string, createdAt time.Time) (*domain.Capture, error)
}

// ProcessResult is returned to the client after a screenshot is ingested.
type ProcessResult struct {
	PartnerID      string
	RecognizedText string
	ScreenType     domain.ScreenType
	PartnerName    string
}

type ScreenshotService struct {
	model    vision.Model
	partners partnerRepository
	captures captureRepository
	logger   *slog.Logger
}

func NewScreenshotService(model vision.Model, partners partnerRepository, captures captureRepository, logger *slog.Logger) *ScreenshotService {
	return &ScreenshotService{
		model:    model,
		partners: partners,
		captures: captures,
		logger:   logger,
	}
}

// Process runs the classification pipeline over an uploaded screenshot and
// records the result: the partner is looked up or created under
// (userID, name), and the recognized text is appended under the classified
// screen kind.
func (s *ScreenshotService) Process(ctx context.Context, imageBase64, userID string, timestamp time.Time) (*ProcessResult, error) {
	classification, err := vision.Classify(ctx, s.model, imageBase64, s.logger)
	if err != nil {
		return nil, err
	}

	result := classification.Result
	s.logger.Info("screenshot classified",
		"screen_type", result.ScreenType,
		"partner_name", result.PartnerName,
		"recognized_len", len(classification.RecognizedText),
	)

	partner, err := s.partners.FindOrCreate(ctx, userID, result.PartnerName, timestamp)
	if err != nil {
		return nil, fmt.Errorf("failed to find or create partner: %w", err)
	}
	if partner == nil {
		return nil, fmt.Errorf("partner not found after create")
	}

	if _, err := s.captures.Append(ctx, partner.ID, result.ScreenType, classification.RecognizedText, timestamp); err != nil {
		return nil, fmt.Errorf("failed to record capture: %w", err)
	}

	return &ProcessResult{
		PartnerID:      partner.ID,
		RecognizedText: classification.RecognizedText,
		ScreenType:     result.ScreenType,
		PartnerName:    result.PartnerName,
	}, nil
}
