package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/tyonekura/koibumi/internal/domain"
)

type CaptureStore struct {
	db *sql.DB
}

func NewCaptureStore(db *sql.DB) *CaptureStore {
	return &CaptureStore{db: db}
}

// Append records one recognized-text capture for a partner. Captures are
// append-only; nothing in the service updates or deletes them.
func (s *CaptureStore) Append(ctx context.Context, partnerID string, kind domain.ScreenType, recognizedText string, createdAt time.Time) (*domain.Capture, error) {
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO captures (partner_id, kind, recognized_text, created_at)
		VALUES (?, ?, ?, ?)
	`, partnerID, string(kind), recognizedText, createdAt.UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to append capture: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get last insert id: %w", err)
	}

	return s.GetByID(ctx, id)
}

func (s *CaptureStore) GetByID(ctx context.Context, id int64) (*domain.Capture, error) {
	capture := &domain.Capture{}
	err := s.db.QueryRowContext(ctx, `
		SELECT id, partner_id, kind, recognized_text, created_at
		FROM captures WHERE id = ?
	`, id).Scan(&capture.ID, &capture.PartnerID, &capture.Kind, &capture.RecognizedText, &capture.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get capture: %w", err)
	}

	return capture, nil
}

func (s *CaptureStore) ListByPartner(ctx context.Context, partnerID string, kind domain.ScreenType) ([]*domain.Capture, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, partner_id, kind, recognized_text, created_at
		FROM captures WHERE partner_id = ? AND kind = ?
		ORDER BY created_at ASC, id ASC
	`, partnerID, string(kind))
	if err != nil {
		return nil, fmt.Errorf("failed to list captures: %w", err)
	}
	defer rows.Close()

	var captures []*domain.Capture
	for rows.Next() {
		capture := &domain.Capture{}
		if err := rows.Scan(&capture.ID, &capture.PartnerID, &capture.Kind, &capture.RecognizedText, &capture.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan capture: %w", err)
		}
		captures = append(captures, capture)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating captures: %w", err)
	}

	return captures, nil
}
