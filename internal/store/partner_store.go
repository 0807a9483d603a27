package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tyonekura/koibumi/internal/domain"
)

type PartnerStore struct {
	db *sql.DB
}

func NewPartnerStore(db *sql.DB) *PartnerStore {
	return &PartnerStore{db: db}
}

// FindOrCreate returns the partner for (userID, name), creating it on first
// encounter. The insert is idempotent on the unique (user_id, partner_name)
// pair, so concurrent or retried calls never produce duplicate rows.
func (s *PartnerStore) FindOrCreate(ctx context.Context, userID, name string, createdAt time.Time) (*domain.Partner, error) {
	id := uuid.NewString()
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO partners (partner_id, user_id, partner_name, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (user_id, partner_name) DO NOTHING
	`, id, userID, name, createdAt.UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to create partner: %w", err)
	}

	return s.GetByUserAndName(ctx, userID, name)
}

func (s *PartnerStore) GetByUserAndName(ctx context.Context, userID, name string) (*domain.Partner, error) {
	partner := &domain.Partner{}
	err := s.db.QueryRowContext(ctx, `
		SELECT partner_id, user_id, partner_name, created_at
		FROM partners WHERE user_id = ? AND partner_name = ?
	`, userID, name).Scan(&partner.ID, &partner.UserID, &partner.Name, &partner.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get partner: %w", err)
	}

	return partner, nil
}

func (s *PartnerStore) ListByUser(ctx context.Context, userID string) ([]*domain.Partner, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT partner_id, user_id, partner_name, created_at
		FROM partners WHERE user_id = ? ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list partners: %w", err)
	}
	defer rows.Close()

	var partners []*domain.Partner
	for rows.Next() {
		partner := &domain.Partner{}
		if err := rows.Scan(&partner.ID, &partner.UserID, &partner.Name, &partner.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan partner: %w", err)
		}
		partners = append(partners, partner)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating partners: %w", err)
	}

	return partners, nil
}
