package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/xavierca1/lead-exchange/internal/entity"
)

type LeadStatusRepository struct {
	DB *sql.DB
}

func NewLeadStatusRepository(db *sql.DB) *LeadStatusRepository {
	return &LeadStatusRepository{DB: db}
}

func (r *LeadStatusRepository) Upsert(ctx context.Context, status *entity.LeadStatus) error {
	query := `
		INSERT INTO lead_status (lead_id, broker_id, status, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (lead_id)
		DO UPDATE SET
			broker_id = EXCLUDED.broker_id,
			status = EXCLUDED.status,
			updated_at = EXCLUDED.updated_at
	`

	_, err := r.DB.ExecContext(ctx, query, status.LeadID, status.BrokerID, status.Status, status.UpdatedAt)
	if err != nil {
		return fmt.Errorf("lead status upsert failed: %w", err)
	}

	return nil
}

func (r *LeadStatusRepository) FindByLeadID(ctx context.Context, leadID string) (*entity.LeadStatus, error) {
	query := `SELECT lead_id, broker_id, status, updated_at FROM lead_status WHERE lead_id = $1`

	var status entity.LeadStatus
	err := r.DB.QueryRowContext(ctx, query, leadID).Scan(
		&status.LeadID, &status.BrokerID, &status.Status, &status.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("lead status not found: %w", err)
	}

	return &status, nil
}
