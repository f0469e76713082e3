package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"github.com/xavierca1/lead-exchange/internal/entity"
)

type BrokerRepository struct {
	DB *sql.DB
}

func NewBrokerRepository(db *sql.DB) *BrokerRepository {
	return &BrokerRepository{DB: db}
}

// Upsert keys the profile on the authenticated account. The broker id is
// assigned on first save and preserved on every later update.
func (r *BrokerRepository) Upsert(ctx context.Context, broker *entity.Broker) error {
	query := `
		INSERT INTO brokers (
			id, auth_user_id, full_name, email, company_name, phone,
			state_coverage, specialties, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		ON CONFLICT (auth_user_id)
		DO UPDATE SET
			full_name = EXCLUDED.full_name,
			email = EXCLUDED.email,
			company_name = EXCLUDED.company_name,
			phone = EXCLUDED.phone,
			state_coverage = EXCLUDED.state_coverage,
			specialties = EXCLUDED.specialties,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := r.DB.QueryRowContext(ctx, query,
		broker.ID, broker.AuthUserID, broker.FullName, broker.Email,
		nullString(broker.CompanyName), broker.Phone,
		pq.Array(broker.States), pq.Array(broker.Specialties),
	).Scan(&broker.ID, &broker.CreatedAt, &broker.UpdatedAt)
	if err != nil {
		return fmt.Errorf("broker upsert failed: %w", err)
	}

	return nil
}

func (r *BrokerRepository) FindByID(ctx context.Context, id string) (*entity.Broker, error) {
	return r.findOne(ctx, `WHERE id = $1`, id)
}

func (r *BrokerRepository) FindByAuthUserID(ctx context.Context, authUserID string) (*entity.Broker, error) {
	return r.findOne(ctx, `WHERE auth_user_id = $1`, authUserID)
}

func (r *BrokerRepository) findOne(ctx context.Context, where string, arg any) (*entity.Broker, error) {
	query := `
		SELECT id, auth_user_id, full_name, email, COALESCE(company_name, ''), phone,
			state_coverage, specialties, created_at, updated_at
		FROM brokers ` + where

	var broker entity.Broker

	err := r.DB.QueryRowContext(ctx, query, arg).Scan(
		&broker.ID, &broker.AuthUserID, &broker.FullName, &broker.Email,
		&broker.CompanyName, &broker.Phone,
		pq.Array(&broker.States), pq.Array(&broker.Specialties),
		&broker.CreatedAt, &broker.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("broker not found: %w", err)
	}

	return &broker, nil
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
