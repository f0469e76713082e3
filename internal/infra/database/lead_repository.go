package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/xavierca1/lead-exchange/internal/entity"
)

// LockTTL is how long a granted claim stays valid without payment.
const LockTTL = 5 * time.Minute

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

func (r *LeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	quizData, err := json.Marshal(lead.QuizData)
	if err != nil {
		return fmt.Errorf("quiz data marshal failed: %w", err)
	}

	query := `
		INSERT INTO leads (
			id, segment, state,
			first_name, last_name, email, phone,
			readiness_score, quiz_data,
			is_unlocked, locked_by_broker_id, lock_expires_at,
			created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, false, NULL, NULL, $10)
	`

	_, err = r.DB.ExecContext(ctx, query,
		lead.ID, lead.Segment, lead.State,
		lead.FirstName, lead.LastName, lead.Email, lead.Phone,
		lead.ReadinessScore, quizData,
		lead.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("lead insert failed: %w", err)
	}

	return nil
}

func (r *LeadRepository) FindByID(ctx context.Context, id string) (*entity.Lead, error) {
	query := `
		SELECT id, segment, state,
			first_name, last_name, email, phone,
			readiness_score, quiz_data,
			is_unlocked, locked_by_broker_id, lock_expires_at,
			created_at
		FROM leads
		WHERE id = $1
	`

	var lead entity.Lead
	var quizData []byte

	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&lead.ID, &lead.Segment, &lead.State,
		&lead.FirstName, &lead.LastName, &lead.Email, &lead.Phone,
		&lead.ReadinessScore, &quizData,
		&lead.IsUnlocked, &lead.LockedByBrokerID, &lead.LockExpiresAt,
		&lead.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("lead %s not found: %w", id, err)
	}

	if err := json.Unmarshal(quizData, &lead.QuizData); err != nil {
		return nil, fmt.Errorf("quiz data unmarshal failed: %w", err)
	}

	return &lead, nil
}

// TryAcquireLock grants a 5-minute exclusive claim using three ordered
// conditional updates, each individually atomic at the row level:
//
//  1. lock slot empty (lock_expires_at IS NULL)
//  2. lock expired (lock_expires_at <= now; expiry at exactly now is free)
//  3. lock already held by this broker (re-entrant refresh)
//
// The first statement that affects exactly one row wins and the rest are
// skipped. Every tier carries the is_unlocked = false guard, so a sold lead
// is never claimable. A storage error on any tier aborts immediately; falling
// through on an error could grant a lock the earlier tier should have denied.
func (r *LeadRepository) TryAcquireLock(ctx context.Context, leadID, brokerID string, now time.Time) (entity.AcquireOutcome, error) {
	expiresAt := now.Add(LockTTL)

	tiers := []struct {
		name  string
		query string
		args  []any
	}{
		{
			name: "unlocked",
			query: `UPDATE leads
				SET locked_by_broker_id = $1, lock_expires_at = $2
				WHERE id = $3 AND is_unlocked = false AND lock_expires_at IS NULL`,
			args: []any{brokerID, expiresAt, leadID},
		},
		{
			name: "expired",
			query: `UPDATE leads
				SET locked_by_broker_id = $1, lock_expires_at = $2
				WHERE id = $3 AND is_unlocked = false AND lock_expires_at <= $4`,
			args: []any{brokerID, expiresAt, leadID, now},
		},
		{
			name: "owned",
			query: `UPDATE leads
				SET locked_by_broker_id = $1, lock_expires_at = $2
				WHERE id = $3 AND is_unlocked = false AND locked_by_broker_id = $1`,
			args: []any{brokerID, expiresAt, leadID},
		},
	}

	for _, tier := range tiers {
		result, err := r.DB.ExecContext(ctx, tier.query, tier.args...)
		if err != nil {
			return entity.AcquireUnavailable, fmt.Errorf("lock attempt (%s) failed: %w", tier.name, err)
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return entity.AcquireUnavailable, fmt.Errorf("lock attempt (%s) result unreadable: %w", tier.name, err)
		}

		if affected == 1 {
			return entity.AcquireGranted, nil
		}
	}

	// All three tiers missed: another broker holds a live claim, or the lead
	// was sold between our read and the attempts.
	return entity.AcquireUnavailable, nil
}

// ReleaseLock is the checkout compensation. The guard re-affirms ownership so
// a release issued after our lock expired can never strip a claim that was
// legitimately acquired by someone else in the meantime.
func (r *LeadRepository) ReleaseLock(ctx context.Context, leadID, brokerID string) error {
	query := `
		UPDATE leads
		SET locked_by_broker_id = NULL, lock_expires_at = NULL
		WHERE id = $1 AND is_unlocked = false AND locked_by_broker_id = $2
	`

	_, err := r.DB.ExecContext(ctx, query, leadID, brokerID)
	if err != nil {
		return fmt.Errorf("lock release failed: %w", err)
	}

	return nil
}

// FindPreviewsForBroker returns unsold leads inside the broker's coverage.
// Contact columns are not selected at all; redaction happens here, not in a
// serializer.
func (r *LeadRepository) FindPreviewsForBroker(ctx context.Context, states, specialties []string, limit int) ([]entity.LeadPreview, error) {
	query := `
		SELECT id, segment, state, readiness_score, quiz_data, created_at
		FROM leads
		WHERE is_unlocked = false
		  AND state = ANY($1)
		  AND segment = ANY($2)
		ORDER BY created_at DESC
		LIMIT $3
	`

	rows, err := r.DB.QueryContext(ctx, query, pq.Array(states), pq.Array(specialties), limit)
	if err != nil {
		return nil, fmt.Errorf("lead preview query failed: %w", err)
	}
	defer rows.Close()

	var previews []entity.LeadPreview
	for rows.Next() {
		var p entity.LeadPreview
		var quizData []byte

		if err := rows.Scan(&p.ID, &p.Segment, &p.State, &p.ReadinessScore, &quizData, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("lead preview scan failed: %w", err)
		}
		if err := json.Unmarshal(quizData, &p.QuizData); err != nil {
			return nil, fmt.Errorf("quiz data unmarshal failed: %w", err)
		}

		previews = append(previews, p)
	}

	return previews, rows.Err()
}

func (r *LeadRepository) FindUnlockedByBroker(ctx context.Context, brokerID string) ([]entity.Lead, error) {
	query := `
		SELECT id, segment, state,
			first_name, last_name, email, phone,
			readiness_score, quiz_data,
			is_unlocked, locked_by_broker_id, lock_expires_at,
			created_at
		FROM leads
		WHERE is_unlocked = true AND locked_by_broker_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.DB.QueryContext(ctx, query, brokerID)
	if err != nil {
		return nil, fmt.Errorf("unlocked leads query failed: %w", err)
	}
	defer rows.Close()

	var leads []entity.Lead
	for rows.Next() {
		var lead entity.Lead
		var quizData []byte

		if err := rows.Scan(
			&lead.ID, &lead.Segment, &lead.State,
			&lead.FirstName, &lead.LastName, &lead.Email, &lead.Phone,
			&lead.ReadinessScore, &quizData,
			&lead.IsUnlocked, &lead.LockedByBrokerID, &lead.LockExpiresAt,
			&lead.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("unlocked lead scan failed: %w", err)
		}
		if err := json.Unmarshal(quizData, &lead.QuizData); err != nil {
			return nil, fmt.Errorf("quiz data unmarshal failed: %w", err)
		}

		leads = append(leads, lead)
	}

	return leads, rows.Err()
}
