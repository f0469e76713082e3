package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/xavierca1/lead-exchange/internal/entity"
	"github.com/xavierca1/lead-exchange/internal/usecase"
)

type UnlockRepository struct {
	DB *sql.DB
}

func NewUnlockRepository(db *sql.DB) *UnlockRepository {
	return &UnlockRepository{DB: db}
}

// FinalizeUnlock performs the one transition with the strictest consistency
// requirement in the system: at most one unlock per lead, ever.
//
// Both statements run in a single transaction:
//
//  1. Ledger insert with ON CONFLICT (stripe_session_id) DO NOTHING. Zero rows
//     means this payment session was already processed (provider redelivery);
//     the transaction rolls back and the call is a no-op.
//  2. Guarded ownership flip. The guard requires the lead to still be unsold
//     and the lock slot to name the paying broker (or nobody, covering a lock
//     that lapsed without being reclaimed). Zero rows here also rolls back,
//     so ledger rows exist only for unlocks that actually happened.
//
// The unique index on stripe_session_id plus the row lock taken by the UPDATE
// serialize concurrent deliveries; first writer wins, the rest observe one of
// the no-op shapes below.
func (r *UnlockRepository) FinalizeUnlock(ctx context.Context, ledger *entity.UnlockTransaction) (usecase.FinalizeResult, error) {
	var result usecase.FinalizeResult

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return result, fmt.Errorf("finalize transaction begin failed: %w", err)
	}
	defer tx.Rollback()

	insert := `
		INSERT INTO unlock_transactions (
			id, lead_id, broker_id, amount_cents, currency, stripe_session_id, completed_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (stripe_session_id) DO NOTHING
	`

	insertResult, err := tx.ExecContext(ctx, insert,
		ledger.ID, ledger.LeadID, ledger.BrokerID,
		ledger.AmountCents, ledger.Currency, ledger.StripeSessionID, ledger.CompletedAt,
	)
	if err != nil {
		return result, fmt.Errorf("ledger insert failed: %w", err)
	}

	inserted, err := insertResult.RowsAffected()
	if err != nil {
		return result, fmt.Errorf("ledger insert result unreadable: %w", err)
	}
	if inserted == 0 {
		result.Reason = usecase.ReasonAlreadyRecorded
		return result, nil
	}

	update := `
		UPDATE leads
		SET is_unlocked = true, locked_by_broker_id = $2, lock_expires_at = NULL
		WHERE id = $1
		  AND is_unlocked = false
		  AND (locked_by_broker_id = $2 OR locked_by_broker_id IS NULL)
	`

	updateResult, err := tx.ExecContext(ctx, update, ledger.LeadID, ledger.BrokerID)
	if err != nil {
		return result, fmt.Errorf("unlock update failed: %w", err)
	}

	updated, err := updateResult.RowsAffected()
	if err != nil {
		return result, fmt.Errorf("unlock update result unreadable: %w", err)
	}
	if updated == 0 {
		reason, err := r.classifyMiss(ctx, tx, ledger.LeadID)
		if err != nil {
			return result, err
		}
		result.Reason = reason
		return result, nil
	}

	if err := tx.Commit(); err != nil {
		return result, fmt.Errorf("finalize commit failed: %w", err)
	}

	result.Performed = true
	return result, nil
}

// classifyMiss tells a replay on a sold lead apart from a lock that moved to
// a different broker between checkout and payment. The latter must never be
// converted into an ownership assignment; it is flagged for reconciliation.
func (r *UnlockRepository) classifyMiss(ctx context.Context, tx *sql.Tx, leadID string) (string, error) {
	var isUnlocked bool
	err := tx.QueryRowContext(ctx, `SELECT is_unlocked FROM leads WHERE id = $1`, leadID).Scan(&isUnlocked)
	if err != nil {
		return "", fmt.Errorf("finalize miss classification failed: %w", err)
	}

	if isUnlocked {
		return usecase.ReasonAlreadyUnlocked, nil
	}
	return usecase.ReasonHolderMismatch, nil
}
