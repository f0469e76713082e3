package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"github.com/xavierca1/lead-exchange/internal/entity"
)

const (
	tierUnlocked = `UPDATE leads\s+SET locked_by_broker_id = \$1, lock_expires_at = \$2\s+WHERE id = \$3 AND is_unlocked = false AND lock_expires_at IS NULL`
	tierExpired  = `UPDATE leads\s+SET locked_by_broker_id = \$1, lock_expires_at = \$2\s+WHERE id = \$3 AND is_unlocked = false AND lock_expires_at <= \$4`
	tierOwned    = `UPDATE leads\s+SET locked_by_broker_id = \$1, lock_expires_at = \$2\s+WHERE id = \$3 AND is_unlocked = false AND locked_by_broker_id = \$1`
)

func newLeadRepo(t *testing.T) (*LeadRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock setup failed: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return NewLeadRepository(db), mock
}

func TestTryAcquireLockFreeSlot(t *testing.T) {
	repo, mock := newLeadRepo(t)
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	mock.ExpectExec(tierUnlocked).
		WithArgs("broker-a", now.Add(LockTTL), "lead-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	outcome, err := repo.TryAcquireLock(context.Background(), "lead-1", "broker-a", now)

	assert.NoError(t, err)
	assert.Equal(t, entity.AcquireGranted, outcome)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTryAcquireLockExpiredSlot(t *testing.T) {
	repo, mock := newLeadRepo(t)
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	mock.ExpectExec(tierUnlocked).
		WithArgs("broker-a", now.Add(LockTTL), "lead-1").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(tierExpired).
		WithArgs("broker-a", now.Add(LockTTL), "lead-1", now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	outcome, err := repo.TryAcquireLock(context.Background(), "lead-1", "broker-a", now)

	assert.NoError(t, err)
	assert.Equal(t, entity.AcquireGranted, outcome)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTryAcquireLockReentrantRefresh(t *testing.T) {
	repo, mock := newLeadRepo(t)
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	mock.ExpectExec(tierUnlocked).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(tierExpired).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(tierOwned).
		WithArgs("broker-a", now.Add(LockTTL), "lead-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	outcome, err := repo.TryAcquireLock(context.Background(), "lead-1", "broker-a", now)

	assert.NoError(t, err)
	assert.Equal(t, entity.AcquireGranted, outcome)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTryAcquireLockHeldByAnotherBroker(t *testing.T) {
	repo, mock := newLeadRepo(t)
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	mock.ExpectExec(tierUnlocked).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(tierExpired).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(tierOwned).WillReturnResult(sqlmock.NewResult(0, 0))

	outcome, err := repo.TryAcquireLock(context.Background(), "lead-1", "broker-b", now)

	assert.NoError(t, err)
	assert.Equal(t, entity.AcquireUnavailable, outcome)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTryAcquireLockAbortsOnStorageError(t *testing.T) {
	repo, mock := newLeadRepo(t)
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	mock.ExpectExec(tierUnlocked).WillReturnError(errors.New("connection reset"))

	outcome, err := repo.TryAcquireLock(context.Background(), "lead-1", "broker-a", now)

	assert.Error(t, err)
	assert.Equal(t, entity.AcquireUnavailable, outcome)
	// No later tier may run after a failed one.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReleaseLockRequiresOwnership(t *testing.T) {
	repo, mock := newLeadRepo(t)

	mock.ExpectExec(`UPDATE leads\s+SET locked_by_broker_id = NULL, lock_expires_at = NULL\s+WHERE id = \$1 AND is_unlocked = false AND locked_by_broker_id = \$2`).
		WithArgs("lead-1", "broker-a").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.ReleaseLock(context.Background(), "lead-1", "broker-a")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindPreviewsForBrokerOmitsContactColumns(t *testing.T) {
	repo, mock := newLeadRepo(t)
	createdAt := time.Date(2026, 3, 9, 14, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{"id", "segment", "state", "readiness_score", "quiz_data", "created_at"}).
		AddRow("lead-1", "refinance", "VIC", "Green", []byte(`{"credit":"excellent"}`), createdAt)

	mock.ExpectQuery(`SELECT id, segment, state, readiness_score, quiz_data, created_at\s+FROM leads\s+WHERE is_unlocked = false`).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), 50).
		WillReturnRows(rows)

	previews, err := repo.FindPreviewsForBroker(context.Background(), []string{"VIC"}, []string{"refinance"}, 50)

	assert.NoError(t, err)
	assert.Len(t, previews, 1)
	assert.Equal(t, "Green", previews[0].ReadinessScore)
	assert.Equal(t, "excellent", previews[0].QuizData["credit"])
	assert.NoError(t, mock.ExpectationsWereMet())
}
