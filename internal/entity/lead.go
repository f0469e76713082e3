package entity

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	SegmentRefinance    = "refinance"
	SegmentSelfEmployed = "self_employed"
)

const (
	StateVIC = "VIC"
	StateNSW = "NSW"
)

const (
	ScoreGreen = "Green"
	ScoreAmber = "Amber"
	ScoreRed   = "Red"
)

func IsLeadSegment(value string) bool {
	return value == SegmentRefinance || value == SegmentSelfEmployed
}

func IsLeadState(value string) bool {
	return value == StateVIC || value == StateNSW
}

type Lead struct {
	ID             string            `json:"id"`
	Segment        string            `json:"segment"`
	State          string            `json:"state"`
	FirstName      string            `json:"first_name,omitempty"`
	LastName       string            `json:"last_name,omitempty"`
	Email          string            `json:"email,omitempty"`
	Phone          string            `json:"phone,omitempty"`
	ReadinessScore string            `json:"readiness_score"`
	QuizData       map[string]string `json:"quiz_data"`

	// Ownership fields. Only the lock acquire, lock release and finalize
	// statements in the database layer may write these.
	IsUnlocked       bool       `json:"is_unlocked"`
	LockedByBrokerID *string    `json:"locked_by_broker_id,omitempty"`
	LockExpiresAt    *time.Time `json:"lock_expires_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

func NewLead(segment, state, firstName, lastName, email, phone, readinessScore string, quizData map[string]string) *Lead {
	return &Lead{
		ID:             uuid.New().String(),
		Segment:        segment,
		State:          state,
		FirstName:      firstName,
		LastName:       lastName,
		Email:          email,
		Phone:          phone,
		ReadinessScore: readinessScore,
		QuizData:       quizData,
		IsUnlocked:     false,
		CreatedAt:      time.Now(),
	}
}

// LeadPreview is the redacted shape served to brokers before purchase.
// Contact fields are never present, not merely hidden.
type LeadPreview struct {
	ID             string            `json:"id"`
	Segment        string            `json:"segment"`
	State          string            `json:"state"`
	ReadinessScore string            `json:"readiness_score"`
	QuizData       map[string]string `json:"quiz_data"`
	CreatedAt      time.Time         `json:"created_at"`
}

// AcquireOutcome reports how a lock attempt on a lead ended.
type AcquireOutcome int

const (
	AcquireGranted AcquireOutcome = iota
	AcquireUnavailable
)

type LeadRepositoryInterface interface {
	Create(ctx context.Context, lead *Lead) error
	FindByID(ctx context.Context, id string) (*Lead, error)
	TryAcquireLock(ctx context.Context, leadID, brokerID string, now time.Time) (AcquireOutcome, error)
	ReleaseLock(ctx context.Context, leadID, brokerID string) error
	FindPreviewsForBroker(ctx context.Context, states, specialties []string, limit int) ([]LeadPreview, error)
	FindUnlockedByBroker(ctx context.Context, brokerID string) ([]Lead, error)
}
