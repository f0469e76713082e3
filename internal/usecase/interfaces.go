package usecase

import (
	"context"
	"time"

	"github.com/xavierca1/lead-exchange/internal/entity"
	"github.com/xavierca1/lead-exchange/internal/infra/integration/stripe"
	"github.com/xavierca1/lead-exchange/internal/infra/queue"
)

type BrokerRepositoryInterface interface {
	Upsert(ctx context.Context, broker *entity.Broker) error
	FindByID(ctx context.Context, id string) (*entity.Broker, error)
	FindByAuthUserID(ctx context.Context, authUserID string) (*entity.Broker, error)
}

// FinalizeResult is the outcome of the atomic unlock procedure. Reason is set
// only when Performed is false.
type FinalizeResult struct {
	Performed bool
	Reason    string
}

// No-op reasons reported by the finalize procedure.
const (
	ReasonAlreadyRecorded = "already_recorded"
	ReasonAlreadyUnlocked = "already_unlocked"
	ReasonHolderMismatch  = "holder_mismatch"
)

type UnlockRepositoryInterface interface {
	// FinalizeUnlock runs the ledger insert and the guarded ownership flip in
	// one storage transaction.
	FinalizeUnlock(ctx context.Context, tx *entity.UnlockTransaction) (FinalizeResult, error)
}

type LeadStatusRepositoryInterface interface {
	Upsert(ctx context.Context, status *entity.LeadStatus) error
	FindByLeadID(ctx context.Context, leadID string) (*entity.LeadStatus, error)
}

type PaymentGateway interface {
	CreateCheckoutSession(ctx context.Context, input stripe.CreateCheckoutSessionInput) (*stripe.CheckoutSession, error)
}

type EmailService interface {
	SendQuizConfirmation(to, firstName, segment, readinessScore string) error
}

// Clock lets tests pin "now"; production wiring passes time.Now.
type Clock func() time.Time

type QueueProducerInterface = queue.QueueProducerInterface
