package usecase

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/xavierca1/lead-exchange/internal/entity"
	"github.com/xavierca1/lead-exchange/internal/infra/queue"
)

type FinalizeUnlockUseCase struct {
	UnlockRepo UnlockRepositoryInterface
	LeadRepo   entity.LeadRepositoryInterface
	BrokerRepo BrokerRepositoryInterface
	Queue      QueueProducerInterface
	Now        Clock
}

func NewFinalizeUnlockUseCase(
	unlockRepo UnlockRepositoryInterface,
	leadRepo entity.LeadRepositoryInterface,
	brokerRepo BrokerRepositoryInterface,
	producer QueueProducerInterface,
	now Clock,
) *FinalizeUnlockUseCase {
	return &FinalizeUnlockUseCase{
		UnlockRepo: unlockRepo,
		LeadRepo:   leadRepo,
		BrokerRepo: brokerRepo,
		Queue:      producer,
		Now:        now,
	}
}

// Execute converts a confirmed payment into permanent lead ownership. The
// whole transition happens inside one storage transaction; this layer only
// interprets the result and fans out the sold notification.
//
// Replays of the same payment session and races on an already-sold lead are
// not errors: they report Performed=false and mutate nothing.
func (uc *FinalizeUnlockUseCase) Execute(ctx context.Context, input FinalizeUnlockInput) (*FinalizeUnlockOutput, error) {
	if input.LeadID == "" || input.BrokerID == "" || input.SessionID == "" || input.AmountCents <= 0 || input.Currency == "" {
		return nil, &DomainError{Code: CodeValidation, Message: "lead_id, broker_id, session_id, amount and currency are required"}
	}

	ledger := &entity.UnlockTransaction{
		ID:              uuid.New().String(),
		LeadID:          input.LeadID,
		BrokerID:        input.BrokerID,
		AmountCents:     input.AmountCents,
		Currency:        input.Currency,
		StripeSessionID: input.SessionID,
		CompletedAt:     uc.Now(),
	}

	result, err := uc.UnlockRepo.FinalizeUnlock(ctx, ledger)
	if err != nil {
		return nil, &TechnicalError{Code: CodeStorage, Message: fmt.Sprintf("unlock finalize failed: %v", err)}
	}

	if !result.Performed {
		if result.Reason == ReasonHolderMismatch {
			// The lock moved to another broker between checkout and payment.
			// Never reassign ownership silently; leave it for reconciliation.
			log.Printf("[FINALIZE] holder mismatch on lead %s: payment names broker %s, needs manual reconciliation", input.LeadID, input.BrokerID)
		}
		return &FinalizeUnlockOutput{Performed: false, Reason: result.Reason}, nil
	}

	uc.publishSoldNotification(ctx, input)

	return &FinalizeUnlockOutput{Performed: true}, nil
}

// publishSoldNotification is best effort. The unlock is already committed, so
// a queue or lookup failure is logged and swallowed, never propagated.
func (uc *FinalizeUnlockUseCase) publishSoldNotification(ctx context.Context, input FinalizeUnlockInput) {
	if uc.Queue == nil {
		return
	}

	lead, err := uc.LeadRepo.FindByID(ctx, input.LeadID)
	if err != nil {
		log.Printf("[FINALIZE] sold lead %s lookup for notification failed: %v", input.LeadID, err)
		return
	}

	broker, err := uc.BrokerRepo.FindByID(ctx, input.BrokerID)
	if err != nil {
		log.Printf("[FINALIZE] broker %s lookup for notification failed: %v", input.BrokerID, err)
		return
	}

	payload := queue.LeadSoldPayload{
		LeadID:      lead.ID,
		BrokerID:    broker.ID,
		BrokerName:  broker.FullName,
		BrokerEmail: broker.Email,
		LeadName:    lead.FirstName + " " + lead.LastName,
		LeadEmail:   lead.Email,
		LeadPhone:   lead.Phone,
		Segment:     lead.Segment,
		State:       lead.State,
		AmountCents: input.AmountCents,
		Currency:    input.Currency,
		Origin:      "WEBHOOK_STRIPE",
	}

	if err := uc.Queue.PublishLeadSold(ctx, payload); err != nil {
		log.Printf("[FINALIZE] unlocked in storage but sold notification failed: %v", err)
	}
}
