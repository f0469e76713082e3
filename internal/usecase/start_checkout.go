package usecase

import (
	"context"
	"fmt"
	"log"
	"net/url"

	"github.com/xavierca1/lead-exchange/internal/entity"
	"github.com/xavierca1/lead-exchange/internal/infra/integration/stripe"
)

type StartCheckoutUseCase struct {
	LeadRepo   entity.LeadRepositoryInterface
	BrokerRepo BrokerRepositoryInterface
	Gateway    PaymentGateway
	AppBaseURL string
	Now        Clock
}

func NewStartCheckoutUseCase(
	leadRepo entity.LeadRepositoryInterface,
	brokerRepo BrokerRepositoryInterface,
	gateway PaymentGateway,
	appBaseURL string,
	now Clock,
) *StartCheckoutUseCase {
	return &StartCheckoutUseCase{
		LeadRepo:   leadRepo,
		BrokerRepo: brokerRepo,
		Gateway:    gateway,
		AppBaseURL: appBaseURL,
		Now:        now,
	}
}

// Execute claims a 5-minute exclusive option on a lead for one broker and
// opens a payment session scoped to that pair.
//
// The precondition reads below are informational. Every one of them is
// re-affirmed inside the conditional updates that TryAcquireLock issues, so a
// stale read can delay a broker but never hand out two live claims.
func (uc *StartCheckoutUseCase) Execute(ctx context.Context, input StartCheckoutInput) (*StartCheckoutOutput, error) {
	if input.LeadID == "" || input.BrokerID == "" {
		return nil, &DomainError{Code: CodeValidation, Message: "lead_id and broker_id are required"}
	}

	broker, err := uc.BrokerRepo.FindByID(ctx, input.BrokerID)
	if err != nil {
		return nil, &DomainError{Code: CodeBrokerNotFound, Message: "broker profile not found"}
	}

	lead, err := uc.LeadRepo.FindByID(ctx, input.LeadID)
	if err != nil {
		return nil, &DomainError{Code: CodeLeadNotFound, Message: "lead is no longer available"}
	}

	if !MatchesBrokerCoverage(broker.States, broker.Specialties, lead.State, lead.Segment) {
		return nil, &DomainError{Code: CodeCoverageMismatch, Message: "this lead does not match your coverage"}
	}

	if lead.IsUnlocked {
		return nil, &DomainError{Code: CodeLeadUnavailable, Message: "lead already unlocked by another broker"}
	}

	now := uc.Now()
	if IsLeadLockedByOtherBroker(lead.LockedByBrokerID, broker.ID, lead.LockExpiresAt, now) {
		return nil, &DomainError{Code: CodeLeadUnavailable, Message: "lead is currently locked by another broker, try again shortly"}
	}

	outcome, err := uc.LeadRepo.TryAcquireLock(ctx, lead.ID, broker.ID, now)
	if err != nil {
		return nil, &TechnicalError{Code: CodeStorage, Message: fmt.Sprintf("lead lock failed: %v", err)}
	}
	if outcome != entity.AcquireGranted {
		return nil, &DomainError{Code: CodeLeadUnavailable, Message: "lead lock could not be acquired, another broker may have started checkout"}
	}

	segmentLabel := "Refinance"
	if lead.Segment == entity.SegmentSelfEmployed {
		segmentLabel = "Self-employed"
	}
	priceCents := LeadPricingAUDCents[lead.Segment]

	session, err := uc.Gateway.CreateCheckoutSession(ctx, stripe.CreateCheckoutSessionInput{
		SuccessURL:  uc.dashboardURL("Payment received. Finalising unlock..."),
		CancelURL:   uc.dashboardURL("Checkout cancelled. Lock expires in 5 minutes."),
		ProductName: segmentLabel + " lead unlock",
		Description: "Exclusive lead access for first successful broker payment.",
		AmountCents: priceCents,
		Currency:    LeadCurrency,
		LeadID:      lead.ID,
		BrokerID:    broker.ID,
	})
	if err != nil {
		// Compensation: give the lock back so another broker can buy the lead
		// right away. The release is guarded by ownership, so it cannot
		// clobber a lock someone else acquired after ours expired.
		if relErr := uc.LeadRepo.ReleaseLock(ctx, lead.ID, broker.ID); relErr != nil {
			log.Printf("[CHECKOUT] lock release after gateway failure also failed for lead %s: %v", lead.ID, relErr)
		}
		return nil, &TechnicalError{Code: CodePaymentGateway, Message: fmt.Sprintf("could not start checkout: %v", err)}
	}

	return &StartCheckoutOutput{
		CheckoutURL: session.URL,
		SessionID:   session.ID,
		AmountCents: priceCents,
		Currency:    LeadCurrency,
	}, nil
}

func (uc *StartCheckoutUseCase) dashboardURL(message string) string {
	return uc.AppBaseURL + "/broker/dashboard?message=" + url.QueryEscape(message)
}
