package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/xavierca1/lead-exchange/internal/entity"
)

type UpdateLeadStatusUseCase struct {
	LeadRepo   entity.LeadRepositoryInterface
	StatusRepo LeadStatusRepositoryInterface
}

func NewUpdateLeadStatusUseCase(leadRepo entity.LeadRepositoryInterface, statusRepo LeadStatusRepositoryInterface) *UpdateLeadStatusUseCase {
	return &UpdateLeadStatusUseCase{LeadRepo: leadRepo, StatusRepo: statusRepo}
}

// Execute upserts the working status on a purchased lead. Only the broker who
// owns the lead (is_unlocked plus matching locked_by_broker_id) may write.
func (uc *UpdateLeadStatusUseCase) Execute(ctx context.Context, input UpdateLeadStatusInput) error {
	if input.LeadID == "" || input.BrokerID == "" {
		return &DomainError{Code: CodeValidation, Message: "lead_id and broker_id are required"}
	}
	if !entity.IsLeadStatus(input.Status) {
		return &DomainError{Code: CodeValidation, Message: "invalid lead status"}
	}

	lead, err := uc.LeadRepo.FindByID(ctx, input.LeadID)
	if err != nil {
		return &DomainError{Code: CodeLeadNotFound, Message: "lead not found"}
	}

	if !lead.IsUnlocked || lead.LockedByBrokerID == nil || *lead.LockedByBrokerID != input.BrokerID {
		return &DomainError{Code: CodeNotOwner, Message: "this lead is not available for status updates"}
	}

	status := &entity.LeadStatus{
		LeadID:    input.LeadID,
		BrokerID:  input.BrokerID,
		Status:    input.Status,
		UpdatedAt: time.Now(),
	}

	if err := uc.StatusRepo.Upsert(ctx, status); err != nil {
		return &TechnicalError{Code: CodeStorage, Message: fmt.Sprintf("lead status save failed: %v", err)}
	}

	return nil
}
