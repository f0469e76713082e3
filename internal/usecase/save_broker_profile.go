package usecase

import (
	"context"
	"fmt"

	"github.com/xavierca1/lead-exchange/internal/entity"
)

type SaveBrokerProfileUseCase struct {
	BrokerRepo BrokerRepositoryInterface
}

func NewSaveBrokerProfileUseCase(brokerRepo BrokerRepositoryInterface) *SaveBrokerProfileUseCase {
	return &SaveBrokerProfileUseCase{BrokerRepo: brokerRepo}
}

// Execute creates or updates a broker profile keyed by the authenticated
// account. The broker id is minted on first save and never changes; coverage
// and specialty sets must stay non-empty for the broker to remain active.
func (uc *SaveBrokerProfileUseCase) Execute(ctx context.Context, input SaveBrokerProfileInput) (*entity.Broker, error) {
	if errs := ValidateSaveBrokerProfileInput(input); len(errs) > 0 {
		return nil, &DomainError{Code: CodeValidation, Message: joinValidationErrors(errs)}
	}

	broker, err := entity.NewBroker(
		input.AuthUserID, input.FullName, input.Email, input.CompanyName, input.Phone,
		input.States, input.Specialties,
	)
	if err != nil {
		return nil, &DomainError{Code: CodeValidation, Message: err.Error()}
	}

	if err := uc.BrokerRepo.Upsert(ctx, broker); err != nil {
		return nil, &TechnicalError{Code: CodeStorage, Message: fmt.Sprintf("broker profile save failed: %v", err)}
	}

	return broker, nil
}
