package usecase

import (
	"context"
	"fmt"
	"log"

	"github.com/xavierca1/lead-exchange/internal/entity"
)

type SubmitLeadUseCase struct {
	LeadRepo     entity.LeadRepositoryInterface
	EmailService EmailService
}

func NewSubmitLeadUseCase(leadRepo entity.LeadRepositoryInterface, emailService EmailService) *SubmitLeadUseCase {
	return &SubmitLeadUseCase{LeadRepo: leadRepo, EmailService: emailService}
}

// Execute validates a borrower quiz, scores it once and stores the lead with
// its ownership fields zeroed. The readiness score is immutable after this.
func (uc *SubmitLeadUseCase) Execute(ctx context.Context, input SubmitLeadInput) (*SubmitLeadOutput, error) {
	if errs := ValidateSubmitLeadInput(input); len(errs) > 0 {
		return nil, &DomainError{Code: CodeValidation, Message: joinValidationErrors(errs)}
	}

	var score string
	var quizData map[string]string

	if input.Segment == entity.SegmentRefinance {
		score = CalculateRefinanceReadiness(RefinanceAnswers{
			CreditScoreBand: input.CreditScoreBand,
			DepositBand:     input.DepositBand,
			IncomeStable:    input.IncomeStable,
		})
		quizData = map[string]string{
			"credit_score_band": input.CreditScoreBand,
			"deposit_band":      input.DepositBand,
			"income_stable":     input.IncomeStable,
		}
	} else {
		score = CalculateSelfEmployedReadiness(SelfEmployedAnswers{
			CreditScoreBand:       input.CreditScoreBand,
			DepositBand:           input.DepositBand,
			BusinessYears:         input.BusinessYears,
			HasTwoYearsFinancials: input.HasTwoYearsFinancials,
		})
		quizData = map[string]string{
			"credit_score_band":        input.CreditScoreBand,
			"deposit_band":             input.DepositBand,
			"business_years":           input.BusinessYears,
			"has_two_years_financials": input.HasTwoYearsFinancials,
		}
	}

	lead := entity.NewLead(
		input.Segment, input.State,
		input.FirstName, input.LastName, input.Email, input.Phone,
		score, quizData,
	)

	if err := uc.LeadRepo.Create(ctx, lead); err != nil {
		return nil, &TechnicalError{Code: CodeStorage, Message: fmt.Sprintf("lead insert failed: %v", err)}
	}

	// Best effort. A lost confirmation email never fails the submission.
	if uc.EmailService != nil {
		if err := uc.EmailService.SendQuizConfirmation(lead.Email, lead.FirstName, lead.Segment, score); err != nil {
			log.Printf("[SUBMIT] confirmation email failed for lead %s: %v", lead.ID, err)
		}
	}

	return &SubmitLeadOutput{ID: lead.ID, Segment: lead.Segment, ReadinessScore: score}, nil
}
