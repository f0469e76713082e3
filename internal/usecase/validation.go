package usecase

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/xavierca1/lead-exchange/internal/entity"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func joinValidationErrors(errs []ValidationError) string {
	parts := make([]string, len(errs))
	for i, e := range errs {
		parts[i] = e.Error()
	}
	return strings.Join(parts, "; ")
}

func ValidateSubmitLeadInput(input SubmitLeadInput) []ValidationError {
	var errors []ValidationError

	if !entity.IsLeadSegment(input.Segment) {
		errors = append(errors, ValidationError{"segment", "must be refinance or self_employed"})
	}

	if !entity.IsLeadState(input.State) {
		errors = append(errors, ValidationError{"state", "must be VIC or NSW"})
	}

	if strings.TrimSpace(input.FirstName) == "" {
		errors = append(errors, ValidationError{"first_name", "is required"})
	}
	if strings.TrimSpace(input.LastName) == "" {
		errors = append(errors, ValidationError{"last_name", "is required"})
	}

	if strings.TrimSpace(input.Email) == "" {
		errors = append(errors, ValidationError{"email", "is required"})
	} else if _, err := mail.ParseAddress(input.Email); err != nil {
		errors = append(errors, ValidationError{"email", "is invalid"})
	}

	if strings.TrimSpace(input.Phone) == "" {
		errors = append(errors, ValidationError{"phone", "is required"})
	}

	if input.CreditScoreBand == "" {
		errors = append(errors, ValidationError{"credit_score_band", "is required"})
	} else if !isCreditBand(input.CreditScoreBand) {
		errors = append(errors, ValidationError{"credit_score_band", "must be excellent, good, fair or poor"})
	}

	if input.DepositBand == "" {
		errors = append(errors, ValidationError{"deposit_band", "is required"})
	} else if !isDepositBand(input.DepositBand) {
		errors = append(errors, ValidationError{"deposit_band", "must be gt20, 10to20 or lt10"})
	}

	switch input.Segment {
	case entity.SegmentRefinance:
		if input.IncomeStable == "" {
			errors = append(errors, ValidationError{"income_stable", "is required for refinance"})
		} else if !isIncomeStable(input.IncomeStable) {
			errors = append(errors, ValidationError{"income_stable", "must be yes, mostly or no"})
		}
	case entity.SegmentSelfEmployed:
		if input.BusinessYears == "" {
			errors = append(errors, ValidationError{"business_years", "is required for self_employed"})
		} else if !isBusinessYears(input.BusinessYears) {
			errors = append(errors, ValidationError{"business_years", "must be 3plus, 2to3, 1to2 or lt1"})
		}
		if input.HasTwoYearsFinancials == "" {
			errors = append(errors, ValidationError{"has_two_years_financials", "is required for self_employed"})
		} else if input.HasTwoYearsFinancials != "yes" && input.HasTwoYearsFinancials != "no" {
			errors = append(errors, ValidationError{"has_two_years_financials", "must be yes or no"})
		}
	}

	return errors
}

func ValidateSaveBrokerProfileInput(input SaveBrokerProfileInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.AuthUserID) == "" {
		errors = append(errors, ValidationError{"auth_user_id", "is required"})
	}
	if strings.TrimSpace(input.FullName) == "" {
		errors = append(errors, ValidationError{"full_name", "is required"})
	}
	if strings.TrimSpace(input.Email) == "" {
		errors = append(errors, ValidationError{"email", "is required"})
	} else if _, err := mail.ParseAddress(input.Email); err != nil {
		errors = append(errors, ValidationError{"email", "is invalid"})
	}
	if strings.TrimSpace(input.Phone) == "" {
		errors = append(errors, ValidationError{"phone", "is required"})
	}

	if len(input.States) == 0 {
		errors = append(errors, ValidationError{"state_coverage", "at least one state is required"})
	}
	for _, s := range input.States {
		if !entity.IsLeadState(s) {
			errors = append(errors, ValidationError{"state_coverage", "invalid state: " + s})
		}
	}

	if len(input.Specialties) == 0 {
		errors = append(errors, ValidationError{"specialties", "at least one specialty is required"})
	}
	for _, s := range input.Specialties {
		if !entity.IsLeadSegment(s) {
			errors = append(errors, ValidationError{"specialties", "invalid specialty: " + s})
		}
	}

	return errors
}

func isCreditBand(v string) bool {
	return v == CreditExcellent || v == CreditGood || v == CreditFair || v == CreditPoor
}

func isDepositBand(v string) bool {
	return v == DepositGt20 || v == Deposit10to20 || v == DepositLt10
}

func isIncomeStable(v string) bool {
	return v == IncomeStableYes || v == IncomeStableMostly || v == IncomeStableNo
}

func isBusinessYears(v string) bool {
	return v == BusinessYears3Plus || v == BusinessYears2to3 || v == BusinessYears1to2 || v == BusinessYearsLt1
}
