package usecase

type SubmitLeadInput struct {
	Segment   string `json:"segment"`
	State     string `json:"state"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`

	CreditScoreBand string `json:"credit_score_band"`
	DepositBand     string `json:"deposit_band"`

	// Refinance only.
	IncomeStable string `json:"income_stable"`

	// Self-employed only.
	BusinessYears         string `json:"business_years"`
	HasTwoYearsFinancials string `json:"has_two_years_financials"`
}

type SubmitLeadOutput struct {
	ID             string `json:"id"`
	Segment        string `json:"segment"`
	ReadinessScore string `json:"readiness_score"`
}

type StartCheckoutInput struct {
	LeadID   string `json:"lead_id"`
	BrokerID string `json:"broker_id"`
}

type StartCheckoutOutput struct {
	CheckoutURL string `json:"checkout_url"`
	SessionID   string `json:"session_id"`
	AmountCents int64  `json:"amount_cents"`
	Currency    string `json:"currency"`
}

type FinalizeUnlockInput struct {
	LeadID      string `json:"lead_id"`
	BrokerID    string `json:"broker_id"`
	SessionID   string `json:"session_id"`
	AmountCents int64  `json:"amount_cents"`
	Currency    string `json:"currency"`
}

type FinalizeUnlockOutput struct {
	// Performed is true only for the call that actually flipped the lead to
	// unlocked. Replays and races report false with a reason.
	Performed bool   `json:"performed"`
	Reason    string `json:"reason,omitempty"`
}

type SaveBrokerProfileInput struct {
	AuthUserID  string   `json:"auth_user_id"`
	FullName    string   `json:"full_name"`
	Email       string   `json:"email"`
	CompanyName string   `json:"company_name"`
	Phone       string   `json:"phone"`
	States      []string `json:"state_coverage"`
	Specialties []string `json:"specialties"`
}

type UpdateLeadStatusInput struct {
	LeadID   string `json:"lead_id"`
	BrokerID string `json:"broker_id"`
	Status   string `json:"status"`
}
