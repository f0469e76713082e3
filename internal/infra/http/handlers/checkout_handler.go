package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/xavierca1/lead-exchange/internal/infra/http/middleware"
	"github.com/xavierca1/lead-exchange/internal/usecase"
)

type CheckoutHandler struct {
	StartCheckoutUC *usecase.StartCheckoutUseCase
}

func NewCheckoutHandler(uc *usecase.StartCheckoutUseCase) *CheckoutHandler {
	return &CheckoutHandler{StartCheckoutUC: uc}
}

func (h *CheckoutHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var input usecase.StartCheckoutInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json", "Invalid JSON")
		return
	}

	output, err := h.StartCheckoutUC.Execute(r.Context(), input)
	if err != nil {
		switch usecase.ErrorCode(err) {
		case usecase.CodeLeadUnavailable:
			middleware.RecordLockContention()
		case usecase.CodePaymentGateway:
			middleware.RecordIntegrationError("stripe")
		}
		writeUseCaseError(w, err)
		return
	}

	middleware.RecordLockAcquired()

	writeJSON(w, http.StatusCreated, output)
}
