package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/xavierca1/lead-exchange/internal/usecase"
)

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Error: code, Message: message})
}

// writeUseCaseError maps the structured outcome taxonomy onto HTTP statuses.
// Contention is 409, business rejections are 4xx, infrastructure is 5xx.
func writeUseCaseError(w http.ResponseWriter, err error) {
	code := usecase.ErrorCode(err)

	switch code {
	case usecase.CodeValidation:
		writeError(w, http.StatusBadRequest, code, err.Error())
	case usecase.CodeCoverageMismatch, usecase.CodeNotOwner:
		writeError(w, http.StatusForbidden, code, err.Error())
	case usecase.CodeLeadNotFound, usecase.CodeBrokerNotFound:
		writeError(w, http.StatusNotFound, code, err.Error())
	case usecase.CodeLeadUnavailable:
		writeError(w, http.StatusConflict, code, err.Error())
	case usecase.CodePaymentGateway:
		writeError(w, http.StatusBadGateway, code, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, usecase.CodeStorage, err.Error())
	}
}
