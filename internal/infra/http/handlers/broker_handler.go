package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/lead-exchange/internal/entity"
	"github.com/xavierca1/lead-exchange/internal/usecase"
)

// BrokerHandler serves the broker-facing surface: profile upsert, the
// redacted preview feed, the owned-lead feed and status annotations. The
// acting broker is identified by path parameter; the auth layer in front of
// this service owns session-to-broker mapping.
type BrokerHandler struct {
	BrokerRepo       usecase.BrokerRepositoryInterface
	LeadRepo         entity.LeadRepositoryInterface
	StatusRepo       usecase.LeadStatusRepositoryInterface
	SaveProfileUC    *usecase.SaveBrokerProfileUseCase
	UpdateStatusUC   *usecase.UpdateLeadStatusUseCase
	PreviewFeedLimit int
}

func NewBrokerHandler(
	brokerRepo usecase.BrokerRepositoryInterface,
	leadRepo entity.LeadRepositoryInterface,
	statusRepo usecase.LeadStatusRepositoryInterface,
	saveProfileUC *usecase.SaveBrokerProfileUseCase,
	updateStatusUC *usecase.UpdateLeadStatusUseCase,
) *BrokerHandler {
	return &BrokerHandler{
		BrokerRepo:       brokerRepo,
		LeadRepo:         leadRepo,
		StatusRepo:       statusRepo,
		SaveProfileUC:    saveProfileUC,
		UpdateStatusUC:   updateStatusUC,
		PreviewFeedLimit: 50,
	}
}

func (h *BrokerHandler) HandleSaveProfile(w http.ResponseWriter, r *http.Request) {
	var input usecase.SaveBrokerProfileInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json", "Invalid JSON")
		return
	}

	broker, err := h.SaveProfileUC.Execute(r.Context(), input)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, broker)
}

// HandlePreviewFeed returns unsold leads matching the broker's coverage.
// Contact fields are never part of the payload.
func (h *BrokerHandler) HandlePreviewFeed(w http.ResponseWriter, r *http.Request) {
	brokerID := chi.URLParam(r, "brokerID")

	broker, err := h.BrokerRepo.FindByID(r.Context(), brokerID)
	if err != nil {
		writeError(w, http.StatusNotFound, usecase.CodeBrokerNotFound, "broker profile not found")
		return
	}

	previews, err := h.LeadRepo.FindPreviewsForBroker(r.Context(), broker.States, broker.Specialties, h.PreviewFeedLimit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, usecase.CodeStorage, "could not load matching leads")
		return
	}

	if previews == nil {
		previews = []entity.LeadPreview{}
	}
	writeJSON(w, http.StatusOK, previews)
}

type unlockedLeadView struct {
	entity.Lead
	Status string `json:"status,omitempty"`
}

// HandleUnlockedFeed returns the broker's purchased leads with full contact
// details, each annotated with its pipeline status when one has been set.
func (h *BrokerHandler) HandleUnlockedFeed(w http.ResponseWriter, r *http.Request) {
	brokerID := chi.URLParam(r, "brokerID")

	leads, err := h.LeadRepo.FindUnlockedByBroker(r.Context(), brokerID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, usecase.CodeStorage, "could not load unlocked leads")
		return
	}

	views := make([]unlockedLeadView, 0, len(leads))
	for _, lead := range leads {
		view := unlockedLeadView{Lead: lead}
		if status, err := h.StatusRepo.FindByLeadID(r.Context(), lead.ID); err == nil {
			view.Status = status.Status
		}
		views = append(views, view)
	}

	writeJSON(w, http.StatusOK, views)
}

func (h *BrokerHandler) HandleUpdateLeadStatus(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json", "Invalid JSON")
		return
	}

	input := usecase.UpdateLeadStatusInput{
		LeadID:   chi.URLParam(r, "leadID"),
		BrokerID: chi.URLParam(r, "brokerID"),
		Status:   body.Status,
	}

	if err := h.UpdateStatusUC.Execute(r.Context(), input); err != nil {
		writeUseCaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": body.Status})
}
