// Package httpapi is the inbound surface: it translates web-form
// submissions into usecase calls and validation results back into HTTP
// responses. Rendering belongs to the portal frontend, not here.
package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/infofreiheit/crowdfunding-service/internal/domain"
	"github.com/infofreiheit/crowdfunding-service/internal/forms"
	"github.com/infofreiheit/crowdfunding-service/internal/usecase"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// UserIDHeader carries the authenticated user's ID, set by the portal
// gateway. Absent for guests.
const UserIDHeader = "X-User-Id"

type CrowdfundingHandler struct {
	CampaignUsecase     usecase.CampaignUsecase
	ContributionUsecase usecase.ContributionUsecase
}

func NewCrowdfundingHandler(
	campaignUsecase usecase.CampaignUsecase,
	contributionUsecase usecase.ContributionUsecase) *CrowdfundingHandler {

	return &CrowdfundingHandler{
		CampaignUsecase:     campaignUsecase,
		ContributionUsecase: contributionUsecase,
	}
}

func (h *CrowdfundingHandler) Router() http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/requests/{requestID}/crowdfunding", func(r chi.Router) {
		r.Get("/new", h.GetCampaignDefaults)
		r.Post("/", h.StartCampaign)
	})
	r.Route("/crowdfunding/{campaignID}/contributions", func(r chi.Router) {
		r.Get("/new", h.GetContributionDefaults)
		r.Post("/", h.Contribute)
	})

	return r
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	var ve *forms.ValidationError
	if errors.As(err, &ve) {
		if ve.FormError != "" {
			writeJSON(w, http.StatusConflict, ve)
			return
		}
		writeJSON(w, http.StatusBadRequest, ve)
		return
	}

	switch {
	case errors.Is(err, domain.ErrRequestNotFound),
		errors.Is(err, domain.ErrCampaignNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
	case errors.Is(err, domain.ErrOngoingCampaign):
		writeJSON(w, http.StatusConflict, map[string]string{"error": err.Error()})
	case errors.Is(err, domain.ErrOrderCreationFailed):
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": err.Error()})
	default:
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
}
