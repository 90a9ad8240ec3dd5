package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/infofreiheit/crowdfunding-service/internal/forms"
	campaigndto "github.com/infofreiheit/crowdfunding-service/internal/usecase/dto/campaign"
)

type campaignResponse struct {
	ID              string `json:"id"`
	Slug            string `json:"slug"`
	Title           string `json:"title"`
	Kind            string `json:"kind"`
	AmountRequested string `json:"amount_requested"`
	AmountNeeded    string `json:"amount_needed"`
	Status          string `json:"status"`
	RequestID       string `json:"request_id"`
}

// GetCampaignDefaults serves the prefilled campaign-start form values.
func (h *CrowdfundingHandler) GetCampaignDefaults(w http.ResponseWriter, r *http.Request) {
	requestID := chi.URLParam(r, "requestID")

	defaults, err := h.CampaignUsecase.GetStartDefaults(requestID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, defaults)
}

// StartCampaign handles a campaign-start form submission.
func (h *CrowdfundingHandler) StartCampaign(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid form data"})
		return
	}

	input := &campaigndto.StartCampaignInput{
		RequestID: chi.URLParam(r, "requestID"),
		UserID:    r.Header.Get(UserIDHeader),
		Values: forms.CampaignStartValues{
			Title:           r.PostFormValue("title"),
			Kind:            r.PostFormValue("kind"),
			Description:     r.PostFormValue("description"),
			PublicInterest:  r.PostFormValue("public_interest"),
			AmountRequested: r.PostFormValue("amount_requested"),
			Terms:           r.PostFormValue("terms"),
		},
	}

	campaign, err := h.CampaignUsecase.StartCampaign(input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, campaignResponse{
		ID:              campaign.ID,
		Slug:            campaign.Slug,
		Title:           campaign.Title,
		Kind:            string(campaign.Kind),
		AmountRequested: campaign.AmountRequested.String(),
		AmountNeeded:    campaign.AmountNeeded.String(),
		Status:          string(campaign.Status),
		RequestID:       campaign.RequestID,
	})
}
