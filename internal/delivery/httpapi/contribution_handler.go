package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/infofreiheit/crowdfunding-service/internal/forms"
	contributiondto "github.com/infofreiheit/crowdfunding-service/internal/usecase/dto/contribution"
)

type contributionResponse struct {
	ID         string `json:"id"`
	CampaignID string `json:"campaign_id"`
	Amount     string `json:"amount"`
	Note       string `json:"note,omitempty"`
	Public     bool   `json:"public"`
	OrderID    string `json:"order_id"`
}

// GetContributionDefaults serves the prefilled contribution form values,
// including profile data for a known user.
func (h *CrowdfundingHandler) GetContributionDefaults(w http.ResponseWriter, r *http.Request) {
	campaignID := chi.URLParam(r, "campaignID")
	userID := r.Header.Get(UserIDHeader)

	defaults, err := h.ContributionUsecase.GetContributionDefaults(campaignID, userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, defaults)
}

// Contribute handles a contribution form submission.
func (h *CrowdfundingHandler) Contribute(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid form data"})
		return
	}

	input := &contributiondto.ContributeInput{
		CampaignID: chi.URLParam(r, "campaignID"),
		UserID:     r.Header.Get(UserIDHeader),
		Values: forms.ContributionValues{
			Amount:    r.PostFormValue("amount"),
			Note:      r.PostFormValue("note"),
			FirstName: r.PostFormValue("first_name"),
			LastName:  r.PostFormValue("last_name"),
			Public:    r.PostFormValue("public"),
			Address:   r.PostFormValue("address"),
			Postcode:  r.PostFormValue("postcode"),
			City:      r.PostFormValue("city"),
			Country:   r.PostFormValue("country"),
			Email:     r.PostFormValue("email"),
			Method:    r.PostFormValue("method"),
			Terms:     r.PostFormValue("terms"),
		},
	}

	contribution, err := h.ContributionUsecase.Contribute(input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, contributionResponse{
		ID:         contribution.ID,
		CampaignID: contribution.CampaignID,
		Amount:     contribution.Amount.String(),
		Note:       contribution.Note,
		Public:     contribution.Public,
		OrderID:    contribution.OrderID,
	})
}
