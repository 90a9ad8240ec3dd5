package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	portalResponse "github.com/infofreiheit/crowdfunding-service/internal/delivery/http/dto/portal/response"
	"github.com/infofreiheit/crowdfunding-service/internal/domain"
	"github.com/shopspring/decimal"
)

// HTTPPortalHandler talks to the FOI portal, which owns requests and user
// profiles.
type HTTPPortalHandler struct {
	Address string
}

func NewHTTPPortalHandler(address string) (*HTTPPortalHandler, error) {
	return &HTTPPortalHandler{
		Address: address,
	}, nil
}

func (h *HTTPPortalHandler) GetFoiRequest(requestID string) (*domain.FoiRequest, error) {
	response, err := http.Get(fmt.Sprintf("%s/requests/%s", h.Address, requestID))
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()
	responseBodyBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, err
	}

	if response.StatusCode == http.StatusNotFound {
		return nil, domain.ErrRequestNotFound
	}
	if response.StatusCode >= 200 && response.StatusCode < 300 {
		var requestResponse portalResponse.FoiRequestResponse
		if err := json.Unmarshal(responseBodyBytes, &requestResponse); err != nil {
			return nil, err
		}
		foirequest := &domain.FoiRequest{
			ID:    requestResponse.ID,
			Title: requestResponse.Title,
		}
		if requestResponse.Costs != "" {
			costs, err := decimal.NewFromString(requestResponse.Costs)
			if err != nil {
				return nil, fmt.Errorf("invalid costs in portal response: %w", err)
			}
			foirequest.Costs = &costs
		}
		return foirequest, nil
	}
	var errorResponse portalResponse.ErrorResponse
	if err := json.Unmarshal(responseBodyBytes, &errorResponse); err != nil {
		return nil, err
	}
	return nil, errors.New(errorResponse.Error)
}

func (h *HTTPPortalHandler) GetUser(userID string) (*domain.User, error) {
	response, err := http.Get(fmt.Sprintf("%s/users/%s", h.Address, userID))
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()
	responseBodyBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, err
	}

	if response.StatusCode == http.StatusNotFound {
		return nil, domain.ErrUserNotFound
	}
	if response.StatusCode >= 200 && response.StatusCode < 300 {
		var userResponse portalResponse.UserResponse
		if err := json.Unmarshal(responseBodyBytes, &userResponse); err != nil {
			return nil, err
		}
		return &domain.User{
			ID:        userResponse.ID,
			Email:     userResponse.Email,
			FirstName: userResponse.FirstName,
			LastName:  userResponse.LastName,
			Address:   userResponse.Address,
		}, nil
	}
	var errorResponse portalResponse.ErrorResponse
	if err := json.Unmarshal(responseBodyBytes, &errorResponse); err != nil {
		return nil, err
	}
	return nil, errors.New(errorResponse.Error)
}
