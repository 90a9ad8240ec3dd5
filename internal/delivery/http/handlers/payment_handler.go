package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"

	paymentRequest "github.com/infofreiheit/crowdfunding-service/internal/delivery/http/dto/payment/request"
	paymentResponse "github.com/infofreiheit/crowdfunding-service/internal/delivery/http/dto/payment/response"
	"github.com/infofreiheit/crowdfunding-service/internal/domain"
)

// HTTPPaymentHandler talks to the payment service, which owns orders and
// the set of available payment methods.
type HTTPPaymentHandler struct {
	Address string

	// mu guards methods; the handler is shared across server goroutines.
	mu      sync.Mutex
	methods []string
}

func NewHTTPPaymentHandler(address string) (*HTTPPaymentHandler, error) {
	return &HTTPPaymentHandler{
		Address: address,
	}, nil
}

func (h *HTTPPaymentHandler) CreateOrder(order *domain.Order) (string, error) {
	requestBodyBytes, err := json.Marshal(paymentRequest.CreateOrderRequest{
		UserID:         order.UserID,
		FirstName:      order.FirstName,
		LastName:       order.LastName,
		StreetAddress1: order.StreetAddress1,
		StreetAddress2: order.StreetAddress2,
		City:           order.City,
		Postcode:       order.Postcode,
		Country:        string(order.Country),
		UserEmail:      order.UserEmail,
		TotalNet:       order.TotalNet.String(),
		TotalGross:     order.TotalGross.String(),
		IsDonation:     order.IsDonation,
		Kind:           order.Kind,
		Description:    order.Description,
		Method:         order.PaymentMethod,
	})
	if err != nil {
		return "", err
	}

	response, err := http.Post(fmt.Sprintf("%s/orders", h.Address), "application/json", bytes.NewBuffer(requestBodyBytes))
	if err != nil {
		return "", err
	}
	defer response.Body.Close()
	responseBodyBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return "", err
	}

	if response.StatusCode >= 200 && response.StatusCode < 300 {
		var orderResponse paymentResponse.CreateOrderResponse
		if err := json.Unmarshal(responseBodyBytes, &orderResponse); err != nil {
			return "", err
		}
		return orderResponse.OrderID, nil
	}
	var errorResponse paymentResponse.ErrorResponse
	if err := json.Unmarshal(responseBodyBytes, &errorResponse); err != nil {
		return "", err
	}
	return "", errors.New(errorResponse.Error)
}

// GetPaymentMethods fetches the offered payment methods once and caches
// them for the handler's lifetime.
func (h *HTTPPaymentHandler) GetPaymentMethods() ([]string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.methods != nil {
		return h.methods, nil
	}

	response, err := http.Get(fmt.Sprintf("%s/payment-methods", h.Address))
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()
	responseBodyBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, err
	}

	if response.StatusCode >= 200 && response.StatusCode < 300 {
		var methodsResponse paymentResponse.PaymentMethodsResponse
		if err := json.Unmarshal(responseBodyBytes, &methodsResponse); err != nil {
			return nil, err
		}
		h.methods = methodsResponse.Methods
		return h.methods, nil
	}
	var errorResponse paymentResponse.ErrorResponse
	if err := json.Unmarshal(responseBodyBytes, &errorResponse); err != nil {
		return nil, err
	}
	return nil, errors.New(errorResponse.Error)
}
