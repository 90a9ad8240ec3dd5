package response

type CreateOrderResponse struct {
	OrderID string `json:"order_id"`
}

type PaymentMethodsResponse struct {
	Methods []string `json:"methods"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
