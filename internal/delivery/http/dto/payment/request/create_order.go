package request

type CreateOrderRequest struct {
	UserID         string `json:"user_id,omitempty"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	StreetAddress1 string `json:"street_address_1"`
	StreetAddress2 string `json:"street_address_2"`
	City           string `json:"city"`
	Postcode       string `json:"postcode"`
	Country        string `json:"country"`
	UserEmail      string `json:"user_email"`
	TotalNet       string `json:"total_net"`
	TotalGross     string `json:"total_gross"`
	IsDonation     bool   `json:"is_donation"`
	Kind           string `json:"kind"`
	Description    string `json:"description"`
	Method         string `json:"method"`
}
