package domain

import "github.com/shopspring/decimal"

// OrderKindContribution tags orders created by this service so the payment
// service can route them back to contribution records.
const OrderKindContribution = "crowdfunding.contribution"

// Order is the payload handed to the payment service. The payment service
// owns the resulting record; contributions only keep the returned order ID.
type Order struct {
	UserID         string
	FirstName      string
	LastName       string
	StreetAddress1 string
	StreetAddress2 string
	City           string
	Postcode       string
	Country        Country
	UserEmail      string
	TotalNet       decimal.Decimal
	TotalGross     decimal.Decimal
	IsDonation     bool
	Kind           string
	Description    string
	PaymentMethod  string
}

type Country string

const (
	CountryGermany     Country = "DE"
	CountryAustria     Country = "AT"
	CountrySwitzerland Country = "CH"
)

var Countries = []Country{CountryGermany, CountryAustria, CountrySwitzerland}

func ValidCountry(country Country) bool {
	for _, c := range Countries {
		if c == country {
			return true
		}
	}
	return false
}

type PaymentProvider interface {
	CreateOrder(order *Order) (string, error)
	GetPaymentMethods() ([]string, error)
}
