package forms

import (
	"github.com/infofreiheit/crowdfunding-service/internal/domain"
	"github.com/infofreiheit/crowdfunding-service/internal/policy"
	"github.com/shopspring/decimal"
)

// ContributionValues are the raw field values of a contribution submission.
type ContributionValues struct {
	Amount    string
	Note      string
	FirstName string
	LastName  string
	Public    string
	Address   string
	Postcode  string
	City      string
	Country   string
	Email     string
	Method    string
	Terms     string
}

// ContributionData is the cleaned result of a valid submission.
type ContributionData struct {
	Amount    decimal.Decimal
	Note      string
	FirstName string
	LastName  string
	Public    bool
	Address   string
	Postcode  string
	City      string
	Country   domain.Country
	Email     string
	Method    string
}

// ContributionDefaults are the prefilled field values for a known user.
type ContributionDefaults struct {
	Amount    decimal.Decimal `json:"amount"`
	FirstName string          `json:"first_name"`
	LastName  string          `json:"last_name"`
	Email     string          `json:"email"`
	Address   string          `json:"address"`
	Postcode  string          `json:"postcode"`
	City      string          `json:"city"`
	Method    string          `json:"method"`
	Methods   []string        `json:"methods"`
}

var (
	minContribution = decimal.NewFromInt(1)
	defaultAmount   = decimal.NewFromInt(10)
)

// ContributionForm validates contribution submissions against one campaign.
// The contributing user, when known, is passed in explicitly and only used
// for prefilling; guests submit with a nil user.
type ContributionForm struct {
	User    *domain.User
	Methods []string
}

func NewContributionForm(user *domain.User, methods []string) *ContributionForm {
	return &ContributionForm{User: user, Methods: methods}
}

// Initial prefills name, email and the parsed parts of the user's stored
// free-text address. Unparseable addresses leave the address fields empty.
func (f *ContributionForm) Initial() ContributionDefaults {
	defaults := ContributionDefaults{
		Amount:  defaultAmount,
		Methods: f.Methods,
	}
	if len(f.Methods) > 0 {
		defaults.Method = f.Methods[0]
	}
	if f.User != nil {
		defaults.Email = f.User.Email
		defaults.FirstName = f.User.FirstName
		defaults.LastName = f.User.LastName
		parsed := policy.ParseAddress(f.User.Address)
		defaults.Address = parsed.StreetAddress
		defaults.Postcode = parsed.Postcode
		defaults.City = parsed.City
	}
	return defaults
}

// Validate runs field validation and returns cleaned data or a
// ValidationError; never both.
func (f *ContributionForm) Validate(values ContributionValues) (*ContributionData, *ValidationError) {
	ve := &ValidationError{}

	data := &ContributionData{
		Note:      cleanString(ve, "note", values.Note, false, 260),
		FirstName: cleanString(ve, "first_name", values.FirstName, true, 255),
		LastName:  cleanString(ve, "last_name", values.LastName, true, 255),
		Public:    cleanBool(values.Public),
		Address:   cleanString(ve, "address", values.Address, true, 255),
		Postcode:  cleanString(ve, "postcode", values.Postcode, true, 255),
		City:      cleanString(ve, "city", values.City, true, 255),
		Email:     cleanString(ve, "email", values.Email, true, 255),
	}
	data.Amount = cleanDecimal(ve, "amount", values.Amount, minContribution, 10, 2)

	country := domain.Country(cleanString(ve, "country", values.Country, true, 0))
	if country != "" {
		if !domain.ValidCountry(country) {
			ve.AddFieldError("country", CodeInvalidChoice, "select a valid country")
		} else {
			data.Country = country
		}
	}

	method := cleanString(ve, "method", values.Method, false, 0)
	if method == "" && len(f.Methods) > 0 {
		method = f.Methods[0]
	}
	if !methodOffered(method, f.Methods) {
		ve.AddFieldError("method", CodeInvalidChoice, "select a valid payment method")
	} else {
		data.Method = method
	}

	if !cleanBool(values.Terms) {
		ve.AddFieldError("terms", CodeRequired, "you need to accept our terms and conditions and privacy statement")
	}

	if ve.HasErrors() {
		return nil, ve
	}
	return data, nil
}

func methodOffered(method string, offered []string) bool {
	for _, m := range offered {
		if m == method {
			return true
		}
	}
	return false
}
