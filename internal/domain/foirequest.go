package domain

import "github.com/shopspring/decimal"

// FoiRequest is the slice of the portal's request record this service needs:
// the title seeds the campaign title default, the recorded costs seed the
// requested amount default.
type FoiRequest struct {
	ID    string
	Title string
	// Costs is nil when the portal has not recorded a cost estimate yet.
	Costs *decimal.Decimal
}

type PortalProvider interface {
	GetFoiRequest(requestID string) (*FoiRequest, error)
	GetUser(userID string) (*User, error)
}
