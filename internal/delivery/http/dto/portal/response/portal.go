package response

type FoiRequestResponse struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	// Costs is the portal's cost estimate as a decimal string, empty when
	// none has been recorded.
	Costs string `json:"costs,omitempty"`
}

type UserResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Address   string `json:"address"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
