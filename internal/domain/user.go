package domain

// User carries the profile fields used to prefill contribution forms.
// Address is free text as stored by the portal, one or more lines.
type User struct {
	ID        string
	Email     string
	FirstName string
	LastName  string
	Address   string
}
