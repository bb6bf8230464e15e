package models

// RawUser is a user record exactly as delivered by the data source.
type RawUser struct {
	// ID is the unique user identifier.
	ID int `json:"id"`

	// FirstName and LastName form the display name.
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`

	// Gender is the self-reported gender ("Female", "Male", or other).
	Gender string `json:"gender"`

	// Birthday is the date of birth as epoch seconds; empty when unknown.
	Birthday string `json:"birthday"`

	// Avatar is a URL to the user's profile picture.
	Avatar string `json:"avatar"`

	// CompanyID references the user's employer; zero means none.
	CompanyID int `json:"company_id"`
}

// NormalizedUser is a user joined with its company and augmented with
// presentation state. It is embedded by value into each order.
type NormalizedUser struct {
	ID        int
	FirstName string
	LastName  string
	Gender    string

	// Birthday is the localized date of birth (dd/mm/yyyy), or empty
	// when the raw record had none.
	Birthday string

	Avatar string

	// Company is the resolved employer, shared across users. Nil when
	// the user has no company or the referenced company is unknown.
	Company *Company

	// ShowInfo is a transient UI flag: whether the user details panel
	// for this particular order is expanded. Defaults to false.
	ShowInfo bool
}
