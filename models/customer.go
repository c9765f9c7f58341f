package models

// Customer represents a single customer account record, the sole entity
// persisted by the service. All five fields travel over the API as JSON;
// the database owns the ID.
type Customer struct {
	// ID is the unique identifier of the customer record.
	// It is assigned by the database at creation time and is immutable.
	ID int64 `json:"id"`

	// FirstName is the customer's given name. Required, non-empty.
	FirstName string `json:"first_name"`

	// LastName is the customer's family name. Required, non-empty.
	// Exact-match filtering on this field is supported by the list endpoint.
	LastName string `json:"last_name"`

	// Email is the customer's contact e-mail. Required, non-empty.
	// No uniqueness is enforced; several records may share one address.
	// Exact-match filtering on this field is supported by the list endpoint.
	Email string `json:"email"`

	// PhoneNumber is the customer's contact phone. Required, non-empty.
	// Stored verbatim; no normalization is applied.
	PhoneNumber string `json:"phone_number"`
}

// TableName returns the name of the database table
// associated with the Customer model.
func (c Customer) TableName() string {
	return "customers"
}

// CustomerFilter narrows a list query to records matching one attribute
// exactly. At most one field is applied per query: Email takes precedence
// over LastName when both are set. Zero value means "no filter".
type CustomerFilter struct {
	Email    string
	LastName string
}

// IsZero reports whether no filter field is set.
func (f CustomerFilter) IsZero() bool {
	return f.Email == "" && f.LastName == ""
}
