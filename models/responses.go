package models

// ServiceInfo is the payload of the index endpoint. It identifies the
// service to callers probing the API root.
type ServiceInfo struct {
	// Name is the human-readable service name.
	Name string `json:"name"`

	// Version is the semantic version of the running build.
	// Omitted from the payload when the build carries no version.
	Version string `json:"version,omitempty"`
}

// ErrorResponse is the JSON body returned with every non-2xx response.
type ErrorResponse struct {
	// Status is the HTTP status code repeated in the body.
	Status int `json:"status"`

	// Error is the canonical status text (e.g. "Not Found").
	Error string `json:"error"`

	// Message describes what went wrong with this particular request.
	Message string `json:"message"`
}
