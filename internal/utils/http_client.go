package utils

import (
	"github.com/go-resty/resty/v2"
)

// HTTPClient wraps resty.Client. Embedding *resty.Client exposes the full
// resty API while leaving room for application-specific extension.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}
