package adapter

import "errors"

var (
	ErrBadRequest           = errors.New("bad request")
	ErrNotFound             = errors.New("not found")
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrInternalServerError  = errors.New("internal server error")
)
