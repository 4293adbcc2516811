package dto

import "errors"

// Request errors
var (
	ErrMalformedBody  = errors.New("request body is not a valid graph snapshot")
	ErrInvalidRequest = errors.New("invalid validation request")
)
