package domain

import "errors"

var (
	MessageFailedBodyRequest    = "invalid_json"
	MessageFailedProcessRequest = "failed to process request"

	ErrInvalidJSON = errors.New("invalid_json")
)
