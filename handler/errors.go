package handler

import "errors"

var (
	ErrMissingGate   = errors.New("handler: gate is required")
	ErrMissingIssuer = errors.New("handler: token issuer is required")
)
