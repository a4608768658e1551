package cookie

import "errors"

var (
	// ErrCookieNotFound is returned when the requested cookie is absent.
	ErrCookieNotFound = errors.New("cookie not found")
	// ErrCookieTooLarge is returned when a cookie exceeds the size limit.
	ErrCookieTooLarge = errors.New("cookie exceeds maximum size")
)
