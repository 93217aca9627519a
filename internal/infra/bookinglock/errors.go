package bookinglock

import "errors"

var (
	// ErrUnavailable возвращается при ошибках соединения с Redis
	ErrUnavailable = errors.New("bookinglock: redis unavailable")
)
