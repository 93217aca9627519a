package authservice

import "errors"

var (
	// ErrUnauthenticated возвращается, когда принципал отсутствует или токен отклонён
	ErrUnauthenticated = errors.New("authservice client: unauthenticated")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("authservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("authservice client: invalid response")
)
