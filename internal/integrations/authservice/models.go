package authservice

// Principal модель аутентифицированного пользователя из AuthService
type Principal struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// ErrorResponse модель ошибки от AuthService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
