package profileservice

// Profile модель профиля участника из ProfileService
type Profile struct {
	Email    string `json:"email"`
	FullName string `json:"full_name"`
}

// ErrorResponse модель ошибки от ProfileService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
