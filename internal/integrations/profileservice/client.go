package profileservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с ProfileService.
// Профили студентов и менторов лежат в двух разных хранилищах,
// поэтому сервис отдаёт их через раздельные эндпоинты
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента ProfileService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// SetTransport подменяет транспорт HTTP клиента (обёртка метрик, фейки в тестах)
func (c *Client) SetTransport(rt http.RoundTripper) {
	c.httpClient.Transport = rt
}

// GetStudentProfile получает профиль студента (email + отображаемое имя)
func (c *Client) GetStudentProfile(ctx context.Context, studentID string) (*Profile, error) {
	url := fmt.Sprintf("%s/internal/students/%s/profile", c.baseURL, studentID)
	return c.getProfile(ctx, url)
}

// GetMentorProfile получает профиль ментора (email + отображаемое имя)
func (c *Client) GetMentorProfile(ctx context.Context, mentorID string) (*Profile, error) {
	url := fmt.Sprintf("%s/internal/mentors/%s/profile", c.baseURL, mentorID)
	return c.getProfile(ctx, url)
}

func (c *Client) getProfile(ctx context.Context, url string) (*Profile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return nil, ErrProfileNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	// Парсим ответ
	var profile Profile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	// Профиль без email бесполезен для отправки подтверждения,
	// трактуем его как отсутствующий
	if profile.Email == "" {
		return nil, ErrProfileNotFound
	}

	return &profile, nil
}
