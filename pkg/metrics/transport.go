package metrics

import (
	"net/http"
	"time"
)

// roundTripper обёртка транспорта интеграционного клиента,
// фиксирующая длительность и исход каждого исходящего вызова
type roundTripper struct {
	target string
	m      *Metrics
	base   http.RoundTripper
}

// NewRoundTripper создает транспорт с метриками для интеграционного клиента.
// target — имя сервиса-коллаборатора в лейблах метрик
func NewRoundTripper(target string, m *Metrics) http.RoundTripper {
	return &roundTripper{
		target: target,
		m:      m,
		base:   http.DefaultTransport,
	}
}

func (rt *roundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	resp, err := rt.base.RoundTrip(req)

	outcome := "error"
	if err == nil {
		if resp.StatusCode < 500 {
			outcome = "ok"
		} else {
			outcome = "server_error"
		}
	}

	rt.m.ObserveIntegration(rt.target, req.Method, outcome, time.Since(start))
	return resp, err
}
