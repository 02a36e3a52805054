// Package connectivity проверяет доступность сети сетевым запросом к известному адресу.
package connectivity

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrConnectivityDown - адрес проверки недоступен. Это ожидаемое состояние, а не сбой.
var ErrConnectivityDown = errors.New("connectivity down")

// HTTPProber считает сеть доступной, если на запрос пришел любой HTTP ответ
type HTTPProber struct {
	url        string
	httpClient *http.Client
}

func NewHTTPProber(url string, timeout time.Duration) *HTTPProber {
	return &HTTPProber{
		url: url,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Probe выполняет запрос и возвращает ErrConnectivityDown при неудаче
func (p *HTTPProber) Probe(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConnectivityDown, err)
	}
	req.Header.Set("Cache-Control", "no-cache")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConnectivityDown, err)
	}
	defer resp.Body.Close()
	return nil
}
