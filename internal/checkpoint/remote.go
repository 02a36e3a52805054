package checkpoint

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shenikar/safewalk/internal/models"
)

// RemoteURL выводит адрес списка точек сервера из адреса WebSocket канала:
// ws://host/api/v1/ws -> http://host/api/v1/checkpoints
func RemoteURL(channelURL string) (string, error) {
	u, err := url.Parse(channelURL)
	if err != nil {
		return "", fmt.Errorf("failed to parse server url: %w", err)
	}
	switch u.Scheme {
	case "ws":
		u.Scheme = "http"
	case "wss":
		u.Scheme = "https"
	case "http", "https":
	default:
		return "", fmt.Errorf("unsupported server url scheme %q", u.Scheme)
	}
	u.Path = strings.TrimSuffix(strings.TrimSuffix(u.Path, "/"), "/ws") + "/checkpoints"
	u.RawQuery = ""
	return u.String(), nil
}

// Fetch загружает набор точек с сервера, чтобы клиент проверял тот же набор, что и монитор
func Fetch(ctx context.Context, client *http.Client, listURL string) (*Registry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, listURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create checkpoints request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch checkpoints: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch checkpoints: status code %d", resp.StatusCode)
	}

	var list []models.Checkpoint
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return nil, fmt.Errorf("failed to decode checkpoints: %w", err)
	}
	if err := validator.New().Struct(fileFormat{Checkpoints: list}); err != nil {
		return nil, fmt.Errorf("invalid checkpoints: %w", err)
	}
	return NewRegistry(list), nil
}
