package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"main/config"
	"main/model"
	"main/usecase"

	"github.com/sirupsen/logrus"
)

// Wakatime fetches aggregated coding-time statistics for the
// configured account over a selectable range.
type Wakatime struct {
	client   *http.Client
	baseURL  string
	username string
	apiKey   string

	// now is swappable so range arithmetic is deterministic in tests.
	now func() time.Time
}

func NewWakatime(cfg config.Config) *Wakatime {
	return &Wakatime{
		client:   &http.Client{Timeout: cfg.UpstreamTimeout},
		baseURL:  cfg.WakatimeAPIURL,
		username: cfg.WakatimeUsername,
		apiKey:   cfg.WakatimeAPIKey,
		now:      time.Now,
	}
}

type wakaEnvelope struct {
	Data *model.WakaStats `json:"data"`
}

// FetchStats resolves the range into a concrete date window and fetches
// the statistics payload. The API key is optional: without one the call
// goes out unauthenticated and the upstream decides whether to answer.
func (w *Wakatime) FetchStats(ctx context.Context, r model.Range) (model.WakaStats, error) {
	var empty model.WakaStats

	if w.username == "" {
		return empty, model.ConfigError("wakatime username is not configured")
	}

	start, end := usecase.RangeDates(r, w.now())
	endpoint := fmt.Sprintf("%s/users/%s/stats?start_date=%s&end_date=%s",
		w.baseURL, url.PathEscape(w.username), start, end)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return empty, model.NetworkError(fmt.Errorf("wakatime: new request: %w", err))
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", defaultUserAgent)
	if w.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+w.apiKey)
	}

	resp, err := w.client.Do(req)
	if err != nil {
		return empty, model.NetworkError(fmt.Errorf("wakatime: do request: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return empty, model.UpstreamError(fmt.Errorf("wakatime: unexpected status %d", resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return empty, model.NetworkError(fmt.Errorf("wakatime: read body: %w", err))
	}

	// Some deployments wrap the payload in a data envelope, some send
	// it bare. Try the envelope first.
	var envelope wakaEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return empty, model.UpstreamError(fmt.Errorf("wakatime: decode response: %w", err))
	}

	var stats model.WakaStats
	if envelope.Data != nil {
		stats = *envelope.Data
	} else if err := json.Unmarshal(body, &stats); err != nil {
		return empty, model.UpstreamError(fmt.Errorf("wakatime: decode response: %w", err))
	}

	logrus.WithFields(logrus.Fields{
		"provider":  "wakatime",
		"user":      w.username,
		"range":     r,
		"languages": len(stats.Languages),
	}).Debug("time-tracking stats fetched")

	return stats, nil
}
