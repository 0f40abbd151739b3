package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"jobportal/internal/logger"
)

// errNotFound - сосед ответил 404
var errNotFound = errors.New("upstream: not found")

// maxBodySize ограничивает чтение ответа соседнего сервиса
const maxBodySize = 1 << 20

// siblingClient - синхронные GET-запросы к соседнему сервису. Без ретраев.
type siblingClient struct {
	name       string
	baseURL    string
	httpClient *http.Client
}

func newSiblingClient(name, baseURL string, timeout time.Duration, httpClient *http.Client) *siblingClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}
	return &siblingClient{
		name:       name,
		baseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		httpClient: httpClient,
	}
}

// getJSON декодирует ответ 2xx в out. Любой другой исход - ошибка.
func (c *siblingClient) getJSON(ctx context.Context, path string, out interface{}) error {
	if c.baseURL == "" {
		return fmt.Errorf("%s: base url is not configured", c.name)
	}

	target := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if requestID := logger.GetRequestID(ctx); requestID != "" {
		req.Header.Set("X-Request-ID", requestID)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.UpstreamLog(ctx, c.name, http.MethodGet, target, 0, time.Since(start), err)
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	logger.UpstreamLog(ctx, c.name, http.MethodGet, target, resp.StatusCode, time.Since(start), err)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return errNotFound
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return fmt.Errorf("%s: unexpected status %d", c.name, resp.StatusCode)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func escape(id string) string {
	return url.PathEscape(strings.TrimSpace(id))
}
