package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"mesa-booking/internal/pkg/authctx"
	"mesa-booking/internal/pkg/config"
)

const maxErrorBody = 64 << 10

// Client talks to the restaurant REST API. It keeps no state of its own; the
// visitor's token travels on the request context.
type Client struct {
	baseURL    string
	authPrefix string
	http       *http.Client
	logger     *slog.Logger
}

func NewClient(cfg config.BackendConfig, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		authPrefix: "/" + strings.Trim(cfg.AuthPrefix, "/"),
		http: &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout:   5 * time.Second,
					KeepAlive: 30 * time.Second,
				}).DialContext,
				MaxIdleConns:        100,
				IdleConnTimeout:     90 * time.Second,
				TLSHandshakeTimeout: 10 * time.Second,
			},
		},
		logger: logger,
	}
}

type messageBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func (c *Client) authPath(name string) string {
	if c.authPrefix == "/" {
		return "/" + name
	}
	return c.authPrefix + "/" + name
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return wrapErr(c.logger, KindMalformed, 0, "", "failed to encode request for "+path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return wrapErr(c.logger, KindUnavailable, 0, "", "failed to build request for "+path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token, ok := authctx.Token(ctx); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return wrapErr(c.logger, KindUnavailable, 0, "", method+" "+path+" failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		var mb messageBody
		_ = json.Unmarshal(raw, &mb)
		return wrapErr(c.logger, KindRejected, resp.StatusCode, mb.Message,
			method+" "+path+" returned "+resp.Status, nil)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return wrapErr(c.logger, KindMalformed, resp.StatusCode, "", "failed to decode "+path+" response", err)
	}
	return nil
}
